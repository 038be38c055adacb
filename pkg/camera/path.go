package camera

import "github.com/chewxy/math32"

// Vec3 is a float32 3D vector, matching the render pipeline's precision.
type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// The camera rides a closed heart-shaped curve around the structure.
// The curve is deliberately non-circular: the front and side viewpoints
// sit in the lobes, closer to the structure than the rear.
const (
	// heartNorm scales the classic heart curve into a unit radius.
	heartNorm = 1.0 / 16.0

	// lateralShiftX nudges the whole path sideways so the curve's
	// notch never faces the front wall straight on.
	lateralShiftX = 0.6
)

// PathPoint evaluates the curve at progress in [0,1), scaled by the
// zoom radius and lifted to the given height.
func PathPoint(progress, zoom, height float32) Vec3 {
	t := progress * 2 * math32.Pi

	sin := math32.Sin(t)
	hx := 16 * sin * sin * sin
	hz := 13*math32.Cos(t) - 5*math32.Cos(2*t) - 2*math32.Cos(3*t) - math32.Cos(4*t)

	return Vec3{
		X: hx*heartNorm*zoom + lateralShiftX,
		Y: height,
		Z: hz * heartNorm * zoom,
	}
}

// wrapProgress keeps progress in the circular [0,1) domain.
func wrapProgress(p float32) float32 {
	p = math32.Mod(p, 1)
	if p < 0 {
		p += 1
	}
	return p
}

// shortestDelta returns the signed circular distance from a to b,
// always taking the short way around.
func shortestDelta(a, b float32) float32 {
	d := b - a
	if d > 0.5 {
		d -= 1
	}
	if d < -0.5 {
		d += 1
	}
	return d
}
