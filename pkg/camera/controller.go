package camera

import (
	"time"

	"github.com/chewxy/math32"

	"github.com/tuinmax/verandaplanner/pkg/config"
)

// State ranges and input tuning.
const (
	MinHeight float32 = -0.5
	MaxHeight float32 = 3.5
	MinZoom   float32 = 2.0
	MaxZoom   float32 = 8.0

	// A full horizontal drag across the viewport is one revolution.
	dragRevolutionsPerViewport = 1.0

	// Vertical drag commits to height only after this many accumulated
	// pixels, so jitter is never read as an intentional pan.
	verticalDeadZonePx  float32 = 8
	heightPerPixel      float32 = 0.01
	zoomPerWheelDelta   float32 = 0.01
	zoomPerPinchDelta   float32 = 0.02

	// JumpDuration is the fixed length of a jump-to-side animation.
	JumpDuration = 1000 * time.Millisecond

	// smoothFactor is applied once per Step call, not per elapsed
	// time: perceived smoothing speed follows the display refresh
	// rate, preserved from the original behavior.
	smoothFactor float32 = 0.1
)

// sideTarget is a fixed viewpoint on the path.
type sideTarget struct {
	Progress float32
	Height   float32
}

// sideTargets places the three jumpable viewpoints. Unevenly spaced on
// purpose: the heart curve puts them closer to the structure than the
// rear arc.
var sideTargets = map[config.Side]sideTarget{
	config.SideFront: {Progress: 0.50, Height: 1.2},
	config.SideLeft:  {Progress: 0.25, Height: 1.5},
	config.SideRight: {Progress: 0.75, Height: 1.5},
}

// lookTarget is the fixed point the camera always re-orients toward.
var lookTarget = Vec3{X: 0, Y: 1, Z: 0}

// Pose is the per-frame camera output.
type Pose struct {
	Position Vec3 `json:"position"`
	Target   Vec3 `json:"target"`
}

type jumpAnim struct {
	start         time.Time
	fromProgress  float32
	fromHeight    float32
	toProgress    float32
	toHeight      float32
	progressDelta float32
}

// Controller drives the camera along the path from pointer, wheel and
// touch input plus programmatic jump requests. All state is local; it
// never reads the configuration.
type Controller struct {
	progress float32
	height   float32
	zoom     float32

	vertBuffer float32
	lastPinch  float32
	hasPinch   bool

	anim *jumpAnim

	pos         Vec3
	initialized bool
}

// NewController starts at the front viewpoint, mid zoom.
func NewController() *Controller {
	front := sideTargets[config.SideFront]
	return &Controller{
		progress: front.Progress,
		height:   front.Height,
		zoom:     5.0,
	}
}

// Progress returns the current path progress in [0,1).
func (c *Controller) Progress() float32 { return c.progress }

// Height returns the current path height.
func (c *Controller) Height() float32 { return c.height }

// Zoom returns the current zoom radius.
func (c *Controller) Zoom() float32 { return c.zoom }

// Drag applies a pointer drag delta in pixels. Horizontal movement maps
// to path progress scaled inversely by the viewport width; vertical
// movement accumulates in a dead-zone buffer before committing to
// height. A drag cancels any running jump animation.
func (c *Controller) Drag(dx, dy, viewportWidth float32) {
	c.anim = nil

	if viewportWidth > 0 {
		c.progress = wrapProgress(c.progress + dx*dragRevolutionsPerViewport/viewportWidth)
	}

	c.vertBuffer += dy
	if math32.Abs(c.vertBuffer) > verticalDeadZonePx {
		c.height = clamp(c.height-c.vertBuffer*heightPerPixel, MinHeight, MaxHeight)
		c.vertBuffer = 0
	}
}

// DragEnd resets the vertical dead-zone buffer.
func (c *Controller) DragEnd() {
	c.vertBuffer = 0
}

// Wheel adjusts the zoom radius, clamped to its range.
func (c *Controller) Wheel(delta float32) {
	c.zoom = clamp(c.zoom+delta*zoomPerWheelDelta, MinZoom, MaxZoom)
}

// Pinch adjusts zoom from the delta between consecutive two-touch
// distances.
func (c *Controller) Pinch(distance float32) {
	if c.hasPinch {
		c.zoom = clamp(c.zoom-(distance-c.lastPinch)*zoomPerPinchDelta, MinZoom, MaxZoom)
	}
	c.lastPinch = distance
	c.hasPinch = true
}

// PinchEnd closes a pinch gesture.
func (c *Controller) PinchEnd() {
	c.hasPinch = false
}

// JumpTo starts the fixed-duration eased interpolation toward the
// side's viewpoint. A new jump or drag simply overwrites a running
// one; nothing is queued.
func (c *Controller) JumpTo(side config.Side, now time.Time) {
	target, ok := sideTargets[side]
	if !ok {
		return
	}
	c.anim = &jumpAnim{
		start:         now,
		fromProgress:  c.progress,
		fromHeight:    c.height,
		toProgress:    target.Progress,
		toHeight:      target.Height,
		progressDelta: shortestDelta(c.progress, target.Progress),
	}
}

// Step advances the controller one rendered frame: it drives a running
// jump animation, exponentially smooths the camera toward the curve
// point, and re-orients toward the fixed look target.
func (c *Controller) Step(now time.Time) Pose {
	if c.anim != nil {
		u := float32(now.Sub(c.anim.start)) / float32(JumpDuration)
		if u >= 1 {
			// Land exactly on the target constants.
			c.progress = c.anim.toProgress
			c.height = c.anim.toHeight
			c.anim = nil
		} else if u > 0 {
			e := easeOutCubic(u)
			c.progress = wrapProgress(c.anim.fromProgress + c.anim.progressDelta*e)
			c.height = c.anim.fromHeight + (c.anim.toHeight-c.anim.fromHeight)*e
		}
	}

	target := PathPoint(c.progress, c.zoom, c.height)
	if !c.initialized {
		c.pos = target
		c.initialized = true
	} else {
		c.pos.X += (target.X - c.pos.X) * smoothFactor
		c.pos.Y += (target.Y - c.pos.Y) * smoothFactor
		c.pos.Z += (target.Z - c.pos.Z) * smoothFactor
	}

	return Pose{Position: c.pos, Target: lookTarget}
}

func easeOutCubic(u float32) float32 {
	inv := 1 - u
	return 1 - inv*inv*inv
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
