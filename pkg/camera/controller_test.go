package camera

import (
	"testing"
	"time"

	"github.com/chewxy/math32"

	"github.com/tuinmax/verandaplanner/pkg/config"
)

func TestJumpLandsExactlyOnTargets(t *testing.T) {
	for _, side := range []config.Side{config.SideFront, config.SideLeft, config.SideRight} {
		c := NewController()
		// Start somewhere unrelated.
		c.progress = 0.93
		c.height = 0.1

		start := time.Unix(0, 0)
		c.JumpTo(side, start)

		// A few mid-animation frames, then past the end.
		for i := 1; i <= 5; i++ {
			c.Step(start.Add(time.Duration(i) * 180 * time.Millisecond))
		}
		c.Step(start.Add(JumpDuration + time.Millisecond))

		want := sideTargets[side]
		if c.Progress() != want.Progress || c.Height() != want.Height {
			t.Errorf("jump to %s ended at (%v, %v), want exactly (%v, %v)",
				side, c.Progress(), c.Height(), want.Progress, want.Height)
		}
	}
}

func TestJumpTakesShortestPathAroundWrap(t *testing.T) {
	c := NewController()
	c.progress = 0.95
	start := time.Unix(0, 0)
	c.JumpTo(config.SideLeft, start) // target 0.25, short way crosses 0

	c.Step(start.Add(100 * time.Millisecond))
	// Early in the animation the camera should be just past the wrap,
	// not retreating backwards through 0.5.
	p := c.Progress()
	if p > 0.5 && p < 0.95 {
		t.Errorf("progress %v went the long way around", p)
	}
}

func TestDragCancelsJump(t *testing.T) {
	c := NewController()
	start := time.Unix(0, 0)
	c.JumpTo(config.SideRight, start)
	c.Drag(30, 0, 1000)

	if c.anim != nil {
		t.Error("drag must overwrite a running jump animation")
	}
}

func TestDragScalesWithViewportWidth(t *testing.T) {
	narrow := NewController()
	wide := NewController()

	narrow.Drag(100, 0, 500)
	wide.Drag(100, 0, 2000)

	dNarrow := shortestDelta(sideTargets[config.SideFront].Progress, narrow.Progress())
	dWide := shortestDelta(sideTargets[config.SideFront].Progress, wide.Progress())
	if math32.Abs(dNarrow) <= math32.Abs(dWide) {
		t.Errorf("narrow viewport delta %v should exceed wide viewport delta %v", dNarrow, dWide)
	}
}

func TestVerticalDeadZone(t *testing.T) {
	c := NewController()
	h0 := c.Height()

	// Small jittery movements below the threshold never commit.
	c.Drag(0, 3, 1000)
	c.Drag(0, -2, 1000)
	if c.Height() != h0 {
		t.Error("sub-threshold vertical drag must not move height")
	}

	// Accumulated movement past the threshold commits in one step.
	c.Drag(0, 20, 1000)
	if c.Height() == h0 {
		t.Error("accumulated vertical drag past the threshold must move height")
	}
}

func TestZoomNeverLeavesRange(t *testing.T) {
	c := NewController()

	for i := 0; i < 10000; i++ {
		c.Wheel(500)
	}
	if c.Zoom() != MaxZoom {
		t.Errorf("zoom = %v, want clamped at %v", c.Zoom(), MaxZoom)
	}

	for i := 0; i < 10000; i++ {
		c.Wheel(-500)
	}
	if c.Zoom() != MinZoom {
		t.Errorf("zoom = %v, want clamped at %v", c.Zoom(), MinZoom)
	}
}

func TestPinchZoom(t *testing.T) {
	c := NewController()
	z0 := c.Zoom()

	// First touch pair only establishes the baseline distance.
	c.Pinch(100)
	if c.Zoom() != z0 {
		t.Error("first pinch sample must not zoom")
	}
	// Spreading the fingers zooms in.
	c.Pinch(150)
	if c.Zoom() >= z0 {
		t.Errorf("zoom = %v after spreading, want < %v", c.Zoom(), z0)
	}

	c.PinchEnd()
	zBefore := c.Zoom()
	c.Pinch(100)
	if c.Zoom() != zBefore {
		t.Error("a new gesture must re-establish its baseline before zooming")
	}
}

func TestStepSmoothsTowardPath(t *testing.T) {
	c := NewController()
	// Off the front lobe axis, where zoom changes move X.
	c.progress = 0.3
	now := time.Unix(0, 0)

	first := c.Step(now)
	// First frame snaps onto the path.
	want := PathPoint(c.Progress(), c.Zoom(), c.Height())
	if first.Position != want {
		t.Errorf("first pose = %+v, want on-path %+v", first.Position, want)
	}

	// After a zoom change the camera approaches the new path point a
	// fixed fraction per frame.
	c.Wheel(300)
	target := PathPoint(c.Progress(), c.Zoom(), c.Height())
	pose := c.Step(now.Add(16 * time.Millisecond))

	gap0 := math32.Abs(target.X - first.Position.X)
	gap1 := math32.Abs(target.X - pose.Position.X)
	if gap1 >= gap0 {
		t.Errorf("camera did not move toward the path target: %v -> %v", gap0, gap1)
	}
	if pose.Target != lookTarget {
		t.Errorf("pose target = %+v, want fixed look target %+v", pose.Target, lookTarget)
	}
}

func TestPathPointRespondsToZoom(t *testing.T) {
	near := PathPoint(0.5, MinZoom, 1)
	far := PathPoint(0.5, MaxZoom, 1)

	dn := math32.Hypot(near.X-lateralShiftX, near.Z)
	df := math32.Hypot(far.X-lateralShiftX, far.Z)
	if df <= dn {
		t.Errorf("path radius at max zoom (%v) must exceed min zoom (%v)", df, dn)
	}
}
