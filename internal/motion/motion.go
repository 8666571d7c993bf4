// Package motion animates node positions between frames.
package motion

import (
	"math"
	"time"

	"github.com/idursun/clgl/internal/scene"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween moves a node from its current position to a target. Positions are
// rounded to whole cells after every update.
type Tween struct {
	// Loop makes the tween travel back and forth forever.
	Loop bool

	node       *scene.Node
	from, to   [2]int
	duration   float32
	fn         ease.TweenFunc
	tweenLeft  *gween.Tween
	tweenTop   *gween.Tween
	isFinished bool
}

// Move creates a tween that takes node to (toLeft, toTop) over duration.
func Move(node *scene.Node, toLeft, toTop int, duration time.Duration, fn ease.TweenFunc) *Tween {
	t := &Tween{
		node:     node,
		from:     [2]int{node.Left, node.Top},
		to:       [2]int{toLeft, toTop},
		duration: float32(duration.Seconds()),
		fn:       fn,
	}
	t.start()
	return t
}

func (t *Tween) start() {
	t.tweenLeft = gween.New(float32(t.from[0]), float32(t.to[0]), t.duration, t.fn)
	t.tweenTop = gween.New(float32(t.from[1]), float32(t.to[1]), t.duration, t.fn)
}

// Update advances the tween by dt and writes the new position to the node.
// It reports whether the tween has finished; a looping tween never does.
func (t *Tween) Update(dt time.Duration) bool {
	if t.isFinished {
		return true
	}

	step := float32(dt.Seconds())
	left, leftDone := t.tweenLeft.Update(step)
	top, topDone := t.tweenTop.Update(step)
	t.node.Left = int(math.Round(float64(left)))
	t.node.Top = int(math.Round(float64(top)))

	if leftDone && topDone {
		if t.Loop {
			t.from, t.to = t.to, t.from
			t.start()
			return false
		}
		t.isFinished = true
	}
	return t.isFinished
}

func (t *Tween) Done() bool {
	return t.isFinished
}

// Group advances several tweens together.
type Group []*Tween

// Advance updates every unfinished tween.
func (g Group) Advance(dt time.Duration) {
	for _, t := range g {
		t.Update(dt)
	}
}

// Done reports whether every tween has finished.
func (g Group) Done() bool {
	for _, t := range g {
		if !t.Done() {
			return false
		}
	}
	return true
}
