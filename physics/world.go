package physics

import (
	"fmt"
	"iter"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/vmath"
)

// World owns a set of bodies within bounds and advances them each tick
type World struct {
	bounds vmath.AABB
	head   *Body
	count  int
	wrap   bool
	log    *zap.Logger
}

// Option configures a World
type Option func(*World)

// WithWrap makes dynamic bodies leaving the bounds re-enter from the opposite side
func WithWrap() Option {
	return func(w *World) { w.wrap = true }
}

// WithLogger sets the logger used by owners of the world's bodies
func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l.Named("physics")
		}
	}
}

// NewWorld creates an empty world within bounds
func NewWorld(bounds vmath.AABB, opts ...Option) *World {
	w := &World{bounds: bounds, log: zap.NewNop()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Bounds returns the world bounds
func (w *World) Bounds() vmath.AABB { return w.bounds }

// Logger returns the world's logger, a no-op logger unless WithLogger was given
func (w *World) Logger() *zap.Logger { return w.log }

// Len returns the number of bodies in the world
func (w *World) Len() int { return w.count }

// AddBody creates a body and links it into the world
func (w *World) AddBody(typ BodyType, mass float32, pos mgl32.Vec3) (*Body, error) {
	if typ == BodyDynamic && mass <= 0 {
		return nil, &InvalidMassError{Mass: mass}
	}

	b := &Body{
		pos:   pos,
		world: w,
		typ:   typ,
		mass:  mass,
	}
	b.updateAABB()

	b.next = w.head
	if w.head != nil {
		w.head.prev = b
	}
	w.head = b
	w.count++

	return b, nil
}

// RemoveBody unlinks a body; the body is unusable afterwards
func (w *World) RemoveBody(b *Body) error {
	if b == nil || b.world != w {
		return fmt.Errorf("remove body: %w", ErrBodyDetached)
	}

	if b.prev != nil {
		b.prev.next = b.next
	} else {
		w.head = b.next
	}
	if b.next != nil {
		b.next.prev = b.prev
	}

	b.prev, b.next = nil, nil
	b.world = nil
	w.count--
	return nil
}

// Clear removes every body
func (w *World) Clear() {
	for b := w.head; b != nil; {
		next := b.next
		b.prev, b.next, b.world = nil, nil, nil
		b = next
	}
	w.head = nil
	w.count = 0
}

// Integrate advances every dynamic body by dt using explicit Euler and clears force accumulators
// Order across bodies is unspecified; bodies do not interact
func (w *World) Integrate(dt float32) {
	for b := w.head; b != nil; b = b.next {
		w.step(b, dt)
	}
}

// IntegrateBody advances a single body, the per-component counterpart of Integrate
func (w *World) IntegrateBody(b *Body, dt float32) {
	core.Assert(b.world == w, "physics: integrating body of another world")
	w.step(b, dt)
}

// step: v += (F/m)*dt; p += v*dt
func (w *World) step(b *Body, dt float32) {
	if b.typ == BodyDynamic {
		b.acc = b.force.Mul(1 / b.mass)
		b.vel = b.vel.Add(b.acc.Mul(dt))
		b.pos = b.pos.Add(b.vel.Mul(dt))
		if w.wrap {
			b.pos = w.bounds.Wrap(b.pos)
		}
	}
	b.force = mgl32.Vec3{}
	b.updateAABB()
}

// Bodies iterates bodies in list order
// The world must not be mutated during iteration
func (w *World) Bodies() iter.Seq[*Body] {
	return func(yield func(*Body) bool) {
		for b := w.head; b != nil; b = b.next {
			if !yield(b) {
				return
			}
		}
	}
}

// QueryAABB returns bodies whose bounding box overlaps box
func (w *World) QueryAABB(box vmath.AABB) []*Body {
	var hits []*Body
	for b := w.head; b != nil; b = b.next {
		if b.aabb.Overlaps(box) {
			hits = append(hits, b)
		}
	}
	return hits
}

// QueryPoint returns bodies whose bounding box contains p
func (w *World) QueryPoint(p mgl32.Vec3) []*Body {
	var hits []*Body
	for b := w.head; b != nil; b = b.next {
		if b.aabb.Contains(p) {
			hits = append(hits, b)
		}
	}
	return hits
}
