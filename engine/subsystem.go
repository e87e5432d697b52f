package engine

import (
	"iter"

	"github.com/lixenwraith/asteroids/core"
)

// HookFunc runs once per frame before or after a subsystem's component updates
type HookFunc func(s *Subsystem, f *Frame)

// Subsystem updates the components registered with it, in registration order
// The component list is non-owning; entities own their components
type Subsystem struct {
	BeforeUpdate HookFunc
	AfterUpdate  HookFunc
	// Data is subsystem-private state; released on game exit if it implements Releaser
	Data any

	name       string
	components *core.Sequence[*Component]
	game       *Game
	updating   bool
}

// NewSubsystem creates an empty subsystem; name must match the component kind it claims
func NewSubsystem(name string) *Subsystem {
	core.Assert(name != "", "subsystem name must not be empty")
	return &Subsystem{
		name:       name,
		components: core.NewSequence[*Component](16),
	}
}

func (s *Subsystem) Name() string {
	return s.name
}

// Game returns the game the subsystem is registered with
func (s *Subsystem) Game() *Game {
	return s.game
}

// Len returns the number of registered components
func (s *Subsystem) Len() int {
	return s.components.Len()
}

// Components iterates registered components in registration order
func (s *Subsystem) Components() iter.Seq[*Component] {
	return func(yield func(*Component) bool) {
		for _, c := range s.components.All() {
			if !yield(c) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the component list for reordering without touching update order
func (s *Subsystem) Snapshot() []*Component {
	return s.components.Slice()
}

// AddComponent appends c to the update list
func (s *Subsystem) AddComponent(c *Component) {
	core.Assertf(!s.updating, "subsystem %q: add component during update", s.name)
	core.Assertf(c.subsystem == nil, "component %q is already registered with subsystem %q", c.kind, subsystemName(c.subsystem))
	c.subsystem = s
	s.components.Append(c)
}

// RemoveComponent drops c from the update list, reporting whether it was present
func (s *Subsystem) RemoveComponent(c *Component) bool {
	core.Assertf(!s.updating, "subsystem %q: remove component during update", s.name)
	idx := s.components.IndexFunc(func(x *Component) bool { return x == c })
	if idx < 0 {
		return false
	}
	s.components.Delete(idx)
	c.subsystem = nil
	return true
}

// Update runs the before hook, every component update, then the after hook
// Panics propagate; there is no per-component recovery
func (s *Subsystem) Update(f *Frame) {
	s.updating = true
	defer func() { s.updating = false }()

	if s.BeforeUpdate != nil {
		s.BeforeUpdate(s, f)
	}
	for i := 0; i < s.components.Len(); i++ {
		c := s.components.Get(i)
		if c.Update != nil {
			c.Update(c, f)
		}
	}
	if s.AfterUpdate != nil {
		s.AfterUpdate(s, f)
	}
}

// Release detaches remaining components and releases subsystem data
func (s *Subsystem) Release() {
	for _, c := range s.components.All() {
		c.subsystem = nil
	}
	s.components.Clear()
	if r, ok := s.Data.(Releaser); ok {
		r.Release()
	}
	s.Data = nil
	s.game = nil
}

func subsystemName(s *Subsystem) string {
	if s == nil {
		return ""
	}
	return s.name
}
