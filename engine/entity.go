package engine

import (
	"iter"

	"github.com/lixenwraith/asteroids/core"
)

// Entity is a named bag of components with an optional typed payload
type Entity struct {
	Name string

	id         EntityID
	game       *Game
	components *core.Sequence[*Component]
	payload    any
	freed      bool
	removing   bool
}

// NewEntity creates an empty entity not yet owned by a game
func NewEntity(name string) *Entity {
	return &Entity{
		Name:       name,
		components: core.NewSequence[*Component](2),
	}
}

// ID returns the game handle, zero if the entity is not in a game
func (e *Entity) ID() EntityID {
	return e.id
}

// Game returns the owning game, nil if not added
func (e *Entity) Game() *Game {
	return e.game
}

// Attach takes ownership of c and sets its owner back-reference
// Attaching to a game-owned entity registers nothing; use Game.AttachComponent
func (e *Entity) Attach(c *Component) *Component {
	core.Assertf(!e.freed, "attach %q to freed entity %q", c.kind, e.Name)
	core.Assertf(c.entity == nil, "component %q is already attached", c.kind)
	c.entity = e
	e.components.Append(c)
	return c
}

// Component returns the first component of kind
// Duplicate kinds are allowed; later ones are unreachable by kind
func (e *Entity) Component(kind string) (*Component, bool) {
	for _, c := range e.components.All() {
		if c.kind == kind {
			return c, true
		}
	}
	return nil, false
}

// MustComponent returns the component of kind, asserting it exists
func (e *Entity) MustComponent(kind string) *Component {
	c, ok := e.Component(kind)
	core.Assertf(ok, "entity %q has no %q component", e.Name, kind)
	return c
}

// Components iterates components in attach order
func (e *Entity) Components() iter.Seq[*Component] {
	return func(yield func(*Component) bool) {
		for _, c := range e.components.All() {
			if !yield(c) {
				return
			}
		}
	}
}

// Len returns the number of attached components
func (e *Entity) Len() int {
	return e.components.Len()
}

func (e *Entity) Payload() any {
	return e.payload
}

func (e *Entity) SetPayload(p any) {
	e.payload = p
}

// Freed reports whether the entity has been destroyed
func (e *Entity) Freed() bool {
	return e.freed
}

// Free destroys an entity that is not owned by a game
// Game-owned entities are destroyed with Game.RemoveEntity
func (e *Entity) Free() {
	core.Assertf(e.game == nil, "entity %q is owned by a game, remove it from the game", e.Name)
	e.free()
}

// free unregisters components from their subsystems and releases all data
func (e *Entity) free() {
	if e.freed {
		return
	}
	for _, c := range e.components.All() {
		if c.subsystem != nil {
			c.subsystem.RemoveComponent(c)
		}
		c.release()
	}
	if r, ok := e.payload.(Releaser); ok {
		r.Release()
	}
	e.payload = nil
	e.freed = true
}

// PayloadOf returns the entity payload as T, asserting the type
func PayloadOf[T any](e *Entity) T {
	p, ok := e.payload.(T)
	core.Assertf(ok, "entity %q payload is %T, not the requested type", e.Name, e.payload)
	return p
}
