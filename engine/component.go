package engine

import (
	"fmt"

	"github.com/lixenwraith/asteroids/core"
)

// ComponentData is the typed payload of a component
// Kind names the data type and matches the subsystem that updates it
type ComponentData interface {
	Kind() string
}

// UpdateFunc is a per-frame component behavior
type UpdateFunc func(c *Component, f *Frame)

// Component is one typed unit of entity data plus optional behavior
type Component struct {
	// Update runs once per frame inside the owning subsystem's update, nil skips
	Update UpdateFunc

	kind      string
	data      ComponentData
	entity    *Entity
	subsystem *Subsystem
}

// NewComponent wraps data; kind is resolved once from the data type
func NewComponent(data ComponentData, update UpdateFunc) *Component {
	core.Assert(data != nil, "component data must not be nil")
	kind := data.Kind()
	core.Assert(kind != "", "component kind must not be empty")
	return &Component{
		Update: update,
		kind:   kind,
		data:   data,
	}
}

// Kind returns the component kind tag
func (c *Component) Kind() string {
	return c.kind
}

// Data returns the typed component data
func (c *Component) Data() ComponentData {
	return c.data
}

// Entity returns the owning entity
// Panics if the component was never attached or the owner has been freed
func (c *Component) Entity() *Entity {
	core.Assertf(c.entity != nil, "component %q is not attached to an entity", c.kind)
	if c.entity.freed {
		panic(fmt.Errorf("component %q owner %q: %w", c.kind, c.entity.Name, ErrStaleHandle))
	}
	return c.entity
}

// Subsystem returns the subsystem the component is registered with, nil if none
func (c *Component) Subsystem() *Subsystem {
	return c.subsystem
}

// Sibling finds another component of the same entity by kind
func (c *Component) Sibling(kind string) (*Component, bool) {
	return c.Entity().Component(kind)
}

// release hands the data its Release call and drops the reference
func (c *Component) release() {
	if r, ok := c.data.(Releaser); ok {
		r.Release()
	}
}

// DataOf returns the component data as T, asserting the type
func DataOf[T ComponentData](c *Component) T {
	d, ok := c.data.(T)
	core.Assertf(ok, "component %q data is %T, not the requested type", c.kind, c.data)
	return d
}
