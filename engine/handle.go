package engine

import (
	"fmt"
	"iter"

	"github.com/lixenwraith/asteroids/core"
)

// EntityID is a generation-checked entity handle
// The zero value never refers to a live entity
type EntityID struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether id is the null handle
func (id EntityID) IsZero() bool {
	return id.Generation == 0
}

func (id EntityID) String() string {
	return fmt.Sprintf("%d:%d", id.Index, id.Generation)
}

type entitySlot struct {
	generation uint32
	entity     *Entity
}

// entityArena stores live entities in reusable slots
// Removing bumps the slot generation so old handles go stale
type entityArena struct {
	slots *core.Sequence[entitySlot]
	free  []uint32
	live  int
}

func newEntityArena() entityArena {
	return entityArena{slots: core.NewSequence[entitySlot](64)}
}

func (a *entityArena) insert(e *Entity) EntityID {
	a.live++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		slot := a.slots.At(int(idx))
		slot.entity = e
		return EntityID{Index: idx, Generation: slot.generation}
	}
	idx := uint32(a.slots.Len())
	a.slots.Append(entitySlot{generation: 1, entity: e})
	return EntityID{Index: idx, Generation: 1}
}

func (a *entityArena) get(id EntityID) (*Entity, bool) {
	if id.IsZero() || int(id.Index) >= a.slots.Len() {
		return nil, false
	}
	slot := a.slots.At(int(id.Index))
	if slot.generation != id.Generation || slot.entity == nil {
		return nil, false
	}
	return slot.entity, true
}

func (a *entityArena) remove(id EntityID) {
	slot := a.slots.At(int(id.Index))
	slot.entity = nil
	slot.generation++
	if slot.generation == 0 {
		slot.generation = 1
	}
	a.free = append(a.free, id.Index)
	a.live--
}

func (a *entityArena) all() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, slot := range a.slots.All() {
			if slot.entity == nil {
				continue
			}
			if !yield(slot.entity) {
				return
			}
		}
	}
}
