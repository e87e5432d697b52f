// Package assets resolves named meshes, materials and shaders for the game
package assets

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/render"
)

var (
	// ErrNotFound is returned when no resource of any kind has the name
	ErrNotFound = errors.New("assets: resource not found")
	// ErrKindMismatch is returned when the name exists under a different kind
	ErrKindMismatch = errors.New("assets: resource kind mismatch")
	// ErrDuplicate is returned when registering a name twice for the same kind
	ErrDuplicate = errors.New("assets: duplicate resource")
)

// Loader produces a resource on first lookup
type Loader func() (any, error)

type entry struct {
	name  string
	kind  engine.ResourceKind
	value any
}

// Catalog is a named resource table keyed by kind and name
// Safe for concurrent use; lazy loaders run once per key
type Catalog struct {
	mu      sync.RWMutex
	entries map[uint64]entry
	loaders map[uint64]Loader
	group   singleflight.Group
	log     *zap.Logger
}

// NewCatalog creates an empty catalog
func NewCatalog(log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{
		entries: make(map[uint64]entry),
		loaders: make(map[uint64]Loader),
		log:     log,
	}
}

func key(kind engine.ResourceKind, name string) uint64 {
	return xxhash.Sum64String(kind.String() + "/" + name)
}

// Register adds a loaded resource
func (c *Catalog) Register(name string, kind engine.ResourceKind, v any) error {
	k := key(kind, name)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[k]; ok {
		return fmt.Errorf("register %s %q: %w", kind, name, ErrDuplicate)
	}
	if _, ok := c.loaders[k]; ok {
		return fmt.Errorf("register %s %q: %w", kind, name, ErrDuplicate)
	}
	c.entries[k] = entry{name: name, kind: kind, value: v}
	return nil
}

// RegisterLoader adds a resource produced on first lookup
func (c *Catalog) RegisterLoader(name string, kind engine.ResourceKind, fn Loader) error {
	k := key(kind, name)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[k]; ok {
		return fmt.Errorf("register loader %s %q: %w", kind, name, ErrDuplicate)
	}
	if _, ok := c.loaders[k]; ok {
		return fmt.Errorf("register loader %s %q: %w", kind, name, ErrDuplicate)
	}
	c.loaders[k] = fn
	return nil
}

// Resource implements engine.AssetSource
func (c *Catalog) Resource(name string, kind engine.ResourceKind) (any, error) {
	k := key(kind, name)
	c.mu.RLock()
	e, ok := c.entries[k]
	loader, lazy := c.loaders[k]
	c.mu.RUnlock()
	if ok {
		return e.value, nil
	}
	if lazy {
		return c.load(k, name, kind, loader)
	}

	for other := engine.ResMesh; other <= engine.ResTexture; other++ {
		if other == kind {
			continue
		}
		ok := c.has(key(other, name))
		if ok {
			return nil, fmt.Errorf("%s %q is a %s: %w", kind, name, other, ErrKindMismatch)
		}
	}
	return nil, fmt.Errorf("%s %q: %w", kind, name, ErrNotFound)
}

func (c *Catalog) has(k uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[k]
	_, lazy := c.loaders[k]
	return ok || lazy
}

func (c *Catalog) load(k uint64, name string, kind engine.ResourceKind, loader Loader) (any, error) {
	v, err, shared := c.group.Do(fmt.Sprintf("%x", k), func() (any, error) {
		c.mu.RLock()
		e, ok := c.entries[k]
		c.mu.RUnlock()
		if ok {
			return e.value, nil
		}

		v, err := loader()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[k] = entry{name: name, kind: kind, value: v}
		delete(c.loaders, k)
		c.mu.Unlock()
		c.log.Debug("resource loaded", zap.String("kind", kind.String()), zap.String("name", name))
		return v, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load %s %q: %w", kind, name, err)
	}
	if shared {
		c.log.Debug("resource load shared", zap.String("name", name))
	}
	return v, nil
}

// Len returns the number of registered resources, loaded or lazy
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries) + len(c.loaders)
}

// Mesh looks up a mesh by name
func (c *Catalog) Mesh(name string) (*render.Mesh, error) {
	return typed[*render.Mesh](c, name, engine.ResMesh)
}

// Material looks up a material by name
func (c *Catalog) Material(name string) (*render.Material, error) {
	return typed[*render.Material](c, name, engine.ResMaterial)
}

// Shader looks up a shader by name
func (c *Catalog) Shader(name string) (render.Shader, error) {
	return typed[render.Shader](c, name, engine.ResShader)
}

func typed[T any](c *Catalog, name string, kind engine.ResourceKind) (T, error) {
	var zero T
	v, err := c.Resource(name, kind)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%s %q holds %T: %w", kind, name, v, ErrKindMismatch)
	}
	return t, nil
}
