package assets

import (
	"context"
	"embed"

	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/render"
)

//go:embed data/*.yaml
var builtinFS embed.FS

const meshKind = engine.ResMesh

// Material names shipped with the game
const (
	MaterialDefault    = "default"
	MaterialShinyBlack = "shiny black"
	MaterialDebug      = "debug"
	MaterialRock       = "rock"
	MeshPlayer         = "player"
	ShaderBackground   = "background"
	ShaderFlat         = "flat"
	ShaderDebug        = "debug"
)

// RegisterShaders adds the built-in shaders
func (c *Catalog) RegisterShaders() error {
	for _, s := range []render.Shader{render.BackgroundShader(), render.FlatShader(), render.DebugShader()} {
		if err := c.Register(s.Name(), engine.ResShader, s); err != nil {
			return err
		}
	}
	return nil
}

// Builtin creates a catalog holding the shipped shaders, bundles and asteroid variants
func Builtin(ctx context.Context, log *zap.Logger, seed uint64) (*Catalog, error) {
	c := NewCatalog(log)
	if err := c.RegisterShaders(); err != nil {
		return nil, err
	}
	if err := c.LoadFS(ctx, builtinFS, "data/*.yaml"); err != nil {
		return nil, err
	}
	if err := c.registerAsteroids(seed); err != nil {
		return nil, err
	}
	return c, nil
}
