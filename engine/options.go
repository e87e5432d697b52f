package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/input"
)

// Option configures a Game at construction
type Option func(*Game)

// WithPlatform sets the window/event collaborator, headless by default
func WithPlatform(p Platform) Option {
	return func(g *Game) { g.platform = p }
}

// WithLogger sets the logger, a no-op logger by default
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithClock sets the frame time source, the monotonic clock by default
func WithClock(tp TimeProvider) Option {
	return func(g *Game) { g.clock = tp }
}

// WithInput sets the keyboard source read by component updates
func WithInput(src input.Source) Option {
	return func(g *Game) { g.input = src }
}

// WithAssets sets the resource lookup used by Resource and MustResource
func WithAssets(a AssetSource) Option {
	return func(g *Game) { g.assets = a }
}
