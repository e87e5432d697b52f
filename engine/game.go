package engine

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/input"
)

// FrameFunc is the per-frame callback run before the subsystems
type FrameFunc func(f *Frame)

// Game owns entities and subsystems and drives the frame loop
// All methods run on the frame thread
type Game struct {
	cfg      Config
	state    State
	session  uuid.UUID
	log      *zap.Logger
	platform Platform
	clock    TimeProvider
	input    input.Source
	assets   AssetSource

	entities   entityArena
	subsystems *core.Sequence[*Subsystem]
	pending    pendingQueue
	frame      Frame
	inFrame    bool
	released   bool
}

// New creates a game and opens its platform with the configured title and size
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		state:      StateUninitialized,
		session:    uuid.New(),
		log:        zap.NewNop(),
		clock:      NewMonotonicTimeProvider(),
		entities:   newEntityArena(),
		subsystems: core.NewSequence[*Subsystem](4),
		pending:    newPendingQueue(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.platform == nil {
		g.platform = NewHeadlessPlatform(0)
	}
	if g.input == nil {
		g.input = input.NewKeyboard(cfg.Input.HoldWindow)
	}
	g.log = g.log.With(zap.String("session", g.session.String()))
	g.frame.Game = g

	if err := g.platform.Open(cfg.Title, cfg.Width, cfg.Height); err != nil {
		return nil, fmt.Errorf("open platform: %w", err)
	}
	g.state = StateInitialized

	g.log.Info("game initialized",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))
	return g, nil
}

func (g *Game) Config() Config {
	return g.cfg
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) SessionID() uuid.UUID {
	return g.session
}

func (g *Game) Logger() *zap.Logger {
	return g.log
}

func (g *Game) Clock() TimeProvider {
	return g.clock
}

// Input returns the keyboard snapshot source
func (g *Game) Input() input.Source {
	return g.input
}

// FrameNumber returns the number of the last started frame
func (g *Game) FrameNumber() int64 {
	return g.frame.Number
}

// AddSubsystem appends s to the update order and claims components of already added entities
func (g *Game) AddSubsystem(s *Subsystem) error {
	switch g.state {
	case StateRunning:
		return fmt.Errorf("add subsystem %q: %w", s.name, ErrSubsystemsLocked)
	case StateTerminated:
		return fmt.Errorf("add subsystem %q: %w (state %s)", s.name, ErrInvalidState, g.state)
	}
	if _, ok := g.Subsystem(s.name); ok {
		return fmt.Errorf("add subsystem %q: %w", s.name, ErrDuplicateSubsystem)
	}
	core.Assertf(s.game == nil, "subsystem %q already belongs to a game", s.name)
	s.game = g
	g.subsystems.Append(s)

	// Entities added before their subsystem are registered now, in slot order
	adopted := 0
	for e := range g.entities.all() {
		for c := range e.Components() {
			if c.subsystem == nil && c.kind == s.name {
				s.AddComponent(c)
				adopted++
			}
		}
	}
	g.log.Debug("subsystem registered",
		zap.String("name", s.name),
		zap.Int("order", g.subsystems.Len()-1),
		zap.Int("adopted", adopted))
	return nil
}

// Subsystem finds a subsystem by name
func (g *Game) Subsystem(name string) (*Subsystem, bool) {
	for _, s := range g.subsystems.All() {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

// Subsystems iterates subsystems in update order
func (g *Game) Subsystems() iter.Seq[*Subsystem] {
	return func(yield func(*Subsystem) bool) {
		for _, s := range g.subsystems.All() {
			if !yield(s) {
				return
			}
		}
	}
}

// AddEntity takes ownership of e and registers each component with the subsystem named by its kind
// During a frame the handle is valid at once but registration waits for the next drain
func (g *Game) AddEntity(e *Entity) (EntityID, error) {
	if g.state == StateTerminated || g.state == StateUninitialized {
		return EntityID{}, fmt.Errorf("add entity %q: %w (state %s)", e.Name, ErrInvalidState, g.state)
	}
	core.Assertf(!e.freed, "add freed entity %q", e.Name)
	core.Assertf(e.game == nil, "entity %q already belongs to a game", e.Name)

	e.game = g
	e.id = g.entities.insert(e)
	if g.inFrame {
		g.pending.push(pendingCommand{op: opRegisterEntity, entity: e})
	} else {
		g.registerEntity(e)
	}
	return e.id, nil
}

// AttachComponent attaches c to a live entity and registers it like AddEntity does
func (g *Game) AttachComponent(id EntityID, c *Component) error {
	e, err := g.Entity(id)
	if err != nil {
		return fmt.Errorf("attach %q: %w", c.kind, err)
	}
	e.Attach(c)
	if g.inFrame {
		g.pending.push(pendingCommand{op: opRegisterComponent, entity: e, component: c})
	} else {
		g.registerComponent(c)
	}
	return nil
}

// RemoveEntity destroys the entity behind id
// During a frame destruction waits for the next drain; the handle stays valid until then
func (g *Game) RemoveEntity(id EntityID) error {
	e, ok := g.entities.get(id)
	if !ok {
		return fmt.Errorf("remove entity %s: %w", id, ErrStaleHandle)
	}
	if !g.inFrame {
		g.destroyEntity(e)
		return nil
	}
	if !e.removing {
		e.removing = true
		g.pending.push(pendingCommand{op: opRemoveEntity, entity: e})
	}
	return nil
}

// Entity resolves a handle
func (g *Game) Entity(id EntityID) (*Entity, error) {
	e, ok := g.entities.get(id)
	if !ok {
		return nil, fmt.Errorf("entity %s: %w", id, ErrStaleHandle)
	}
	return e, nil
}

// EntityCount returns the number of live entities
func (g *Game) EntityCount() int {
	return g.entities.live
}

// Entities iterates live entities in slot order
func (g *Game) Entities() iter.Seq[*Entity] {
	return g.entities.all()
}

// Resource looks up a named resource through the asset source
func (g *Game) Resource(name string, kind ResourceKind) (any, error) {
	if g.assets == nil {
		return nil, fmt.Errorf("resource %s %q: %w", kind, name, ErrNoAssets)
	}
	return g.assets.Resource(name, kind)
}

// MustResource looks up a resource that must exist; a miss is fatal
func (g *Game) MustResource(name string, kind ResourceKind) any {
	r, err := g.Resource(name, kind)
	if err != nil {
		core.Fatal(err, "required %s %q", kind, name)
	}
	return r
}

// Main runs frames until the platform closes or ctx is done
// Each frame: pace, poll events, compute dt, frame func, drain, subsystems in order, drain
// Pacing waits out the rest of the frame budget measured from the previous frame start,
// before input is sampled, so updates always see fresh input
func (g *Game) Main(ctx context.Context, fn FrameFunc) error {
	if g.state != StateInitialized {
		return fmt.Errorf("main loop: %w (state %s)", ErrInvalidState, g.state)
	}
	g.state = StateRunning
	g.log.Info("main loop started",
		zap.Int("subsystems", g.subsystems.Len()),
		zap.Int("entities", g.entities.live))

	budget := g.frameBudget()
	last := g.clock.Now()
	for g.platform.IsOpen() {
		if ctx.Err() != nil {
			g.log.Info("main loop cancelled", zap.Error(context.Cause(ctx)))
			break
		}
		now := g.clock.Now()
		if rem := budget - now.Sub(last); budget > 0 && g.frame.Number > 0 && rem > 0 {
			if !waitFor(ctx, rem) {
				continue
			}
			now = g.clock.Now()
		}
		g.platform.PollEvents(now)
		dt := float32(now.Sub(last).Seconds())
		last = now
		g.runFrame(fn, dt, now)
	}

	g.state = StateTerminated
	g.log.Info("main loop stopped", zap.Int64("frames", g.frame.Number))
	return nil
}

// frameBudget is the minimum frame duration, 0 when uncapped
func (g *Game) frameBudget() time.Duration {
	if g.cfg.FrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(g.cfg.FrameRate)
}

// waitFor blocks for d or until ctx is done, reporting whether the full wait elapsed
func waitFor(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Tick runs one frame with the given dt and no frame func
func (g *Game) Tick(dt float32) error {
	if g.state == StateTerminated {
		return fmt.Errorf("tick: %w (state %s)", ErrInvalidState, g.state)
	}
	core.Assert(!g.inFrame, "tick called inside a frame")
	g.runFrame(nil, dt, g.clock.Now())
	return nil
}

func (g *Game) runFrame(fn FrameFunc, dt float32, now time.Time) {
	g.frame.Number++
	g.frame.Delta = dt
	g.frame.Time = now
	g.inFrame = true
	defer func() { g.inFrame = false }()

	if fn != nil {
		fn(&g.frame)
	}
	g.drain()
	for i := 0; i < g.subsystems.Len(); i++ {
		g.subsystems.Get(i).Update(&g.frame)
	}
	g.drain()
}

func (g *Game) drain() {
	if g.pending.len() == 0 {
		return
	}
	g.pending.drain(func(cmd pendingCommand) {
		switch cmd.op {
		case opRegisterEntity:
			if !cmd.entity.freed {
				g.registerEntity(cmd.entity)
			}
		case opRegisterComponent:
			if !cmd.entity.freed {
				g.registerComponent(cmd.component)
			}
		case opRemoveEntity:
			g.destroyEntity(cmd.entity)
		}
	})
}

func (g *Game) registerEntity(e *Entity) {
	for c := range e.Components() {
		g.registerComponent(c)
	}
}

func (g *Game) registerComponent(c *Component) {
	if c.subsystem != nil {
		return
	}
	s, ok := g.Subsystem(c.kind)
	if !ok {
		g.log.Debug("no subsystem for component kind", zap.String("kind", c.kind), zap.String("entity", c.entity.Name))
		return
	}
	s.AddComponent(c)
}

func (g *Game) destroyEntity(e *Entity) {
	if e.freed {
		return
	}
	g.entities.remove(e.id)
	e.game = nil
	e.free()
}

// Exit frees all entities, releases subsystems in reverse order and closes the platform
// Safe to call more than once
func (g *Game) Exit() {
	if g.released {
		return
	}
	core.Assert(!g.inFrame, "exit called inside a frame, close the platform instead")
	g.released = true
	g.state = StateTerminated
	g.pending.clear()

	var live []*Entity
	for e := range g.entities.all() {
		live = append(live, e)
	}
	for _, e := range live {
		g.destroyEntity(e)
	}
	for i := g.subsystems.Len() - 1; i >= 0; i-- {
		g.subsystems.Get(i).Release()
	}
	g.subsystems.Clear()

	if err := g.platform.Close(); err != nil {
		g.log.Warn("platform close failed", zap.Error(err))
	}
	g.log.Info("game exited", zap.Int("entities_freed", len(live)))
}
