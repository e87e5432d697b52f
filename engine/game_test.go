package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/asteroids/core"
)

func TestNewGameInitialized(t *testing.T) {
	g, p := newTestGame(t, 0)
	assert.Equal(t, StateInitialized, g.State())
	assert.Equal(t, "Asteroids", p.Title)
	assert.True(t, p.IsOpen())
	assert.NotEqual(t, [16]byte{}, [16]byte(g.SessionID()))
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestSubsystemsRunInRegistrationOrder(t *testing.T) {
	g, _ := newTestGame(t, 0)
	var log []string

	a := NewSubsystem("a")
	b := NewSubsystem("b")
	require.NoError(t, g.AddSubsystem(a))
	require.NoError(t, g.AddSubsystem(b))

	// entity lists b's component first; update order still follows subsystem order
	e := NewEntity("e")
	e.Attach(NewComponent(&stubData{kind: "b"}, recorder(&log, "B")))
	e.Attach(NewComponent(&stubData{kind: "a"}, recorder(&log, "A")))
	_, err := g.AddEntity(e)
	require.NoError(t, err)

	require.NoError(t, g.Tick(0.016))
	assert.Equal(t, []string{"A", "B"}, log)
}

func TestHooksWrapComponentUpdates(t *testing.T) {
	g, _ := newTestGame(t, 0)
	var log []string

	s := NewSubsystem("x")
	s.BeforeUpdate = func(*Subsystem, *Frame) { log = append(log, "before") }
	s.AfterUpdate = func(*Subsystem, *Frame) { log = append(log, "after") }
	require.NoError(t, g.AddSubsystem(s))

	for _, label := range []string{"c1", "c2", "c3"} {
		e := NewEntity(label)
		e.Attach(NewComponent(&stubData{kind: "x"}, recorder(&log, label)))
		_, err := g.AddEntity(e)
		require.NoError(t, err)
	}

	require.NoError(t, g.Tick(0.016))
	assert.Equal(t, []string{"before", "c1", "c2", "c3", "after"}, log)
}

func TestUnclaimedKindIsNeverUpdated(t *testing.T) {
	g, _ := newTestGame(t, 0)
	var log []string

	e := NewEntity("e")
	c := e.Attach(NewComponent(&stubData{kind: "orphan"}, recorder(&log, "orphan")))
	_, err := g.AddEntity(e)
	require.NoError(t, err)

	require.NoError(t, g.Tick(0.016))
	assert.Empty(t, log)
	assert.Nil(t, c.Subsystem())
}

func TestSubsystemAddedAfterEntityClaimsComponents(t *testing.T) {
	g, _ := newTestGame(t, 0)
	var log []string

	first := NewEntity("first")
	c1 := first.Attach(NewComponent(&stubData{kind: "x"}, recorder(&log, "first")))
	first.Attach(NewComponent(&stubData{kind: "y"}, recorder(&log, "other")))
	_, err := g.AddEntity(first)
	require.NoError(t, err)

	second := NewEntity("second")
	c2 := second.Attach(NewComponent(&stubData{kind: "x"}, recorder(&log, "second")))
	_, err = g.AddEntity(second)
	require.NoError(t, err)

	s := NewSubsystem("x")
	require.NoError(t, g.AddSubsystem(s))

	assert.Equal(t, 2, s.Len())
	assert.Same(t, s, c1.Subsystem())
	assert.Same(t, s, c2.Subsystem())

	require.NoError(t, g.Tick(0.016))
	assert.Equal(t, []string{"first", "second"}, log)

	// Adding the entity after the subsystem does not register twice
	third := NewEntity("third")
	third.Attach(NewComponent(&stubData{kind: "x"}, nil))
	_, err = g.AddEntity(third)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
}

func TestDuplicateSubsystem(t *testing.T) {
	g, _ := newTestGame(t, 0)
	require.NoError(t, g.AddSubsystem(NewSubsystem("x")))
	err := g.AddSubsystem(NewSubsystem("x"))
	assert.ErrorIs(t, err, ErrDuplicateSubsystem)
}

func TestRemoveEntityStaleHandle(t *testing.T) {
	g, _ := newTestGame(t, 0)
	s := NewSubsystem("x")
	require.NoError(t, g.AddSubsystem(s))

	var released int
	e := NewEntity("e")
	e.Attach(NewComponent(&stubData{kind: "x", released: &released}, nil))
	id, err := g.AddEntity(e)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, g.EntityCount())

	require.NoError(t, g.RemoveEntity(id))
	assert.Equal(t, 0, s.Len(), "removal unregisters components")
	assert.Equal(t, 1, released)
	assert.Equal(t, 0, g.EntityCount())

	_, err = g.Entity(id)
	assert.ErrorIs(t, err, ErrStaleHandle)
	assert.ErrorIs(t, g.RemoveEntity(id), ErrStaleHandle)

	// the slot is reused with a new generation
	id2, err := g.AddEntity(NewEntity("f"))
	require.NoError(t, err)
	assert.Equal(t, id.Index, id2.Index)
	assert.NotEqual(t, id.Generation, id2.Generation)
	_, err = g.Entity(id)
	assert.ErrorIs(t, err, ErrStaleHandle)
}

func TestZeroHandleIsStale(t *testing.T) {
	g, _ := newTestGame(t, 0)
	_, err := g.Entity(EntityID{})
	assert.ErrorIs(t, err, ErrStaleHandle)
}

func TestSpawnDuringUpdateIsQueued(t *testing.T) {
	g, _ := newTestGame(t, 0)
	var log []string

	s := NewSubsystem("x")
	require.NoError(t, g.AddSubsystem(s))

	spawned := false
	e := NewEntity("spawner")
	e.Attach(NewComponent(&stubData{kind: "x"}, func(c *Component, f *Frame) {
		log = append(log, "spawner")
		if spawned {
			return
		}
		spawned = true
		child := NewEntity("child")
		child.Attach(NewComponent(&stubData{kind: "x"}, recorder(&log, "child")))
		id, err := f.Game.AddEntity(child)
		require.NoError(t, err)
		// the handle resolves at once; registration waits for the drain
		_, err = f.Game.Entity(id)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())
	}))
	_, err := g.AddEntity(e)
	require.NoError(t, err)

	require.NoError(t, g.Tick(0.016))
	assert.Equal(t, []string{"spawner"}, log)
	assert.Equal(t, 2, s.Len(), "queued entity registered at the frame boundary")

	require.NoError(t, g.Tick(0.016))
	assert.Equal(t, []string{"spawner", "spawner", "child"}, log)
}

func TestFrameFuncSpawnsUpdateSameFrame(t *testing.T) {
	g, _ := newTestGame(t, 3)
	var log []string
	require.NoError(t, g.AddSubsystem(NewSubsystem("x")))

	err := g.Main(context.Background(), func(f *Frame) {
		if f.Number != 1 {
			return
		}
		e := NewEntity("spawned")
		e.Attach(NewComponent(&stubData{kind: "x"}, recorder(&log, "spawned")))
		_, err := f.Game.AddEntity(e)
		require.NoError(t, err)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"spawned", "spawned", "spawned"}, log)
}

func TestRemoveDuringUpdateIsQueued(t *testing.T) {
	g, _ := newTestGame(t, 0)
	var log []string

	s := NewSubsystem("x")
	require.NoError(t, g.AddSubsystem(s))

	var victim EntityID
	killer := NewEntity("killer")
	killer.Attach(NewComponent(&stubData{kind: "x"}, func(c *Component, f *Frame) {
		log = append(log, "killer")
		require.NoError(t, f.Game.RemoveEntity(victim))
		require.NoError(t, f.Game.RemoveEntity(victim), "repeat removal in the same frame is absorbed")
	}))
	v := NewEntity("victim")
	v.Attach(NewComponent(&stubData{kind: "x"}, recorder(&log, "victim")))

	_, err := g.AddEntity(killer)
	require.NoError(t, err)
	victim, err = g.AddEntity(v)
	require.NoError(t, err)

	require.NoError(t, g.Tick(0.016))
	// victim still updates in the frame its removal was requested
	assert.Equal(t, []string{"killer", "victim"}, log)
	assert.Equal(t, 1, s.Len())
	assert.True(t, v.Freed())
}

func TestAttachComponentToLiveEntity(t *testing.T) {
	g, _ := newTestGame(t, 0)
	s := NewSubsystem("x")
	require.NoError(t, g.AddSubsystem(s))

	id, err := g.AddEntity(NewEntity("e"))
	require.NoError(t, err)
	c := NewComponent(&stubData{kind: "x"}, nil)
	require.NoError(t, g.AttachComponent(id, c))
	assert.Same(t, s, c.Subsystem())

	require.NoError(t, g.RemoveEntity(id))
	assert.ErrorIs(t, g.AttachComponent(id, NewComponent(&stubData{kind: "x"}, nil)), ErrStaleHandle)
}

func TestMainRunsUntilPlatformCloses(t *testing.T) {
	g, p := newTestGame(t, 5)
	var frames []int64
	var deltas []float32

	s := NewSubsystem("x")
	require.NoError(t, g.AddSubsystem(s))

	require.NoError(t, g.Main(context.Background(), func(f *Frame) {
		frames = append(frames, f.Number)
		deltas = append(deltas, f.Delta)
	}))

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, frames)
	assert.Equal(t, 5, p.Polled())
	assert.Equal(t, StateTerminated, g.State())
	for _, dt := range deltas {
		assert.InDelta(t, 0.016, dt, 1e-6)
	}

	// subsystems are locked once the loop has run
	err := g.AddSubsystem(NewSubsystem("late"))
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.ErrorIs(t, g.Main(context.Background(), nil), ErrInvalidState)
}

func TestSubsystemsLockedWhileRunning(t *testing.T) {
	g, p := newTestGame(t, 0)
	var addErr error
	require.NoError(t, g.Main(context.Background(), func(f *Frame) {
		addErr = f.Game.AddSubsystem(NewSubsystem("late"))
		require.NoError(t, p.Close())
	}))
	assert.ErrorIs(t, addErr, ErrSubsystemsLocked)
}

func TestMainPacesBeforeSamplingInput(t *testing.T) {
	p := NewHeadlessPlatform(4)
	cfg := DefaultConfig()
	cfg.FrameRate = 50
	// Each frame consumes 10ms of the 20ms budget, pacing makes up the rest
	g, err := New(cfg,
		WithPlatform(p),
		WithClock(NewSteppingTimeProvider(testEpoch, 10*time.Millisecond)))
	require.NoError(t, err)
	t.Cleanup(g.Exit)

	var deltas []float32
	polledAtFrame := make([]int, 0, 4)
	require.NoError(t, g.Main(context.Background(), func(f *Frame) {
		deltas = append(deltas, f.Delta)
		polledAtFrame = append(polledAtFrame, p.Polled())
	}))

	require.Len(t, deltas, 4)
	assert.InDelta(t, 0.010, deltas[0], 1e-6, "first frame is not paced")
	for _, dt := range deltas[1:] {
		assert.InDelta(t, 0.020, dt, 1e-6)
	}
	// Input is polled in the same frame, after the wait
	assert.Equal(t, []int{1, 2, 3, 4}, polledAtFrame)
}

func TestMainCancelDuringPacing(t *testing.T) {
	p := NewHeadlessPlatform(0)
	cfg := DefaultConfig()
	cfg.FrameRate = 1
	g, err := New(cfg, WithPlatform(p), WithClock(NewMockTimeProvider(testEpoch)))
	require.NoError(t, err)
	t.Cleanup(g.Exit)

	ctx, cancel := context.WithCancel(context.Background())
	start := time.Now()
	require.NoError(t, g.Main(ctx, func(f *Frame) {
		time.AfterFunc(50*time.Millisecond, cancel)
	}))
	assert.Less(t, time.Since(start), 500*time.Millisecond, "cancel interrupts the frame wait")
	assert.Equal(t, int64(1), g.FrameNumber())
}

func TestMainStopsOnContextCancel(t *testing.T) {
	g, _ := newTestGame(t, 0)
	ctx, cancel := context.WithCancel(context.Background())

	var n int
	require.NoError(t, g.Main(ctx, func(f *Frame) {
		n++
		if n == 3 {
			cancel()
		}
	}))
	assert.Equal(t, 3, n)
	assert.Equal(t, StateTerminated, g.State())
}

func TestExitReleasesEverythingOnce(t *testing.T) {
	p := NewHeadlessPlatform(0)
	g, err := New(DefaultConfig(), WithPlatform(p))
	require.NoError(t, err)

	var released int
	s := NewSubsystem("x")
	s.Data = &stubData{kind: "subsystem", released: &released}
	require.NoError(t, g.AddSubsystem(s))
	for range 3 {
		e := NewEntity("e")
		e.Attach(NewComponent(&stubData{kind: "x", released: &released}, nil))
		_, err := g.AddEntity(e)
		require.NoError(t, err)
	}

	g.Exit()
	assert.Equal(t, 4, released)
	assert.Equal(t, 0, g.EntityCount())
	assert.False(t, p.IsOpen())
	assert.Equal(t, StateTerminated, g.State())

	g.Exit()
	assert.Equal(t, 4, released, "exit is idempotent")

	_, err = g.AddEntity(NewEntity("late"))
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.ErrorIs(t, g.Tick(0.016), ErrInvalidState)
}

type fakeAssets map[string]any

func (a fakeAssets) Resource(name string, kind ResourceKind) (any, error) {
	r, ok := a[kind.String()+"/"+name]
	if !ok {
		return nil, errors.New("not found")
	}
	return r, nil
}

func TestResourceLookup(t *testing.T) {
	g, err := New(DefaultConfig(), WithAssets(fakeAssets{"mesh/player": 42}))
	require.NoError(t, err)
	defer g.Exit()

	r, err := g.Resource("player", ResMesh)
	require.NoError(t, err)
	assert.Equal(t, 42, r)
	assert.Equal(t, 42, g.MustResource("player", ResMesh))

	defer func() {
		r := recover()
		var fatal *core.FatalError
		require.ErrorAs(t, r.(error), &fatal)
		assert.Equal(t, `required material "missing"`, fatal.Msg)
	}()
	g.MustResource("missing", ResMaterial)
}

func TestResourceWithoutAssets(t *testing.T) {
	g, _ := newTestGame(t, 0)
	_, err := g.Resource("player", ResMesh)
	assert.ErrorIs(t, err, ErrNoAssets)
}

func TestElapsedSecondsSince(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	clock.Advance(1500 * time.Millisecond)
	assert.InDelta(t, 1.5, ElapsedSecondsSince(clock, testEpoch), 1e-6)
}

func TestSteppingTimeProvider(t *testing.T) {
	clock := NewSteppingTimeProvider(testEpoch, time.Second)
	assert.Equal(t, testEpoch, clock.Now())
	assert.Equal(t, testEpoch.Add(time.Second), clock.Now())
	clock.SetTime(testEpoch)
	assert.Equal(t, testEpoch, clock.Now())
}

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()
	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()
	assert.GreaterOrEqual(t, t2.Sub(t1), 10*time.Millisecond)
}
