// Command asteroids runs the Asteroids demo in the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/assets"
	"github.com/lixenwraith/asteroids/audio"
	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/entity"
	"github.com/lixenwraith/asteroids/input"
	"github.com/lixenwraith/asteroids/physics"
	"github.com/lixenwraith/asteroids/render"
	"github.com/lixenwraith/asteroids/system"
	"github.com/lixenwraith/asteroids/terminal"
	"github.com/lixenwraith/asteroids/vmath"
)

var (
	configFlag  = flag.String("config", "", "Path to a YAML config file")
	debugFlag   = flag.Bool("debug", false, "Enable debug logging, material and HUD")
	profileFlag = flag.String("profile", "", "Profile mode: cpu, mem")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "asteroids: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := engine.DefaultConfig()
	if *configFlag != "" {
		loaded, err := engine.LoadConfig(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	switch *profileFlag {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", *profileFlag)
	}

	log, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := assets.Builtin(ctx, log, uint64(cfg.Spawn.Seed))
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	world := newWorld(cfg.World, log)
	keyboard := input.NewKeyboard(cfg.Input.HoldWindow)
	platform := terminal.New(nil, keyboard, log)
	core.OnCrash(platform.Restore)

	game, err := engine.New(cfg,
		engine.WithPlatform(platform),
		engine.WithLogger(log),
		engine.WithInput(keyboard),
		engine.WithAssets(catalog),
	)
	if err != nil {
		_ = platform.Close()
		return err
	}
	defer game.Exit()

	spawner := entity.NewSpawner(world, cfg.Spawn.Interval, cfg.Spawn.MaxAsteroids, uint64(cfg.Spawn.Seed))
	if err := addSubsystems(game, world, platform.Screen(), catalog, spawner, log); err != nil {
		return err
	}

	material := assets.MaterialShinyBlack
	if cfg.Debug {
		material = assets.MaterialDebug
	}
	player, err := entity.NewPlayer(game, world, material)
	if err != nil {
		return err
	}
	if _, err := game.AddEntity(player); err != nil {
		return err
	}
	component.QueueCue(player, audio.CueStart)

	ctx, quit := context.WithCancel(ctx)
	defer quit()

	log.Info("game starting", zap.Int("max_asteroids", cfg.Spawn.MaxAsteroids))
	err = game.Main(ctx, func(f *engine.Frame) {
		if f.Input().KeyIsPressed(input.KeyQ) {
			quit()
			return
		}
		spawner.Frame(f)
	})
	log.Info("game stopped", zap.Int64("frames", game.FrameNumber()), zap.Int("spawned", spawner.Spawned()))
	return err
}

func newWorld(c engine.WorldConfig, log *zap.Logger) *physics.World {
	bounds := vmath.Box(c.Min[0], c.Min[1], c.Min[2], c.Max[0], c.Max[1], c.Max[2])
	opts := []physics.Option{physics.WithLogger(log)}
	if c.Wrap {
		opts = append(opts, physics.WithWrap())
	}
	return physics.NewWorld(bounds, opts...)
}

// addSubsystems registers physics, graphics and audio in update order
func addSubsystems(g *engine.Game, w *physics.World, screen tcell.Screen, catalog *assets.Catalog, spawner *entity.Spawner, log *zap.Logger) error {
	if err := g.AddSubsystem(system.NewPhysicsSubsystem(w)); err != nil {
		return err
	}

	background, err := catalog.Shader(assets.ShaderBackground)
	if err != nil {
		return err
	}
	graphics := system.NewGraphicsSubsystem(render.NewTerminalRenderer(screen), background)
	gd := graphics.Data.(*system.GraphicsData)
	gd.HUD = func(f *engine.Frame) []string {
		lines := []string{
			fmt.Sprintf("asteroids %d/%d", spawner.Live(f.Game), g.Config().Spawn.MaxAsteroids),
			"arrows/wasd steer  q/esc quit",
		}
		if g.Config().Debug {
			lines = append(lines,
				fmt.Sprintf("frame %d  dt %.1fms", f.Number, f.Delta*1000),
				fmt.Sprintf("entities %d  bodies %d  drawn %d", g.EntityCount(), w.Len(), gd.Drawn()),
			)
		}
		return lines
	}
	if err := g.AddSubsystem(graphics); err != nil {
		return err
	}

	var player audio.Player
	if g.Config().Audio.Enabled {
		sm := audio.NewSoundManager(g.Config().Audio.SampleRate, g.Config().Audio.MasterVolume, log)
		if err := sm.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing muted", zap.Error(err))
		} else {
			player = sm
		}
	}
	return g.AddSubsystem(system.NewAudioSubsystem(player))
}
