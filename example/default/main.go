package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/voxelarena/skelsim/game"
	"github.com/voxelarena/skelsim/settings"
	"github.com/voxelarena/skelsim/simulation"
	"github.com/voxelarena/skelsim/skeleton"
	"github.com/voxelarena/skelsim/world"
)

var CLI struct {
	Config   string  `help:"Settings file to load, created with the defaults if missing." default:"skelsim.toml" type:"path"`
	Ticks    int     `help:"Amount of steps to simulate." default:"300"`
	Entities int     `help:"Amount of entities to spawn." default:"4"`
	Speed    float32 `help:"Walk speed of every entity." default:"5"`
	Realtime bool    `help:"Sleep between steps to run at the configured tick rate."`
	Debug    bool    `help:"Whether to enable debug logging."`

	Pprof     bool   `help:"Serve a live runtime stats dashboard while simulating." env:"PPROF_ENABLED"`
	PprofAddr string `help:"Address the stats dashboard listens on." default:"localhost:8080"`
}

// The following program walks a few skeletons around a small arena with a staircase and logs their frames.
func main() {
	kong.Parse(&CLI,
		kong.Name("skelsim"),
		kong.Description("a voxel skeleton physics playground"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Pprof {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(CLI.PprofAddr))

		mgr := statsview.New()
		go mgr.Start()
	}

	s, err := settings.LoadOrCreate(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	if lvl, err := logrus.ParseLevel(s.Log.Level); err == nil {
		log.Level = lvl
	} else {
		log.Warnf("unknown log level %q, using info", s.Log.Level)
	}
	if CLI.Debug {
		log.Level = logrus.DebugLevel
	}

	worldLevel := slog.LevelInfo
	if log.Level >= logrus.DebugLevel {
		worldLevel = slog.LevelDebug
	}
	w := world.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: worldLevel})))
	buildArena(w)

	sim := simulation.New(w, simulation.OptionsFromSettings(s), log)
	ids := make([]uint64, 0, CLI.Entities)
	for i := 0; i < CLI.Entities; i++ {
		pos := mgl32.Vec3{float32(i)*2 - 6, 3, -4}
		ids = append(ids, sim.Spawn(pos, skeleton.Orientation{}, 0.6, 1.8))
	}

	dt := 1 / float32(s.Simulation.TickRate)
	interval := time.Second / time.Duration(s.Simulation.TickRate)
	for tick := 0; tick < CLI.Ticks; tick++ {
		for n, id := range ids {
			// Every entity circles at its own rate, so some of them end up on the stairs.
			o := skeleton.Orientation{Yaw: float32(tick) * dt * (0.3 + 0.2*float32(n))}
			_ = sim.Walk(id, o.WalkVector(1, 0, CLI.Speed))
			if tick%90 == 45 {
				_ = sim.Jump(id, 10)
			}
		}
		current := sim.Step(dt)

		if current%int64(s.Simulation.TickRate) == 0 {
			for _, f := range sim.Frames() {
				log.WithFields(logrus.Fields{
					"id":       f.ID,
					"pos":      game.RoundVec32(f.Frame.Position, 2),
					"speed":    game.Round32(game.Vec3HzDist(f.Frame.Velocity), 2),
					"checksum": fmt.Sprintf("%016x", f.Frame.Checksum()),
				}).Infof("tick %d", current)
			}
		}
		if CLI.Realtime {
			time.Sleep(interval)
		}
	}

	stats := sim.Stats()
	log.WithFields(logrus.Fields{
		"samples": stats.Samples,
		"mean":    stats.Mean,
		"median":  stats.Median,
		"stddev":  stats.StdDev,
		"max":     stats.Max,
	}).Info("step timings")
}

// buildArena fills w with a walled floor and a staircase leading up to a platform.
func buildArena(w *world.World) {
	const size = 16
	w.Fill(cube.Pos{-size, 0, -size}, cube.Pos{size, 0, size}, true)
	for _, wall := range [][2]cube.Pos{
		{{-size, 1, -size}, {size, 4, -size}},
		{{-size, 1, size}, {size, 4, size}},
		{{-size, 1, -size}, {-size, 4, size}},
		{{size, 1, -size}, {size, 4, size}},
	} {
		w.Fill(wall[0], wall[1], true)
	}
	for i := 0; i < 3; i++ {
		w.Fill(cube.Pos{2 + i, 1, 2}, cube.Pos{2 + i, 1 + i, 6}, true)
	}
	w.Fill(cube.Pos{5, 1, 2}, cube.Pos{size / 2, 3, 6}, true)
}
