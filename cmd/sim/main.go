package main

import (
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"squad-sim/internal/domain"
	"squad-sim/internal/engine"
	"squad-sim/internal/version"
	"squad-sim/pkg/dungeon"
	"squad-sim/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	cfg := engine.NewConfig()

	var (
		seed      int64
		frames    int
		frameUs   int64
		turnEvery int
		roster    string
		dump      bool
	)
	// -seed 0 значит: взять SIM_SEED или сгенерировать случайно.
	flag.Int64Var(&seed, "seed", 0, "World seed (0 = SIM_SEED or random)")
	flag.IntVar(&frames, "frames", 600, "Number of frames to simulate")
	flag.Int64Var(&frameUs, "frame-us", 16_667, "Frame duration in microseconds")
	flag.IntVar(&cfg.Level.Width, "width", cfg.Level.Width, "Level width in tiles")
	flag.IntVar(&cfg.Level.Height, "height", cfg.Level.Height, "Level height in tiles")
	flag.IntVar(&cfg.Level.RoomCountTarget, "rooms", cfg.Level.RoomCountTarget, "Target room count")
	flag.IntVar(&cfg.Squads, "squads", cfg.Squads, "Number of NPC squads")
	flag.IntVar(&cfg.SquadSize, "squad-size", cfg.SquadSize, "Agents per squad")
	flag.StringVar(&roster, "roster", "", "Squad roster, e.g. scout,rifleman,heavy (empty = default)")
	flag.IntVar(&turnEvery, "turn-every", 90, "Scripted player turns right every N frames (0 = never)")
	flag.BoolVar(&cfg.DebugOverlays, "debug-overlays", false, "Compute steering overlays for NPCs")
	flag.BoolVar(&dump, "dump", false, "Print the final world snapshot as JSON to stdout")
	flag.Parse()

	if dump {
		// stdout занят снимком
		logger.Log.SetOutput(os.Stderr)
	}

	logger.Log.Info("Starting squad-sim...")
	tpls, err := dungeon.ParseRoster(roster)
	if err != nil {
		logger.Log.Fatal("Invalid roster: ", err)
	}
	cfg.Roster = tpls

	logger.Log.Info(version.String())

	switch {
	case seed != 0:
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	case os.Getenv("SIM_SEED") != "":
		v, err := strconv.ParseInt(os.Getenv("SIM_SEED"), 10, 64)
		if err != nil {
			logger.Log.Fatalf("Invalid SIM_SEED: %v", err)
		}
		cfg.Seed = v
		logger.Log.Infof("🎲 Using SIM_SEED: %d", v)
	default:
		logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
	}

	// 2. Сборка мира
	inst, err := engine.BuildInstance(cfg)
	if err != nil {
		logger.Log.Fatal("World build error: ", err)
	}
	defer inst.Close()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Прогон кадров. Ввод скриптовый: игрок всё время идёт вперёд
	// и периодически поворачивает направо.
	started := time.Now()
	steps := 0
	ran := 0
loop:
	for f := 0; f < frames; f++ {
		select {
		case <-stop:
			logger.Log.Info("Interrupted, shutting down...")
			break loop
		default:
		}

		intent := domain.InputIntent{ThrustForward: true}
		if turnEvery > 0 && f > 0 && f%turnEvery == 0 {
			intent.TurnRight = true
		}
		steps += inst.Frame(frameUs, intent)
		ran++
	}
	wall := time.Since(started)
	rate := 0.0
	if wall > 0 {
		rate = float64(steps) / wall.Seconds()
	}

	inst.LogSummary()

	simulated := time.Duration(inst.CurrentTick) * time.Duration(cfg.StepMicros) * time.Microsecond
	logger.Log.WithFields(logrus.Fields{
		"frames":    humanize.Comma(int64(ran)),
		"sub_steps": humanize.Comma(int64(steps)),
		"simulated": simulated.String(),
		"wall":      wall.Round(time.Millisecond).String(),
		"rate":      humanize.Comma(int64(rate)) + " steps/s",
	}).Info("Done.")

	if dump {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(inst.Snapshot()); err != nil {
			logger.Log.Error("Snapshot encode error: ", err)
		}
	}
}
