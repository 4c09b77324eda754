package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/antsugar/audio"
	"github.com/lixenwraith/antsugar/config"
	"github.com/lixenwraith/antsugar/logging"
	"github.com/lixenwraith/antsugar/parameter"
	"github.com/lixenwraith/antsugar/simulation"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log under "+parameter.LogDir)
	muteFlag   = flag.Bool("mute", false, "Disable generation sounds")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 keeps the configured seed")
	fpsFlag    = flag.Int("fps", 0, "Ticks per second, 0 keeps the configured tick interval")
)

func main() {
	flag.Parse()

	if logFile := logging.Setup(parameter.LogDir, *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Run.Seed = *seedFlag
	}
	if *fpsFlag > 0 {
		cfg.Run.TickInterval = time.Second / time.Duration(*fpsFlag)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	acfg := audio.DefaultConfig()
	acfg.Enabled = cfg.Audio.Enabled
	acfg.MasterVolume = cfg.Audio.MasterVolume
	player := audio.NewPlayer(acfg)
	if err := player.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer player.Cleanup()

	game := &Game{player: player}
	sim, err := simulation.New(cfg.World(),
		simulation.WithSeed(cfg.Run.Seed),
		simulation.WithObserver(game.onGeneration),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	game.sim = sim

	bounds := sim.World().Bounds
	ebiten.SetWindowSize(int(bounds.W), int(bounds.H)+parameter.GUIStatusHeight)
	ebiten.SetWindowTitle("Ants and Sugar")
	ebiten.SetTPS(max(int(time.Second/cfg.Run.TickInterval), 1))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Simulation stopped: %v\n", err)
		os.Exit(1)
	}
}
