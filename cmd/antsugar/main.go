package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

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

	app, err := NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			app.screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mANTSUGAR CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	runErr := app.Run()
	app.Cleanup()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Simulation stopped: %v\n", runErr)
		os.Exit(1)
	}
}

// App drives the simulation from the terminal event loop
type App struct {
	screen tcell.Screen
	sim    *simulation.Simulation
	player *audio.Player
	view   Viewport
	tick   time.Duration

	dragging bool
}

// NewApp opens the screen and builds generation 1
func NewApp(cfg config.Config) (*App, error) {
	a := &App{tick: cfg.Run.TickInterval}

	acfg := audio.DefaultConfig()
	acfg.Enabled = cfg.Audio.Enabled
	acfg.MasterVolume = cfg.Audio.MasterVolume
	a.player = audio.NewPlayer(acfg)

	sim, err := simulation.New(cfg.World(),
		simulation.WithSeed(cfg.Run.Seed),
		simulation.WithObserver(a.onGeneration),
	)
	if err != nil {
		return nil, err
	}
	a.sim = sim

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()
	a.screen = screen
	a.resize()

	// Non-fatal, runs silent without a sound device
	if err := a.player.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}

	return a, nil
}

func (a *App) onGeneration(r simulation.Report) {
	log.Printf("generation=%d best=%.6g avg=%.6g success=%.1f%% completed=%d crashed=%d first=%d elapsed=%v",
		r.Generation, r.BestFitness, r.AverageFitness, r.SuccessRate, r.Completed, r.Crashed, r.FirstArrival, r.Elapsed)
	a.player.PlayGeneration(r.SuccessRate)
}

func (a *App) resize() {
	w, h := a.screen.Size()
	a.view = NewViewport(a.sim.World().Bounds, w, h-parameter.BottomMargin)
}

// Run processes input and advances one tick per interval until quit
func (a *App) Run() error {
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if err := a.sim.Step(); err != nil {
				return err
			}
			a.draw()
		}
	}
}

// handleEvent returns false on quit
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ', 'p':
				paused := a.sim.TogglePause()
				log.Printf("paused=%v", paused)
			case 'r':
				a.sim.Reset()
				log.Printf("reset")
			}
		}
		a.draw()

	case *tcell.EventMouse:
		x, y := ev.Position()
		cols, rows := a.view.Size()
		if ev.Buttons()&tcell.Button1 == 0 {
			a.dragging = false
			break
		}
		if x < cols && y < rows || a.dragging {
			a.dragging = true
			a.sim.SetTarget(a.view.ToCanvas(x, y))
			a.draw()
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
		a.draw()
	}
	return true
}

// Cleanup releases the speaker and restores the terminal
func (a *App) Cleanup() {
	a.player.Cleanup()
	a.screen.Fini()
}
