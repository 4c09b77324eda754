package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sourcegraph/conc/pool"

	"github.com/lixenwraith/antsugar/config"
	"github.com/lixenwraith/antsugar/logging"
	"github.com/lixenwraith/antsugar/metrics"
	"github.com/lixenwraith/antsugar/parameter"
	"github.com/lixenwraith/antsugar/report"
	"github.com/lixenwraith/antsugar/simulation"
)

var (
	generationsFlag = flag.Int("generations", 100, "Generations to run, 0 runs until interrupted")
	configFlag      = flag.String("config", "", "TOML config file")
	seedFlag        = flag.Uint64("seed", 0, "Random seed, 0 keeps the configured seed")
	plotFlag        = flag.String("plot", "", "Write fitness plot to this file, success plot alongside")
	metricsFlag     = flag.String("metrics", "", "Serve /metrics, /status and /live on this address until interrupted")
	debugFlag       = flag.Bool("debug", false, "Write debug log under "+parameter.LogDir)
)

func main() {
	flag.Parse()

	if logFile := logging.Setup(parameter.LogDir, *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "antsugar-headless: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Run.Seed = *seedFlag
	}

	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)
	board := newStatusBoard()

	sim, err := simulation.New(cfg.World(),
		simulation.WithSeed(cfg.Run.Seed),
		simulation.WithObserver(printReport),
		simulation.WithObserver(recorder.Observe),
		simulation.WithObserver(board.Update),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := pool.New().WithContext(ctx).WithCancelOnError()

	if *metricsFlag != "" {
		srv := &http.Server{
			Addr:              *metricsFlag,
			Handler:           newRouter(reg, board),
			ReadHeaderTimeout: 5 * time.Second,
		}
		p.Go(func(ctx context.Context) error {
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()
			log.Printf("serving metrics on %s", *metricsFlag)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	p.Go(func(ctx context.Context) error {
		err := sim.Run(ctx, *generationsFlag)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err == nil && *metricsFlag != "" {
			fmt.Fprintln(os.Stderr, "run complete, serving metrics until interrupted")
		}
		return err
	})

	if err := p.Wait(); err != nil {
		return err
	}

	if *plotFlag != "" {
		if err := writePlots(sim, *plotFlag); err != nil {
			return err
		}
	}
	return nil
}

// writePlots saves the fitness plot to path and the success plot next to it
func writePlots(sim *simulation.Simulation, path string) error {
	if err := report.PlotFitness(sim.History(), path); err != nil {
		return err
	}
	return report.PlotSuccess(sim.History(), successPath(path))
}

func successPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_success" + ext
}
