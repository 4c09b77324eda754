// Package report renders generation history to image files
package report

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lixenwraith/antsugar/genetic/tracking"
)

// ErrEmptyHistory is returned when there is nothing to plot
var ErrEmptyHistory = errors.New("history has no finished generations")

// PlotFitness saves best and average fitness per generation to path
// The image format follows the file extension
func PlotFitness(h *tracking.History, path string) error {
	return save(h, path, "Fitness by generation", "Fitness",
		series{"best", tracking.MetricBestFitness},
		series{"avg", tracking.MetricAvgFitness},
	)
}

// PlotSuccess saves the percentage of ants reaching the target per generation to path
func PlotSuccess(h *tracking.History, path string) error {
	return save(h, path, "Success rate by generation", "Success (%)",
		series{"success", tracking.MetricSuccessRate},
	)
}

type series struct {
	label string
	key   string
}

func save(h *tracking.History, path, title, yLabel string, lines ...series) error {
	if h == nil || h.Len() == 0 {
		return ErrEmptyHistory
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	gens := h.Series(tracking.MetricGeneration, 0)
	for _, s := range lines {
		pts := points(gens, h.Series(s.key, math.NaN()))
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot %s: %w", s.label, err)
		}
		p.Add(line)
		p.Legend.Add(s.label, line)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// points pairs xs with ys, dropping non-finite values the plotter rejects
func points(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(ys))
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: y})
	}
	return pts
}
