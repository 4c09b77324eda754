// Package metrics exports generation statistics as Prometheus collectors
package metrics

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/antsugar/simulation"
)

// Recorder holds the collectors for one simulation run
type Recorder struct {
	generations  prometheus.Counter
	arrivals     prometheus.Counter
	crashes      prometheus.Counter
	bestFitness  prometheus.Gauge
	avgFitness   prometheus.Gauge
	successRate  prometheus.Gauge
	firstArrival prometheus.Gauge
	duration     prometheus.Histogram
	outcome      *prometheus.GaugeVec
}

// NewRecorder creates collectors and registers them with reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "antsugar_generations_total",
			Help: "Finished generations.",
		}),
		arrivals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "antsugar_arrivals_total",
			Help: "Ants that reached the sugar, summed over generations.",
		}),
		crashes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "antsugar_crashes_total",
			Help: "Ants that crashed, summed over generations.",
		}),
		bestFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "antsugar_best_fitness",
			Help: "Best raw fitness of the last generation.",
		}),
		avgFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "antsugar_avg_fitness",
			Help: "Mean raw fitness of the last generation.",
		}),
		successRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "antsugar_success_rate_percent",
			Help: "Percentage of ants that reached the sugar in the last generation.",
		}),
		firstArrival: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "antsugar_first_arrival_tick",
			Help: "Earliest capture tick of the last generation, -1 when none arrived.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "antsugar_generation_seconds",
			Help:    "Wall time per generation.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		outcome: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "antsugar_generation_outcome",
			Help: "Ant counts of the last generation by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		r.generations, r.arrivals, r.crashes,
		r.bestFitness, r.avgFitness, r.successRate, r.firstArrival,
		r.duration, r.outcome,
	)
	return r
}

// Observe records a finished generation, usable as a simulation.Observer
func (r *Recorder) Observe(rep simulation.Report) {
	r.generations.Inc()
	r.arrivals.Add(float64(rep.Completed))
	r.crashes.Add(float64(rep.Crashed))

	r.bestFitness.Set(finite(rep.BestFitness))
	r.avgFitness.Set(finite(rep.AverageFitness))
	r.successRate.Set(rep.SuccessRate)
	r.firstArrival.Set(float64(rep.FirstArrival))
	r.duration.Observe(rep.Elapsed.Seconds())

	r.outcome.With(prometheus.Labels{"outcome": "completed"}).Set(float64(rep.Completed))
	r.outcome.With(prometheus.Labels{"outcome": "crashed"}).Set(float64(rep.Crashed))
	r.outcome.With(prometheus.Labels{"outcome": "active"}).Set(float64(rep.Active))
}

// An ant sitting exactly on the sugar scores +Inf
func finite(v float64) float64 {
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}
