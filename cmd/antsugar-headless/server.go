package main

import (
	"io"
	"math"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/websocket"

	"github.com/lixenwraith/antsugar/simulation"
)

// liveBuffer is the per-subscriber backlog; slow readers miss reports rather than stall the run
const liveBuffer = 16

// statusBoard holds the latest report for HTTP readers while the run goroutine writes it
type statusBoard struct {
	mu   sync.RWMutex
	last *simulation.Report
	subs map[chan gin.H]struct{}
}

func newStatusBoard() *statusBoard {
	return &statusBoard{subs: make(map[chan gin.H]struct{})}
}

// Update stores r and fans it out to live subscribers without blocking
func (b *statusBoard) Update(r simulation.Report) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.last = &r
	if len(b.subs) == 0 {
		return
	}
	snap := reportJSON(r)
	for ch := range b.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

// Snapshot renders the latest report
func (b *statusBoard) Snapshot() (gin.H, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.last == nil {
		return nil, false
	}
	return reportJSON(*b.last), true
}

// Subscribe registers for every future report until cancel is called
func (b *statusBoard) Subscribe() (<-chan gin.H, func()) {
	ch := make(chan gin.H, liveBuffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}
}

func (b *statusBoard) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func reportJSON(r simulation.Report) gin.H {
	return gin.H{
		"generation":      r.Generation,
		"best_fitness":    jsonFloat(r.BestFitness),
		"avg_fitness":     jsonFloat(r.AverageFitness),
		"success_rate":    r.SuccessRate,
		"completed":       r.Completed,
		"crashed":         r.Crashed,
		"active":          r.Active,
		"first_arrival":   r.FirstArrival,
		"elapsed_seconds": r.Elapsed.Seconds(),
	}
}

// JSON has no Inf, an ant sitting on the sugar is sent as the largest float
func jsonFloat(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	case math.IsNaN(v):
		return 0
	}
	return v
}

// liveHandler streams one JSON message per finished generation until the client leaves
func liveHandler(board *statusBoard) websocket.Handler {
	return func(ws *websocket.Conn) {
		defer ws.Close()

		ch, cancel := board.Subscribe()
		defer cancel()

		closed := make(chan struct{})
		go func() {
			_, _ = io.Copy(io.Discard, ws)
			close(closed)
		}()

		for {
			select {
			case snap := <-ch:
				if err := websocket.JSON.Send(ws, snap); err != nil {
					return
				}
			case <-closed:
				return
			}
		}
	}
}

func newRouter(reg *prometheus.Registry, board *statusBoard) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	r.GET("/status", func(c *gin.Context) {
		snap, ok := board.Snapshot()
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no generation finished yet"})
			return
		}
		c.JSON(http.StatusOK, snap)
	})
	r.GET("/live", gin.WrapH(liveHandler(board)))
	return r
}
