package main

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/net/websocket"

	"github.com/lixenwraith/antsugar/metrics"
	"github.com/lixenwraith/antsugar/simulation"
)

func TestRouter_StatusBeforeFirstGeneration(t *testing.T) {
	router := newRouter(prometheus.NewRegistry(), newStatusBoard())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestRouter_StatusAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	board := newStatusBoard()
	router := newRouter(reg, board)

	rep := simulation.Report{
		Generation:   3,
		BestFitness:  math.Inf(1),
		SuccessRate:  4,
		Completed:    4,
		Crashed:      10,
		Active:       86,
		FirstArrival: 120,
	}
	rec.Observe(rep)
	board.Update(rep)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]float64
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if body["generation"] != 3 || body["first_arrival"] != 120 {
		t.Errorf("unexpected status %v", body)
	}
	if body["best_fitness"] != math.MaxFloat64 {
		t.Errorf("expected infinite best sent as MaxFloat64, got %v", body["best_fitness"])
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "antsugar_generations_total 1") {
		t.Errorf("expected generation counter in exposition, got:\n%s", w.Body.String())
	}
}

func TestSuccessPath(t *testing.T) {
	cases := map[string]string{
		"out/fitness.png": "out/fitness_success.png",
		"run.svg":         "run_success.svg",
		"plain":           "plain_success",
	}
	for in, want := range cases {
		if got := successPath(in); got != want {
			t.Errorf("successPath(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestRouter_LiveStream(t *testing.T) {
	board := newStatusBoard()
	srv := httptest.NewServer(newRouter(prometheus.NewRegistry(), board))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live"
	ws, err := websocket.Dial(url, "", srv.URL)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer ws.Close()

	deadline := time.Now().Add(2 * time.Second)
	for board.Subscribers() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("expected live subscriber to register")
		}
		time.Sleep(5 * time.Millisecond)
	}

	board.Update(simulation.Report{Generation: 9, SuccessRate: 25, FirstArrival: 80})

	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg map[string]float64
	if err := websocket.JSON.Receive(ws, &msg); err != nil {
		t.Fatalf("receive: %v", err)
	}
	if msg["generation"] != 9 || msg["success_rate"] != 25 {
		t.Errorf("unexpected live message %v", msg)
	}
}
