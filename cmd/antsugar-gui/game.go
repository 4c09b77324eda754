package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/antsugar/audio"
	"github.com/lixenwraith/antsugar/parameter"
	"github.com/lixenwraith/antsugar/simulation"
	"github.com/lixenwraith/antsugar/vmath"
)

// Ant body drawn as a stroked segment along the heading
const (
	antLength = 25.0
	antWidth  = 5
)

var (
	colorBackground = color.RGBA{0x10, 0x10, 0x14, 0xff}
	colorAnt        = color.RGBA{0xff, 0xff, 0xff, 0x96}
	colorCompleted  = color.RGBA{0x4c, 0xd9, 0x64, 0xc8}
	colorCrashed    = color.RGBA{0xe0, 0x45, 0x45, 0xc8}
	colorSugar      = color.RGBA{0xf5, 0xd0, 0x42, 0xff}
	colorObstacle   = color.RGBA{0x80, 0x80, 0x80, 0xff}
	colorStatus     = color.RGBA{0x28, 0x28, 0x30, 0xff}
	colorProgress   = color.RGBA{0x3a, 0x9a, 0xa8, 0xff}
)

// Game adapts the simulation to ebiten's fixed-rate Update and Draw
type Game struct {
	sim    *simulation.Simulation
	player *audio.Player

	dragging bool
}

func (g *Game) onGeneration(r simulation.Report) {
	log.Printf("generation=%d best=%.6g avg=%.6g success=%.1f%% completed=%d crashed=%d first=%d",
		r.Generation, r.BestFitness, r.AverageFitness, r.SuccessRate, r.Completed, r.Crashed, r.FirstArrival)
	g.player.PlayGeneration(r.SuccessRate)
}

// Update handles input then advances one tick
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		log.Printf("paused=%v", g.sim.TogglePause())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
		log.Printf("reset")
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		p := vmath.Vec2F{X: float64(mx), Y: float64(my)}
		// A drag that started on the canvas keeps moving the sugar, clamped to the edge
		if g.dragging || !g.sim.World().Bounds.Outside(p) {
			g.dragging = true
			g.sim.SetTarget(p)
		}
	} else {
		g.dragging = false
	}

	return g.sim.Step()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	world := g.sim.World()

	ob := world.Obstacle
	if ob.W > 0 && ob.H > 0 {
		vector.DrawFilledRect(screen, float32(ob.X), float32(ob.Y), float32(ob.W), float32(ob.H), colorObstacle, false)
	}

	target := g.sim.Target()
	vector.DrawFilledCircle(screen, float32(target.X), float32(target.Y), float32(world.CaptureRadius), colorSugar, true)

	for _, v := range g.sim.Views() {
		half := vmath.FromHeading2F(v.Heading, antLength/2)
		clr := colorAnt
		switch {
		case v.Completed:
			clr = colorCompleted
		case v.Crashed:
			clr = colorCrashed
		}
		vector.StrokeLine(screen,
			float32(v.Pos.X-half.X), float32(v.Pos.Y-half.Y),
			float32(v.Pos.X+half.X), float32(v.Pos.Y+half.Y),
			antWidth, clr, true)
	}

	g.drawStatus(screen, world.Bounds)
}

func (g *Game) drawStatus(screen *ebiten.Image, bounds vmath.RectF) {
	top := float32(bounds.H)
	vector.DrawFilledRect(screen, 0, top, float32(bounds.W), parameter.GUIStatusHeight, colorStatus, false)
	vector.DrawFilledRect(screen, 0, top, float32(bounds.W*g.sim.Progress()), 3, colorProgress, false)

	status := fmt.Sprintf("Gen %d  tick %d/%d", g.sim.Generation(), g.sim.Tick(), g.sim.World().Lifespan)
	if r, ok := g.sim.LastReport(); ok {
		status += fmt.Sprintf("  best %.4g  avg %.4g  success %.1f%%", r.BestFitness, r.AverageFitness, r.SuccessRate)
	}
	if g.sim.Paused() {
		status += "  PAUSED"
	}
	text.Draw(screen, status, basicfont.Face7x13, 6, int(top)+17, color.White)
}

// Layout keeps canvas units as logical pixels
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.sim.World().Bounds
	return int(math.Ceil(b.W)), int(math.Ceil(b.H)) + parameter.GUIStatusHeight
}
