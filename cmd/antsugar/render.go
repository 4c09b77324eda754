package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/antsugar/parameter"
)

var (
	styleAnt       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleCompleted = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCrashed   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSugar     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleObstacle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	stylePaused    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
	styleProgress  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
)

// draw renders obstacle, sugar, ants, then status and progress rows
func (a *App) draw() {
	a.screen.Clear()
	cols, rows := a.view.Size()
	world := a.sim.World()

	if world.Obstacle.W > 0 && world.Obstacle.H > 0 {
		x0, y0, x1, y1 := a.view.CellSpan(world.Obstacle)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				a.screen.SetContent(x, y, parameter.ObstacleRune, nil, styleObstacle)
			}
		}
	}

	// Ants after the obstacle so crashed ants stay visible on it
	for _, v := range a.sim.Views() {
		x, y := a.view.ToCell(v.Pos)
		switch {
		case v.Completed:
			a.screen.SetContent(x, y, parameter.AntRune, nil, styleCompleted)
		case v.Crashed:
			a.screen.SetContent(x, y, HeadingRune(v.Heading), nil, styleCrashed)
		default:
			a.screen.SetContent(x, y, HeadingRune(v.Heading), nil, styleAnt)
		}
	}

	sx, sy := a.view.ToCell(a.sim.Target())
	a.screen.SetContent(sx, sy, parameter.SugarRune, nil, styleSugar)

	a.drawStatus(rows, cols)
	a.drawProgress(rows+1, cols)
	a.screen.Show()
}

func (a *App) drawStatus(row, width int) {
	style := styleStatus
	status := fmt.Sprintf(" Gen %d  tick %d/%d", a.sim.Generation(), a.sim.Tick(), a.sim.World().Lifespan)
	if r, ok := a.sim.LastReport(); ok {
		status += fmt.Sprintf("  best %.4g  avg %.4g  success %.1f%%", r.BestFitness, r.AverageFitness, r.SuccessRate)
	}
	if a.player.Active() {
		status += "  " + parameter.AudioStr
	}
	if a.sim.Paused() {
		status += "  PAUSED"
		style = stylePaused
	}

	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		a.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		a.screen.SetContent(x, row, ' ', nil, style)
	}
}

func (a *App) drawProgress(row, width int) {
	filled := int(a.sim.Progress() * float64(width))
	for x := 0; x < filled; x++ {
		a.screen.SetContent(x, row, parameter.ProgressRune, nil, styleProgress)
	}
}
