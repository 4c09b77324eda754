package parameter

// Layout & Margins
const (
	// BottomMargin rows reserved for the status bar and progress bar
	BottomMargin = 2

	// GUIStatusHeight is the pixel strip under the canvas in the desktop window
	GUIStatusHeight = 24
)

// UI Symbols
const (
	AntRune      = '•'
	SugarRune    = '◉'
	ObstacleRune = '▒'
	ProgressRune = '▁'
	AudioStr     = "♫ "
)
