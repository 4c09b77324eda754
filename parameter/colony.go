package parameter

// World Geometry
const (
	// CanvasWidth and CanvasHeight bound the simulation plane, origin at top-left
	CanvasWidth  = 800.0
	CanvasHeight = 600.0

	// SpawnX, SpawnY is where every ant starts a generation
	SpawnX = CanvasWidth / 2
	SpawnY = CanvasHeight - 20

	// TargetX, TargetY is the initial sugar position
	TargetX = CanvasWidth / 2
	TargetY = 50.0

	// CaptureRadius is the distance under which an ant has reached the sugar
	CaptureRadius = 10.0
)

// Obstacle Rectangle
const (
	ObstacleX      = 200.0
	ObstacleY      = 300.0
	ObstacleWidth  = 400.0
	ObstacleHeight = 20.0
)
