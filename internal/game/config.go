package game

// Body sizes, in viewport units.
const (
	PlayerRadius = 1.0
	BallRadius   = 0.5
)

// Ball spawn ranges, in viewport units (per second for velocities). Balls
// appear above the play area and fall in.
const (
	SpawnHeight  = 8.0 // y in (-SpawnHeight, 0]
	SpawnSpeedX  = 2.0 // vx in [-SpawnSpeedX, SpawnSpeedX)
	SpawnSpeedY  = 2.0 // vy in [SpawnSpeedY, 2*SpawnSpeedY)
	ColorMinComp = 85
)

// Defaults for Options.
const (
	DefaultMaxVelocity = 12.0
	DefaultLossDelay   = 0.5
)

// Buttons 6 and 7 held together leave the game (and close the menu).
const (
	QuitButtonA = 6
	QuitButtonB = 7
)

// Menu geometry is laid out for this reference window and scaled.
const (
	MenuRefWidth   = 640
	MenuRefHeight  = 480
	MenuItemStride = 40
)

const HighScoreKey = "highscore.dat"

// Scene names registered with the dispatcher.
const (
	SceneMenu = "menu"
	SceneGame = "game"
)
