package common

// Playfield bounds in world units. The launcher sits above LevelTop and the
// free-ball bucket travels along LevelBottom.
const (
	LevelLeft   = -6.0
	LevelRight  = 6.0
	LevelBottom = -4.5
	LevelTop    = 4.5
)

const (
	TickRate = 60

	// PixelsPerUnit is the world-to-screen scale shared by the game and the
	// editor canvas.
	PixelsPerUnit = 80.0

	Gravity = -9.0

	BallRadius = 0.12
	BallSpeed  = 7.5
)
