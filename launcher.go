package main

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/common"
)

// launcherY is just above the top wall so the ball drops into the playfield.
const launcherY = common.LevelTop - 0.2

// maxAimTilt keeps shots from being fired along the top wall.
const maxAimTilt = 80 * math.Pi / 180

// Launcher aims at the cursor from a fixed point on the top center and fires
// balls at a fixed speed.
type Launcher struct {
	angle float64
}

func (l *Launcher) Position() cp.Vector {
	return cp.Vector{X: 0, Y: launcherY}
}

func (l *Launcher) Angle() float64 { return l.angle }

// AimAt points the launcher toward a world-space target. Angle 0 is straight
// down; positive tilts toward +X.
func (l *Launcher) AimAt(target cp.Vector) {
	origin := l.Position()
	dx := target.X - origin.X
	dy := target.Y - origin.Y
	if dy >= 0 {
		// Aiming above the launcher clamps to horizontal on the cursor side.
		if dx >= 0 {
			l.angle = maxAimTilt
		} else {
			l.angle = -maxAimTilt
		}
		return
	}
	l.angle = common.Clamp(math.Atan2(dx, -dy), -maxAimTilt, maxAimTilt)
}

// cpDir converts an aim angle to a unit vector. Angle 0 points straight down.
func cpDir(angle float64) cp.Vector {
	return cp.Vector{X: math.Sin(angle), Y: -math.Cos(angle)}
}

// Fire spawns a ball along the current aim.
func (l *Launcher) Fire(world *World) *Ball {
	dir := cpDir(l.angle)
	vel := dir.Mult(common.BallSpeed)
	start := l.Position().Add(dir.Mult(0.3))
	return NewBall(world, start, vel)
}
