package obj

import "github.com/jakecoffman/cp"

const (
	CollisionTypeBall cp.CollisionType = iota + 1
	CollisionTypePeg
	CollisionTypeWall
	CollisionTypeCharacteristic
	// CollisionTypeKill marks the sensor line below the playfield.
	CollisionTypeKill
)
