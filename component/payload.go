package component

// PlayerState is the player entity payload
type PlayerState struct {
	// Angle is the heading in radians, 0 along +X
	Angle     float32
	Thrusting bool
}

// AsteroidState is the asteroid entity payload
type AsteroidState struct {
	Variant int
	Angle   float32
	// Spin is the rotation rate in radians per second
	Spin float32
}
