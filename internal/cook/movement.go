package cook

// Velocity converts held direction keys into a velocity. Each axis is the
// signed sum of its two keys (so opposite keys cancel) scaled by speed.
// Diagonals are not normalized.
func Velocity(ctrl Controls, speed float64) (vx, vy float64) {
	if ctrl.Right {
		vx++
	}
	if ctrl.Left {
		vx--
	}
	if ctrl.Down {
		vy++
	}
	if ctrl.Up {
		vy--
	}
	return vx * speed, vy * speed
}
