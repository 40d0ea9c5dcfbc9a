package game

import "math"

// AimAngle returns the firing angle in degrees from one point to another.
// 0 points right and 90 points up the screen, matching Projectile.Angle.
func AimAngle(from, to Vec2) float64 {
	return -math.Atan2(to.Y-from.Y, to.X-from.X) * 180 / math.Pi
}

// PredictBallPosition returns where a free-rolling ball will be after the
// given number of ticks, applying the same per-tick friction and stop snap
// as the simulation. Wall bounces are ignored.
func PredictBallPosition(pos, vel Vec2, friction, stopEpsilon float64, ticks int) Vec2 {
	for i := 0; i < ticks; i++ {
		if vel.X == 0 && vel.Y == 0 {
			break
		}
		pos.X += vel.X
		pos.Y += vel.Y
		vel.X *= friction
		vel.Y *= friction
		if math.Abs(vel.X) < stopEpsilon {
			vel.X = 0
		}
		if math.Abs(vel.Y) < stopEpsilon {
			vel.Y = 0
		}
	}
	return pos
}

// LeadAngle calculates the angle to fire from cannon so a projectile meets
// a rolling ball. delayTicks is the time before the projectile leaves the
// cannon (the charge ramp).
func LeadAngle(cannon, ball, vel Vec2, cfg *Config, delayTicks int) float64 {
	// If the ball is not moving, just aim at it
	if vel.X == 0 && vel.Y == 0 {
		return AimAngle(cannon, ball)
	}

	distance := math.Hypot(ball.X-cannon.X, ball.Y-cannon.Y)
	if distance < 1.0 {
		return AimAngle(cannon, ball)
	}

	// Find t such that distance(cannon, ball(t+delay)) = speed * t,
	// starting from the time to reach the current position.
	t := distance / cfg.BulletSpeed
	target := ball
	for i := 0; i < 5; i++ {
		target = PredictBallPosition(ball, vel, cfg.Friction, cfg.StopEpsilon, delayTicks+int(math.Round(t)))
		newT := math.Hypot(target.X-cannon.X, target.Y-cannon.Y) / cfg.BulletSpeed
		if math.Abs(newT-t) < 0.5 {
			break
		}
		t = newT
	}
	return AimAngle(cannon, target)
}
