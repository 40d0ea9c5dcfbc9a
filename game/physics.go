package game

import "math"

// advanceBall integrates the ball for one tick: move, decay, snap, then bounce
// off the top and bottom lines.
func advanceBall(b *Ball, cfg *Config) {
	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y

	b.Vel.X *= cfg.Friction
	b.Vel.Y *= cfg.Friction

	if math.Abs(b.Vel.X) < cfg.StopEpsilon {
		b.Vel.X = 0
	}
	if math.Abs(b.Vel.Y) < cfg.StopEpsilon {
		b.Vel.Y = 0
	}

	// Only flip when heading into the line, otherwise a ball that overlaps
	// a wall for several ticks oscillates in place.
	if b.Pos.Y-b.Radius <= 0 && b.Vel.Y < 0 {
		b.Vel.Y = -b.Vel.Y
	} else if b.Pos.Y+b.Radius >= cfg.FieldHeight && b.Vel.Y > 0 {
		b.Vel.Y = -b.Vel.Y
	}
	b.Pos.Y = math.Max(b.Radius, math.Min(cfg.FieldHeight-b.Radius, b.Pos.Y))
}

// advanceProjectiles moves every projectile one step along its heading and
// drops the ones that leave the field.
func advanceProjectiles(projectiles []Projectile, cfg *Config) []Projectile {
	valid := projectiles[:0]
	for _, p := range projectiles {
		dir := p.Direction()
		p.Pos.X += dir.X * cfg.BulletSpeed
		p.Pos.Y += dir.Y * cfg.BulletSpeed
		if p.InBounds(cfg.FieldWidth, cfg.FieldHeight) {
			valid = append(valid, p)
		}
	}
	return valid
}
