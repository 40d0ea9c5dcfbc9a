package game

import (
	"math"
)

// CollisionSystem handles projectile impacts on the ball
type CollisionSystem struct {
	cfg *Config
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(cfg *Config) *CollisionSystem {
	return &CollisionSystem{cfg: cfg}
}

// CheckCollisions applies every projectile touching the ball and returns the
// projectiles still in flight followed by the ones that hit.
// Impulses are additive and all measured from the same ball position, so
// simultaneous hits resolve independently of slice order.
func (cs *CollisionSystem) CheckCollisions(ball *Ball, projectiles []Projectile) ([]Projectile, []Projectile) {
	var hits []Projectile
	valid := projectiles[:0]
	for _, p := range projectiles {
		if p.IsColliding(ball, cs.cfg.BulletRadius) {
			cs.HandleProjectileCollision(ball, p)
			hits = append(hits, p)
			continue
		}
		valid = append(valid, p)
	}
	return valid, hits
}

// HandleProjectileCollision pushes the ball away from the impact point
func (cs *CollisionSystem) HandleProjectileCollision(ball *Ball, p Projectile) {
	dx := ball.Pos.X - p.Pos.X
	dy := ball.Pos.Y - p.Pos.Y
	dir := math.Atan2(dy, dx)

	impulse := p.Speed * cs.cfg.PowerIncrement * cs.cfg.Bullet(p.Type).Multiplier
	ball.Vel.X += math.Cos(dir) * impulse
	ball.Vel.Y += math.Sin(dir) * impulse
}
