package game

import (
	"math"
)

// Vec2 is a position or velocity in field coordinates (pixels, y grows downwards)
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Ball is the contested ball
type Ball struct {
	// Position of the centre
	Pos Vec2

	// Velocity in pixels per tick
	Vel Vec2

	// Collision radius in pixels
	Radius float64
}

// Stopped reports whether both velocity axes are exactly zero
func (b *Ball) Stopped() bool {
	return b.Vel.X == 0 && b.Vel.Y == 0
}

// Projectile is a bullet in flight
type Projectile struct {
	// Position in field coordinates
	Pos Vec2

	// Travel direction in degrees. 0 points right, 90 points up the screen.
	Angle float64

	// Speed is the charge the projectile was fired with. It scales the impact
	// impulse; travel distance per tick is Config.BulletSpeed.
	Speed float64

	// Bullet type (decides impact multiplier and render colour)
	Type BulletType

	// Side that fired it
	Owner SideID
}

// DistanceTo calculates the distance to the ball centre
func (p *Projectile) DistanceTo(b *Ball) float64 {
	return math.Hypot(b.Pos.X-p.Pos.X, b.Pos.Y-p.Pos.Y)
}

// IsColliding checks if this projectile touches the ball
func (p *Projectile) IsColliding(b *Ball, radius float64) bool {
	return p.DistanceTo(b) <= b.Radius+radius
}

// Direction returns the unit travel vector in screen space
func (p *Projectile) Direction() Vec2 {
	rad := p.Angle * math.Pi / 180
	return Vec2{X: math.Cos(rad), Y: -math.Sin(rad)}
}

// InBounds reports whether the projectile is inside the field rectangle
func (p *Projectile) InBounds(width, height float64) bool {
	return p.Pos.X >= 0 && p.Pos.X <= width && p.Pos.Y >= 0 && p.Pos.Y <= height
}
