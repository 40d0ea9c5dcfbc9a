package game

import (
	"context"
	"math"
	"math/rand"
)

// LeadStrategy aims where the ball will be when its projectile arrives and
// charges a random power in the upper part of the range.
type LeadStrategy struct {
	cfg Config
	rng *rand.Rand
}

// NewLeadStrategy creates the built-in "lead" team
func NewLeadStrategy(cfg Config, rng *rand.Rand) *LeadStrategy {
	return &LeadStrategy{cfg: cfg, rng: rng}
}

// Decide implements Strategy
func (s *LeadStrategy) Decide(_ context.Context, in ShotInput) (*Shot, error) {
	t, ok := pickBulletType(in, s.rng)
	if !ok {
		return nil, nil
	}
	minPower := math.Floor(s.cfg.MaxPower * 2 / 3)
	power := minPower + float64(s.rng.Intn(int(s.cfg.MaxPower-minPower)+1))
	angle := LeadAngle(in.Cannon, in.Ball, in.BallVel, &s.cfg, int(power)+1)
	return &Shot{Angle: angle, Power: power, Type: t}, nil
}

// SprayStrategy fires at random angles across its own half of the circle
type SprayStrategy struct {
	cfg Config
	rng *rand.Rand
}

// NewSprayStrategy creates the built-in "spray" team
func NewSprayStrategy(cfg Config, rng *rand.Rand) *SprayStrategy {
	return &SprayStrategy{cfg: cfg, rng: rng}
}

// Decide implements Strategy
func (s *SprayStrategy) Decide(_ context.Context, in ShotInput) (*Shot, error) {
	t, ok := pickBulletType(in, s.rng)
	if !ok {
		return nil, nil
	}
	// Facing the opponent: -90..90 from the left cannon, 90..270 from the right
	angle := s.rng.Float64()*180 - 90
	if in.Side == SideRight {
		angle += 180
	}
	span := int(s.cfg.MaxPower) - 4
	if span < 1 {
		span = 1
	}
	power := 5 + float64(s.rng.Intn(span))
	return &Shot{Angle: angle, Power: power, Type: t}, nil
}

// pickBulletType chooses randomly among the types with ammunition left
func pickBulletType(in ShotInput, rng *rand.Rand) (BulletType, bool) {
	switch {
	case in.PowerAmmo > 0 && in.PrecisionAmmo > 0:
		if rng.Intn(2) == 0 {
			return BulletPower, true
		}
		return BulletPrecision, true
	case in.PowerAmmo > 0:
		return BulletPower, true
	case in.PrecisionAmmo > 0:
		return BulletPrecision, true
	default:
		return 0, false
	}
}
