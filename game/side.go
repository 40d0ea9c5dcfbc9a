package game

import (
	"time"
)

// Rand is the randomness a match draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Side is one team's cannon, ammunition and charge state
type Side struct {
	ID     SideID
	Cannon Vec2

	// Aim angle in degrees, updated by every strategy request
	Angle float64

	PowerAmmo     int
	PrecisionAmmo int

	// AmmoUsed counts shots accepted since the last restart. Breaks ties.
	AmmoUsed int

	Score int

	// Pending is the accepted request being charged, nil when idle
	Pending *Shot

	// Power is the charge accumulated for Pending
	Power float64

	// LastShot is the match time of the last fired projectile
	LastShot time.Duration
}

func newSide(id SideID, cfg *Config) *Side {
	s := &Side{
		ID:     id,
		Cannon: cfg.CannonPosition(id),
	}
	if id == SideRight {
		s.Angle = 180
	}
	s.Refill(cfg)
	return s
}

// Charging reports whether a request is being charged
func (s *Side) Charging() bool {
	return s.Pending != nil
}

// Ammo returns the remaining count for a bullet type
func (s *Side) Ammo(t BulletType) int {
	if t == BulletPower {
		return s.PowerAmmo
	}
	return s.PrecisionAmmo
}

// OutOfAmmo reports whether both counts are exhausted
func (s *Side) OutOfAmmo() bool {
	return s.PowerAmmo == 0 && s.PrecisionAmmo == 0
}

// Accept starts charging shot if it is well formed and ammunition is left.
// The aim angle follows any well formed request, accepted or not.
func (s *Side) Accept(shot Shot) bool {
	if s.Charging() || !shot.valid() {
		return false
	}
	s.Angle = shot.Angle
	if s.Ammo(shot.Type) <= 0 {
		return false
	}
	if shot.Type == BulletPower {
		s.PowerAmmo--
	} else {
		s.PrecisionAmmo--
	}
	s.AmmoUsed++
	s.Pending = &shot
	s.Power = 0
	return true
}

// Charge advances the pending request by one tick. The charge grows by one
// per tick until it reaches the requested power (capped at MaxPower); the
// following tick fires and the projectile is returned.
func (s *Side) Charge(cfg *Config, now time.Duration, rng Rand) (Projectile, bool) {
	if s.Pending == nil {
		return Projectile{}, false
	}
	if s.Power < s.Pending.Power && s.Power < cfg.MaxPower {
		s.Power++
		return Projectile{}, false
	}

	bc := cfg.Bullet(s.Pending.Type)
	angle := s.Pending.Angle
	if bc.AngleError > 0 {
		angle += (rng.Float64()*2 - 1) * bc.AngleError
	}
	p := Projectile{
		Pos:   s.Cannon,
		Angle: angle,
		Speed: s.Power,
		Type:  bc.Type,
		Owner: s.ID,
	}
	s.Pending = nil
	s.Power = 0
	s.LastShot = now
	return p, true
}

// Refill restores full ammunition and abandons any charge in progress
func (s *Side) Refill(cfg *Config) {
	s.PowerAmmo = cfg.Bullet(BulletPower).Ammo
	s.PrecisionAmmo = cfg.Bullet(BulletPrecision).Ammo
	s.Pending = nil
	s.Power = 0
}
