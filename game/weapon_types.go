package game

import (
	"time"
)

// BulletType defines the two kinds of ammunition
type BulletType int

const (
	BulletPower BulletType = iota
	BulletPrecision
)

// String returns the name strategies use for the type
func (t BulletType) String() string {
	switch t {
	case BulletPower:
		return "power"
	case BulletPrecision:
		return "precision"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the known types
func (t BulletType) Valid() bool {
	return t == BulletPower || t == BulletPrecision
}

// ParseBulletType converts a strategy's type name to a BulletType
func ParseBulletType(name string) (BulletType, bool) {
	switch name {
	case "power":
		return BulletPower, true
	case "precision":
		return BulletPrecision, true
	default:
		return 0, false
	}
}

// BulletConfig holds the firing parameters of a bullet type
type BulletConfig struct {
	Type BulletType

	// Multiplier scales the impact impulse
	Multiplier float64

	// AngleError is the half-width of the uniform firing deviation in degrees
	AngleError float64

	// Ammo is the per-round count
	Ammo int
}

// Bullet returns configuration for a bullet type
func (c Config) Bullet(t BulletType) BulletConfig {
	switch t {
	case BulletPower:
		return BulletConfig{
			Type:       BulletPower,
			Multiplier: c.PowerMultiplier,
			AngleError: c.PowerAngleError,
			Ammo:       c.PowerAmmo,
		}
	default:
		return BulletConfig{
			Type:       BulletPrecision,
			Multiplier: 1,
			AngleError: 0,
			Ammo:       c.PrecisionAmmo,
		}
	}
}

// CanShoot checks if a side's cooldown has elapsed at match time now
func CanShoot(now, lastShot, delay time.Duration) bool {
	return now-lastShot >= delay
}
