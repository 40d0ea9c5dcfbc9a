package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the match rules and field geometry
type Config struct {
	// FieldWidth is the width of the pitch in pixels
	FieldWidth float64 `toml:"field_width"`

	// FieldHeight is the height of the pitch in pixels
	FieldHeight float64 `toml:"field_height"`

	// TicksPerSecond is the fixed simulation rate used by the headless runner
	TicksPerSecond int `toml:"ticks_per_second"`

	// BallRadius is the collision radius of the ball
	BallRadius float64 `toml:"ball_radius"`

	// Friction is the per-tick velocity decay factor
	Friction float64 `toml:"friction"`

	// StopEpsilon is the speed below which a velocity axis snaps to zero
	StopEpsilon float64 `toml:"stop_epsilon"`

	// CannonInset is the horizontal distance of each cannon from its goal line
	CannonInset float64 `toml:"cannon_inset"`

	// BulletRadius is the collision radius of a projectile
	BulletRadius float64 `toml:"bullet_radius"`

	// BulletSpeed is the distance a projectile travels per tick
	BulletSpeed float64 `toml:"bullet_speed"`

	// MaxPower caps the charge a cannon can build up
	MaxPower float64 `toml:"max_power"`

	// PowerIncrement scales projectile speed into ball velocity on impact
	PowerIncrement float64 `toml:"power_increment"`

	// PowerMultiplier is the extra impact factor of power bullets
	PowerMultiplier float64 `toml:"power_multiplier"`

	// PowerAngleError is the maximum firing deviation of power bullets in degrees
	PowerAngleError float64 `toml:"power_angle_error"`

	// PowerAmmo and PrecisionAmmo are the per-round ammunition counts
	PowerAmmo     int `toml:"power_ammo"`
	PrecisionAmmo int `toml:"precision_ammo"`

	// TurnDelay is the minimum time between two shots of the same side
	TurnDelay time.Duration `toml:"turn_delay"`

	// GameSeconds is the countdown length of a match
	GameSeconds int `toml:"game_seconds"`

	// WinningScore ends the match as soon as a side reaches it
	WinningScore int `toml:"winning_score"`

	// ResetJitter is the maximum integer offset added to each axis of a reset position
	ResetJitter int `toml:"reset_jitter"`

	// StrategyBudget bounds a single strategy call. Zero calls strategies inline without a deadline.
	StrategyBudget time.Duration `toml:"strategy_budget"`
}

// DefaultConfig returns the reference rules
func DefaultConfig() Config {
	return Config{
		FieldWidth:      800,
		FieldHeight:     600,
		TicksPerSecond:  60,
		BallRadius:      20,
		Friction:        0.995,
		StopEpsilon:     0.1,
		CannonInset:     50,
		BulletRadius:    5,
		BulletSpeed:     15,
		MaxPower:        30,
		PowerIncrement:  0.13,
		PowerMultiplier: 1.5,
		PowerAngleError: 5,
		PowerAmmo:       5,
		PrecisionAmmo:   10,
		TurnDelay:       600 * time.Millisecond,
		GameSeconds:     60,
		WinningScore:    1,
		ResetJitter:     5,
	}
}

// LoadConfig reads a TOML file over the default rules
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the rules describe a playable match
func (c Config) Validate() error {
	switch {
	case c.FieldWidth <= 0 || c.FieldHeight <= 0:
		return fmt.Errorf("%w: field size must be positive", ErrInvalidConfig)
	case c.TicksPerSecond <= 0:
		return fmt.Errorf("%w: ticks_per_second must be positive", ErrInvalidConfig)
	case c.BallRadius <= 0 || c.BulletRadius <= 0 || 2*c.BallRadius >= c.FieldHeight:
		return fmt.Errorf("%w: radii must be positive", ErrInvalidConfig)
	case c.Friction <= 0 || c.Friction > 1:
		return fmt.Errorf("%w: friction must be in (0, 1]", ErrInvalidConfig)
	case c.StopEpsilon < 0:
		return fmt.Errorf("%w: stop_epsilon must not be negative", ErrInvalidConfig)
	case c.CannonInset < 0 || 2*c.CannonInset >= c.FieldWidth:
		return fmt.Errorf("%w: cannons must sit inside the field", ErrInvalidConfig)
	case c.BulletSpeed <= 0 || c.MaxPower <= 0:
		return fmt.Errorf("%w: bullet_speed and max_power must be positive", ErrInvalidConfig)
	case c.PowerAmmo < 0 || c.PrecisionAmmo < 0:
		return fmt.Errorf("%w: ammunition must not be negative", ErrInvalidConfig)
	case c.TurnDelay < 0 || c.StrategyBudget < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	case c.GameSeconds <= 0 || c.WinningScore <= 0:
		return fmt.Errorf("%w: game_seconds and winning_score must be positive", ErrInvalidConfig)
	case c.ResetJitter < 0:
		return fmt.Errorf("%w: reset_jitter must not be negative", ErrInvalidConfig)
	}
	return nil
}

// CannonPosition returns the fixed cannon position of a side
func (c Config) CannonPosition(side SideID) Vec2 {
	if side == SideRight {
		return Vec2{X: c.FieldWidth - c.CannonInset, Y: c.FieldHeight / 2}
	}
	return Vec2{X: c.CannonInset, Y: c.FieldHeight / 2}
}

// Center returns the kick-off spot
func (c Config) Center() Vec2 {
	return Vec2{X: c.FieldWidth / 2, Y: c.FieldHeight / 2}
}

// ResetPositions returns the cycle of ball positions used after each round
func (c Config) ResetPositions() [5]Vec2 {
	cx, cy := c.FieldWidth/2, c.FieldHeight/2
	return [5]Vec2{
		{X: cx, Y: cy},
		{X: cx, Y: cy + 50},
		{X: cx, Y: cy - 50},
		{X: cx, Y: cy + 100},
		{X: cx - 50, Y: cy - 100},
	}
}

// TickDuration is the fixed step of the headless runner
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}
