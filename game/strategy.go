package game

import (
	"context"
	"math"
)

// ShotInput is the read-only view a strategy receives when its side may shoot
type ShotInput struct {
	Side          SideID `json:"side"`
	Cannon        Vec2   `json:"cannon"`
	Ball          Vec2   `json:"ball"`
	BallVel       Vec2   `json:"ballVel"`
	PowerAmmo     int    `json:"powerAmmo"`
	PrecisionAmmo int    `json:"precisionAmmo"`
}

// Shot is a strategy's firing request
type Shot struct {
	// Angle in degrees, 0 points right and 90 points up the screen
	Angle float64

	// Power is the requested charge. Values above Config.MaxPower are capped
	// while charging.
	Power float64

	Type BulletType
}

// valid reports whether the request is well formed. Ammunition is checked
// separately against the side.
func (s Shot) valid() bool {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	return finite(s.Angle) && finite(s.Power) && s.Power >= 0 && s.Type.Valid()
}

// Strategy decides what a side shoots. Returning a nil shot means "hold fire".
// Errors and panics are treated as holding fire.
type Strategy interface {
	Decide(ctx context.Context, in ShotInput) (*Shot, error)
}

// StrategyFunc adapts a plain function to Strategy
type StrategyFunc func(ctx context.Context, in ShotInput) (*Shot, error)

// Decide calls f
func (f StrategyFunc) Decide(ctx context.Context, in ShotInput) (*Shot, error) {
	return f(ctx, in)
}

// HoldFire is a strategy that never shoots
var HoldFire = StrategyFunc(func(context.Context, ShotInput) (*Shot, error) {
	return nil, nil
})
