package game

import (
	"context"
	"fmt"
	"math"
)

// ScriptContext is passed to team scripts as input
type ScriptContext struct {
	// Own cannon
	Side    string  `json:"side"`
	CannonX float64 `json:"cannonX"`
	CannonY float64 `json:"cannonY"`

	// Ball state
	BallX  float64 `json:"ballX"`
	BallY  float64 `json:"ballY"`
	BallVX float64 `json:"ballVX"`
	BallVY float64 `json:"ballVY"`

	// Remaining ammunition
	PowerAmmo     int `json:"powerAmmo"`
	PrecisionAmmo int `json:"precisionAmmo"`

	// Computed values
	DistanceToBall float64 `json:"distanceToBall"`
	AngleToBall    float64 `json:"angleToBall"`

	// Rules
	FieldWidth  float64 `json:"fieldWidth"`
	FieldHeight float64 `json:"fieldHeight"`
	BallRadius  float64 `json:"ballRadius"`
	MaxPower    float64 `json:"maxPower"`
	BulletSpeed float64 `json:"bulletSpeed"`
	Friction    float64 `json:"friction"`
}

// ScriptDecision is returned from team scripts. A script returns null to hold fire.
type ScriptDecision struct {
	Angle float64 `json:"angle"`
	Power float64 `json:"power"`
	Type  string  `json:"type"`
}

// BuildScriptContext creates a ScriptContext from a shot input and the rules
func BuildScriptContext(in ShotInput, cfg *Config) ScriptContext {
	return ScriptContext{
		Side:           in.Side.String(),
		CannonX:        in.Cannon.X,
		CannonY:        in.Cannon.Y,
		BallX:          in.Ball.X,
		BallY:          in.Ball.Y,
		BallVX:         in.BallVel.X,
		BallVY:         in.BallVel.Y,
		PowerAmmo:      in.PowerAmmo,
		PrecisionAmmo:  in.PrecisionAmmo,
		DistanceToBall: math.Hypot(in.Ball.X-in.Cannon.X, in.Ball.Y-in.Cannon.Y),
		AngleToBall:    AimAngle(in.Cannon, in.Ball),
		FieldWidth:     cfg.FieldWidth,
		FieldHeight:    cfg.FieldHeight,
		BallRadius:     cfg.BallRadius,
		MaxPower:       cfg.MaxPower,
		BulletSpeed:    cfg.BulletSpeed,
		Friction:       cfg.Friction,
	}
}

// ScriptStrategy is a Strategy driven by a JavaScript decide function
type ScriptStrategy struct {
	name   string
	runner *ScriptRunner
	cfg    Config
}

// NewScriptStrategy compiles code into a strategy
func NewScriptStrategy(name, code string, cfg Config) (*ScriptStrategy, error) {
	runner, err := NewScriptRunner(name, code)
	if err != nil {
		return nil, err
	}
	return &ScriptStrategy{name: name, runner: runner, cfg: cfg}, nil
}

// Name returns the script's team name
func (s *ScriptStrategy) Name() string {
	return s.name
}

// Decide implements Strategy
func (s *ScriptStrategy) Decide(ctx context.Context, in ShotInput) (*Shot, error) {
	decision, ok, err := s.runner.Execute(ctx, BuildScriptContext(in, &s.cfg))
	if err != nil || !ok {
		return nil, err
	}
	t, ok := ParseBulletType(decision.Type)
	if !ok {
		return nil, fmt.Errorf("script %s: unknown bullet type %q", s.name, decision.Type)
	}
	return &Shot{Angle: decision.Angle, Power: decision.Power, Type: t}, nil
}
