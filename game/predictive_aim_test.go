package game

import (
	"math"
	"testing"
)

func TestAimAngle(t *testing.T) {
	from := Vec2{X: 50, Y: 300}

	tests := []struct {
		name string
		to   Vec2
		want float64
	}{
		{"right", Vec2{X: 400, Y: 300}, 0},
		{"up", Vec2{X: 50, Y: 100}, 90},
		{"down", Vec2{X: 50, Y: 500}, -90},
		{"up-right", Vec2{X: 150, Y: 200}, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AimAngle(from, tt.to); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPredictBallPosition(t *testing.T) {
	cfg := DefaultConfig()

	rest := Vec2{X: 400, Y: 300}
	if got := PredictBallPosition(rest, Vec2{}, cfg.Friction, cfg.StopEpsilon, 100); got != rest {
		t.Errorf("Expected resting ball to stay at %+v, got %+v", rest, got)
	}

	if got := PredictBallPosition(rest, Vec2{X: 10}, cfg.Friction, cfg.StopEpsilon, 1); got.X != 410 {
		t.Errorf("Expected x 410 after one tick, got %v", got.X)
	}

	// The geometric series bounds the total travel
	far := PredictBallPosition(rest, Vec2{X: 10}, cfg.Friction, cfg.StopEpsilon, 100000)
	if far.X <= 410 || far.X >= 400+10/(1-cfg.Friction) {
		t.Errorf("Expected travel below the friction limit, got x=%v", far.X)
	}

	// Matches the simulation step by step
	b := Ball{Pos: rest, Vel: Vec2{X: 3, Y: -2}, Radius: cfg.BallRadius}
	want := PredictBallPosition(b.Pos, b.Vel, cfg.Friction, cfg.StopEpsilon, 30)
	for i := 0; i < 30; i++ {
		advanceBall(&b, &cfg)
	}
	if b.Pos != want {
		t.Errorf("Expected prediction %+v to match simulation %+v", want, b.Pos)
	}
}

func TestLeadAngle(t *testing.T) {
	cfg := DefaultConfig()
	cannon := Vec2{X: 50, Y: 300}
	ball := Vec2{X: 400, Y: 300}

	if got := LeadAngle(cannon, ball, Vec2{}, &cfg, 10); got != 0 {
		t.Errorf("Expected 0 for a resting ball, got %v", got)
	}

	// A ball rolling up the screen needs a shot aimed above it
	if got := LeadAngle(cannon, ball, Vec2{Y: -3}, &cfg, 10); got <= 0 {
		t.Errorf("Expected positive lead angle, got %v", got)
	}
}
