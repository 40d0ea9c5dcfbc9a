package game

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

const frame = time.Second / 60

func newTestMatch(t *testing.T, cfg Config, left, right Strategy) *Match {
	t.Helper()
	m, err := NewMatch(cfg, left, right, Options{Rand: stubRand{0.5}})
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	return m
}

func hasEvent(events []Event, kind EventKind, side SideID) bool {
	for _, e := range events {
		if e.Kind == kind && e.Side == side {
			return true
		}
	}
	return false
}

func TestNewMatch(t *testing.T) {
	cfg := DefaultConfig()
	m := newTestMatch(t, cfg, HoldFire, HoldFire)
	st := m.Snapshot()

	if st.Ball.Pos != cfg.Center() || !st.Ball.Stopped() {
		t.Errorf("Expected stationary ball on the centre spot, got %+v", st.Ball)
	}
	if st.Countdown != cfg.GameSeconds {
		t.Errorf("Expected countdown %d, got %d", cfg.GameSeconds, st.Countdown)
	}
	if st.Sides[SideLeft].Angle != 0 || st.Sides[SideRight].Angle != 180 {
		t.Errorf("Expected angles 0 and 180, got %v and %v", st.Sides[SideLeft].Angle, st.Sides[SideRight].Angle)
	}
	for _, s := range st.Sides {
		if s.PowerAmmo != cfg.PowerAmmo || s.PrecisionAmmo != cfg.PrecisionAmmo {
			t.Errorf("Expected full ammo for %s, got %d/%d", s.ID, s.PowerAmmo, s.PrecisionAmmo)
		}
	}
	if st.Sides[SideLeft].Cannon != (Vec2{X: 50, Y: 300}) || st.Sides[SideRight].Cannon != (Vec2{X: 750, Y: 300}) {
		t.Errorf("Unexpected cannon positions %+v %+v", st.Sides[SideLeft].Cannon, st.Sides[SideRight].Cannon)
	}
}

func TestNewMatchErrors(t *testing.T) {
	if _, err := NewMatch(DefaultConfig(), nil, HoldFire, Options{}); err == nil {
		t.Error("Expected error for missing strategy")
	}

	cfg := DefaultConfig()
	cfg.Friction = 2
	if _, err := NewMatch(cfg, HoldFire, HoldFire, Options{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestMatchFirstSolicitation(t *testing.T) {
	calls := 0
	counting := StrategyFunc(func(context.Context, ShotInput) (*Shot, error) {
		calls++
		return nil, nil
	})
	m := newTestMatch(t, DefaultConfig(), counting, HoldFire)

	for i := 0; i < 5; i++ {
		m.Tick(context.Background(), 100*time.Millisecond)
	}
	if calls != 0 {
		t.Errorf("Expected no calls before the turn delay, got %d", calls)
	}

	m.Tick(context.Background(), 100*time.Millisecond)
	if calls != 1 {
		t.Errorf("Expected one call at the turn delay, got %d", calls)
	}
}

func TestMatchShotMovesBall(t *testing.T) {
	fired := false
	var seen ShotInput
	left := StrategyFunc(func(_ context.Context, in ShotInput) (*Shot, error) {
		if fired {
			return nil, nil
		}
		fired = true
		seen = in
		return &Shot{Angle: 0, Power: 20, Type: BulletPower}, nil
	})
	cfg := DefaultConfig()
	m := newTestMatch(t, cfg, left, HoldFire)

	hit := false
	for i := 0; i < 300 && !hit; i++ {
		m.Tick(context.Background(), frame)
		hit = hasEvent(m.Events(), EventHit, SideLeft)
	}

	if !hit {
		t.Fatal("Expected the shot to hit the ball")
	}
	if seen.Cannon != (Vec2{X: 50, Y: 300}) || seen.PowerAmmo != cfg.PowerAmmo {
		t.Errorf("Unexpected strategy input %+v", seen)
	}

	st := m.Snapshot()
	want := 20 * cfg.PowerIncrement * cfg.PowerMultiplier
	if math.Abs(st.Ball.Vel.X-want) > 1e-9 {
		t.Errorf("Expected vx %v, got %v", want, st.Ball.Vel.X)
	}
	if st.Ball.Vel.Y != 0 {
		t.Errorf("Expected vy 0, got %v", st.Ball.Vel.Y)
	}
	left0 := st.Sides[SideLeft]
	if left0.PowerAmmo != cfg.PowerAmmo-1 || left0.AmmoUsed != 1 {
		t.Errorf("Expected one power bullet used, got ammo=%d used=%d", left0.PowerAmmo, left0.AmmoUsed)
	}
	if len(st.Projectiles) != 0 {
		t.Errorf("Expected projectile consumed, got %d", len(st.Projectiles))
	}
}

func TestMatchGoal(t *testing.T) {
	tests := []struct {
		name   string
		x, vx  float64
		scorer SideID
	}{
		{"left goal line", 22, -3, SideRight},
		{"right goal line", 778, 3, SideLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.WinningScore = 3
			m := newTestMatch(t, cfg, HoldFire, HoldFire)
			m.ball.Pos = Vec2{X: tt.x, Y: 300}
			m.ball.Vel = Vec2{X: tt.vx}
			m.sides[SideLeft].PowerAmmo = 1
			m.sides[SideRight].PrecisionAmmo = 0
			m.projectiles = append(m.projectiles, Projectile{Pos: Vec2{X: 200, Y: 200}})

			m.Tick(context.Background(), frame)

			st := m.Snapshot()
			if st.Sides[tt.scorer].Score != 1 || st.Sides[tt.scorer.Opponent()].Score != 0 {
				t.Errorf("Expected %s to score, got %d-%d", tt.scorer, st.Sides[SideLeft].Score, st.Sides[SideRight].Score)
			}
			if !hasEvent(m.Events(), EventGoal, tt.scorer) {
				t.Error("Expected goal event")
			}
			if st.Ball.Pos != (Vec2{X: 400, Y: 350}) || !st.Ball.Stopped() {
				t.Errorf("Expected ball at the second reset position, got %+v", st.Ball)
			}
			if st.Round != 1 {
				t.Errorf("Expected round 1, got %d", st.Round)
			}
			if len(st.Projectiles) != 0 {
				t.Errorf("Expected projectiles cleared, got %d", len(st.Projectiles))
			}
			for _, s := range st.Sides {
				if s.PowerAmmo != cfg.PowerAmmo || s.PrecisionAmmo != cfg.PrecisionAmmo {
					t.Errorf("Expected %s refilled, got %d/%d", s.ID, s.PowerAmmo, s.PrecisionAmmo)
				}
			}
			if st.Over {
				t.Error("Expected match to continue")
			}
		})
	}
}

func TestMatchGoalEndsGame(t *testing.T) {
	m := newTestMatch(t, DefaultConfig(), HoldFire, HoldFire)
	m.ball.Pos = Vec2{X: 21, Y: 300}
	m.ball.Vel = Vec2{X: -2}

	m.Tick(context.Background(), frame)

	if !m.Over() {
		t.Fatal("Expected game over at the winning score")
	}
	if m.Winner() != SideRight {
		t.Errorf("Expected right to win, got %s", m.Winner())
	}
	if !hasEvent(m.Events(), EventGameOver, SideRight) {
		t.Error("Expected game over event")
	}

	// Nothing moves once the match is over
	m.ball.Vel = Vec2{X: 5}
	before := m.Snapshot()
	m.Tick(context.Background(), frame)
	after := m.Snapshot()
	if after.Ball.Pos != before.Ball.Pos || after.Tick != before.Tick {
		t.Errorf("Expected frozen state after game over, got %+v", after.Ball)
	}
}

func TestMatchCountdown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GameSeconds = 3
	m := newTestMatch(t, cfg, HoldFire, HoldFire)

	for i := 0; i < 3; i++ {
		m.Tick(context.Background(), 400*time.Millisecond)
	}
	if got := m.Snapshot().Countdown; got != 2 {
		t.Errorf("Expected countdown 2 after 1.2s, got %d", got)
	}

	m.Tick(context.Background(), 800*time.Millisecond)
	if got := m.Snapshot().Countdown; got != 1 {
		t.Errorf("Expected countdown 1 after 2s, got %d", got)
	}
	if m.Over() {
		t.Fatal("Expected match still running")
	}

	m.Tick(context.Background(), time.Second)
	if !m.Over() {
		t.Error("Expected game over when the countdown reaches zero")
	}
	if m.Snapshot().Countdown != 0 {
		t.Errorf("Expected countdown 0, got %d", m.Snapshot().Countdown)
	}
}

func TestMatchStalemate(t *testing.T) {
	tests := []struct {
		name       string
		ballX      float64
		usedL      int
		usedR      int
		wantScorer SideID
	}{
		{"ball near right cannon", 600, 0, 0, SideLeft},
		{"ball near left cannon", 150, 0, 0, SideRight},
		{"equidistant, left used fewer", 400, 3, 5, SideLeft},
		{"equidistant, right used fewer", 400, 5, 3, SideRight},
		{"fully tied", 400, 4, 4, SideRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.WinningScore = 3
			m := newTestMatch(t, cfg, HoldFire, HoldFire)
			m.ball.Pos = Vec2{X: tt.ballX, Y: 300}
			for _, s := range m.sides {
				s.PowerAmmo, s.PrecisionAmmo = 0, 0
			}
			m.sides[SideLeft].AmmoUsed = tt.usedL
			m.sides[SideRight].AmmoUsed = tt.usedR

			m.Tick(context.Background(), frame)

			if m.sides[tt.wantScorer].Score != 1 || m.sides[tt.wantScorer.Opponent()].Score != 0 {
				t.Errorf("Expected %s to score, got %d-%d", tt.wantScorer, m.sides[SideLeft].Score, m.sides[SideRight].Score)
			}
			if !hasEvent(m.Events(), EventStalemate, tt.wantScorer) {
				t.Error("Expected stalemate event")
			}
			if m.sides[SideLeft].OutOfAmmo() {
				t.Error("Expected ammo refilled after the stalemate")
			}
		})
	}
}

func TestMatchStalemateIgnoresLiveShots(t *testing.T) {
	tests := []struct {
		name     string
		charging bool
		inFlight bool
	}{
		{"shot charging", true, false},
		{"shot in flight", false, true},
		{"both", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.WinningScore = 3
			m := newTestMatch(t, cfg, HoldFire, HoldFire)
			m.ball.Pos = Vec2{X: 600, Y: 300}
			for _, s := range m.sides {
				s.PowerAmmo, s.PrecisionAmmo = 0, 0
			}
			if tt.charging {
				m.sides[SideLeft].Pending = &Shot{Angle: 0, Power: 30, Type: BulletPower}
			}
			if tt.inFlight {
				m.projectiles = append(m.projectiles, Projectile{Pos: Vec2{X: 100, Y: 100}, Angle: 0, Owner: SideLeft})
			}

			m.Tick(context.Background(), frame)

			if m.sides[SideLeft].Score != 1 || m.sides[SideRight].Score != 0 {
				t.Errorf("Expected left to score at once, got %d-%d", m.sides[SideLeft].Score, m.sides[SideRight].Score)
			}
			if !hasEvent(m.Events(), EventStalemate, SideLeft) {
				t.Error("Expected stalemate event")
			}
			st := m.Snapshot()
			if len(st.Projectiles) != 0 || st.Sides[SideLeft].Pending != nil {
				t.Errorf("Expected live shots discarded, got %d projectiles pending=%v", len(st.Projectiles), st.Sides[SideLeft].Pending)
			}
		})
	}
}

func TestMatchWinnerTieBreaks(t *testing.T) {
	tests := []struct {
		name          string
		scoreL, usedL int
		scoreR, usedR int
		want          SideID
	}{
		{"left scores more", 2, 9, 1, 0, SideLeft},
		{"right scores more", 0, 0, 1, 9, SideRight},
		{"tie, left used fewer", 1, 2, 1, 3, SideLeft},
		{"tie, right used fewer", 1, 3, 1, 2, SideRight},
		{"full tie", 1, 3, 1, 3, SideRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMatch(t, DefaultConfig(), HoldFire, HoldFire)
			m.sides[SideLeft].Score, m.sides[SideLeft].AmmoUsed = tt.scoreL, tt.usedL
			m.sides[SideRight].Score, m.sides[SideRight].AmmoUsed = tt.scoreR, tt.usedR

			if got := m.Winner(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestMatchRestart(t *testing.T) {
	m := newTestMatch(t, DefaultConfig(), HoldFire, HoldFire)
	m.ball.Pos = Vec2{X: 779, Y: 300}
	m.ball.Vel = Vec2{X: 2}
	m.sides[SideRight].AmmoUsed = 4
	m.Tick(context.Background(), frame)
	if !m.Over() {
		t.Fatal("Expected game over")
	}

	m.Restart()

	st := m.Snapshot()
	if st.Over {
		t.Error("Expected match running after restart")
	}
	for _, s := range st.Sides {
		if s.Score != 0 || s.AmmoUsed != 0 {
			t.Errorf("Expected %s reset, got score=%d used=%d", s.ID, s.Score, s.AmmoUsed)
		}
	}
	if st.Countdown != m.cfg.GameSeconds || st.Round != 1 {
		t.Errorf("Expected countdown %d round 1, got %d round %d", m.cfg.GameSeconds, st.Countdown, st.Round)
	}
	if !hasEvent(m.Events(), EventRestart, SideLeft) {
		t.Error("Expected restart event")
	}
}

func TestMatchAmmoConservation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TurnDelay = 0
	greedy := StrategyFunc(func(context.Context, ShotInput) (*Shot, error) {
		return &Shot{Angle: 90, Power: 1, Type: BulletPrecision}, nil
	})
	m := newTestMatch(t, cfg, greedy, HoldFire)

	for i := 0; i < 200; i++ {
		m.Tick(context.Background(), frame)
		s := m.sides[SideLeft]
		if s.PrecisionAmmo < 0 {
			t.Fatalf("Ammo went negative: %d", s.PrecisionAmmo)
		}
		if s.PrecisionAmmo+s.AmmoUsed != cfg.PrecisionAmmo {
			t.Fatalf("Expected remaining+used=%d, got %d+%d", cfg.PrecisionAmmo, s.PrecisionAmmo, s.AmmoUsed)
		}
	}
	if m.sides[SideLeft].PrecisionAmmo != 0 {
		t.Errorf("Expected precision ammo exhausted, got %d", m.sides[SideLeft].PrecisionAmmo)
	}
}
