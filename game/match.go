package game

import (
	"context"
	"errors"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Options carries the optional collaborators of a match
type Options struct {
	// Logger receives match events. Nil discards them.
	Logger *log.Logger

	// Rand drives firing deviation and reset jitter. Nil seeds from the clock.
	Rand Rand
}

// Match is the whole simulation: two sides, the ball, projectiles in flight,
// the countdown and the score. It is not safe for concurrent use.
type Match struct {
	cfg         Config
	sides       [2]*Side
	ball        Ball
	projectiles []Projectile

	round     int
	countdown int
	second    time.Duration
	over      bool

	// clock is the accumulated match time used for shot cooldowns
	clock time.Duration
	tick  uint64

	turns      *TurnCoordinator
	collisions *CollisionSystem
	rng        Rand
	logger     *log.Logger
	events     []Event
}

// State is a copy of the match for rendering and inspection
type State struct {
	Config      Config
	Ball        Ball
	Projectiles []Projectile
	Sides       [2]Side
	Round       int
	Countdown   int
	Over        bool
	Winner      SideID
	Tick        uint64
}

// NewMatch creates a match with the ball on the centre spot and full ammunition
func NewMatch(cfg Config, left, right Strategy, opts Options) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if left == nil || right == nil {
		return nil, errors.New("both sides need a strategy")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := &Match{
		cfg:       cfg,
		countdown: cfg.GameSeconds,
		rng:       rng,
		logger:    logger,
	}
	m.sides[SideLeft] = newSide(SideLeft, &m.cfg)
	m.sides[SideRight] = newSide(SideRight, &m.cfg)
	m.ball = Ball{Pos: cfg.Center(), Radius: cfg.BallRadius}
	m.turns = NewTurnCoordinator(left, right, &m.cfg, logger)
	m.collisions = NewCollisionSystem(&m.cfg)
	return m, nil
}

// Tick advances the match by one step of dt. Strategies are called with ctx.
// Events produced by this tick are available from Events until the next call.
func (m *Match) Tick(ctx context.Context, dt time.Duration) {
	m.events = m.events[:0]
	if m.over {
		return
	}
	m.tick++
	m.clock += dt

	for _, side := range m.sides {
		m.stepSide(ctx, side)
	}

	advanceBall(&m.ball, &m.cfg)
	m.projectiles = advanceProjectiles(m.projectiles, &m.cfg)

	var hits []Projectile
	m.projectiles, hits = m.collisions.CheckCollisions(&m.ball, m.projectiles)
	for _, h := range hits {
		m.emit(EventHit, h.Owner)
	}

	m.checkGoal()
	m.advanceCountdown(dt)
	m.checkWin()
	m.checkStalemate()
}

func (m *Match) stepSide(ctx context.Context, side *Side) {
	if side.Charging() {
		if p, fired := side.Charge(&m.cfg, m.clock, m.rng); fired {
			m.projectiles = append(m.projectiles, p)
			m.emit(EventFired, side.ID)
			m.logger.Debug("shot fired", "side", side.ID, "type", p.Type, "angle", p.Angle, "power", p.Speed)
		}
		return
	}
	if !m.turns.Ready(side, m.clock) {
		return
	}
	shot := m.turns.Poll(ctx, side.ID, m.shotInput(side))
	if shot == nil {
		return
	}
	if !side.Accept(*shot) {
		m.logger.Debug("shot rejected", "side", side.ID, "type", shot.Type, "power", shot.Power)
	}
}

func (m *Match) shotInput(side *Side) ShotInput {
	return ShotInput{
		Side:          side.ID,
		Cannon:        side.Cannon,
		Ball:          m.ball.Pos,
		BallVel:       m.ball.Vel,
		PowerAmmo:     side.PowerAmmo,
		PrecisionAmmo: side.PrecisionAmmo,
	}
}

func (m *Match) checkGoal() {
	if m.over {
		return
	}
	switch {
	case m.ball.Pos.X-m.ball.Radius <= 0:
		m.award(SideRight, EventGoal)
	case m.ball.Pos.X+m.ball.Radius >= m.cfg.FieldWidth:
		m.award(SideLeft, EventGoal)
	}
}

// advanceCountdown decrements the countdown once per accumulated second of
// match time, whatever the frame rate.
func (m *Match) advanceCountdown(dt time.Duration) {
	if m.over {
		return
	}
	m.second += dt
	for m.second >= time.Second {
		m.second -= time.Second
		m.countdown--
		if m.countdown <= 0 {
			m.countdown = 0
			m.finish("time")
			return
		}
	}
}

func (m *Match) checkWin() {
	if m.over {
		return
	}
	for _, side := range m.sides {
		if side.Score >= m.cfg.WinningScore {
			m.finish("score")
			return
		}
	}
}

// checkStalemate forces a point once the ball has stopped and both sides are
// out of ammunition. Shots still charging or in flight are discarded by the
// round reset.
func (m *Match) checkStalemate() {
	if m.over || !m.ball.Stopped() {
		return
	}
	for _, side := range m.sides {
		if !side.OutOfAmmo() {
			return
		}
	}
	m.award(m.stalemateScorer(), EventStalemate)
	m.checkWin()
}

// stalemateScorer picks the side whose cannon is farther from the resting
// ball. Equal distances go to the side that used fewer bullets, then to the
// right side.
func (m *Match) stalemateScorer() SideID {
	left, right := m.sides[SideLeft], m.sides[SideRight]
	dl := math.Abs(m.ball.Pos.X - left.Cannon.X)
	dr := math.Abs(m.ball.Pos.X - right.Cannon.X)
	switch {
	case dl > dr:
		return SideLeft
	case dr > dl:
		return SideRight
	case left.AmmoUsed < right.AmmoUsed:
		return SideLeft
	default:
		return SideRight
	}
}

func (m *Match) award(scorer SideID, kind EventKind) {
	m.sides[scorer].Score++
	m.emit(kind, scorer)
	m.logger.Info("point scored",
		"side", scorer,
		"reason", kind,
		"left", m.sides[SideLeft].Score,
		"right", m.sides[SideRight].Score)
	m.resetRound()
}

// resetRound places the ball on the next position of the cycle, clears
// projectiles and refills both sides.
func (m *Match) resetRound() {
	m.round++
	positions := m.cfg.ResetPositions()
	base := positions[m.round%len(positions)]
	m.ball.Pos = Vec2{X: base.X + m.jitter(), Y: base.Y + m.jitter()}
	m.ball.Vel = Vec2{}
	m.projectiles = m.projectiles[:0]
	for _, side := range m.sides {
		side.Refill(&m.cfg)
	}
}

func (m *Match) jitter() float64 {
	j := m.cfg.ResetJitter
	if j == 0 {
		return 0
	}
	return float64(m.rng.Intn(2*j+1) - j)
}

func (m *Match) finish(reason string) {
	m.over = true
	winner := m.Winner()
	m.emit(EventGameOver, winner)
	m.logger.Info("game over",
		"reason", reason,
		"winner", winner,
		"left", m.sides[SideLeft].Score,
		"right", m.sides[SideRight].Score)
}

// Winner returns the side with the higher score. Ties go to the side that
// used fewer bullets, then to the right side.
func (m *Match) Winner() SideID {
	left, right := m.sides[SideLeft], m.sides[SideRight]
	switch {
	case left.Score > right.Score:
		return SideLeft
	case right.Score > left.Score:
		return SideRight
	case left.AmmoUsed < right.AmmoUsed:
		return SideLeft
	default:
		return SideRight
	}
}

// Over reports whether the match has ended
func (m *Match) Over() bool {
	return m.over
}

// Restart clears scores, usage counts and the countdown and starts a new
// round. Shot cooldowns keep running on the match clock.
func (m *Match) Restart() {
	m.round = 0
	m.countdown = m.cfg.GameSeconds
	m.second = 0
	m.over = false
	for _, side := range m.sides {
		side.Score = 0
		side.AmmoUsed = 0
	}
	m.resetRound()
	m.emit(EventRestart, SideLeft)
	m.logger.Info("match restarted")
}

// Events returns the events of the last tick
func (m *Match) Events() []Event {
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

func (m *Match) emit(kind EventKind, side SideID) {
	m.events = append(m.events, Event{Kind: kind, Side: side, Tick: m.tick})
}

// Config returns the rules the match runs with
func (m *Match) Config() Config {
	return m.cfg
}

// Snapshot copies the current state
func (m *Match) Snapshot() State {
	st := State{
		Config:      m.cfg,
		Ball:        m.ball,
		Projectiles: append([]Projectile(nil), m.projectiles...),
		Round:       m.round,
		Countdown:   m.countdown,
		Over:        m.over,
		Winner:      m.Winner(),
		Tick:        m.tick,
	}
	for i, side := range m.sides {
		st.Sides[i] = *side
		if side.Pending != nil {
			pending := *side.Pending
			st.Sides[i].Pending = &pending
		}
	}
	return st
}
