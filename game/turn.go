package game

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// TurnCoordinator asks each side's strategy for a shot once its cooldown
// has elapsed and it is not already charging.
type TurnCoordinator struct {
	strategies [2]Strategy
	teams      [2]string
	delay      time.Duration
	budget     time.Duration
	logger     *log.Logger
}

// NewTurnCoordinator creates a coordinator for the left and right strategies
func NewTurnCoordinator(left, right Strategy, cfg *Config, logger *log.Logger) *TurnCoordinator {
	return &TurnCoordinator{
		strategies: [2]Strategy{left, right},
		teams:      [2]string{teamName(left), teamName(right)},
		delay:      cfg.TurnDelay,
		budget:     cfg.StrategyBudget,
		logger:     logger,
	}
}

// Ready reports whether side may be asked for a shot at match time now
func (tc *TurnCoordinator) Ready(side *Side, now time.Duration) bool {
	return !side.Charging() && CanShoot(now, side.LastShot, tc.delay)
}

// Poll calls the side's strategy. Errors, panics and budget overruns all
// come back as a nil shot.
func (tc *TurnCoordinator) Poll(ctx context.Context, id SideID, in ShotInput) (shot *Shot) {
	if tc.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, tc.budget)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			tc.logger.Debug("strategy panicked", "side", id, "team", tc.teams[id], "panic", r)
			shot = nil
		}
	}()

	s, err := tc.strategies[id].Decide(ctx, in)
	if err != nil {
		tc.logger.Debug("strategy failed", "side", id, "team", tc.teams[id], "err", err)
		return nil
	}
	if s == nil {
		return nil
	}
	if ctx.Err() != nil {
		tc.logger.Debug("strategy overran its budget", "side", id, "team", tc.teams[id], "budget", tc.budget)
		return nil
	}
	return s
}

// teamName labels a strategy in logs. Script teams report their registered
// name, Go strategies their type.
func teamName(s Strategy) string {
	if named, ok := s.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", s)
}
