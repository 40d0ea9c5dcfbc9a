package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cannonfootball/game"
	"cannonfootball/sound"
	"cannonfootball/tui"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

func main() {
	// Parse command line flags
	left := flag.String("left", "lead", "team for the left side")
	right := flag.String("right", "spray", "team for the right side")
	teamsDir := flag.String("teams", "", "directory of *.js team scripts")
	configPath := flag.String("config", "", "TOML file overriding the default rules")
	matches := flag.Int("matches", 1, "number of matches to simulate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	useTUI := flag.Bool("tui", false, "watch the match live in the terminal")
	useSound := flag.Bool("sound", false, "play sound cues")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	tracePath := flag.String("trace", "", "write an execution trace to this file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "headless",
	})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal("invalid log level", "level", *logLevel, "err", err)
	}
	logger.SetLevel(level)

	// The terminal UI owns the screen
	if *useTUI {
		logger.SetOutput(io.Discard)
	}

	cfg := game.DefaultConfig()
	if *configPath != "" {
		cfg, err = game.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal("failed to load config", "err", err)
		}
	}

	registry, err := game.DefaultRegistry(cfg, *seed, *teamsDir)
	if err != nil {
		logger.Fatal("failed to load teams", "err", err)
	}
	leftStrategy, rightStrategy, err := registry.Select(*left, *right)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\navailable teams: %s\n", err, strings.Join(registry.Names(), ", "))
		os.Exit(2)
	}

	m, err := game.NewMatch(cfg, leftStrategy, rightStrategy, game.Options{
		Logger: logger.With("left", *left, "right", *right),
		Rand:   rand.New(rand.NewSource(*seed)),
	})
	if err != nil {
		logger.Fatal("failed to create match", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var onEvents func([]game.Event)
	if *useSound {
		player := sound.NewPlayer(logger)
		defer player.Close()
		onEvents = player.Play
	}

	if *useTUI {
		if err := runTUI(ctx, m, onEvents); err != nil {
			fmt.Fprintf(os.Stderr, "terminal error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	stopProfiling, err := startProfiling(*cpuProfile, *tracePath)
	if err != nil {
		logger.Fatal("failed to start profiling", "err", err)
	}
	defer stopProfiling()

	logger.Info("starting simulation", "left", *left, "right", *right, "matches", *matches, "seed", *seed)
	wins := simulate(ctx, m, *matches, onEvents, logger)
	fmt.Printf("%s (left): %d wins\n", *left, wins[game.SideLeft])
	fmt.Printf("%s (right): %d wins\n", *right, wins[game.SideRight])
}

func runTUI(ctx context.Context, m *game.Match, onEvents func([]game.Event)) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	err = tui.Run(ctx, screen, m, tui.RunOptions{OnEvents: onEvents})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// simulate plays matches back to back at the fixed tick rate and returns the
// number of wins per side.
func simulate(ctx context.Context, m *game.Match, matches int, onEvents func([]game.Event), logger *log.Logger) map[game.SideID]int {
	wins := make(map[game.SideID]int)
	dt := m.Config().TickDuration()

	for i := 0; i < matches; i++ {
		if i > 0 {
			m.Restart()
		}
		for !m.Over() && ctx.Err() == nil {
			m.Tick(ctx, dt)
			if onEvents != nil {
				onEvents(m.Events())
			}
		}
		if !m.Over() {
			logger.Warn("simulation interrupted", "completed", i)
			break
		}

		st := m.Snapshot()
		wins[st.Winner]++
		logger.Info("match finished",
			"match", i+1,
			"winner", st.Winner,
			"score", fmt.Sprintf("%d-%d", st.Sides[game.SideLeft].Score, st.Sides[game.SideRight].Score),
			"bullets", fmt.Sprintf("%d-%d", st.Sides[game.SideLeft].AmmoUsed, st.Sides[game.SideRight].AmmoUsed),
			"ticks", st.Tick)
	}
	return wins
}
