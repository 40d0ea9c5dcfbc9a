package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"cannonfootball/display"
	"cannonfootball/game"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	left := flag.String("left", "lead", "team for the left side")
	right := flag.String("right", "sniper", "team for the right side")
	teamsDir := flag.String("teams", "", "directory of *.js team scripts")
	configPath := flag.String("config", "", "TOML file overriding the default rules")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cannonfootball",
	})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal("invalid log level", "level", *logLevel, "err", err)
	}
	logger.SetLevel(level)

	config := game.DefaultConfig()
	if *configPath != "" {
		config, err = game.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal("failed to load config", "err", err)
		}
	}

	registry, err := game.DefaultRegistry(config, *seed, *teamsDir)
	if err != nil {
		logger.Fatal("failed to load teams", "err", err)
	}
	l, r, err := registry.Select(*left, *right)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\navailable teams: %s\n", err, strings.Join(registry.Names(), ", "))
		os.Exit(2)
	}

	m, err := game.NewMatch(config, l, r, game.Options{
		Logger: logger,
		Rand:   rand.New(rand.NewSource(*seed)),
	})
	if err != nil {
		logger.Fatal("failed to create match", "err", err)
	}

	ebiten.SetWindowSize(int(config.FieldWidth), int(config.FieldHeight))
	ebiten.SetWindowTitle("Cannon Football")
	ebiten.SetWindowResizable(true)

	logger.Info("kick-off", "left", *left, "right", *right)
	if err := ebiten.RunGame(display.NewGame(m, logger)); err != nil {
		logger.Fatal("game loop failed", "err", err)
	}
}
