// Package config collects the command-line settings for a run.
package config

import (
	"flag"
	"fmt"
	"time"

	"gridsnake/internal/difficulty"
	"gridsnake/internal/game"
)

// Front ends.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Config is everything main needs to build a loop and a front end.
type Config struct {
	Frontend     string
	Tiles        int
	BoardPixels  float64
	Mode         string
	Difficulty   string
	StartLength  int
	ScaledGrowth bool
	OverDelay    time.Duration
	Seed         uint64
	ScoresFile   string
	ShowScores   bool
	Mute         bool
}

// Default returns the stock 30×30 board on a 600-unit canvas.
func Default() Config {
	return Config{
		Frontend:    FrontendWindow,
		Tiles:       30,
		BoardPixels: 600,
		Mode:        "classic",
		Difficulty:  difficulty.Default,
		StartLength: 2,
		OverDelay:   time.Second,
		ScoresFile:  "snake_highscore.json",
	}
}

// RegisterFlags binds c's fields to fs with c's current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "window or terminal")
	fs.IntVar(&c.Tiles, "tiles", c.Tiles, "tiles per board edge")
	fs.Float64Var(&c.BoardPixels, "board", c.BoardPixels, "board edge in logical pixels")
	fs.StringVar(&c.Mode, "mode", c.Mode, "game mode (classic)")
	fs.StringVar(&c.Difficulty, "difficulty", c.Difficulty, "easy, normal or hard")
	fs.IntVar(&c.StartLength, "length", c.StartLength, "starting body length")
	fs.BoolVar(&c.ScaledGrowth, "scaled-growth", c.ScaledGrowth, "grow by the difficulty's step instead of one segment")
	fs.DurationVar(&c.OverDelay, "over-delay", c.OverDelay, "pause between the game-over banner and the replay prompt")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for time based")
	fs.StringVar(&c.ScoresFile, "scores-file", c.ScoresFile, "high-score file, empty to disable")
	fs.BoolVar(&c.ShowScores, "scores", c.ShowScores, "print the high-score table and exit")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
}

// Validate rejects settings the game cannot run with. An unknown difficulty
// is not an error; the session keeps its default profile.
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.Tiles < 2 {
		return fmt.Errorf("tiles must be at least 2, got %d", c.Tiles)
	}
	if c.BoardPixels <= 0 {
		return fmt.Errorf("board must be positive, got %v", c.BoardPixels)
	}
	if c.StartLength < 0 {
		return fmt.Errorf("length must not be negative, got %d", c.StartLength)
	}
	if c.OverDelay < 0 {
		return fmt.Errorf("over-delay must not be negative, got %v", c.OverDelay)
	}
	return nil
}

// Settings is the session part of c.
func (c Config) Settings() game.Settings {
	return game.Settings{
		Tiles:        c.Tiles,
		BoardPixels:  c.BoardPixels,
		Mode:         c.Mode,
		Difficulty:   c.Difficulty,
		StartLength:  c.StartLength,
		ScaledGrowth: c.ScaledGrowth,
	}
}

// SeedOr returns the configured seed, or fallback when none was given.
func (c Config) SeedOr(fallback uint64) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return fallback
}
