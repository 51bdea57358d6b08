package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"gridsnake/internal/config"
	"gridsnake/internal/frontend/gui"
	"gridsnake/internal/frontend/term"
	"gridsnake/internal/game"
	"gridsnake/internal/loop"
	"gridsnake/internal/render"
	"gridsnake/internal/scores"
	"gridsnake/internal/sound"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	store, err := scores.Open(cfg.ScoresFile)
	if err != nil {
		// Play on with an in-memory table rather than refuse to start.
		log.Printf("high scores unavailable: %v", err)
		store, _ = scores.Open("")
	}
	if cfg.ShowScores {
		fmt.Println(scores.Table(store.Top(scores.DefaultLimit)))
		return
	}

	seed := cfg.SeedOr(uint64(time.Now().UnixNano()))
	session := game.NewSession(cfg.Settings(), rand.New(rand.NewSource(seed)))
	if session.Profile.Name != cfg.Difficulty {
		log.Printf("unknown difficulty %q, using %s", cfg.Difficulty, session.Profile.Name)
	}

	// The terminal front end owns stdout, so logs go to a file there.
	if cfg.Frontend == config.FrontendTerminal {
		f, err := os.OpenFile("snake.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	player := newSound(cfg)
	defer player.Close()

	l := loop.New(session, loop.Options{
		Renderer:  render.New(rand.New(rand.NewSource(seed + 1))),
		Sound:     player,
		Scores:    store,
		OverDelay: cfg.OverDelay,
	})

	switch cfg.Frontend {
	case config.FrontendTerminal:
		err = term.Run(l)
	default:
		err = gui.Run(l, "Snake - Go + Ebiten")
	}
	if err != nil {
		log.Fatal(err)
	}
}

func newSound(cfg config.Config) sound.Player {
	if cfg.Mute {
		return sound.Nop{}
	}
	var (
		p   sound.Player
		err error
	)
	switch cfg.Frontend {
	case config.FrontendTerminal:
		p, err = sound.NewBeep()
	default:
		p, err = sound.NewEbiten()
	}
	if err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("Audio initialization failed: %v", err)
		return sound.Nop{}
	}
	return p
}
