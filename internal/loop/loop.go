// Package loop runs a session through start, play, game over and replay.
// Front ends feed it keys and typed runes, call Update every frame and hand
// it a Surface to Draw on. Everything happens on the caller's goroutine.
package loop

import (
	"log"
	"strings"
	"time"
	"unicode"

	"golang.org/x/exp/rand"

	"gridsnake/internal/difficulty"
	"gridsnake/internal/game"
	"gridsnake/internal/render"
	"gridsnake/internal/schedule"
	"gridsnake/internal/scores"
	"gridsnake/internal/sound"
)

const maxNameLen = 16

// Options wires the loop's collaborators. Zero fields get working defaults.
type Options struct {
	Clock     schedule.Clock
	Renderer  *render.Renderer
	Sound     sound.Player
	Scores    *scores.Store
	OverDelay time.Duration
}

// Loop owns one session and the single pending tick that advances it.
type Loop struct {
	session  *game.Session
	clock    schedule.Clock
	sched    *schedule.Scheduler
	renderer *render.Renderer
	sound    sound.Player
	scores   *scores.Store

	overDelay  time.Duration
	overAt     time.Time
	paused     bool
	askingName bool
	name       []rune
}

// New returns a loop waiting on the start screen.
func New(s *game.Session, opts Options) *Loop {
	if opts.Clock == nil {
		opts.Clock = schedule.SystemClock{}
	}
	if opts.Sound == nil {
		opts.Sound = sound.Nop{}
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New(rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))
	}
	return &Loop{
		session:   s,
		clock:     opts.Clock,
		sched:     schedule.New(opts.Clock, s.Profile.Interval()),
		renderer:  opts.Renderer,
		sound:     opts.Sound,
		scores:    opts.Scores,
		overDelay: opts.OverDelay,
	}
}

func (l *Loop) Session() *game.Session { return l.session }
func (l *Loop) Status() game.Status { return l.session.Status }
func (l *Loop) Paused() bool { return l.paused }

// Start begins play from the start screen with the selected difficulty.
func (l *Loop) Start() {
	s := l.session
	if !s.Start() {
		return
	}
	log.Printf("session %s started: mode=%s difficulty=%s tps=%d", s.ID, s.Mode, s.Profile.Name, s.Profile.TicksPerSecond)
	l.run()
}

func (l *Loop) run() {
	l.paused = false
	l.sched.SetInterval(l.session.Profile.Interval())
	l.sched.Arm()
	l.sound.Music(true)
}

// SelectDifficulty changes the profile while on the start screen.
func (l *Loop) SelectDifficulty(name string) {
	if l.session.Status != game.NotStarted {
		return
	}
	if !l.session.SelectDifficulty(name) {
		log.Printf("unknown difficulty %q, keeping %s", name, l.session.Profile.Name)
	}
}

// Key handles a non-text key press.
func (l *Loop) Key(k game.Key) {
	s := l.session
	switch s.Status {
	case game.NotStarted:
		if d, ok := k.Direction(); ok {
			s.Steer(d)
			return
		}
		switch k {
		case game.KeyConfirm:
			l.Start()
		case game.KeyCycleDifficulty:
			l.SelectDifficulty(difficulty.Next(s.Profile.Name))
		}
	case game.Running:
		if d, ok := k.Direction(); ok {
			s.Steer(d)
			return
		}
		if k == game.KeyPause {
			l.togglePause()
		}
	case game.AwaitingReplay:
		if !l.askingName {
			return
		}
		switch k {
		case game.KeyBackspace:
			if n := len(l.name); n > 0 {
				l.name = l.name[:n-1]
			}
		case game.KeyConfirm:
			l.askingName = false
			s.Player = strings.TrimSpace(string(l.name))
		}
	}
}

// Rune handles typed text: difficulty digits, the player name and y/n.
func (l *Loop) Rune(r rune) {
	s := l.session
	switch s.Status {
	case game.NotStarted:
		names := difficulty.Names()
		if i := int(r - '1'); i >= 0 && i < len(names) {
			l.SelectDifficulty(names[i])
		}
	case game.AwaitingReplay:
		if l.askingName {
			if unicode.IsPrint(r) && len(l.name) < maxNameLen {
				l.name = append(l.name, r)
			}
			return
		}
		switch unicode.ToLower(r) {
		case 'y':
			l.answer(true)
		case 'n':
			l.answer(false)
		}
	}
}

func (l *Loop) togglePause() {
	l.paused = !l.paused
	if l.paused {
		l.sched.Stop()
	} else {
		l.sched.Arm()
	}
	l.sound.Music(!l.paused)
}

// Update fires the pending tick when it is due and moves from the game-over
// banner to the replay prompt once the delay has passed.
func (l *Loop) Update() {
	switch l.session.Status {
	case game.Running:
		if l.sched.Due() {
			l.tick()
		}
	case game.GameOver:
		if !l.clock.Now().Before(l.overAt) {
			l.session.Status = game.AwaitingReplay
			l.askingName = true
			l.name = l.name[:0]
		}
	}
}

// tick is one step plus its frame. The next tick is armed only afterwards.
func (l *Loop) tick() {
	s := l.session
	res := s.Advance()
	if res.Ate {
		l.sound.Eat()
	}
	if res.Terminal {
		s.Status = game.GameOver
		l.overAt = l.clock.Now().Add(l.overDelay)
		l.sound.Music(false)
		l.sound.Crash()
		log.Printf("session %s over: %s collision at (%d,%d), score %d", s.ID, res.Cause, s.Snake.Head.X, s.Snake.Head.Y, s.Score)
		return
	}
	l.renderer.Roll()
	s.CommitBody()
	l.sched.Arm()
}

func (l *Loop) answer(again bool) {
	s := l.session
	l.record()
	if !again {
		s.Status = game.Ended
		l.sched.Stop()
		log.Printf("session %s: player declined replay", s.ID)
		return
	}
	s.Reset()
	s.Status = game.Running
	log.Printf("session %s: replay at %s", s.ID, s.Profile.Name)
	l.run()
}

func (l *Loop) record() {
	if l.scores == nil {
		return
	}
	s := l.session
	err := l.scores.Add(scores.Record{
		ID:         s.ID,
		Name:       s.Player,
		Score:      s.Score,
		Mode:       s.Mode,
		Difficulty: s.Profile.Name,
		Duration:   s.Elapsed,
		At:         l.clock.Now(),
	})
	if err != nil {
		log.Printf("save score: %v", err)
	}
}

// HighScore is the best recorded score, zero without a score table.
func (l *Loop) HighScore() int {
	if l.scores == nil {
		return 0
	}
	return l.scores.Best()
}

// Draw renders the current state.
func (l *Loop) Draw(dst render.Surface) {
	s := l.session
	r := l.renderer
	switch s.Status {
	case game.NotStarted:
		r.Title(dst, s.Grid, render.TitleView{Mode: s.Mode, Difficulty: s.Profile.Name, HighScore: l.HighScore()})
	case game.Running:
		r.Frame(dst, s)
		r.HUD(dst, s, l.paused)
	case game.GameOver, game.AwaitingReplay:
		r.Frame(dst, s)
		r.HUD(dst, s, false)
		r.Banner(dst, s.Grid, "Game Over!")
		if s.Status == game.AwaitingReplay {
			r.Prompt(dst, s.Grid, render.PromptView{AskingName: l.askingName, Name: string(l.name), Score: s.Score})
		}
	case game.Ended:
		r.Goodbye(dst, s.Grid, s.Player)
	}
}
