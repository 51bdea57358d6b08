package loop

import (
	"image/color"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"gridsnake/internal/game"
	"gridsnake/internal/grid"
	"gridsnake/internal/render"
	"gridsnake/internal/schedule"
	"gridsnake/internal/scores"
)

type countingSound struct {
	eat, crash int
	music      bool
}

func (c *countingSound) Eat() { c.eat++ }
func (c *countingSound) Crash() { c.crash++ }
func (c *countingSound) Music(on bool) { c.music = on }
func (c *countingSound) Close() {}

type recorder struct {
	rects    int
	texts    []string
	gradient []string
}

func (r *recorder) FillRect(x, y, w, h float64, c color.Color) { r.rects++ }
func (r *recorder) Text(x, y float64, s string, c color.Color) { r.texts = append(r.texts, s) }
func (r *recorder) CenterText(y float64, s string, c color.Color) { r.texts = append(r.texts, s) }
func (r *recorder) GradientText(y float64, s string, g render.Gradient) {
	r.gradient = append(r.gradient, s)
}

type fixture struct {
	loop  *Loop
	clock *schedule.ManualClock
	sound *countingSound
	store *scores.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := game.NewSession(game.Settings{
		Tiles: 30, BoardPixels: 600, Mode: "classic", Difficulty: "normal", StartLength: 2,
	}, rand.New(rand.NewSource(5)))
	s.Food.Pos = grid.Point{X: 0, Y: 0}
	store, err := scores.Open("")
	if err != nil {
		t.Fatal(err)
	}
	f := &fixture{
		clock: schedule.NewManualClock(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)),
		sound: &countingSound{},
		store: store,
	}
	f.loop = New(s, Options{
		Clock:     f.clock,
		Renderer:  render.New(rand.New(rand.NewSource(1))),
		Sound:     f.sound,
		Scores:    store,
		OverDelay: time.Second,
	})
	return f
}

// ticks advances the clock one interval at a time, updating after each.
func (f *fixture) ticks(n int) {
	for i := 0; i < n; i++ {
		f.clock.Advance(f.loop.Session().Profile.Interval())
		f.loop.Update()
	}
}

func (f *fixture) typeText(s string) {
	for _, r := range s {
		f.loop.Rune(r)
	}
}

// crash starts the session and drives it straight down into the wall.
func (f *fixture) crash(t *testing.T) {
	t.Helper()
	f.loop.Key(game.KeyDown)
	f.loop.Key(game.KeyConfirm)
	f.ticks(15)
	if st := f.loop.Status(); st != game.GameOver {
		t.Fatalf("status after 15 ticks = %v, head %v", st, f.loop.Session().Snake.Head)
	}
}

func TestNothingMovesBeforeStart(t *testing.T) {
	f := newFixture(t)
	f.loop.Key(game.KeyDown)
	f.ticks(10)
	if h := f.loop.Session().Snake.Head; h != (grid.Point{X: 15, Y: 15}) {
		t.Errorf("head moved to %v before start", h)
	}
}

func TestTickCadence(t *testing.T) {
	f := newFixture(t)
	f.loop.Key(game.KeyDown)
	f.loop.Key(game.KeyConfirm)
	if f.loop.Status() != game.Running || !f.sound.music {
		t.Fatalf("status %v music %v", f.loop.Status(), f.sound.music)
	}
	f.clock.Advance(99 * time.Millisecond)
	f.loop.Update()
	if h := f.loop.Session().Snake.Head; h.Y != 15 {
		t.Fatalf("ticked early: head %v", h)
	}
	f.clock.Advance(time.Millisecond)
	f.loop.Update()
	f.loop.Update()
	if h := f.loop.Session().Snake.Head; h.Y != 16 {
		t.Fatalf("head %v after one interval, want y=16", h)
	}
	if n := len(f.loop.Session().Snake.Body); n != 1 {
		t.Errorf("body has %d segments after one tick", n)
	}
}

func TestDifficultySelection(t *testing.T) {
	f := newFixture(t)
	f.loop.Rune('3')
	if p := f.loop.Session().Profile.Name; p != "hard" {
		t.Fatalf("profile = %s", p)
	}
	f.loop.Key(game.KeyCycleDifficulty)
	if p := f.loop.Session().Profile.Name; p != "easy" {
		t.Fatalf("profile after cycle = %s", p)
	}
	f.loop.SelectDifficulty("nightmare")
	if p := f.loop.Session().Profile.Name; p != "easy" {
		t.Fatalf("unknown difficulty changed profile to %s", p)
	}
	f.loop.Key(game.KeyConfirm)
	f.loop.Rune('2')
	if p := f.loop.Session().Profile.Name; p != "easy" {
		t.Errorf("difficulty changed mid-game to %s", p)
	}
	if got := f.loop.sched.Interval(); got != time.Second/7 {
		t.Errorf("interval = %v", got)
	}
}

func TestEatPlaysSound(t *testing.T) {
	f := newFixture(t)
	f.loop.Key(game.KeyRight)
	f.loop.Key(game.KeyConfirm)
	f.loop.Session().Food.Pos = grid.Point{X: 16, Y: 15}
	f.ticks(1)
	s := f.loop.Session()
	if f.sound.eat != 1 || s.Score != 1 || s.Snake.Length != 3 {
		t.Errorf("eat=%d score=%d length=%d", f.sound.eat, s.Score, s.Snake.Length)
	}
}

func TestPause(t *testing.T) {
	f := newFixture(t)
	f.loop.Key(game.KeyDown)
	f.loop.Key(game.KeyConfirm)
	f.loop.Key(game.KeyPause)
	f.ticks(5)
	if h := f.loop.Session().Snake.Head; h.Y != 15 || !f.loop.Paused() {
		t.Fatalf("moved while paused: %v", h)
	}
	f.loop.Key(game.KeyPause)
	f.ticks(2)
	if h := f.loop.Session().Snake.Head; h.Y != 17 {
		t.Errorf("head %v after resume, want y=17", h)
	}
}

func TestGameOverThenReplay(t *testing.T) {
	f := newFixture(t)
	f.crash(t)
	oldID := f.loop.Session().ID
	if f.sound.crash != 1 || f.sound.music {
		t.Errorf("crash=%d music=%v", f.sound.crash, f.sound.music)
	}

	// No ticks while the banner is up.
	f.clock.Advance(999 * time.Millisecond)
	f.loop.Update()
	if f.loop.Status() != game.GameOver {
		t.Fatalf("status = %v before the delay passed", f.loop.Status())
	}
	f.clock.Advance(time.Millisecond)
	f.loop.Update()
	if f.loop.Status() != game.AwaitingReplay {
		t.Fatalf("status = %v after the delay", f.loop.Status())
	}

	// Name entry swallows steering letters and y/n.
	f.typeText("ywdx")
	f.loop.Key(game.KeyBackspace)
	f.loop.Key(game.KeyUp)
	if f.loop.Status() != game.AwaitingReplay {
		t.Fatalf("typing left the prompt: %v", f.loop.Status())
	}
	f.loop.Key(game.KeyConfirm)
	f.loop.Rune('y')

	s := f.loop.Session()
	if s.Status != game.Running {
		t.Fatalf("status after yes = %v", s.Status)
	}
	if s.ID == oldID || s.Score != 0 || s.Snake.Moving() || s.Snake.Head != s.Grid.Center() || len(s.Snake.Body) != 0 {
		t.Errorf("session not reset: %+v", s)
	}
	top := f.store.Top(1)
	if len(top) != 1 || top[0].Name != "ywd" || top[0].ID != oldID || top[0].Difficulty != "normal" {
		t.Errorf("recorded %+v", top)
	}
	if !f.loop.sched.Armed() {
		t.Error("replay did not arm a tick")
	}
}

func TestGameOverThenDecline(t *testing.T) {
	f := newFixture(t)
	f.crash(t)
	f.ticks(11)
	f.loop.Key(game.KeyConfirm)
	f.loop.Rune('N')
	if f.loop.Status() != game.Ended {
		t.Fatalf("status = %v", f.loop.Status())
	}
	if f.loop.sched.Armed() {
		t.Error("ended loop still has a pending tick")
	}
	head := f.loop.Session().Snake.Head
	f.ticks(20)
	f.loop.Key(game.KeyConfirm)
	if f.loop.Status() != game.Ended || f.loop.Session().Snake.Head != head {
		t.Error("ended loop kept running")
	}
	if f.store.Top(1)[0].Name != "anonymous" {
		t.Errorf("record = %+v", f.store.Top(1))
	}
}

func TestDrawPerState(t *testing.T) {
	f := newFixture(t)

	rec := &recorder{}
	f.loop.Draw(rec)
	if len(rec.gradient) != 1 || rec.gradient[0] != "Snake!" {
		t.Errorf("title gradient = %v", rec.gradient)
	}

	f.crash(t)
	rec = &recorder{}
	f.loop.Draw(rec)
	if len(rec.gradient) != 1 || rec.gradient[0] != "Game Over!" {
		t.Errorf("game over gradient = %v", rec.gradient)
	}

	f.ticks(10)
	rec = &recorder{}
	f.loop.Draw(rec)
	found := false
	for _, s := range rec.texts {
		if s == "Enter your name: _" {
			found = true
		}
	}
	if !found {
		t.Errorf("prompt texts = %v", rec.texts)
	}
}

func TestHighScore(t *testing.T) {
	f := newFixture(t)
	if f.loop.HighScore() != 0 {
		t.Fatal("empty table has a high score")
	}
	if err := f.store.Add(scores.Record{Score: 4}); err != nil {
		t.Fatal(err)
	}
	if f.loop.HighScore() != 4 {
		t.Errorf("HighScore = %d", f.loop.HighScore())
	}
}
