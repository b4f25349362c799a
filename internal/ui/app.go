package ui

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/combat"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/game"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/logger"
)

const (
	frameInterval = time.Second / 60
	arrowTimeout  = 1500 * time.Millisecond
)

// App runs the terminal front end for a session. All session calls happen on
// the goroutine running Run; the frame ticker only posts interrupt events.
type App struct {
	screen   *Screen
	renderer *Renderer
	session  *game.Session
	now      func() time.Time

	command   []rune
	examining bool

	indicator     *combat.Indicator
	defense       []combat.Arrow
	arrowDeadline time.Time
	lastState     game.State
	animating     atomic.Bool
}

// NewApp creates the front end for a session.
func NewApp(screen *Screen, session *game.Session) *App {
	a := newApp(screen, session)
	a.screen = screen
	return a
}

func newApp(canvas Canvas, session *game.Session) *App {
	return &App{
		renderer:  NewRenderer(canvas),
		session:   session,
		now:       time.Now,
		indicator: combat.NewIndicator(),
		lastState: session.State(),
	}
}

// Run draws frames and dispatches input until the session stops running or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.tick(ctx)

	for a.session.Running() && ctx.Err() == nil {
		a.render()
		ev := a.screen.PollEvent()
		if ev == nil {
			break
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			a.handleKey(ctx, ev.Key(), ev.Rune())
		case *tcell.EventInterrupt:
			a.frame()
		case *tcell.EventResize:
			a.screen.Sync()
		}
	}
	logger.Log.WithField("session_id", a.session.ID()).Info("ui stopped")
	return nil
}

// tick wakes the event loop every frame while a combat minigame is running.
func (a *App) tick(ctx context.Context) {
	t := time.NewTicker(frameInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if a.animating.Load() {
				a.screen.Interrupt()
			}
		}
	}
}

// frame advances the combat minigames by one tick.
func (a *App) frame() {
	v := a.session.Snapshot()
	if v.Combat == nil {
		return
	}
	switch v.Combat.Phase {
	case combat.PhaseAttack:
		a.indicator.Tick()
	case combat.PhaseDefense:
		if a.now().After(a.arrowDeadline) {
			a.pressArrow(combat.ArrowMissed)
		}
	}
}

func (a *App) render() {
	v := a.session.Snapshot()
	a.syncState(v.State)
	a.renderer.Render(v, Overlay{
		Command:   string(a.command),
		Indicator: a.indicator.Value(),
		Defense:   a.defense,
	})
}

// syncState resets the minigames when combat starts.
func (a *App) syncState(s game.State) {
	if s == game.StateCombat && a.lastState != game.StateCombat {
		a.indicator = combat.NewIndicator()
		a.defense = nil
	}
	a.lastState = s
	a.animating.Store(s == game.StateCombat)
}

func (a *App) strike() {
	a.session.AttackInput(a.indicator.Value())
	a.defense = nil
	a.arrowDeadline = a.now().Add(arrowTimeout)
}

// pressArrow records one defense input and submits the sequence once it is
// complete.
func (a *App) pressArrow(arrow combat.Arrow) {
	a.defense = append(a.defense, arrow)
	a.arrowDeadline = a.now().Add(arrowTimeout)
	if len(a.defense) < combat.SequenceLength {
		return
	}
	a.session.DefenseInput(a.defense)
	a.defense = nil
	a.indicator = combat.NewIndicator()
}
