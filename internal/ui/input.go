package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/combat"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/game"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

// keyDirection maps WASD and the arrow keys to a direction.
func keyDirection(key tcell.Key, r rune) world.Direction {
	switch key {
	case tcell.KeyUp:
		return world.North
	case tcell.KeyDown:
		return world.South
	case tcell.KeyLeft:
		return world.West
	case tcell.KeyRight:
		return world.East
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return world.North
		case 's', 'S':
			return world.South
		case 'a', 'A':
			return world.West
		case 'd', 'D':
			return world.East
		}
	}
	return world.NoDirection
}

// keyArrow maps the arrow keys to defense arrows.
func keyArrow(key tcell.Key) (combat.Arrow, bool) {
	switch key {
	case tcell.KeyUp:
		return combat.ArrowUp, true
	case tcell.KeyDown:
		return combat.ArrowDown, true
	case tcell.KeyLeft:
		return combat.ArrowLeft, true
	case tcell.KeyRight:
		return combat.ArrowRight, true
	}
	return 0, false
}

// handleKey dispatches one key press to the session according to its state.
func (a *App) handleKey(ctx context.Context, key tcell.Key, r rune) {
	if key == tcell.KeyCtrlC {
		a.session.Quit()
		return
	}

	v := a.session.Snapshot()
	a.syncState(v.State)

	switch {
	case v.State == game.StateMainMenu:
		a.session.Start()
	case v.CommandMode:
		a.handleCommandKey(key, r)
	case v.State == game.StateCombat:
		a.handleCombatKey(v, key, r)
	case v.State == game.StateShopping:
		a.handleShopKey(key, r)
	default:
		a.handleExploreKey(ctx, v, key, r)
	}
}

func (a *App) handleCommandKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEnter:
		a.session.SubmitCommand(string(a.command))
		a.command = a.command[:0]
	case tcell.KeyEscape:
		a.session.CancelCommand()
		a.command = a.command[:0]
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.command) > 0 {
			a.command = a.command[:len(a.command)-1]
		}
	case tcell.KeyRune:
		a.command = append(a.command, r)
	}
}

func (a *App) handleCombatKey(v game.View, key tcell.Key, r rune) {
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		a.session.Quit()
		return
	}
	switch v.Combat.Phase {
	case combat.PhaseAttack:
		if key == tcell.KeyRune && r == ' ' {
			a.strike()
		}
	case combat.PhaseDefense:
		if arrow, ok := keyArrow(key); ok {
			a.pressArrow(arrow)
		}
	}
}

func (a *App) handleShopKey(key tcell.Key, r rune) {
	switch {
	case key == tcell.KeyEscape:
		a.session.ExitDialog()
	case key != tcell.KeyRune:
	case r == 'e' || r == 'E':
		a.session.ExitDialog()
	case r >= '1' && r <= '9':
		a.session.Buy(int(r - '1'))
	}
}

func (a *App) handleExploreKey(ctx context.Context, v game.View, key tcell.Key, r rune) {
	if a.examining {
		a.examining = false
		a.session.Examine(keyDirection(key, r))
		return
	}

	if key == tcell.KeyEnter && v.State == game.StateWorldSelect {
		a.session.ConfirmSpawn(ctx)
		return
	}
	if key == tcell.KeyEscape {
		a.session.Quit()
		return
	}
	if dir := keyDirection(key, r); dir != world.NoDirection {
		if v.State == game.StateWorldSelect {
			a.session.SelectCell(dir)
		} else {
			a.session.Move(ctx, dir)
		}
		return
	}
	if key != tcell.KeyRune {
		return
	}

	switch r {
	case 'q', 'Q':
		a.session.Quit()
	case 'c', 'C':
		a.command = a.command[:0]
		a.session.EnterCommandMode()
	case 'm', 'M':
		a.session.ToggleMapMode()
	case 'e', 'E':
		// The next key picks the direction; any other key examines the
		// player's own tile.
		if v.State != game.StateWorldSelect && !v.MapMode {
			a.examining = true
		}
	case 'i', 'I':
		a.session.OpenInventory()
	case 't', 'T':
		a.session.CheckTime()
	}
}
