package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/combat"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/game"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

// Layout of the exploration screen.
const (
	panelWidth = 28
	logHeight  = game.MaxEvents + 1 // events plus the prompt line
	barCells   = 40
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleCursor = tcell.StyleDefault.Reverse(true)
)

// Canvas is the drawing surface the renderer writes to. *Screen satisfies it.
type Canvas interface {
	Clear()
	Show()
	SetContent(x, y int, r rune, style tcell.Style)
	Size() (width, height int)
}

// Overlay is UI-side state that is not part of the session: the text being
// typed at the prompt and the progress of the combat minigames.
type Overlay struct {
	Command   string
	Indicator float64 // attack bar position in [0,1]
	Defense   []combat.Arrow
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Render draws one frame for the view.
func (r *Renderer) Render(v game.View, o Overlay) {
	r.canvas.Clear()
	w, h := r.canvas.Size()

	switch {
	case v.State == game.StateMainMenu:
		r.renderMenu(w, h)
	case v.State == game.StateCombat && v.Combat != nil:
		r.renderCombat(v, o, w, h)
	case v.State == game.StateShopping:
		r.renderShop(v)
	default:
		mapW, mapH := w, h
		if !v.Fullscreen {
			if v.HUDVisible {
				mapW -= panelWidth
				r.renderPanel(v, mapW+1, 0)
			}
			mapH -= logHeight
			r.renderLog(v.Events, mapH)
		}
		if v.State == game.StateWorldSelect || v.MapMode {
			r.renderWorld(v, mapW, mapH)
		} else if v.Map != nil {
			r.renderLocal(v, mapW, mapH)
		}
	}

	if v.CommandMode {
		r.text(0, h-1, "> "+o.Command+"_", styleText)
	}
	r.canvas.Show()
}

func (r *Renderer) renderMenu(w, h int) {
	r.centered(w, h/2-1, "Valdmir", styleTitle)
	r.centered(w, h/2+1, "Press any key to start", styleText)
}

// renderWorld draws the world map with the selected cell highlighted.
func (r *Renderer) renderWorld(v game.View, w, h int) {
	wm := v.World
	ox := viewportOrigin(v.Selected.X, wm.Width, w)
	oy := viewportOrigin(v.Selected.Y, wm.Height, h-1)
	for sy := 0; sy < h-1 && oy+sy < wm.Height; sy++ {
		for sx := 0; sx < w && ox+sx < wm.Width; sx++ {
			x, y := ox+sx, oy+sy
			c := wm.Cell(world.Coord{X: x, Y: y})
			info := world.Info(c.Biome.Tile())
			glyph := info.Glyph
			if c.IsTown {
				glyph = '*'
			}
			style := tcell.StyleDefault.Foreground(info.Color)
			if v.MapMode && v.Current.X == x && v.Current.Y == y {
				glyph = '@'
			}
			if v.Selected.X == x && v.Selected.Y == y {
				style = styleCursor
			}
			r.canvas.SetContent(sx, sy, glyph, style)
		}
	}
	help := "WASD select, Enter spawn"
	if v.MapMode {
		help = "WASD look around, M return"
	}
	r.text(0, h-1, help, styleDim)
}

// renderLocal draws the active map around the player.
func (r *Renderer) renderLocal(v game.View, w, h int) {
	m := v.Map
	ox := viewportOrigin(v.Player.X, m.Width(), w)
	oy := viewportOrigin(v.Player.Y, m.Height(), h)

	for y := 0; y < h && oy+y < m.Height(); y++ {
		for x := 0; x < w && ox+x < m.Width(); x++ {
			info := world.Info(m.At(ox+x, oy+y))
			r.canvas.SetContent(x, y, info.Glyph, tcell.StyleDefault.Foreground(info.Color))
		}
	}

	put := func(e game.EntityView, bold bool) {
		x, y := e.X-ox, e.Y-oy
		if x < 0 || y < 0 || x >= w || y >= h {
			return
		}
		r.canvas.SetContent(x, y, e.Glyph, tcell.StyleDefault.Foreground(e.Color).Bold(bold))
	}
	for _, vg := range v.Villagers {
		put(vg, false)
	}
	for _, e := range v.Enemies {
		put(e, false)
	}
	put(v.Player.EntityView, true)
}

func (r *Renderer) renderPanel(v game.View, x, y int) {
	p := v.Player
	place := v.Biome
	if v.State == game.StateDungeon {
		place = fmt.Sprintf("Dungeon, level %d", v.Depth)
	} else if v.State == game.StateInStructure {
		place = "Building"
	}
	lines := []string{
		fmt.Sprintf("Cell %d,%d", v.Current.X, v.Current.Y),
		place,
		fmt.Sprintf("Time %s (%s)", v.Time, v.TimeOfDay),
		"",
		fmt.Sprintf("HP %d/%d", p.HP, p.MaxHP),
		fmt.Sprintf("Level %d", p.Level),
		fmt.Sprintf("Attack %d", p.Attack),
		fmt.Sprintf("XP %d", p.XP),
		fmt.Sprintf("Gold %d", p.Gold),
		"",
		"WASD move  E examine",
		"I items  T time  M map",
		"C command  Q quit",
	}
	for i, line := range lines {
		r.text(x, y+i, line, styleText)
	}
}

func (r *Renderer) renderLog(events []string, top int) {
	for i, e := range events {
		r.text(0, top+i, e, styleText)
	}
}

func (r *Renderer) renderCombat(v game.View, o Overlay, w, h int) {
	c := v.Combat
	r.text(2, 1, "Combat with "+c.Enemy.Name, styleTitle)
	r.text(2, 3, fmt.Sprintf("Your HP: %d/%d", v.Player.HP, v.Player.MaxHP), styleText)
	r.text(2, 4, fmt.Sprintf("%s HP: %d/%d", c.Enemy.Name, c.Enemy.HP, c.Enemy.MaxHP), styleText)

	mid := h / 2
	switch c.Phase {
	case combat.PhaseAttack:
		r.text(2, mid-2, "Attack Phase: press SPACE when the indicator is at the center!", styleText)
		left := (w - barCells) / 2
		for i := 0; i < barCells; i++ {
			r.canvas.SetContent(left+i, mid, '-', styleDim)
		}
		r.canvas.SetContent(left+barCells/2, mid, '|', tcell.StyleDefault.Foreground(tcell.ColorRed))
		pos := int(o.Indicator * barCells)
		if pos >= barCells {
			pos = barCells - 1
		}
		r.canvas.SetContent(left+pos, mid, '█', tcell.StyleDefault.Foreground(tcell.ColorGreen))
	case combat.PhaseDefense:
		r.text(2, mid-2, "Defense Phase: press the arrows in sequence!", styleText)
		left := (w - len(c.Sequence)*4) / 2
		for i, a := range c.Sequence {
			style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
			if i < len(o.Defense) {
				style = styleDim
			}
			r.canvas.SetContent(left+i*4, mid, a.Rune(), style)
		}
	}
	r.renderLog(v.Events, h-game.MaxEvents)
}

func (r *Renderer) renderShop(v game.View) {
	r.text(2, 1, "Trade Menu (press a number to buy, E to exit)", styleTitle)
	r.text(2, 2, fmt.Sprintf("Gold: %d", v.Player.Gold), styleText)
	for i, item := range v.Shop {
		r.text(2, 4+i, fmt.Sprintf("%d. %s: %d gold", i+1, item.Name, item.Price), styleText)
	}
}

// text draws s starting at x, y, clipped by the canvas.
func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	i := 0
	for _, ch := range s {
		r.canvas.SetContent(x+i, y, ch, style)
		i++
	}
}

func (r *Renderer) centered(w, y int, s string, style tcell.Style) {
	x := (w - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	r.text(x, y, s, style)
}

// viewportOrigin returns the first map coordinate shown so that focus sits in
// the middle of a view of viewSize, clamped to the map.
func viewportOrigin(focus, mapSize, viewSize int) int {
	if mapSize <= viewSize {
		return 0
	}
	o := focus - viewSize/2
	if o < 0 {
		return 0
	}
	if o > mapSize-viewSize {
		return mapSize - viewSize
	}
	return o
}
