// Command worlddump prints the world generated from a seed, and optionally one
// local map and one dungeon level, for checking generation without the UI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

const defaultWidth = 80

func main() {
	var (
		seed    int64
		cellArg string
		dungeon bool
	)
	flag.Int64Var(&seed, "seed", 1, "world seed, the same as VALDMIR_SEED")
	flag.StringVar(&cellArg, "cell", "", "also print the local map of cell x,y")
	flag.BoolVar(&dungeon, "dungeon", false, "also print one dungeon level")
	flag.Parse()

	ctx := context.Background()
	rng := rand.New(rand.NewSource(seed))
	w := world.GenerateWorld(ctx, world.DefaultWorldWidth, world.DefaultWorldHeight, rng)

	p := newPrinter(os.Stdout)
	p.worldMap(w)

	if cellArg != "" {
		c, err := parseCoord(cellArg)
		if err != nil {
			log.Fatalf("bad -cell: %v", err)
		}
		cell := w.Cell(c)
		if cell == nil {
			log.Fatalf("cell %d,%d is outside the %dx%d world", c.X, c.Y, w.Width, w.Height)
		}
		m, spawn, err := world.GenerateRegion(ctx, cell, world.EntranceNone, rng)
		if err != nil {
			log.Fatalf("generate cell %d,%d: %v", c.X, c.Y, err)
		}
		fmt.Fprintf(p.out, "\nCell %d,%d: %s, town %v, dungeons %d, spawn %d,%d\n",
			c.X, c.Y, cell.Biome, cell.IsTown, len(cell.DungeonEntrances), spawn.X, spawn.Y)
		p.localMap(m, spawn)
	}

	if dungeon {
		d := world.GenerateDungeon(ctx, rng, false)
		fmt.Fprintf(p.out, "\nDungeon level: %d rooms, %d chests, start %d,%d\n",
			len(d.Rooms), len(d.Chests), d.StartX, d.StartY)
		p.localMap(d.Map, world.Point{X: d.StartX, Y: d.StartY})
	}
}

func parseCoord(s string) (world.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return world.Coord{}, fmt.Errorf("%q is not x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return world.Coord{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return world.Coord{}, fmt.Errorf("y: %w", err)
	}
	return world.Coord{X: x, Y: y}, nil
}

// printer writes glyph grids, coloured when out is a terminal, clipped to its
// width.
type printer struct {
	out   io.Writer
	color bool
	width int
}

func newPrinter(f *os.File) *printer {
	p := &printer{out: f, width: defaultWidth}
	if term.IsTerminal(int(f.Fd())) {
		p.color = true
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			p.width = w
		}
	}
	return p
}

func (p *printer) glyph(r rune, kind world.TileKind) string {
	if !p.color {
		return string(r)
	}
	red, green, blue := world.Info(kind).Color.RGB()
	return color.RGB(uint8(red), uint8(green), uint8(blue)).Sprint(string(r))
}

func (p *printer) worldMap(w *world.WorldMap) {
	towns, dungeons := 0, 0
	for y := 0; y < w.Height; y++ {
		var b strings.Builder
		for x := 0; x < w.Width; x++ {
			c := w.Cell(world.Coord{X: x, Y: y})
			r := world.Info(c.Biome.Tile()).Glyph
			if c.IsTown {
				r = '*'
				towns++
			}
			if c.HasDungeon() {
				dungeons++
			}
			if x < p.width {
				b.WriteString(p.glyph(r, c.Biome.Tile()))
			}
		}
		fmt.Fprintln(p.out, b.String())
	}
	legend := fmt.Sprintf("%dx%d world, %d towns (*), %d cells with dungeons", w.Width, w.Height, towns, dungeons)
	if p.color {
		legend = color.Style{color.FgGray}.Sprint(legend)
	}
	fmt.Fprintln(p.out, legend)
}

// localMap prints m with the player start marked '@'.
func (p *printer) localMap(m *world.LocalMap, start world.Point) {
	for y := 0; y < m.Height(); y++ {
		var b strings.Builder
		for x := 0; x < m.Width() && x < p.width; x++ {
			if x == start.X && y == start.Y {
				b.WriteString(p.glyph('@', world.TileDoor))
				continue
			}
			k := m.At(x, y)
			b.WriteString(p.glyph(world.Info(k).Glyph, k))
		}
		fmt.Fprintln(p.out, b.String())
	}
}
