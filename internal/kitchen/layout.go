// Package kitchen implements the cooperative cooking game: it parses a
// kitchen layout, builds the physics world and its stations, and drives the
// cooks tick by tick.
package kitchen

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-kitchen/internal/config"
	"github.com/vovakirdan/tui-kitchen/internal/core"
	"github.com/vovakirdan/tui-kitchen/internal/food"
	"github.com/vovakirdan/tui-kitchen/internal/station"
)

// Layout errors.
var (
	ErrNoSpawn        = errors.New("layout has no cook spawn")
	ErrUnknownTile    = errors.New("unknown tile")
	ErrDuplicateSpawn = errors.New("duplicate cook spawn")
	ErrRaggedLayout   = errors.New("layout rows differ in length")
	ErrUnknownItem    = errors.New("unknown pantry item")
	ErrReservedTile   = errors.New("pantry key is a reserved tile")
)

// Tile characters.
const (
	TileFloor         = '.'
	TileBlank         = ' '
	TileWall          = '#'
	TileCounter       = 'C'
	TileBin           = 'X'
	TileChoppingBoard = 'K'
	TileServing       = 'S'
)

// MaxCooks is the number of distinct spawn digits ('1' to '4').
const MaxCooks = 4

// builtinPantries maps the default pantry letters to their ingredient.
var builtinPantries = map[rune]food.ID{
	'T': food.Tomato,
	'L': food.Lettuce,
	'O': food.Onion,
	'M': food.Meat,
	'B': food.Bun,
}

// reservedTile reports whether ch already has a meaning other than a pantry.
func reservedTile(ch rune) bool {
	switch ch {
	case TileFloor, TileBlank, TileWall, TileCounter, TileBin, TileChoppingBoard, TileServing:
		return true
	}
	return ch >= '1' && ch < '1'+MaxCooks
}

// Fixture is a station placed on a layout tile.
type Fixture struct {
	Kind station.Kind
	X, Y int
	Item food.ID // pantries only
}

// Layout is a parsed kitchen map. Coordinates are tile columns and rows.
type Layout struct {
	ID     string
	Name   string
	Width  int
	Height int

	Walls    []core.Rect
	Fixtures []Fixture  // row-major order
	Spawns   []core.Vec // tile centers, ordered by spawn digit
}

// ParseLayout parses a kitchen map. Characters:
//
//	'#'       = wall
//	'.', ' '  = floor
//	'C'       = counter
//	'X'       = bin
//	'K'       = chopping board
//	'S'       = serving hatch
//	'T' 'L' 'O' 'M' 'B' = tomato, lettuce, onion, meat and bun pantries
//	'1'-'4'   = cook spawns
//
// pantries adds or overrides pantry letters; it may be nil. Keys that are
// already tiles are rejected with ErrReservedTile.
func ParseLayout(id, name string, rows []string, pantries map[rune]food.ID) (*Layout, error) {
	for ch := range pantries {
		if reservedTile(ch) {
			return nil, fmt.Errorf("kitchen: layout %q: %w %q", id, ErrReservedTile, ch)
		}
	}

	l := &Layout{ID: id, Name: name, Height: len(rows)}
	if len(rows) > 0 {
		l.Width = utf8.RuneCountInString(rows[0])
	}

	spawns := make(map[int]core.Vec)
	seen := mapset.New[rune]()

	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != l.Width {
			return nil, fmt.Errorf("kitchen: layout %q row %d: %w (got %d, want %d)", id, y, ErrRaggedLayout, n, l.Width)
		}

		x := 0
		for _, ch := range row {
			switch {
			case ch == TileFloor || ch == TileBlank:
			case ch == TileWall:
				l.Walls = append(l.Walls, core.NewRect(x, y, 1, 1))
			case ch == TileCounter:
				l.Fixtures = append(l.Fixtures, Fixture{Kind: station.KindCounter, X: x, Y: y})
			case ch == TileBin:
				l.Fixtures = append(l.Fixtures, Fixture{Kind: station.KindBin, X: x, Y: y})
			case ch == TileChoppingBoard:
				l.Fixtures = append(l.Fixtures, Fixture{Kind: station.KindChoppingBoard, X: x, Y: y})
			case ch == TileServing:
				l.Fixtures = append(l.Fixtures, Fixture{Kind: station.KindServing, X: x, Y: y})
			case ch >= '1' && ch < '1'+MaxCooks:
				if seen.Has(ch) {
					return nil, fmt.Errorf("kitchen: layout %q at %d,%d: %w %q", id, x, y, ErrDuplicateSpawn, ch)
				}
				seen.Put(ch)
				spawns[int(ch-'1')] = core.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			default:
				item, ok := pantries[ch]
				if !ok {
					item, ok = builtinPantries[ch]
				}
				if !ok {
					return nil, fmt.Errorf("kitchen: layout %q at %d,%d: %w %q", id, x, y, ErrUnknownTile, ch)
				}
				l.Fixtures = append(l.Fixtures, Fixture{Kind: station.KindPantry, X: x, Y: y, Item: item})
			}
			x++
		}
	}

	if len(spawns) == 0 {
		return nil, fmt.Errorf("kitchen: layout %q: %w", id, ErrNoSpawn)
	}
	keys := make([]int, 0, len(spawns))
	for k := range spawns {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		l.Spawns = append(l.Spawns, spawns[k])
	}
	return l, nil
}

// ParseLayoutConfig parses a configured layout, resolving its pantry legend.
func ParseLayoutConfig(lc config.LayoutConfig) (*Layout, error) {
	var pantries map[rune]food.ID
	for key, name := range lc.Pantries {
		ch, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return nil, fmt.Errorf("kitchen: layout %q: pantry key %q must be one character", lc.ID, key)
		}
		if reservedTile(ch) {
			return nil, fmt.Errorf("kitchen: layout %q: %w %q", lc.ID, ErrReservedTile, key)
		}
		item, ok := food.ParseID(name)
		if !ok {
			return nil, fmt.Errorf("kitchen: layout %q: %w %q", lc.ID, ErrUnknownItem, name)
		}
		if pantries == nil {
			pantries = make(map[rune]food.ID)
		}
		pantries[ch] = item
	}

	name := lc.Name
	if name == "" {
		name = lc.ID
	}
	return ParseLayout(lc.ID, name, lc.Rows, pantries)
}
