// pkg/gridmap/map.go
package gridmap

import (
	"errors"
	"fmt"
)

// Kind — семантический тип клетки. Значения совпадают с кодами в файле карты.
type Kind int

const (
	Grass Kind = iota
	Path
	Water
	Spawn
	Goal
	TowerSlot
	Stone
)

func (k Kind) String() string {
	switch k {
	case Grass:
		return "grass"
	case Path:
		return "path"
	case Water:
		return "water"
	case Spawn:
		return "spawn"
	case Goal:
		return "goal"
	case TowerSlot:
		return "tower_slot"
	case Stone:
		return "stone"
	default:
		return "unknown"
	}
}

// Walkable reports whether enemies may traverse tiles of this kind.
func (k Kind) Walkable() bool {
	return k == Path || k == Spawn || k == Goal
}

var (
	ErrOutOfBounds = errors.New("gridmap: position out of bounds")
	ErrNotSpawn    = errors.New("gridmap: cell is not a spawn point")
)

// NoPathError is returned when a spawn point has no route to any goal.
type NoPathError struct {
	Spawn Cell
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("gridmap: no path from spawn (%d,%d) to any goal", e.Spawn.X, e.Spawn.Y)
}

// TileMap — статическая геометрия уровня. Пути считаются один раз при создании
// и дальше не меняются; меняется только занятость слотов под башни.
type TileMap struct {
	Width, Height int
	Spawns        []Cell
	Slots         []Cell
	Goals         []Cell

	tiles    [][]Kind // [y][x]
	slotSet  map[Cell]bool
	occupied map[Cell]bool
	walkable map[Cell]bool
	paths    map[Cell][]Cell
}

// New validates the grid and precomputes one path per spawn point.
func New(width, height int, tiles [][]int, spawns, slots, goals []Cell) (*TileMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gridmap: invalid dimensions %dx%d", width, height)
	}
	if len(tiles) != height {
		return nil, fmt.Errorf("gridmap: expected %d rows, got %d", height, len(tiles))
	}

	tm := &TileMap{
		Width:    width,
		Height:   height,
		tiles:    make([][]Kind, height),
		slotSet:  make(map[Cell]bool),
		occupied: make(map[Cell]bool),
		walkable: make(map[Cell]bool),
		paths:    make(map[Cell][]Cell),
	}

	for y, row := range tiles {
		if len(row) != width {
			return nil, fmt.Errorf("gridmap: row %d has %d tiles, expected %d", y, len(row), width)
		}
		tm.tiles[y] = make([]Kind, width)
		for x, code := range row {
			if code < int(Grass) || code > int(Stone) {
				return nil, fmt.Errorf("gridmap: unknown tile code %d at (%d,%d)", code, x, y)
			}
			tm.tiles[y][x] = Kind(code)
		}
	}

	spawns, err := tm.mergeDeclared(spawns, Spawn, "spawn point")
	if err != nil {
		return nil, err
	}
	goals, err = tm.mergeDeclared(goals, Goal, "goal point")
	if err != nil {
		return nil, err
	}
	slots, err = tm.mergeDeclared(slots, TowerSlot, "tower slot")
	if err != nil {
		return nil, err
	}
	if len(spawns) == 0 {
		return nil, errors.New("gridmap: map has no spawn points")
	}
	if len(goals) == 0 {
		return nil, errors.New("gridmap: map has no goal points")
	}
	tm.Spawns, tm.Goals, tm.Slots = spawns, goals, slots

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if tm.tiles[y][x].Walkable() {
				tm.walkable[Cell{x, y}] = true
			}
		}
	}
	for _, c := range spawns {
		tm.walkable[c] = true
	}
	for _, c := range goals {
		tm.walkable[c] = true
	}
	for _, c := range slots {
		tm.slotSet[c] = true
	}

	for _, spawn := range spawns {
		path := AStar(spawn, goals, func(c Cell) bool { return tm.walkable[c] })
		if path == nil {
			return nil, &NoPathError{Spawn: spawn}
		}
		tm.paths[spawn] = path
	}
	return tm, nil
}

// mergeDeclared returns the declared cells followed by any tiles carrying the
// matching code that were not declared, in row-major order.
func (tm *TileMap) mergeDeclared(declared []Cell, kind Kind, what string) ([]Cell, error) {
	seen := make(map[Cell]bool)
	out := make([]Cell, 0, len(declared))
	for _, c := range declared {
		if !tm.inBounds(c.X, c.Y) {
			return nil, fmt.Errorf("gridmap: %s (%d,%d): %w", what, c.X, c.Y, ErrOutOfBounds)
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	for y := 0; y < tm.Height; y++ {
		for x := 0; x < tm.Width; x++ {
			c := Cell{x, y}
			if tm.tiles[y][x] == kind && !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (tm *TileMap) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < tm.Width && y < tm.Height
}

// Tile возвращает тип клетки или ErrOutOfBounds.
func (tm *TileMap) Tile(x, y int) (Kind, error) {
	if !tm.inBounds(x, y) {
		return Grass, fmt.Errorf("tile (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return tm.tiles[y][x], nil
}

// IsValidTowerPosition — клетка является слотом и он свободен.
func (tm *TileMap) IsValidTowerPosition(x, y int) bool {
	c := Cell{x, y}
	return tm.inBounds(x, y) && tm.slotSet[c] && !tm.occupied[c]
}

// Occupy marks a free slot as taken. Returns false if the slot is invalid or busy.
func (tm *TileMap) Occupy(x, y int) bool {
	if !tm.IsValidTowerPosition(x, y) {
		return false
	}
	tm.occupied[Cell{x, y}] = true
	return true
}

// IsOccupied reports whether a tower stands on the cell.
func (tm *TileMap) IsOccupied(x, y int) bool {
	return tm.occupied[Cell{x, y}]
}

// PathToGoal returns a copy of the precomputed path for the given spawn point.
func (tm *TileMap) PathToGoal(spawn Cell) ([]Cell, error) {
	path, ok := tm.paths[spawn]
	if !ok {
		return nil, fmt.Errorf("spawn (%d,%d): %w", spawn.X, spawn.Y, ErrNotSpawn)
	}
	out := make([]Cell, len(path))
	copy(out, path)
	return out, nil
}

// Codes returns the raw tile codes in file layout ([y][x]).
func (tm *TileMap) Codes() [][]int {
	out := make([][]int, tm.Height)
	for y, row := range tm.tiles {
		out[y] = make([]int, tm.Width)
		for x, k := range row {
			out[y][x] = int(k)
		}
	}
	return out
}
