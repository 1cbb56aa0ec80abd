package domain

import (
	"errors"

	"squad-sim/internal/core/types"
)

// Ошибки мутаций сетки. Запросы (чтение) ошибок не возвращают - только (value, ok).
var (
	ErrOutOfBounds  = errors.New("tile out of bounds")
	ErrCellOccupied = errors.New("cell occupied by another agent")
	ErrCellReserved = errors.New("cell reserved by another agent")
	ErrCellSolid    = errors.New("cell is solid terrain")
)

// Direction - одно из четырёх осевых направлений. Север смотрит в -Y.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions перечисляет направления в порядке хранения в Cell.
var Directions = [4]Direction{North, South, East, West}

// Step возвращает единичное смещение тайла в направлении d.
func (d Direction) Step() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	return [...]string{"N", "S", "E", "W"}[d&3]
}

// Cell - одна клетка сетки. Фиксированный формат: флаг рельефа,
// занимающий агент, агент с бронью на въезд, четыре 16-битных
// расстояния до стены и отладочные heat/color.
type Cell struct {
	Solid    bool           `json:"solid"`
	Occupant types.EntityID `json:"occupant,omitempty"`
	Reserved types.EntityID `json:"reserved,omitempty"`

	wallDist [4]uint16

	Heat  uint8  `json:"heat,omitempty"`
	Color uint32 `json:"color,omitempty"` // RGBA, рисуется внешним слоем
}

// WallDist возвращает расстояние до стены в направлении d.
func (c *Cell) WallDist(d Direction) uint16 {
	return c.wallDist[d&3]
}

// PackedWallDist упаковывает четыре расстояния в одно 64-битное значение:
// N в младших 16 битах, затем S, E, W.
func (c *Cell) PackedWallDist() uint64 {
	return uint64(c.wallDist[North]) |
		uint64(c.wallDist[South])<<16 |
		uint64(c.wallDist[East])<<32 |
		uint64(c.wallDist[West])<<48
}

// Grid владеет массивом клеток width × height (row-major).
// Доступ только из потока симуляции, блокировок нет.
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// TileSize - размер тайла в мировых единицах.
	TileSize float64 `json:"tileSize"`

	cells []Cell

	// wallsStale выставляется любой мутацией рельефа и сбрасывается
	// только RecomputeWallDistances.
	wallsStale bool
}

// NewGrid создаёт пустую (без стен) сетку.
func NewGrid(width, height int) *Grid {
	g := &Grid{TileSize: 1}
	g.Resize(width, height)
	g.RecomputeWallDistances()
	return g
}

// Resize переинициализирует сетку. Все клетки очищаются.
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.Width = width
	g.Height = height
	g.cells = make([]Cell, width*height)
	if g.TileSize <= 0 {
		g.TileSize = 1
	}
	g.wallsStale = true
}
