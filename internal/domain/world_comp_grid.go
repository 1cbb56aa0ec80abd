package domain

import (
	"fmt"

	"squad-sim/internal/core/types"
)

// GetIndex переводит координаты в индекс массива клеток. Границы не проверяет.
func (g *Grid) GetIndex(x, y int) int {
	return y*g.Width + x
}

// IsValidTile - только проверка границ.
func (g *Grid) IsValidTile(t Tile) bool {
	return Rect{W: g.Width, H: g.Height}.Contains(t)
}

// GetCell возвращает клетку для чтения и точечной правки.
// Вне сетки - (nil, false): вызывающий считает, что геометрии здесь нет.
func (g *Grid) GetCell(t Tile) (*Cell, bool) {
	if !g.IsValidTile(t) {
		return nil, false
	}
	return &g.cells[g.GetIndex(t.X, t.Y)], true
}

// IsSolid - удобная обёртка: вне сетки считается твёрдым.
func (g *Grid) IsSolid(t Tile) bool {
	c, ok := g.GetCell(t)
	return !ok || c.Solid
}

// SetTerrain меняет рельеф. Инвалидирует поле расстояний до стен.
func (g *Grid) SetTerrain(t Tile, solid bool) bool {
	c, ok := g.GetCell(t)
	if !ok {
		return false
	}
	if c.Solid != solid {
		c.Solid = solid
		g.wallsStale = true
	}
	return true
}

// Terrain возвращает флаг рельефа.
func (g *Grid) Terrain(t Tile) (solid bool, ok bool) {
	c, ok := g.GetCell(t)
	if !ok {
		return false, false
	}
	return c.Solid, true
}

// FillTerrain заливает прямоугольник (включительно по краям, обрезается сеткой).
func (g *Grid) FillTerrain(r Rect, solid bool) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			g.SetTerrain(Tile{X: x, Y: y}, solid)
		}
	}
}

// Occupant возвращает агента, стоящего в клетке (NilEntityID - пусто).
func (g *Grid) Occupant(t Tile) (types.EntityID, bool) {
	c, ok := g.GetCell(t)
	if !ok {
		return types.NilEntityID, false
	}
	return c.Occupant, true
}

// SetOccupant занимает клетку. Чужого агента молча не перезаписывает.
func (g *Grid) SetOccupant(t Tile, id types.EntityID) error {
	c, ok := g.GetCell(t)
	if !ok {
		return fmt.Errorf("set occupant %s at %v: %w", id, t, ErrOutOfBounds)
	}
	if !c.Occupant.IsNil() && c.Occupant != id {
		return fmt.Errorf("set occupant %s at %v (held by %s): %w", id, t, c.Occupant, ErrCellOccupied)
	}
	c.Occupant = id
	return nil
}

// ClearOccupant освобождает клетку, только если её занимает именно id.
func (g *Grid) ClearOccupant(t Tile, id types.EntityID) bool {
	c, ok := g.GetCell(t)
	if !ok || c.Occupant != id {
		return false
	}
	c.Occupant = types.NilEntityID
	return true
}

// Reservation возвращает агента, который сейчас въезжает в клетку.
func (g *Grid) Reservation(t Tile) (types.EntityID, bool) {
	c, ok := g.GetCell(t)
	if !ok {
		return types.NilEntityID, false
	}
	return c.Reserved, true
}

// Reserve бронирует клетку как точку назначения для id.
// Отказ, если клетка твёрдая, занята другим или уже забронирована другим.
func (g *Grid) Reserve(t Tile, id types.EntityID) error {
	c, ok := g.GetCell(t)
	if !ok {
		return fmt.Errorf("reserve %v for %s: %w", t, id, ErrOutOfBounds)
	}
	if c.Solid {
		return fmt.Errorf("reserve %v for %s: %w", t, id, ErrCellSolid)
	}
	if !c.Occupant.IsNil() && c.Occupant != id {
		return fmt.Errorf("reserve %v for %s (held by %s): %w", t, id, c.Occupant, ErrCellOccupied)
	}
	if !c.Reserved.IsNil() && c.Reserved != id {
		return fmt.Errorf("reserve %v for %s (reserved by %s): %w", t, id, c.Reserved, ErrCellReserved)
	}
	c.Reserved = id
	return nil
}

// ReleaseReservation снимает бронь, только если она принадлежит id.
func (g *Grid) ReleaseReservation(t Tile, id types.EntityID) bool {
	c, ok := g.GetCell(t)
	if !ok || c.Reserved != id {
		return false
	}
	c.Reserved = types.NilEntityID
	return true
}

// CommitMove переносит агента из from в to: бронирует to (если ещё нет),
// освобождает from, занимает to и снимает бронь.
// При ошибке состояние сетки не меняется.
func (g *Grid) CommitMove(id types.EntityID, from, to Tile) error {
	if from == to {
		return nil
	}
	dst, ok := g.GetCell(to)
	if !ok {
		return fmt.Errorf("move %s to %v: %w", id, to, ErrOutOfBounds)
	}
	hadReservation := dst.Reserved == id
	if err := g.Reserve(to, id); err != nil {
		return err
	}

	g.ClearOccupant(from, id)
	if err := g.SetOccupant(to, id); err != nil {
		// Reserve уже проверил занятость, сюда попасть нельзя; откатываемся на всякий случай.
		_ = g.SetOccupant(from, id)
		if !hadReservation {
			g.ReleaseReservation(to, id)
		}
		return err
	}
	g.ReleaseReservation(to, id)
	return nil
}

// AddHeat увеличивает отладочный heat клетки с насыщением на 255.
func (g *Grid) AddHeat(t Tile, amount uint8) {
	c, ok := g.GetCell(t)
	if !ok {
		return
	}
	if int(c.Heat)+int(amount) > 255 {
		c.Heat = 255
		return
	}
	c.Heat += amount
}

// DecayHeat уменьшает heat всех клеток (не ниже нуля).
func (g *Grid) DecayHeat(amount uint8) {
	if amount == 0 {
		return
	}
	for i := range g.cells {
		if g.cells[i].Heat <= amount {
			g.cells[i].Heat = 0
		} else {
			g.cells[i].Heat -= amount
		}
	}
}

// SetColor задаёт отладочный цвет клетки (RGBA).
func (g *Grid) SetColor(t Tile, rgba uint32) bool {
	c, ok := g.GetCell(t)
	if !ok {
		return false
	}
	c.Color = rgba
	return true
}

// WorldToTile переводит мировую точку в тайл. Отрицательные координаты
// уходят в отрицательные тайлы (floor), а не прилипают к нулю.
func (g *Grid) WorldToTile(p Vec2) Tile {
	return Tile{X: floorDiv(p.X, g.TileSize), Y: floorDiv(p.Y, g.TileSize)}
}

// TileCenter возвращает мировые координаты центра тайла.
func (g *Grid) TileCenter(t Tile) Vec2 {
	return Vec2{
		X: (float64(t.X) + 0.5) * g.TileSize,
		Y: (float64(t.Y) + 0.5) * g.TileSize,
	}
}

// CellSnapshot - копия видимой для отрисовки части клетки.
type CellSnapshot struct {
	Solid bool
	Heat  uint8
	Color uint32
}

// Snapshot возвращает копию рельефа/heat/color построчно.
// Изменения снапшота не влияют на сетку.
func (g *Grid) Snapshot() []CellSnapshot {
	out := make([]CellSnapshot, len(g.cells))
	for i := range g.cells {
		c := &g.cells[i]
		out[i] = CellSnapshot{Solid: c.Solid, Heat: c.Heat, Color: c.Color}
	}
	return out
}
