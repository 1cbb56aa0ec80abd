package domain

import "math"

const maxWallDist = math.MaxUint16

// WallDistance читает одно из четырёх расстояний до стены.
// Вне сетки - (0, false).
func (g *Grid) WallDistance(d Direction, t Tile) (uint16, bool) {
	c, ok := g.GetCell(t)
	if !ok {
		return 0, false
	}
	return c.WallDist(d), true
}

// PackedWallDist возвращает все четыре расстояния одним словом.
func (g *Grid) PackedWallDist(t Tile) (uint64, bool) {
	c, ok := g.GetCell(t)
	if !ok {
		return 0, false
	}
	return c.PackedWallDist(), true
}

// WallDistancesStale - рельеф менялся после последнего пересчёта.
func (g *Grid) WallDistancesStale() bool {
	return g.wallsStale
}

// RecomputeWallDistances пересчитывает поле расстояний для всей сетки.
//
// Значение клетки - число подряд идущих пустых клеток за ней в заданном
// направлении до твёрдой клетки или края сетки. Край стеной не считается:
// пустая клетка у самого края получает 0, потому что дальше клеток нет.
// Твёрдая клетка всегда 0.
//
// Вместо марша из каждой клетки делаем по два прохода на строку и столбец:
// счётчик пустого отрезка позади текущей клетки. Итого O(width·height).
func (g *Grid) RecomputeWallDistances() {
	w, h := g.Width, g.Height

	// Строки: West при проходе слева направо, East при проходе справа налево.
	for y := 0; y < h; y++ {
		run := 0
		for x := 0; x < w; x++ {
			c := &g.cells[g.GetIndex(x, y)]
			if c.Solid {
				c.wallDist = [4]uint16{}
				run = 0
				continue
			}
			c.wallDist[West] = clampDist(run)
			run++
		}
		run = 0
		for x := w - 1; x >= 0; x-- {
			c := &g.cells[g.GetIndex(x, y)]
			if c.Solid {
				run = 0
				continue
			}
			c.wallDist[East] = clampDist(run)
			run++
		}
	}

	// Столбцы: North сверху вниз (север = -Y), South снизу вверх.
	for x := 0; x < w; x++ {
		run := 0
		for y := 0; y < h; y++ {
			c := &g.cells[g.GetIndex(x, y)]
			if c.Solid {
				run = 0
				continue
			}
			c.wallDist[North] = clampDist(run)
			run++
		}
		run = 0
		for y := h - 1; y >= 0; y-- {
			c := &g.cells[g.GetIndex(x, y)]
			if c.Solid {
				run = 0
				continue
			}
			c.wallDist[South] = clampDist(run)
			run++
		}
	}

	g.wallsStale = false
}

func clampDist(n int) uint16 {
	if n > maxWallDist {
		return maxWallDist
	}
	return uint16(n)
}
