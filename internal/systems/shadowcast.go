package systems

import (
	"squad-sim/internal/domain"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisibleTiles возвращает индексы клеток {index: true}, видимых
// из тайла в радиусе radius (круговой обзор, рекурсивный shadowcasting).
// Используется для отрисовки области видимости игрока; восприятие
// агентов идёт через UpdatePerception.
func ComputeVisibleTiles(g *domain.Grid, pos domain.Tile, radius int) map[int]bool {
	visible := make(map[int]bool)
	if radius <= 0 || !g.IsValidTile(pos) {
		return visible // Слепой
	}

	// Центр всегда виден
	visible[g.GetIndex(pos.X, pos.Y)] = true

	for i := 0; i < 8; i++ {
		castLight(g, pos.X, pos.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}
	return visible
}

func castLight(g *domain.Grid, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible map[int]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			t := domain.Tile{X: cx + dx*xx + dy*xy, Y: cy + dx*yx + dy*yy}
			if g.IsValidTile(t) && float64(dx*dx+dy*dy) < radiusSq {
				visible[g.GetIndex(t.X, t.Y)] = true
			}

			// Вне сетки считается стеной
			solid := g.IsSolid(t)
			if blocked {
				if solid {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if solid && j < radius {
				blocked = true
				castLight(g, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
