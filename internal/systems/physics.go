package systems

import (
	"github.com/sirupsen/logrus"

	"squad-sim/internal/domain"
	"squad-sim/pkg/logger"
)

// walkLine обходит тайлы отрезка a-b по Брезенхэму, включая концы.
//
// Обход всегда идёт от лексикографически меньшего конца к большему,
// поэтому (a, b) и (b, a) посещают одно и то же множество тайлов.
// visit возвращает false, чтобы прервать обход.
func walkLine(a, b domain.Tile, visit func(t domain.Tile) bool) bool {
	if b.Less(a) {
		a, b = b, a
	}

	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := sign(x1-x0), sign(y1-y0)

	err := dx - dy

	for {
		if !visit(domain.Tile{X: x0, Y: y0}) {
			return false
		}
		if x0 == x1 && y0 == y1 {
			return true
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Line возвращает тайлы отрезка от a до b включительно.
func Line(a, b domain.Tile) []domain.Tile {
	var out []domain.Tile
	walkLine(a, b, func(t domain.Tile) bool {
		out = append(out, t)
		return true
	})
	if len(out) > 0 && out[0] != a {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// HasLineOfSight проверяет прямую видимость между двумя тайлами.
// Любой твёрдый тайл на линии (включая концы) или выход за сетку
// блокирует взгляд.
func HasLineOfSight(g *domain.Grid, a, b domain.Tile) bool {
	var blocker domain.Tile
	open := walkLine(a, b, func(t domain.Tile) bool {
		if g.IsSolid(t) {
			blocker = t
			return false
		}
		return true
	})

	if !open && logger.Log.IsLevelEnabled(logrus.TraceLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component": "physics_system",
			"function":  "HasLineOfSight",
			"start_pos": a,
			"end_pos":   b,
			"blocker":   blocker,
		}).Trace("Line of sight blocked")
	}
	return open
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
