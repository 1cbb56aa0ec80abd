package dungeon

import (
	"math/rand"
	"sort"

	"squad-sim/internal/domain"
	"squad-sim/pkg/utils"
)

// minDoorCandidates - меньше этого числа пар граница остаётся глухой.
const minDoorCandidates = 4

// Door - проём шириной 2 клетки в двойной стене между двумя комнатами.
type Door struct {
	RoomA int            `json:"roomA"`
	RoomB int            `json:"roomB"`
	Cells [4]domain.Tile `json:"cells"`
}

// boundaryPair - две соседние клетки разных комнат.
type boundaryPair struct {
	a, b domain.Tile
}

type roomPair struct {
	lo, hi int32
}

// connection собирает все пары на границе двух комнат.
// horizontal - соседи по X (граница идёт вдоль Y), vertical - соседи по Y.
type connection struct {
	rooms      roomPair
	horizontal []boundaryPair
	vertical   []boundaryPair
}

// carveDoors ищет границы между комнатами и прорезает по одной двери на каждую.
func carveDoors(grid *domain.Grid, roomIDs []int32, rng *rand.Rand) []Door {
	byPair := make(map[roomPair]*connection)
	var order []roomPair

	get := func(a, b int32) *connection {
		key := roomPair{lo: min(a, b), hi: max(a, b)}
		c, ok := byPair[key]
		if !ok {
			c = &connection{rooms: key}
			byPair[key] = c
			order = append(order, key)
		}
		return c
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			id := roomIDs[grid.GetIndex(x, y)]
			if id == 0 {
				continue
			}
			if x+1 < grid.Width {
				if other := roomIDs[grid.GetIndex(x+1, y)]; other != 0 && other != id {
					c := get(id, other)
					c.horizontal = append(c.horizontal, boundaryPair{domain.Tile{X: x, Y: y}, domain.Tile{X: x + 1, Y: y}})
				}
			}
			if y+1 < grid.Height {
				if other := roomIDs[grid.GetIndex(x, y+1)]; other != 0 && other != id {
					c := get(id, other)
					c.vertical = append(c.vertical, boundaryPair{domain.Tile{X: x, Y: y}, domain.Tile{X: x, Y: y + 1}})
				}
			}
		}
	}

	// Порядок обхода map случаен, поэтому идём по порядку обнаружения.
	var doors []Door
	for _, key := range order {
		c := byPair[key]
		sort.Slice(c.horizontal, func(i, j int) bool { return pairLess(c.horizontal[i], c.horizontal[j], true) })
		sort.Slice(c.vertical, func(i, j int) bool { return pairLess(c.vertical[i], c.vertical[j], false) })

		candidates := c.horizontal
		if len(c.vertical) > len(candidates) {
			candidates = c.vertical
		}
		if len(candidates) < minDoorCandidates {
			continue
		}

		// Крайние пары могут быть углами комнат, дверь ставим только внутри.
		i := utils.RandRange(rng, 1, len(candidates)-3)
		first, second := candidates[i], candidates[i+1]

		door := Door{
			RoomA: int(key.lo),
			RoomB: int(key.hi),
			Cells: [4]domain.Tile{first.a, first.b, second.a, second.b},
		}
		for _, t := range door.Cells {
			grid.SetTerrain(t, false)
		}
		doors = append(doors, door)
	}
	return doors
}

// pairLess сортирует вдоль доминирующей оси границы.
func pairLess(p, q boundaryPair, alongY bool) bool {
	if alongY {
		if p.a.Y != q.a.Y {
			return p.a.Y < q.a.Y
		}
		return p.a.X < q.a.X
	}
	if p.a.X != q.a.X {
		return p.a.X < q.a.X
	}
	return p.a.Y < q.a.Y
}
