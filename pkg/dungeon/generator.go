package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"squad-sim/internal/domain"
	"squad-sim/pkg/logger"
	"squad-sim/pkg/utils"
)

// Room - прямоугольная комната вместе со стенами. ID начинаются с 1.
type Room struct {
	ID     int         `json:"id"`
	Bounds domain.Rect `json:"bounds"`
}

// Interior - пол комнаты без стен.
func (r Room) Interior() domain.Rect {
	return r.Bounds.Inset(1)
}

// Center - центральный тайл комнаты.
func (r Room) Center() domain.Tile {
	return domain.Tile{X: r.Bounds.X + r.Bounds.W/2, Y: r.Bounds.Y + r.Bounds.H/2}
}

// Layout - результат генерации. Комнаты нужны только для расстановки агентов.
type Layout struct {
	Grid  *domain.Grid
	Rooms []Room
	Doors []Door
}

// partition - узел BSP. Дерево живёт в арене, дети адресуются индексами.
type partition struct {
	bounds   domain.Rect
	children [2]int32 // noPartition - ребёнка нет
}

const noPartition int32 = -1

type generator struct {
	cfg   GenConfig
	rng   *rand.Rand
	arena []partition
	rooms []Room
}

// Generate строит уровень: BSP-разбиение, стены комнат, двери, поле
// расстояний до стен. Результат полностью определяется cfg и rng.
func Generate(cfg GenConfig, rng *rand.Rand) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := &generator{cfg: cfg, rng: rng}
	root := domain.Rect{X: 1, Y: 1, W: cfg.Width - 2, H: cfg.Height - 2}
	gen.arena = append(gen.arena, partition{bounds: root, children: [2]int32{noPartition, noPartition}})
	gen.split(0)

	grid := domain.NewGrid(cfg.Width, cfg.Height)
	grid.FillTerrain(domain.Rect{W: cfg.Width, H: cfg.Height}, true)

	roomIDs := make([]int32, cfg.Width*cfg.Height)
	for _, room := range gen.rooms {
		carveRoom(grid, roomIDs, room)
	}

	doors := carveDoors(grid, roomIDs, gen.rng)
	grid.RecomputeWallDistances()

	logger.Component("dungeon").WithFields(logrus.Fields{
		"width":      cfg.Width,
		"height":     cfg.Height,
		"partitions": len(gen.arena),
		"rooms":      len(gen.rooms),
		"doors":      len(doors),
	}).Debug("Level generated")

	return &Layout{Grid: grid, Rooms: gen.rooms, Doors: doors}, nil
}

// split ставит комнату в угол раздела и делит L-образный остаток на два
// дочерних прямоугольника. Слишком маленькие разделы просто отбрасываются.
func (gen *generator) split(idx int32) {
	p := gen.arena[idx].bounds
	if p.W < gen.cfg.MinRoomWidth || p.H < gen.cfg.MinRoomHeight {
		return
	}
	if len(gen.rooms) >= gen.cfg.RoomCountTarget {
		return
	}

	rw := utils.RandRange(gen.rng, gen.cfg.MinRoomWidth, min(gen.cfg.MaxRoomWidth, p.W))
	rh := utils.RandRange(gen.rng, gen.cfg.MinRoomHeight, min(gen.cfg.MaxRoomHeight, p.H))

	var room, beside, rest domain.Rect
	switch gen.rng.Intn(4) {
	case 0: // левый верхний
		room = domain.Rect{X: p.X, Y: p.Y, W: rw, H: rh}
		beside = domain.Rect{X: p.X + rw, Y: p.Y, W: p.W - rw, H: rh}
		rest = domain.Rect{X: p.X, Y: p.Y + rh, W: p.W, H: p.H - rh}
	case 1: // правый верхний
		room = domain.Rect{X: p.X + p.W - rw, Y: p.Y, W: rw, H: rh}
		beside = domain.Rect{X: p.X, Y: p.Y, W: p.W - rw, H: rh}
		rest = domain.Rect{X: p.X, Y: p.Y + rh, W: p.W, H: p.H - rh}
	case 2: // левый нижний
		room = domain.Rect{X: p.X, Y: p.Y + p.H - rh, W: rw, H: rh}
		beside = domain.Rect{X: p.X + rw, Y: p.Y + p.H - rh, W: p.W - rw, H: rh}
		rest = domain.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H - rh}
	default: // правый нижний
		room = domain.Rect{X: p.X + p.W - rw, Y: p.Y + p.H - rh, W: rw, H: rh}
		beside = domain.Rect{X: p.X, Y: p.Y + p.H - rh, W: p.W - rw, H: rh}
		rest = domain.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H - rh}
	}

	gen.rooms = append(gen.rooms, Room{ID: len(gen.rooms) + 1, Bounds: room})

	for i, child := range [2]domain.Rect{beside, rest} {
		if child.Empty() {
			continue
		}
		childIdx := int32(len(gen.arena))
		gen.arena = append(gen.arena, partition{bounds: child, children: [2]int32{noPartition, noPartition}})
		gen.arena[idx].children[i] = childIdx
		gen.split(childIdx)
	}
}

// carveRoom: стены по периметру, пол внутри, id комнаты во всех клетках.
func carveRoom(grid *domain.Grid, roomIDs []int32, room Room) {
	b := room.Bounds
	for y := b.Y; y < b.Y+b.H; y++ {
		for x := b.X; x < b.X+b.W; x++ {
			border := x == b.X || y == b.Y || x == b.X+b.W-1 || y == b.Y+b.H-1
			grid.SetTerrain(domain.Tile{X: x, Y: y}, border)
			roomIDs[grid.GetIndex(x, y)] = int32(room.ID)
		}
	}
}

func (l *Layout) String() string {
	return fmt.Sprintf("layout %dx%d rooms=%d doors=%d", l.Grid.Width, l.Grid.Height, len(l.Rooms), len(l.Doors))
}
