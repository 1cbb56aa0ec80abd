package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"squad-sim/internal/domain"
	"squad-sim/pkg/dungeon"
	"squad-sim/pkg/logger"
	"squad-sim/pkg/utils"
)

// BuildInstance генерирует уровень и расставляет агентов:
// игрок в центре первой комнаты, отряды по остальным комнатам по кругу.
func BuildInstance(cfg Config) (*Instance, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := utils.NewRand(cfg.Seed)

	// 1. Генерируем уровень с помощью builder API
	builder := dungeon.NewLevel(cfg.Level, rng).
		WithRooms().
		WithPalette(cfg.Seed)
	layout, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}

	inst := NewInstance(cfg, layout, rng)

	// 2. Создаем игрока
	if _, err := inst.Spawn(dungeon.PlayerTemplate, PlayerSquad, builder.GetStartTile()); err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}

	// 3. Отряды
	spawned := 0
	for s := 1; s <= cfg.Squads; s++ {
		room := pickSquadRoom(layout.Rooms, s)
		free := freeTiles(inst.Grid, room.Interior())
		for _, tpl := range dungeon.RosterFor(cfg.Roster, cfg.SquadSize) {
			if len(free) == 0 {
				logger.Component("world_builder").WithFields(logrus.Fields{
					"squad": s,
					"room":  room.ID,
				}).Warn("Room is full, squad truncated")
				break
			}
			k := utils.RandRange(rng, 0, len(free)-1)
			tile := free[k]
			free[k] = free[len(free)-1]
			free = free[:len(free)-1]

			if _, err := inst.Spawn(tpl, uint8(s), tile); err != nil {
				return nil, fmt.Errorf("spawn squad %d: %w", s, err)
			}
			spawned++
		}
	}

	logger.Component("world_builder").WithFields(logrus.Fields{
		"run_id": inst.RunID,
		"seed":   cfg.Seed,
		"rooms":  len(layout.Rooms),
		"doors":  len(layout.Doors),
		"npcs":   spawned,
	}).Info("World built")

	return inst, nil
}

// pickSquadRoom: первая комната за игроком, отряды идут по остальным.
// Если комната одна, отряды делят её с игроком.
func pickSquadRoom(rooms []dungeon.Room, squad int) dungeon.Room {
	if len(rooms) == 1 {
		return rooms[0]
	}
	return rooms[1+(squad-1)%(len(rooms)-1)]
}

// freeTiles - пустые незанятые клетки прямоугольника в построчном порядке.
func freeTiles(g *domain.Grid, r domain.Rect) []domain.Tile {
	var out []domain.Tile
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			t := domain.Tile{X: x, Y: y}
			cell, ok := g.GetCell(t)
			if !ok || cell.Solid || !cell.Occupant.IsNil() {
				continue
			}
			out = append(out, t)
		}
	}
	return out
}
