package systems

import (
	"squad-sim/internal/core/types"
	"squad-sim/internal/domain"
)

// MovementResult - результат проверки перехода в соседнюю клетку
type MovementResult struct {
	From, To  domain.Tile
	HasMoved  bool
	BlockedBy types.EntityID // Кто стоит в клетке или уже въезжает в неё
	IsWall    bool           // Стена или край карты
}

// CalculateMove проверяет, может ли агент перейти в клетку to. Не меняет состояние мира!
func CalculateMove(g *domain.Grid, a *domain.Agent, to domain.Tile) MovementResult {
	res := MovementResult{From: a.Body.Tile, To: to}

	// 1. Проверка границ и стен
	cell, ok := g.GetCell(to)
	if !ok || cell.Solid {
		res.IsWall = true
		return res
	}

	// 2. Проверка агентов
	if !cell.Occupant.IsNil() && cell.Occupant != a.ID {
		res.BlockedBy = cell.Occupant
		return res
	}
	if !cell.Reserved.IsNil() && cell.Reserved != a.ID {
		res.BlockedBy = cell.Reserved
		return res
	}

	res.HasMoved = true
	return res
}

// ApplyMove переносит занятость клетки. Вызывать только после успешного CalculateMove.
func ApplyMove(g *domain.Grid, a *domain.Agent, res MovementResult) error {
	if err := g.CommitMove(a.ID, res.From, res.To); err != nil {
		return err
	}
	a.Body.Tile = res.To
	return nil
}
