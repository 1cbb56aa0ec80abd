package domain

import (
	"squad-sim/internal/core/types"
	"squad-sim/internal/core/types/enums"
)

// Spot переводит агента в преследование цели.
func (a *AIComponent) Spot(target types.EntityID, pos Vec2) {
	a.State = enums.AIStatePursue
	a.Target = target
	a.LastSeen = pos
	a.HasLastSeen = true
}

// LoseSight: цель пропала из вида, идём проверять последнюю точку.
func (a *AIComponent) LoseSight() {
	if a.State != enums.AIStatePursue {
		return
	}
	a.Target = types.NilEntityID
	if a.HasLastSeen {
		a.State = enums.AIStateInvestigate
		return
	}
	a.State = enums.AIStateWander
}

// CalmDown возвращает агента к блужданию
func (a *AIComponent) CalmDown() {
	a.State = enums.AIStateWander
	a.Target = types.NilEntityID
	a.HasLastSeen = false
}

// IsAlert - агент знает, где игрок (или где его видели).
func (a *AIComponent) IsAlert() bool {
	return a.State == enums.AIStatePursue || a.State == enums.AIStateInvestigate
}
