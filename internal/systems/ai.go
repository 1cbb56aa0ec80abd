package systems

import (
	"github.com/sirupsen/logrus"

	"squad-sim/internal/core/types/enums"
	"squad-sim/internal/domain"
	"squad-sim/pkg/logger"
)

// Веса смешивания поведений NPC.
const (
	WanderWeight    = 0.4
	AvoidWallWeight = 0.6
	PursueWeight    = 1.0
	// InvestigateRadius - дошли до последней точки, где видели игрока.
	InvestigateRadius = 0.5
)

// ComputeNPCForce решает, куда тянуть NPC на следующем тике, и обновляет
// его состояние: видит игрока - преследует, потерял - идёт к последней
// точке, дошёл - снова бродит. Стены обходятся во всех состояниях.
// player может быть nil (игрок выбыл).
func ComputeNPCForce(s *Steering, g *domain.Grid, npc *domain.Agent, player *domain.Agent) domain.Vec2 {
	if npc.AI == nil {
		return domain.Vec2{}
	}

	ai := npc.AI
	prev := ai.State

	if player != nil && npc.CanSee(player.ID) {
		ai.Spot(player.ID, player.Body.Pos)
	} else {
		ai.LoseSight()
	}

	if ai.State == enums.AIStateInvestigate && npc.Body.Pos.DistSq(ai.LastSeen) <= InvestigateRadius*InvestigateRadius {
		ai.CalmDown()
	}

	if ai.State != prev {
		logger.Log.WithFields(logrus.Fields{
			"component": "ai_system",
			"agent":     npc.ID,
			"from":      prev,
			"to":        ai.State,
		}).Debug("AI state changed")
	}

	cell, _ := g.GetCell(npc.Body.Tile)
	avoid := s.AvoidWall(npc, cell).Scale(AvoidWallWeight)

	switch ai.State {
	case enums.AIStatePursue:
		return s.Pursuit(npc, player).Scale(PursueWeight).Add(avoid)
	case enums.AIStateInvestigate:
		return s.Arrive(npc, ai.LastSeen).Scale(PursueWeight).Add(avoid)
	default:
		return s.Wander(npc).Scale(WanderWeight).Add(avoid)
	}
}
