package systems

import (
	"github.com/sirupsen/logrus"

	"squad-sim/internal/domain"
	"squad-sim/pkg/logger"
)

// facingEpsilon - ниже этой скорости взгляд NPC не пересчитывается,
// чтобы стоящий агент не дёргал головой от шума.
const facingEpsilon = 1e-6

// DefaultDamping - коэффициент вязкого трения по умолчанию.
const DefaultDamping = 0.5

// Integrator - Verlet с фиксированным шагом и отменой шага при столкновении.
type Integrator struct {
	Damping float64
}

func NewIntegrator(damping float64) *Integrator {
	return &Integrator{Damping: damping}
}

// StepStats - итоги одного шага для логов.
type StepStats struct {
	Crossed int // сменили клетку
	Blocked int // шаг отменён
}

// Step продвигает всех агентов на dt секунд.
func (in *Integrator) Step(g *domain.Grid, agents []*domain.Agent, dt float64) StepStats {
	var stats StepStats
	for _, a := range agents {
		switch in.StepAgent(g, a, dt) {
		case StepCrossed:
			stats.Crossed++
		case StepBlocked:
			stats.Blocked++
		}
	}
	return stats
}

type StepOutcome uint8

const (
	StepStayed StepOutcome = iota
	StepCrossed
	StepBlocked
)

// StepAgent: ускорение из силы и трения, кандидат по Verlet, проверка
// клетки кандидата. Шаг отменяется целиком, если клетка твёрдая, вне
// карты, занята или забронирована другим агентом. Скорость и взгляд
// выводятся из фактического смещения, сила обнуляется.
func (in *Integrator) StepAgent(g *domain.Grid, a *domain.Agent, dt float64) StepOutcome {
	if dt <= 0 {
		return StepStayed
	}
	b := &a.Body

	damping := b.Vel.Scale(-in.Damping)
	b.Acc = b.Force.Add(damping).Scale(b.InvMass)

	before := b.Pos
	candidate := b.Pos.Add(b.Pos.Sub(b.PrevPos)).Add(b.Acc.Scale(dt * dt))

	outcome := StepStayed
	newPos := candidate
	if tile := g.WorldToTile(candidate); tile != b.Tile {
		res := CalculateMove(g, a, tile)
		// Не больше одной клетки за под-шаг, иначе быстрый агент проскочит стену.
		if abs(tile.X-b.Tile.X) > 1 || abs(tile.Y-b.Tile.Y) > 1 {
			res.HasMoved = false
			res.IsWall = true
		}
		if res.HasMoved {
			if err := ApplyMove(g, a, res); err != nil {
				res.HasMoved = false
			}
		}
		if res.HasMoved {
			outcome = StepCrossed
		} else {
			outcome = StepBlocked
			newPos = before
			if logger.Log.IsLevelEnabled(logrus.TraceLevel) {
				logger.Log.WithFields(logrus.Fields{
					"component":  "physics_system",
					"agent":      a.ID,
					"to":         tile,
					"wall":       res.IsWall,
					"blocked_by": res.BlockedBy,
				}).Trace("Step cancelled")
			}
		}
	}

	b.Vel = newPos.Sub(before).Scale(1 / dt)
	b.PrevPos = before
	b.Pos = newPos

	if !a.IsPlayer() && b.Vel.LenSq() > facingEpsilon*facingEpsilon {
		b.Facing = b.Vel.Angle()
	}

	b.Force = domain.Vec2{}
	return outcome
}
