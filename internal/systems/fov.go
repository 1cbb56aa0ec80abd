package systems

import (
	"math"

	"github.com/sirupsen/logrus"

	"squad-sim/internal/core/types"
	"squad-sim/internal/domain"
	"squad-sim/pkg/logger"
)

// SpottedHeat - сколько heat получает клетка, где заметили игрока.
const SpottedHeat uint8 = 48

// MessagePoster принимает сообщения ИИ. Реализуется координатором движка;
// интерфейс объявлен здесь, чтобы systems не зависел от engine.
type MessagePoster interface {
	Post(msg domain.AIMessage)
}

// UpdatePerception пересобирает набор видимых агентов у каждого агента.
//
// Фильтры по порядку: дистанция (viewDistance²), конус обзора
// (arccos скалярного произведения единичных векторов против halfAngle),
// прямая видимость по сетке. Не-игрок, увидевший игрока, отправляет
// PlayerSpotted. Возвращает число таких наблюдений.
func UpdatePerception(g *domain.Grid, agents []*domain.Agent, playerID types.EntityID, poster MessagePoster, tick uint64) int {
	spotted := 0

	for _, observer := range agents {
		observer.ResetVisible()

		vd := observer.Vision.ViewDistance
		if vd <= 0 {
			continue
		}
		vdSq := vd * vd
		heading := observer.Body.Heading()
		from := g.WorldToTile(observer.Body.Pos)

		for _, other := range agents {
			if other.ID == observer.ID {
				continue
			}

			to := other.Body.Pos.Sub(observer.Body.Pos)
			if to.LenSq() > vdSq {
				continue
			}
			if !inCone(heading, to, observer.Vision.HalfAngle) {
				continue
			}
			target := g.WorldToTile(other.Body.Pos)
			if !HasLineOfSight(g, from, target) {
				continue
			}

			observer.MarkVisible(other.ID)

			if other.ID == playerID && !observer.IsPlayer() {
				spotted++
				g.AddHeat(target, SpottedHeat)
				if poster != nil {
					poster.Post(domain.PlayerSpotted(observer.ID, other.ID, other.Body.Pos, tick))
				}
				logger.Log.WithFields(logrus.Fields{
					"component": "perception_system",
					"observer":  observer.ID,
					"tick":      tick,
				}).Debug("Player spotted")
			}
		}
	}
	return spotted
}

// inCone: нулевой вектор (агенты в одной точке) проходит всегда.
func inCone(heading, to domain.Vec2, halfAngle float64) bool {
	dir := to.Normalize()
	if dir.IsZero() {
		return true
	}
	cos := math.Max(-1, math.Min(1, heading.Dot(dir)))
	return math.Acos(cos) <= halfAngle
}
