package dungeon

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"squad-sim/internal/core/types/enums"
	"squad-sim/internal/domain"
)

// ErrUnknownTemplate - в составе отряда указан вид, для которого нет бойца.
var ErrUnknownTemplate = errors.New("unknown agent template")

// AgentTemplate определяет шаблон для создания агента
type AgentTemplate struct {
	Name         string
	Kind         enums.AgentKind
	Mass         float64
	MaxSpeed     float64 // тайлов в секунду
	HalfAngle    float64 // полуугол обзора, радианы
	ViewDistance float64 // тайлов
}

// Spawn создает агента из шаблона. Позицию и ID назначает мир.
func (t AgentTemplate) Spawn() *domain.Agent {
	a := domain.NewAgent(t.Kind, t.Name, t.Mass)
	a.Body.MaxSpeed = t.MaxSpeed
	a.Vision.HalfAngle = t.HalfAngle
	a.Vision.ViewDistance = t.ViewDistance
	return a
}

// --- БОЙЦЫ ОТРЯДОВ ---

var Scout = AgentTemplate{
	Name:         "Scout",
	Kind:         enums.AgentKindScout,
	Mass:         0.8,
	MaxSpeed:     4,
	HalfAngle:    math.Pi / 3,
	ViewDistance: 14,
}

var Rifleman = AgentTemplate{
	Name:         "Rifleman",
	Kind:         enums.AgentKindRifleman,
	Mass:         1,
	MaxSpeed:     3,
	HalfAngle:    math.Pi / 4,
	ViewDistance: 10,
}

var Heavy = AgentTemplate{
	Name:         "Heavy",
	Kind:         enums.AgentKindHeavy,
	Mass:         2,
	MaxSpeed:     2,
	HalfAngle:    math.Pi / 6,
	ViewDistance: 8,
}

// SquadTemplates - бойцы, доступные для отрядов, по виду агента.
var SquadTemplates = map[enums.AgentKind]AgentTemplate{
	enums.AgentKindScout:    Scout,
	enums.AgentKindRifleman: Rifleman,
	enums.AgentKindHeavy:    Heavy,
}

// SquadRoster - состав отряда по умолчанию.
var SquadRoster = []AgentTemplate{Scout, Rifleman, Rifleman, Heavy}

// ParseRoster разбирает состав вида "scout,rifleman,heavy".
// Пустая строка даёт SquadRoster.
func ParseRoster(s string) ([]AgentTemplate, error) {
	if strings.TrimSpace(s) == "" {
		return SquadRoster, nil
	}

	var out []AgentTemplate
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		tpl, ok := SquadTemplates[enums.ParseAgentKind(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
		}
		out = append(out, tpl)
	}
	return out, nil
}

// RosterFor раскладывает roster на отряд из size бойцов по кругу.
// Пустой roster заменяется на SquadRoster.
func RosterFor(roster []AgentTemplate, size int) []AgentTemplate {
	if len(roster) == 0 {
		roster = SquadRoster
	}
	out := make([]AgentTemplate, 0, size)
	for i := 0; i < size; i++ {
		out = append(out, roster[i%len(roster)])
	}
	return out
}
