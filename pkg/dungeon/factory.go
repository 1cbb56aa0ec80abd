package dungeon

import (
	"math"

	"squad-sim/internal/core/types/enums"
	"squad-sim/internal/domain"
)

// PlayerTemplate - агент под управлением ввода.
var PlayerTemplate = AgentTemplate{
	Name:         "Player",
	Kind:         enums.AgentKindPlayer,
	Mass:         1,
	MaxSpeed:     5,
	HalfAngle:    math.Pi / 3,
	ViewDistance: 16,
}

// CreatePlayer создаёт игрока. Взгляд по умолчанию на восток.
func CreatePlayer(name string) *domain.Agent {
	p := PlayerTemplate.Spawn()
	if name != "" {
		p.Name = name
	}
	return p
}
