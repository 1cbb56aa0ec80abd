package domain

import (
	"github.com/zyedidia/generic/mapset"

	"squad-sim/internal/core/types"
	"squad-sim/internal/core/types/enums"
)

// --- КОМПОНЕНТЫ ---

// BodyComponent - Кинематика (Verlet)
// Скорость и ускорение производные: первичное состояние - Pos и PrevPos.
type BodyComponent struct {
	Pos     Vec2 `json:"pos"`
	PrevPos Vec2 `json:"-"`
	Vel     Vec2 `json:"vel"`
	Acc     Vec2 `json:"-"`
	Force   Vec2 `json:"-"` // живёт один под-шаг, интегратор обнуляет

	Mass    float64 `json:"mass"`
	InvMass float64 `json:"-"`

	// Facing - угол взгляда в радианах, направление (cos, sin).
	Facing   float64 `json:"facing"`
	MaxSpeed float64 `json:"maxSpeed"`

	// Tile - клетка, которую агент занимает в сетке.
	Tile Tile `json:"tile"`
}

// SetMass задаёт массу и обратную массу. Неположительная масса - неподвижное тело.
func (b *BodyComponent) SetMass(m float64) {
	b.Mass = m
	if m > 0 {
		b.InvMass = 1 / m
	} else {
		b.InvMass = 0
	}
}

// Place ставит тело в точку в покое.
func (b *BodyComponent) Place(pos Vec2, tile Tile) {
	b.Pos = pos
	b.PrevPos = pos
	b.Vel = Vec2{}
	b.Acc = Vec2{}
	b.Force = Vec2{}
	b.Tile = tile
}

// AddForce накапливает силу до следующего шага интегратора.
func (b *BodyComponent) AddForce(f Vec2) {
	b.Force = b.Force.Add(f)
}

// Heading - единичный вектор взгляда.
func (b *BodyComponent) Heading() Vec2 {
	return FromAngle(b.Facing)
}

// VisionComponent - настройки зрения
type VisionComponent struct {
	HalfAngle    float64 `json:"halfAngle"` // полуугол конуса, радианы
	ViewDistance float64 `json:"viewDistance"`

	// Visible пересобирается каждый тик восприятием.
	Visible mapset.Set[types.EntityID] `json:"-"`
}

// AIComponent - Мозги NPC. У игрока отсутствует.
type AIComponent struct {
	State enums.AIState `json:"state"`

	// Последняя точка, где агент видел игрока.
	LastSeen    Vec2 `json:"lastSeen"`
	HasLastSeen bool `json:"hasLastSeen"`

	// Target - кого преследуем в состоянии Pursue.
	Target types.EntityID `json:"target,omitempty"`
}
