package domain

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"squad-sim/internal/core/types"
	"squad-sim/internal/core/types/enums"
)

// --- СУЩНОСТЬ ---

// Agent - живой участник симуляции: игрок или боец отряда.
// Адресуется только по ID через AgentTable.
type Agent struct {
	// Идентификация
	ID   types.EntityID  `json:"id"`
	Kind enums.AgentKind `json:"kind"`
	Name string          `json:"name"`

	// Компоненты
	Body   BodyComponent   `json:"body"`
	Vision VisionComponent `json:"vision"`
	AI     *AIComponent    `json:"ai,omitempty"` // nil - управляется вводом

	// Debug включает расчёт оверлеев для этого агента.
	Debug   bool    `json:"debug,omitempty"`
	Overlay Overlay `json:"overlay"`
}

// NewAgent создаёт агента в покое. ID выдаёт AgentTable.Insert.
func NewAgent(kind enums.AgentKind, name string, mass float64) *Agent {
	a := &Agent{
		Kind: kind,
		Name: name,
	}
	a.Body.SetMass(mass)
	a.Vision.Visible = mapset.New[types.EntityID]()
	if !kind.IsPlayer() {
		a.AI = &AIComponent{State: enums.AIStateWander}
	}
	return a
}

// IsPlayer - агент управляется вводом.
func (a *Agent) IsPlayer() bool {
	return a.Kind.IsPlayer()
}

// Squad - номер отряда из ID.
func (a *Agent) Squad() uint8 {
	return a.ID.Squad()
}

// ResetVisible очищает набор видимых агентов перед пересчётом.
func (a *Agent) ResetVisible() {
	a.Vision.Visible = mapset.New[types.EntityID]()
}

// MarkVisible добавляет агента в набор видимых.
func (a *Agent) MarkVisible(id types.EntityID) {
	a.Vision.Visible.Put(id)
}

// CanSee - был ли id виден на последнем тике восприятия.
func (a *Agent) CanSee(id types.EntityID) bool {
	return a.Vision.Visible.Has(id)
}

// VisibleIDs возвращает видимых агентов в детерминированном порядке.
func (a *Agent) VisibleIDs() []types.EntityID {
	out := make([]types.EntityID, 0, a.Vision.Visible.Size())
	a.Vision.Visible.Each(func(id types.EntityID) {
		out = append(out, id)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
