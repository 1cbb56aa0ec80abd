package domain

import (
	"squad-sim/internal/core/types"
)

type agentSlot struct {
	gen   uint16
	agent *Agent // nil - слот свободен
}

// AgentTable - slot map живых агентов: плотный массив слотов + free list.
//
// Удалённый слот получает новое поколение, поэтому старые EntityID
// перестают находиться. Освобождённые индексы переиспользуются только
// следующим Insert, так что удаление во время Each безопасно.
// Слот 0 не выдаётся: иначе агент отряда 0 с нулевым Kind получил бы
// NilEntityID и стал невидим для сетки.
type AgentTable struct {
	slots []agentSlot
	free  []uint32
	dead  []*Agent
	count int
}

func NewAgentTable() *AgentTable {
	return &AgentTable{slots: make([]agentSlot, 1)}
}

// Insert кладёт агента в таблицу и выдаёт ему ID.
func (t *AgentTable) Insert(squad uint8, a *Agent) types.EntityID {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, agentSlot{})
	}

	slot := &t.slots[idx]
	a.ID = types.PackEntityID(squad, uint8(a.Kind), slot.gen, idx)
	slot.agent = a
	t.count++
	return a.ID
}

// Get ищет живого агента. Устаревший ID (другое поколение) не находится.
func (t *AgentTable) Get(id types.EntityID) (*Agent, bool) {
	if id.IsNil() {
		return nil, false
	}
	idx := id.Index()
	if idx == 0 || int(idx) >= len(t.slots) {
		return nil, false
	}
	a := t.slots[idx].agent
	if a == nil || a.ID != id {
		return nil, false
	}
	return a, true
}

// Remove убирает агента из живых и переносит в список погибших.
func (t *AgentTable) Remove(id types.EntityID) (*Agent, bool) {
	a, ok := t.Get(id)
	if !ok {
		return nil, false
	}
	idx := id.Index()
	slot := &t.slots[idx]
	slot.agent = nil
	slot.gen++
	t.free = append(t.free, idx)
	t.dead = append(t.dead, a)
	t.count--
	return a, true
}

// Len - число живых агентов.
func (t *AgentTable) Len() int {
	return t.count
}

// Each обходит живых агентов в порядке индексов слотов.
func (t *AgentTable) Each(fn func(a *Agent)) {
	for i := 1; i < len(t.slots); i++ {
		if a := t.slots[i].agent; a != nil {
			fn(a)
		}
	}
}

// All возвращает живых агентов в порядке индексов слотов.
func (t *AgentTable) All() []*Agent {
	out := make([]*Agent, 0, t.count)
	t.Each(func(a *Agent) { out = append(out, a) })
	return out
}

// Dead - погибшие агенты в порядке гибели (для посмертного отображения).
func (t *AgentTable) Dead() []*Agent {
	return t.dead
}
