package domain

import (
	"fmt"

	"squad-sim/internal/core/types"
)

// AIMessageType - вид сообщения в почтовом ящике координатора.
type AIMessageType uint8

const (
	AIMessageUnknown AIMessageType = iota
	AIMessagePlayerSpotted
)

// String реализует интерфейс Stringer (для fmt.Printf)
func (t AIMessageType) String() string {
	switch t {
	case AIMessagePlayerSpotted:
		return "PLAYER_SPOTTED"
	default:
		return "UNKNOWN"
	}
}

// AIMessage - сообщение между ИИ-агентами. Живёт не дольше одного тика.
// Поля, не относящиеся к Type, остаются нулевыми.
type AIMessage struct {
	Type AIMessageType

	// PlayerSpotted
	Observer types.EntityID
	Target   types.EntityID
	Position Vec2
	Tick     uint64
}

// PlayerSpotted собирает сообщение "игрок замечен".
func PlayerSpotted(observer, target types.EntityID, pos Vec2, tick uint64) AIMessage {
	return AIMessage{
		Type:     AIMessagePlayerSpotted,
		Observer: observer,
		Target:   target,
		Position: pos,
		Tick:     tick,
	}
}

func (m AIMessage) String() string {
	return fmt.Sprintf("%s observer=%s target=%s at (%.2f, %.2f)", m.Type, m.Observer, m.Target, m.Position.X, m.Position.Y)
}
