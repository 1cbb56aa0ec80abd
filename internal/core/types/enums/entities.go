package enums

import "strings"

// AgentKind - вид агента. Хранится в поле Kind у types.EntityID,
// поэтому нулевое значение зарезервировано: у живого агента Kind != 0.
type AgentKind uint8

const (
	AgentKindUnknown AgentKind = iota
	AgentKindPlayer
	AgentKindScout
	AgentKindRifleman
	AgentKindHeavy
)

var agentKindToString = map[AgentKind]string{
	AgentKindPlayer:   "PLAYER",
	AgentKindScout:    "SCOUT",
	AgentKindRifleman: "RIFLEMAN",
	AgentKindHeavy:    "HEAVY",
}

var agentKindStringToKind = map[string]AgentKind{
	"PLAYER":   AgentKindPlayer,
	"SCOUT":    AgentKindScout,
	"RIFLEMAN": AgentKindRifleman,
	"HEAVY":    AgentKindHeavy,
}

// String возвращает строковое представление (для логов и снапшотов)
func (k AgentKind) String() string {
	if val, ok := agentKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseAgentKind конвертирует имя вида без учёта регистра (флаг -roster)
func ParseAgentKind(s string) AgentKind {
	upper := strings.ToUpper(s)
	if val, ok := agentKindStringToKind[upper]; ok {
		return val
	}
	return AgentKindUnknown
}

// IsPlayer - управляется ли агент вводом, а не ИИ
func (k AgentKind) IsPlayer() bool {
	return k == AgentKindPlayer
}
