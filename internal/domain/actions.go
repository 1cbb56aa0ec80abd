package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия игрока
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionTurnLeft
	ActionTurnRight
	ActionThrustForward
	ActionThrustBackward
)

// actionNames: имена действий во внешнем протоколе ввода.
var actionNames = [...]string{
	ActionUnknown:        "UNKNOWN",
	ActionTurnLeft:       "TURN_LEFT",
	ActionTurnRight:      "TURN_RIGHT",
	ActionThrustForward:  "THRUST_FORWARD",
	ActionThrustBackward: "THRUST_BACKWARD",
}

// ParseAction переводит имя действия (без учёта регистра) в ActionType.
func ParseAction(s string) ActionType {
	for i, name := range actionNames {
		if strings.EqualFold(name, s) && ActionType(i) != ActionUnknown {
			return ActionType(i)
		}
	}
	return ActionUnknown
}

func (a ActionType) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return actionNames[ActionUnknown]
}

// InputIntent - то, что внешний слой ввода передаёт в кадр.
// Повороты - фронты (сработать один раз за кадр), тяга - уровни
// (действует на каждом под-шаге, пока кнопка зажата).
type InputIntent struct {
	TurnLeft       bool `json:"turnLeft,omitempty"`
	TurnRight      bool `json:"turnRight,omitempty"`
	ThrustForward  bool `json:"thrustForward,omitempty"`
	ThrustBackward bool `json:"thrustBackward,omitempty"`
}

// Edges возвращает действия-фронты в фиксированном порядке.
func (in InputIntent) Edges() []ActionType {
	var out []ActionType
	if in.TurnLeft {
		out = append(out, ActionTurnLeft)
	}
	if in.TurnRight {
		out = append(out, ActionTurnRight)
	}
	return out
}

// Levels возвращает действия-уровни.
func (in InputIntent) Levels() []ActionType {
	var out []ActionType
	if in.ThrustForward {
		out = append(out, ActionThrustForward)
	}
	if in.ThrustBackward {
		out = append(out, ActionThrustBackward)
	}
	return out
}
