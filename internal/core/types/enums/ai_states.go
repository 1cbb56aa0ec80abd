package enums

// AIState - состояние простого автомата NPC.
type AIState uint8

const (
	AIStateUnknown AIState = iota
	// бродит и обходит стены
	AIStateWander
	// видит игрока и преследует его
	AIStatePursue
	// потерял игрока, идёт к последней точке
	AIStateInvestigate
)

func (s AIState) String() string {
	switch s {
	case AIStateWander:
		return "WANDER"
	case AIStatePursue:
		return "PURSUE"
	case AIStateInvestigate:
		return "INVESTIGATE"
	}
	return "UNKNOWN"
}
