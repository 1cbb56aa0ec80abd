package domain

// OverlayKind - закрытый набор отладочных оверлеев агента.
// Рисует их внешний слой через switch по Kind.
type OverlayKind uint8

const (
	OverlayNone OverlayKind = iota
	OverlayPursuitLookahead
	OverlayWanderCircle
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayPursuitLookahead:
		return "pursuit"
	case OverlayWanderCircle:
		return "wander"
	default:
		return "none"
	}
}

// Overlay - данные последнего рассчитанного оверлея.
//
//   - PursuitLookahead: Point - предсказанная позиция цели.
//   - WanderCircle: Center/Radius - окружность блуждания, Point - точка на ней.
type Overlay struct {
	Kind   OverlayKind `json:"kind"`
	Point  Vec2        `json:"point"`
	Center Vec2        `json:"center,omitempty"`
	Radius float64     `json:"radius,omitempty"`
}
