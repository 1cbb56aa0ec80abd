package api

// --- СИМУЛЯЦИЯ -> СЛОЙ ОТОБРАЖЕНИЯ ---

// WorldSnapshot - снимок мира только для чтения. Внешний слой рисует по нему
// текстуру клеток, спрайты агентов и отладочные оверлеи.
type WorldSnapshot struct {
	// RunID детерминированный идентификатор прогона (зависит от сида).
	RunID string `json:"runId"`

	// Tick число выполненных фиксированных под-шагов.
	Tick uint64 `json:"tick"`

	// PlayerID ID агента, которым управляет ввод.
	PlayerID string `json:"playerId,omitempty"`

	// Grid метаданные о размере карты.
	Grid GridMeta `json:"grid"`

	// Cells все клетки построчно (row-major), len = W*H.
	Cells []CellView `json:"cells"`

	// VisibleTiles индексы клеток (y*W + x), видимых игроку, по возрастанию.
	VisibleTiles []int `json:"visibleTiles,omitempty"`

	// Agents живые агенты в порядке слотов.
	Agents []AgentView `json:"agents"`

	// Dead погибшие агенты, для посмертного отображения.
	Dead []AgentView `json:"dead,omitempty"`
}

// GridMeta содержит общие размеры карты.
type GridMeta struct {
	Width    int     `json:"w"`
	Height   int     `json:"h"`
	TileSize float64 `json:"tileSize"`
}

// CellView - одна клетка для текстурного буфера.
type CellView struct {
	IsWall bool   `json:"isWall"`
	Heat   uint8  `json:"heat,omitempty"`
	Color  uint32 `json:"color,omitempty"` // RGBA
}

// Vec2View - точка в мировых координатах.
type Vec2View struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AgentView это DTO для агента.
type AgentView struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"` // PLAYER, SCOUT, RIFLEMAN, HEAVY
	Name  string `json:"name"`
	Squad uint8  `json:"squad"`

	Pos    Vec2View `json:"pos"`
	Vel    Vec2View `json:"vel"`
	Facing float64  `json:"facing"`

	HalfAngle    float64 `json:"halfAngle"`
	ViewDistance float64 `json:"viewDistance"`

	// Visible ID агентов, видимых на последнем тике восприятия (отсортированы).
	Visible []string `json:"visible,omitempty"`

	// AIState пусто у игрока.
	AIState string `json:"aiState,omitempty"`

	Overlay *OverlayView `json:"overlay,omitempty"`
}

// OverlayView - отладочный оверлей. Kind: "pursuit" | "wander".
type OverlayView struct {
	Kind   string   `json:"kind"`
	Point  Vec2View `json:"point"`
	Center Vec2View `json:"center,omitempty"`
	Radius float64  `json:"radius,omitempty"`
}

// --- ВВОД -> СИМУЛЯЦИЯ ---

// TurnPayload используется для поворотов игрока.
type TurnPayload struct {
	Sign int `json:"sign"` // -1 влево, +1 вправо
}

// ThrustPayload используется для тяги вдоль взгляда.
type ThrustPayload struct {
	Sign int `json:"sign"` // +1 вперёд, -1 назад
}
