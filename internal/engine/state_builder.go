package engine

import (
	"sort"

	"squad-sim/internal/domain"
	"squad-sim/internal/systems"
	"squad-sim/pkg/api"
)

// Snapshot создает "снимок" мира для слоя отображения.
// Снимок ничего не разделяет с симуляцией: его можно держать между кадрами.
func (i *Instance) Snapshot() api.WorldSnapshot {
	g := i.Grid

	// 1. Формирование карты (Map DTO)
	cells := g.Snapshot()
	cellViews := make([]api.CellView, len(cells))
	for idx, c := range cells {
		cellViews[idx] = api.CellView{IsWall: c.Solid, Heat: c.Heat, Color: c.Color}
	}

	snap := api.WorldSnapshot{
		RunID:  i.RunID,
		Tick:   i.CurrentTick,
		Grid:   api.GridMeta{Width: g.Width, Height: g.Height, TileSize: g.TileSize},
		Cells:  cellViews,
		Agents: make([]api.AgentView, 0, i.Agents.Len()),
	}

	// 2. Поле зрения игрока (туман войны рисует внешний слой)
	if player := i.Player(); player != nil {
		snap.PlayerID = player.ID.String()
		radius := int(player.Vision.ViewDistance / g.TileSize)
		visible := systems.ComputeVisibleTiles(g, player.Body.Tile, radius)
		snap.VisibleTiles = make([]int, 0, len(visible))
		for idx := range visible {
			snap.VisibleTiles = append(snap.VisibleTiles, idx)
		}
		sort.Ints(snap.VisibleTiles)
	}

	// 3. Формирование списка агентов (Agents DTO)
	i.Agents.Each(func(a *domain.Agent) {
		snap.Agents = append(snap.Agents, toAgentView(a))
	})
	for _, a := range i.Agents.Dead() {
		snap.Dead = append(snap.Dead, toAgentView(a))
	}

	return snap
}

// toAgentView конвертирует доменного агента в DTO.
func toAgentView(a *domain.Agent) api.AgentView {
	view := api.AgentView{
		ID:           a.ID.String(),
		Kind:         a.Kind.String(),
		Name:         a.Name,
		Squad:        a.Squad(),
		Pos:          vecView(a.Body.Pos),
		Vel:          vecView(a.Body.Vel),
		Facing:       a.Body.Facing,
		HalfAngle:    a.Vision.HalfAngle,
		ViewDistance: a.Vision.ViewDistance,
	}

	for _, id := range a.VisibleIDs() {
		view.Visible = append(view.Visible, id.String())
	}

	if a.AI != nil {
		view.AIState = a.AI.State.String()
	}

	if a.Overlay.Kind != domain.OverlayNone {
		view.Overlay = &api.OverlayView{
			Kind:   a.Overlay.Kind.String(),
			Point:  vecView(a.Overlay.Point),
			Center: vecView(a.Overlay.Center),
			Radius: a.Overlay.Radius,
		}
	}

	return view
}

func vecView(v domain.Vec2) api.Vec2View {
	return api.Vec2View{X: v.X, Y: v.Y}
}
