package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squad-sim/internal/core/types/enums"
	"squad-sim/internal/domain"
)

func TestComputeNPCForce(t *testing.T) {
	g := createTestGrid(12, 12)
	table := domain.NewAgentTable()
	s := newTestSteering(5)

	player := placeAgent(t, g, table, enums.AgentKindPlayer, 0, domain.Tile{X: 8, Y: 5})
	npc := placeAgent(t, g, table, enums.AgentKindScout, 1, domain.Tile{X: 4, Y: 5})
	require.NotNil(t, npc.AI)

	// 1. Видит игрока - преследует.
	npc.MarkVisible(player.ID)
	f := ComputeNPCForce(s, g, npc, player)
	assert.Equal(t, enums.AIStatePursue, npc.AI.State)
	assert.Equal(t, player.ID, npc.AI.Target)
	assert.Equal(t, player.Body.Pos, npc.AI.LastSeen)
	assert.Greater(t, f.X, 0.0, "pulled toward the player")

	// 2. Потерял из виду - идёт к последней точке.
	lastSeen := player.Body.Pos
	npc.ResetVisible()
	player.Body.Pos = domain.Vec2{X: 0.5, Y: 0.5}
	f = ComputeNPCForce(s, g, npc, player)
	assert.Equal(t, enums.AIStateInvestigate, npc.AI.State)
	assert.Equal(t, lastSeen, npc.AI.LastSeen)
	assert.Greater(t, f.X, 0.0, "still heading to the last sighting")

	// 3. Дошёл до точки - успокаивается и снова бродит.
	npc.Body.Pos = lastSeen.Add(domain.Vec2{X: 0.1})
	ComputeNPCForce(s, g, npc, player)
	assert.Equal(t, enums.AIStateWander, npc.AI.State)
	assert.Equal(t, 1, s.Tracked(), "wander state created")
}

func TestComputeNPCForce_EdgeCases(t *testing.T) {
	g := createTestGrid(6, 6)
	table := domain.NewAgentTable()
	s := newTestSteering(5)

	player := placeAgent(t, g, table, enums.AgentKindPlayer, 0, domain.Tile{X: 1, Y: 1})
	npc := placeAgent(t, g, table, enums.AgentKindScout, 1, domain.Tile{X: 3, Y: 3})

	t.Run("Player has no AI", func(t *testing.T) {
		assert.Equal(t, domain.Vec2{}, ComputeNPCForce(s, g, player, npc))
	})

	t.Run("No player", func(t *testing.T) {
		f := ComputeNPCForce(s, g, npc, nil)
		assert.Equal(t, enums.AIStateWander, npc.AI.State)
		assert.LessOrEqual(t, f.Len(), WanderWeight*s.Config().WanderForce+2*AvoidWallWeight*s.Config().WallForce)
	})

	t.Run("Pursuer loses a removed player", func(t *testing.T) {
		npc.MarkVisible(player.ID)
		ComputeNPCForce(s, g, npc, player)
		require.Equal(t, enums.AIStatePursue, npc.AI.State)

		ComputeNPCForce(s, g, npc, nil)
		assert.Equal(t, enums.AIStateInvestigate, npc.AI.State)
	})
}

func TestComputeNPCForce_OverlayFollowsState(t *testing.T) {
	g := createTestGrid(12, 12)
	table := domain.NewAgentTable()
	s := newTestSteering(5)

	player := placeAgent(t, g, table, enums.AgentKindPlayer, 0, domain.Tile{X: 8, Y: 5})
	npc := placeAgent(t, g, table, enums.AgentKindScout, 1, domain.Tile{X: 4, Y: 5})
	npc.Debug = true

	npc.MarkVisible(player.ID)
	ComputeNPCForce(s, g, npc, player)
	require.Equal(t, domain.OverlayPursuitLookahead, npc.Overlay.Kind)

	npc.ResetVisible()
	ComputeNPCForce(s, g, npc, player)
	require.Equal(t, enums.AIStateInvestigate, npc.AI.State)
	assert.Equal(t, domain.OverlayNone, npc.Overlay.Kind, "no stale lookahead while investigating")

	npc.Body.Pos = npc.AI.LastSeen
	ComputeNPCForce(s, g, npc, player)
	require.Equal(t, enums.AIStateWander, npc.AI.State)
	assert.Equal(t, domain.OverlayWanderCircle, npc.Overlay.Kind)
}
