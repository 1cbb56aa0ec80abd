package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squad-sim/internal/core/types/enums"
	"squad-sim/internal/domain"
)

func newTestSteering(seed int64) *Steering {
	return NewSteering(DefaultSteeringConfig(), rand.New(rand.NewSource(seed)))
}

func freeAgent(table *domain.AgentTable, pos domain.Vec2, maxSpeed float64) *domain.Agent {
	a := domain.NewAgent(enums.AgentKindScout, "free", 1)
	table.Insert(1, a)
	a.Body.Pos = pos
	a.Body.PrevPos = pos
	a.Body.MaxSpeed = maxSpeed
	return a
}

func assertVec(t *testing.T, want, got domain.Vec2, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, msg)
	assert.InDelta(t, want.Y, got.Y, 1e-9, msg)
}

func TestSeek(t *testing.T) {
	s := newTestSteering(1)
	table := domain.NewAgentTable()
	a := freeAgent(table, domain.Vec2{}, 2)

	assertVec(t, domain.Vec2{X: 1.2, Y: 1.6}, s.Seek(a, domain.Vec2{X: 3, Y: 4}), "toward destination at max speed")

	assertVec(t, domain.Vec2{}, s.Seek(a, a.Body.Pos), "destination equals position")

	a.Body.Vel = domain.Vec2{X: 2, Y: 0}
	assertVec(t, domain.Vec2{X: -2, Y: 2}, s.Seek(a, domain.Vec2{X: 0, Y: 5}), "velocity is subtracted")
}

func TestArrive(t *testing.T) {
	s := newTestSteering(1)
	table := domain.NewAgentTable()
	a := freeAgent(table, domain.Vec2{}, 2)

	tests := []struct {
		name string
		dest domain.Vec2
		want domain.Vec2
	}{
		{"Far: full speed", domain.Vec2{X: 10}, domain.Vec2{X: 2}},
		{"Inside slow radius", domain.Vec2{X: 1}, domain.Vec2{X: 1}},
		{"At destination", domain.Vec2{}, domain.Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, s.Arrive(a, tt.dest), tt.name)
		})
	}

	a.Body.Vel = domain.Vec2{X: 3, Y: 3}
	assertVec(t, domain.Vec2{}, s.Arrive(a, a.Body.Pos), "zero distance gives zero force even when moving")
}

func TestPursuit(t *testing.T) {
	s := newTestSteering(1)
	table := domain.NewAgentTable()
	a := freeAgent(table, domain.Vec2{}, 1)
	target := freeAgent(table, domain.Vec2{X: 4}, 1)

	// Обе скорости нулевые: упреждение схлопывается в текущую позицию цели.
	f := s.Pursuit(a, target)
	assertVec(t, domain.Vec2{X: 1}, f, "no lead")
	assert.False(t, math.IsNaN(f.X) || math.IsNaN(f.Y))

	target.Body.Vel = domain.Vec2{Y: 1}
	a.Debug = true
	f = s.Pursuit(a, target)

	// lead = 4 / (0 + 1) => (4, 4)
	require.Equal(t, domain.OverlayPursuitLookahead, a.Overlay.Kind)
	assertVec(t, domain.Vec2{X: 4, Y: 4}, a.Overlay.Point, "lookahead")
	assertVec(t, domain.Vec2{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, f, "seek toward lookahead")
}

// Сила блуждания ограничена и поворачивается не больше чем на jitter за тик.
func TestWander_BoundedAndSmooth(t *testing.T) {
	s := newTestSteering(7)
	cfg := s.Config()
	table := domain.NewAgentTable()
	a := freeAgent(table, domain.Vec2{X: 5, Y: 5}, 1)

	prev := s.Wander(a)
	for i := 0; i < 3000; i++ {
		f := s.Wander(a)
		require.LessOrEqual(t, f.Len(), cfg.WanderForce+1e-9)

		cross := prev.X*f.Y - prev.Y*f.X
		turn := math.Abs(math.Atan2(cross, prev.Dot(f)))
		require.LessOrEqual(t, turn, cfg.WanderJitter+1e-9, "tick %d", i)
		prev = f
	}
}

func TestWander_StateIsPerAgent(t *testing.T) {
	s := newTestSteering(3)
	table := domain.NewAgentTable()
	a := freeAgent(table, domain.Vec2{X: 1, Y: 1}, 1)
	b := freeAgent(table, domain.Vec2{X: 2, Y: 2}, 1)

	a.Debug = true
	s.Wander(a)
	s.Wander(b)
	assert.Equal(t, 2, s.Tracked())

	assert.Equal(t, domain.OverlayWanderCircle, a.Overlay.Kind)
	assert.Equal(t, s.Config().WanderRadius, a.Overlay.Radius)
	assert.Equal(t, domain.OverlayNone, b.Overlay.Kind, "overlays only for debug agents")

	s.Forget(a.ID)
	assert.Equal(t, 1, s.Tracked())
	s.Forget(a.ID)
	assert.Equal(t, 1, s.Tracked())
}

func TestWander_Deterministic(t *testing.T) {
	run := func() []domain.Vec2 {
		s := newTestSteering(11)
		table := domain.NewAgentTable()
		a := freeAgent(table, domain.Vec2{X: 3, Y: 3}, 1)
		var out []domain.Vec2
		for i := 0; i < 50; i++ {
			out = append(out, s.Wander(a))
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestAvoidWall(t *testing.T) {
	s := newTestSteering(1)
	g := createTestGrid(3, 3)
	table := domain.NewAgentTable()
	a := freeAgent(table, domain.Vec2{}, 1)

	// Центр 3x3: по одной клетке до края во все стороны - силы гасят друг друга.
	center, _ := g.GetCell(domain.Tile{X: 1, Y: 1})
	assertVec(t, domain.Vec2{}, s.AvoidWall(a, center), "balanced")

	// Левый край: W=0 толкает на восток с полной силой, E=2 уже за порогом.
	left, _ := g.GetCell(domain.Tile{X: 0, Y: 1})
	assertVec(t, domain.Vec2{X: 3}, s.AvoidWall(a, left), "pushed away from the west edge")

	// Верхний левый угол: толкает на юго-восток.
	corner, _ := g.GetCell(domain.Tile{X: 0, Y: 0})
	f := s.AvoidWall(a, corner)
	assert.Greater(t, f.X, 0.0)
	assert.Greater(t, f.Y, 0.0)

	assertVec(t, domain.Vec2{}, s.AvoidWall(a, nil), "no cell, no force")

	assert.Greater(t, s.wallScale(0), s.wallScale(1))
	assert.Greater(t, s.wallScale(1), s.wallScale(2))
	assert.Zero(t, s.wallScale(2))
}
