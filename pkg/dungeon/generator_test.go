package dungeon

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squad-sim/internal/domain"
)

func testConfigs() []GenConfig {
	return []GenConfig{
		DefaultGenConfig(),
		{Width: 20, Height: 20, RoomCountTarget: 3, MinRoomWidth: 4, MinRoomHeight: 4, MaxRoomWidth: 8, MaxRoomHeight: 8},
		{Width: 64, Height: 40, RoomCountTarget: 20, MinRoomWidth: 3, MinRoomHeight: 3, MaxRoomWidth: 10, MaxRoomHeight: 6},
		{Width: 5, Height: 5, RoomCountTarget: 1, MinRoomWidth: 3, MinRoomHeight: 3, MaxRoomWidth: 3, MaxRoomHeight: 3},
		{Width: 30, Height: 12, RoomCountTarget: 50, MinRoomWidth: 3, MinRoomHeight: 3, MaxRoomWidth: 30, MaxRoomHeight: 30},
	}
}

func doorCells(l *Layout) map[domain.Tile]bool {
	out := make(map[domain.Tile]bool)
	for _, d := range l.Doors {
		for _, c := range d.Cells {
			out[c] = true
		}
	}
	return out
}

// Пол комнат пустой, периметр - стена везде, кроме дверей.
func TestGenerate_RoomsCarved(t *testing.T) {
	for i, cfg := range testConfigs() {
		for seed := int64(1); seed <= 20; seed++ {
			layout, err := Generate(cfg, rand.New(rand.NewSource(seed)))
			require.NoError(t, err, "config %d seed %d", i, seed)
			require.NotEmpty(t, layout.Rooms)
			assert.LessOrEqual(t, len(layout.Rooms), cfg.RoomCountTarget)

			doors := doorCells(layout)
			g := layout.Grid

			for _, room := range layout.Rooms {
				b := room.Bounds
				for y := b.Y; y < b.Y+b.H; y++ {
					for x := b.X; x < b.X+b.W; x++ {
						tile := domain.Tile{X: x, Y: y}
						border := x == b.X || y == b.Y || x == b.X+b.W-1 || y == b.Y+b.H-1
						switch {
						case !border:
							assert.False(t, g.IsSolid(tile), "interior %v of room %d", tile, room.ID)
						case doors[tile]:
							assert.False(t, g.IsSolid(tile), "door %v", tile)
						default:
							assert.True(t, g.IsSolid(tile), "border %v of room %d", tile, room.ID)
						}
					}
				}
			}
		}
	}
}

func TestGenerate_RoomsDoNotOverlap(t *testing.T) {
	for i, cfg := range testConfigs() {
		for seed := int64(1); seed <= 20; seed++ {
			layout, err := Generate(cfg, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)

			for a := 0; a < len(layout.Rooms); a++ {
				ra := layout.Rooms[a].Bounds
				assert.GreaterOrEqual(t, ra.X, 1)
				assert.GreaterOrEqual(t, ra.Y, 1)
				assert.LessOrEqual(t, ra.X+ra.W, cfg.Width-1)
				assert.LessOrEqual(t, ra.Y+ra.H, cfg.Height-1)
				assert.GreaterOrEqual(t, ra.W, cfg.MinRoomWidth)
				assert.LessOrEqual(t, ra.W, cfg.MaxRoomWidth)

				for b := a + 1; b < len(layout.Rooms); b++ {
					rb := layout.Rooms[b].Bounds
					assert.False(t, ra.Overlaps(rb), "config %d seed %d: rooms %v and %v overlap", i, seed, ra, rb)
				}
			}
		}
	}
}

func TestGenerate_BorderStaysSolid(t *testing.T) {
	cfg := DefaultGenConfig()
	layout, err := Generate(cfg, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	g := layout.Grid
	for x := 0; x < g.Width; x++ {
		assert.True(t, g.IsSolid(domain.Tile{X: x, Y: 0}))
		assert.True(t, g.IsSolid(domain.Tile{X: x, Y: g.Height - 1}))
	}
	for y := 0; y < g.Height; y++ {
		assert.True(t, g.IsSolid(domain.Tile{X: 0, Y: y}))
		assert.True(t, g.IsSolid(domain.Tile{X: g.Width - 1, Y: y}))
	}
	assert.False(t, g.WallDistancesStale(), "generation ends with the wall-distance pass")
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := DefaultGenConfig()

	a, err := Generate(cfg, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := Generate(cfg, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, a.Rooms, b.Rooms)
	assert.Equal(t, a.Doors, b.Doors)
	assert.Equal(t, a.Grid.Snapshot(), b.Grid.Snapshot())
}

func TestGenerate_DoorsAreTwoWide(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		layout, err := Generate(DefaultGenConfig(), rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		for _, d := range layout.Doors {
			assert.Less(t, d.RoomA, d.RoomB)
			// Пары соседние: первая клетка двери рядом с третьей.
			dx := d.Cells[2].X - d.Cells[0].X
			dy := d.Cells[2].Y - d.Cells[0].Y
			assert.Equal(t, 1, dx*dx+dy*dy, "door %v", d)
			// Внутри пары клетки соседние по другой оси.
			px := d.Cells[1].X - d.Cells[0].X
			py := d.Cells[1].Y - d.Cells[0].Y
			assert.Equal(t, 1, px*px+py*py)
			assert.Zero(t, px*dx+py*dy, "door runs across the wall, not along it")
		}
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	base := DefaultGenConfig()

	tests := []struct {
		name   string
		mutate func(c *GenConfig)
	}{
		{"Zero width", func(c *GenConfig) { c.Width = 0 }},
		{"Negative height", func(c *GenConfig) { c.Height = -4 }},
		{"Too small level", func(c *GenConfig) { c.Width = 2 }},
		{"No rooms wanted", func(c *GenConfig) { c.RoomCountTarget = 0 }},
		{"Min room too small", func(c *GenConfig) { c.MinRoomWidth = 2 }},
		{"Min exceeds max", func(c *GenConfig) { c.MinRoomHeight = c.MaxRoomHeight + 1 }},
		{"Min room exceeds level", func(c *GenConfig) {
			c.Width, c.Height = 10, 10
			c.MinRoomWidth, c.MaxRoomWidth = 9, 12
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)

			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

			layout, err := Generate(cfg, rand.New(rand.NewSource(1)))
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, layout)
		})
	}

	assert.NoError(t, base.Validate())
}

func TestGenerateArena(t *testing.T) {
	layout, err := GenerateArena(10, 10)
	require.NoError(t, err)
	require.Len(t, layout.Rooms, 1)
	assert.Empty(t, layout.Doors)

	g := layout.Grid
	assert.True(t, g.IsSolid(domain.Tile{X: 0, Y: 5}))
	assert.True(t, g.IsSolid(domain.Tile{X: 9, Y: 9}))
	assert.False(t, g.IsSolid(domain.Tile{X: 1, Y: 1}))
	assert.False(t, g.IsSolid(domain.Tile{X: 8, Y: 8}))

	d, _ := g.WallDistance(domain.East, domain.Tile{X: 1, Y: 1})
	assert.Equal(t, uint16(7), d)

	_, err = GenerateArena(2, 10)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLevelBuilder(t *testing.T) {
	cfg := DefaultGenConfig()

	layout, err := NewLevel(cfg, rand.New(rand.NewSource(5))).
		WithRooms().
		WithPalette(5).
		Build()
	require.NoError(t, err)

	for i, c := range layout.Grid.Snapshot() {
		assert.NotZero(t, c.Color, "cell %d has no palette color", i)
		assert.Equal(t, uint32(255), c.Color&0xff, "opaque alpha")
	}

	b := NewLevel(cfg, rand.New(rand.NewSource(5))).WithSize(12, 9).WithArena()
	arena, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 12, arena.Grid.Width)
	assert.Equal(t, domain.Tile{X: 6, Y: 4}, b.GetStartTile())

	bad := cfg
	bad.RoomCountTarget = 0
	_, err = NewLevel(bad, rand.New(rand.NewSource(1))).WithRooms().WithPalette(1).Build()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRosterFor(t *testing.T) {
	roster := RosterFor(nil, 6)
	require.Len(t, roster, 6)
	assert.Equal(t, Scout.Kind, roster[0].Kind)
	assert.Equal(t, Scout.Kind, roster[4].Kind, "roster wraps around")

	custom := RosterFor([]AgentTemplate{Heavy, Scout}, 3)
	assert.Equal(t, []AgentTemplate{Heavy, Scout, Heavy}, custom)
	assert.Empty(t, RosterFor(SquadRoster, 0))

	a := Heavy.Spawn()
	assert.Equal(t, Heavy.ViewDistance, a.Vision.ViewDistance)
	assert.InDelta(t, 0.5, a.Body.InvMass, 1e-12)
	require.NotNil(t, a.AI)

	p := CreatePlayer("")
	assert.True(t, p.IsPlayer())
	assert.Nil(t, p.AI)
	assert.Equal(t, "Player", p.Name)
}

func TestParseRoster(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []AgentTemplate
		wantErr bool
	}{
		{name: "Empty gives default", input: "", want: SquadRoster},
		{name: "Blank gives default", input: "  ", want: SquadRoster},
		{name: "Single", input: "heavy", want: []AgentTemplate{Heavy}},
		{name: "Mixed case and spaces", input: "Scout, RIFLEMAN ,heavy", want: []AgentTemplate{Scout, Rifleman, Heavy}},
		{name: "Player is not a squad member", input: "scout,player", wantErr: true},
		{name: "Unknown kind", input: "medic", wantErr: true},
		{name: "Empty entry", input: "scout,,heavy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRoster(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTemplate)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Две комнаты вплотную: стена левой (x=5) и правой (x=6) образуют
// двойную стену из shared пар. Дверь режется только при 4+ парах и
// никогда не занимает крайние пары.
func TestCarveDoors_SharedBoundary(t *testing.T) {
	tests := []struct {
		name    string
		shared  int
		wantRow []int // допустимые Y первой пары двери
	}{
		{name: "Three pairs stay sealed", shared: 3},
		{name: "Four pairs use the middle", shared: 4, wantRow: []int{2}},
		{name: "Five pairs skip the ends", shared: 5, wantRow: []int{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 10; seed++ {
				grid := domain.NewGrid(12, tt.shared+2)
				grid.FillTerrain(domain.Rect{W: 12, H: tt.shared + 2}, true)
				roomIDs := make([]int32, grid.Width*grid.Height)

				left := Room{ID: 1, Bounds: domain.Rect{X: 1, Y: 1, W: 5, H: tt.shared}}
				right := Room{ID: 2, Bounds: domain.Rect{X: 6, Y: 1, W: 5, H: tt.shared}}
				carveRoom(grid, roomIDs, left)
				carveRoom(grid, roomIDs, right)

				doors := carveDoors(grid, roomIDs, rand.New(rand.NewSource(seed)))

				if tt.wantRow == nil {
					assert.Empty(t, doors)
				} else {
					require.Len(t, doors, 1)
					d := doors[0]
					assert.Equal(t, 1, d.RoomA)
					assert.Equal(t, 2, d.RoomB)
					assert.Contains(t, tt.wantRow, d.Cells[0].Y)
					y := d.Cells[0].Y
					assert.Equal(t, [4]domain.Tile{{X: 5, Y: y}, {X: 6, Y: y}, {X: 5, Y: y + 1}, {X: 6, Y: y + 1}}, d.Cells)
				}

				open := doorCells(&Layout{Doors: doors})
				for y := 1; y <= tt.shared; y++ {
					for _, x := range []int{5, 6} {
						tile := domain.Tile{X: x, Y: y}
						assert.Equal(t, !open[tile], grid.IsSolid(tile), "seed %d tile %v", seed, tile)
					}
				}
			}
		})
	}
}
