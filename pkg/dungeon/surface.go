package dungeon

import (
	"fmt"

	"squad-sim/internal/domain"
)

// GenerateArena создает уровень из одной комнаты: стены по периметру,
// всё внутри - пол. Детерминирован и не требует rng.
func GenerateArena(width, height int) (*Layout, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("%w: arena %dx%d is smaller than 3x3", ErrInvalidConfig, width, height)
	}

	grid := domain.NewGrid(width, height)
	room := Room{ID: 1, Bounds: domain.Rect{W: width, H: height}}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			isBoundary := x == 0 || y == 0 || x == width-1 || y == height-1
			grid.SetTerrain(domain.Tile{X: x, Y: y}, isBoundary)
		}
	}
	grid.RecomputeWallDistances()

	return &Layout{Grid: grid, Rooms: []Room{room}}, nil
}
