package dungeon

import (
	"github.com/ojrac/opensimplex-go"

	"squad-sim/internal/domain"
)

// paletteFrequency - масштаб шума в тайлах: пятна размером ~6-8 клеток.
const paletteFrequency = 0.15

// ApplyPalette красит клетки в отладочные цвета: пол и стены получают
// плавный оттенок из шума, чтобы на глаз различать участки карты.
func ApplyPalette(grid *domain.Grid, seed int64) {
	noise := opensimplex.NewNormalized(seed)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			t := domain.Tile{X: x, Y: y}
			n := noise.Eval2(float64(x)*paletteFrequency, float64(y)*paletteFrequency)
			grid.SetColor(t, tint(grid.IsSolid(t), n))
		}
	}
}

// tint: стены - тёмно-серые, пол - тёплый камень. n в [0, 1).
func tint(solid bool, n float64) uint32 {
	if solid {
		v := uint8(40 + n*30)
		return rgba(v, v, v+8, 255)
	}
	return rgba(uint8(150+n*50), uint8(130+n*40), uint8(100+n*30), 255)
}

func rgba(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}
