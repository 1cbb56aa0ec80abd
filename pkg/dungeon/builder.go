package dungeon

import (
	"math/rand"

	"squad-sim/internal/domain"
)

// LevelBuilder предоставляет fluent API для создания уровней.
// Ошибка первого шага запоминается и возвращается из Build.
type LevelBuilder struct {
	cfg    GenConfig
	rng    *rand.Rand
	layout *Layout
	err    error

	palette     bool
	paletteSeed int64
}

// NewLevel создает новый builder для уровня
func NewLevel(cfg GenConfig, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		cfg: cfg,
		rng: rng,
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.cfg.Width = width
	b.cfg.Height = height
	return b
}

// WithRooms генерирует комнаты и двери (BSP)
func (b *LevelBuilder) WithRooms() *LevelBuilder {
	if b.err != nil {
		return b
	}
	b.layout, b.err = Generate(b.cfg, b.rng)
	return b
}

// WithArena вместо BSP делает одну комнату на весь уровень
func (b *LevelBuilder) WithArena() *LevelBuilder {
	if b.err != nil {
		return b
	}
	b.layout, b.err = GenerateArena(b.cfg.Width, b.cfg.Height)
	return b
}

// WithPalette включает отладочную раскраску клеток
func (b *LevelBuilder) WithPalette(seed int64) *LevelBuilder {
	b.palette = true
	b.paletteSeed = seed
	return b
}

// GetStartTile возвращает стартовую клетку (центр первой комнаты)
func (b *LevelBuilder) GetStartTile() domain.Tile {
	if b.layout != nil && len(b.layout.Rooms) > 0 {
		return b.layout.Rooms[0].Center()
	}
	return domain.Tile{X: b.cfg.Width / 2, Y: b.cfg.Height / 2}
}

// Build собирает и возвращает готовый уровень
func (b *LevelBuilder) Build() (*Layout, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.layout == nil {
		b.WithRooms()
		if b.err != nil {
			return nil, b.err
		}
	}
	if b.palette {
		ApplyPalette(b.layout.Grid, b.paletteSeed)
	}
	return b.layout, nil
}
