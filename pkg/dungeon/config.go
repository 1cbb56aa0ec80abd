package dungeon

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig - конфигурация генерации отклонена до старта генерации.
var ErrInvalidConfig = errors.New("invalid level generation config")

// Значения по умолчанию
const (
	DefaultWidth     = 48
	DefaultHeight    = 32
	DefaultRoomCount = 8
	DefaultMinRoom   = 5
	DefaultMaxRoom   = 12
)

// GenConfig - параметры генерации уровня. Размеры комнат включают стены.
type GenConfig struct {
	Width           int `json:"width"`
	Height          int `json:"height"`
	RoomCountTarget int `json:"roomCountTarget"`
	MinRoomWidth    int `json:"minRoomWidth"`
	MinRoomHeight   int `json:"minRoomHeight"`
	MaxRoomWidth    int `json:"maxRoomWidth"`
	MaxRoomHeight   int `json:"maxRoomHeight"`
}

// DefaultGenConfig возвращает конфигурацию по умолчанию.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		RoomCountTarget: DefaultRoomCount,
		MinRoomWidth:    DefaultMinRoom,
		MinRoomHeight:   DefaultMinRoom,
		MaxRoomWidth:    DefaultMaxRoom,
		MaxRoomHeight:   DefaultMaxRoom,
	}
}

// Validate отклоняет конфигурации, на которых генерация не имеет смысла.
func (c GenConfig) Validate() error {
	switch {
	case c.Width < 3 || c.Height < 3:
		return fmt.Errorf("%w: level %dx%d is smaller than 3x3", ErrInvalidConfig, c.Width, c.Height)
	case c.RoomCountTarget < 1:
		return fmt.Errorf("%w: room count target %d must be positive", ErrInvalidConfig, c.RoomCountTarget)
	case c.MinRoomWidth < 3 || c.MinRoomHeight < 3:
		return fmt.Errorf("%w: min room %dx%d is smaller than 3x3", ErrInvalidConfig, c.MinRoomWidth, c.MinRoomHeight)
	case c.MinRoomWidth > c.MaxRoomWidth || c.MinRoomHeight > c.MaxRoomHeight:
		return fmt.Errorf("%w: min room %dx%d exceeds max room %dx%d",
			ErrInvalidConfig, c.MinRoomWidth, c.MinRoomHeight, c.MaxRoomWidth, c.MaxRoomHeight)
	case c.MinRoomWidth > c.Width-2 || c.MinRoomHeight > c.Height-2:
		return fmt.Errorf("%w: min room %dx%d does not fit level bounds %dx%d",
			ErrInvalidConfig, c.MinRoomWidth, c.MinRoomHeight, c.Width-2, c.Height-2)
	}
	return nil
}
