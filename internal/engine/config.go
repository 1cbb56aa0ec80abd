package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"squad-sim/internal/systems"
	"squad-sim/pkg/dungeon"
)

var ErrInvalidConfig = errors.New("invalid engine config")

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят уровень, палитра, расстановка
	// и все случайные решения ИИ.
	Seed int64

	Level dungeon.GenConfig

	// Squads - число отрядов NPC (отряд 0 зарезервирован за игроком).
	Squads    int
	SquadSize int
	// Roster - состав отряда, раскладывается по кругу. nil - dungeon.SquadRoster.
	Roster []dungeon.AgentTemplate

	// StepMicros - длина фиксированного под-шага физики.
	StepMicros int64
	// MaxSubSteps - сколько под-шагов максимум за кадр; остальное время выбрасывается.
	MaxSubSteps int

	Damping  float64
	Steering systems.SteeringConfig

	// Ввод игрока
	TurnStep    float64 // радианы за фронт поворота
	ThrustForce float64 // сила тяги на каждом под-шаге, пока кнопка зажата

	// Отладочный heat остывает на HeatDecay каждые HeatDecayEvery тиков.
	HeatDecay      uint8
	HeatDecayEvery uint64

	// DebugOverlays включает оверлеи поведений у всех NPC.
	DebugOverlays bool
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:           time.Now().UnixNano(),
		Level:          dungeon.DefaultGenConfig(),
		Squads:         2,
		SquadSize:      4,
		StepMicros:     10_000,
		MaxSubSteps:    25,
		Damping:        systems.DefaultDamping,
		Steering:       systems.DefaultSteeringConfig(),
		TurnStep:       math.Pi / 2,
		ThrustForce:    6,
		HeatDecay:      1,
		HeatDecayEvery: 10,
	}
}

// Validate проверяет параметры движка. Параметры уровня проверяет генератор.
func (c Config) Validate() error {
	switch {
	case c.StepMicros <= 0:
		return fmt.Errorf("%w: step must be positive, got %dus", ErrInvalidConfig, c.StepMicros)
	case c.MaxSubSteps < 0:
		return fmt.Errorf("%w: max sub-steps must not be negative", ErrInvalidConfig)
	case c.Squads < 0 || c.Squads > math.MaxUint8:
		return fmt.Errorf("%w: squads must be in [0, %d], got %d", ErrInvalidConfig, math.MaxUint8, c.Squads)
	case c.SquadSize < 0:
		return fmt.Errorf("%w: squad size must not be negative", ErrInvalidConfig)
	case c.Damping < 0:
		return fmt.Errorf("%w: damping must not be negative", ErrInvalidConfig)
	}
	return nil
}
