package engine

import (
	"github.com/sirupsen/logrus"

	"squad-sim/pkg/logger"
)

// Clock - аккумулятор кадрового времени. Кадры приходят с произвольной
// длительностью, физика получает только целые под-шаги фиксированной длины.
type Clock struct {
	StepMicros  int64
	MaxSubSteps int // 0 - без ограничения

	accumulator int64
	steps       uint64
	dropped     uint64
}

func NewClock(stepMicros int64, maxSubSteps int) *Clock {
	return &Clock{StepMicros: stepMicros, MaxSubSteps: maxSubSteps}
}

// Advance добавляет время кадра и возвращает, сколько под-шагов надо выполнить:
// ноль, один или несколько. Хвост меньше шага остаётся до следующего кадра.
// Если кадр был слишком длинным, лишние шаги выбрасываются, чтобы симуляция
// не догоняла бесконечно.
func (c *Clock) Advance(elapsedMicros int64) int {
	if elapsedMicros > 0 {
		c.accumulator += elapsedMicros
	}
	if c.StepMicros <= 0 {
		return 0
	}

	n := c.accumulator / c.StepMicros
	if c.MaxSubSteps > 0 && n > int64(c.MaxSubSteps) {
		excess := n - int64(c.MaxSubSteps)
		c.dropped += uint64(excess)
		c.accumulator -= excess * c.StepMicros
		n = int64(c.MaxSubSteps)

		logger.Component("clock").WithFields(logrus.Fields{
			"dropped": excess,
			"elapsed": elapsedMicros,
		}).Warn("Frame too long, sub-steps dropped")
	}

	c.accumulator -= n * c.StepMicros
	c.steps += uint64(n)
	return int(n)
}

// StepSeconds - длина под-шага в секундах (dt интегратора).
func (c *Clock) StepSeconds() float64 {
	return float64(c.StepMicros) / 1e6
}

// Pending - накопленное, но ещё не отработанное время.
func (c *Clock) Pending() int64 {
	return c.accumulator
}

// Steps - сколько под-шагов выдано за всё время.
func (c *Clock) Steps() uint64 {
	return c.steps
}

// Dropped - сколько под-шагов выброшено из-за длинных кадров.
func (c *Clock) Dropped() uint64 {
	return c.dropped
}
