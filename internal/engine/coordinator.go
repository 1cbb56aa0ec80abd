package engine

import (
	"github.com/sirupsen/logrus"

	"squad-sim/internal/core/types"
	"squad-sim/internal/domain"
	"squad-sim/pkg/logger"
)

// Sighting - последнее известное отряду положение игрока.
type Sighting struct {
	Observer types.EntityID
	Target   types.EntityID
	Position domain.Vec2
	Tick     uint64
}

// Coordinator - почтовый ящик ИИ. Создаётся владельцем симуляции и
// передаётся тем, кто пишет (восприятие) и разбирает (цикл тика).
// Post никогда не блокирует, Drain вызывается ровно раз за тик.
type Coordinator struct {
	queue  []domain.AIMessage
	closed bool

	// Реакция отряда на PlayerSpotted пока только запоминает точку;
	// рулевое управление бойцов отсюда не меняется.
	sightings map[uint8]Sighting

	processed uint64
}

func NewCoordinator() *Coordinator {
	return &Coordinator{
		queue:     make([]domain.AIMessage, 0, 16),
		sightings: make(map[uint8]Sighting),
	}
}

// Post ставит сообщение в очередь. После Close сообщения выбрасываются.
func (c *Coordinator) Post(msg domain.AIMessage) {
	if c.closed {
		logger.Component("ai_coordinator").WithFields(logrus.Fields{
			"message": msg.Type,
		}).Warn("Post after close, message dropped")
		return
	}
	c.queue = append(c.queue, msg)
}

// Pending - сколько сообщений ждёт разбора.
func (c *Coordinator) Pending() int {
	return len(c.queue)
}

// Drain разбирает очередь в порядке поступления и очищает её.
// Возвращает число обработанных сообщений.
func (c *Coordinator) Drain() int {
	n := len(c.queue)
	for _, msg := range c.queue {
		c.handle(msg)
	}
	// Сообщения живут не дольше тика; буфер переиспользуется.
	clear(c.queue)
	c.queue = c.queue[:0]
	c.processed += uint64(n)
	return n
}

func (c *Coordinator) handle(msg domain.AIMessage) {
	switch msg.Type {
	case domain.AIMessagePlayerSpotted:
		squad := msg.Observer.Squad()
		c.sightings[squad] = Sighting{
			Observer: msg.Observer,
			Target:   msg.Target,
			Position: msg.Position,
			Tick:     msg.Tick,
		}
		logger.Component("ai_coordinator").WithFields(logrus.Fields{
			"squad":    squad,
			"observer": msg.Observer,
			"tick":     msg.Tick,
		}).Debug("Squad received player sighting")
	default:
		logger.Component("ai_coordinator").Warnf("Unknown AI message: %s", msg)
	}
}

// LastSighting возвращает последнее наблюдение игрока отрядом squad.
func (c *Coordinator) LastSighting(squad uint8) (Sighting, bool) {
	s, ok := c.sightings[squad]
	return s, ok
}

// Processed - сколько сообщений разобрано за всё время.
func (c *Coordinator) Processed() uint64 {
	return c.processed
}

// Close завершает жизнь почтового ящика. Неразобранные сообщения теряются.
func (c *Coordinator) Close() {
	if c.closed {
		return
	}
	if len(c.queue) > 0 {
		logger.Component("ai_coordinator").WithFields(logrus.Fields{
			"pending": len(c.queue),
		}).Warn("Coordinator closed with pending messages")
	}
	c.closed = true
	c.queue = nil
}

// Closed - почтовый ящик закрыт.
func (c *Coordinator) Closed() bool {
	return c.closed
}
