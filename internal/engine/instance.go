package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"squad-sim/internal/core/types"
	"squad-sim/internal/domain"
	"squad-sim/internal/engine/handlers"
	"squad-sim/internal/engine/handlers/actions"
	"squad-sim/internal/systems"
	"squad-sim/pkg/api"
	"squad-sim/pkg/dungeon"
	"squad-sim/pkg/logger"
	"squad-sim/pkg/utils"
)

// PlayerSquad - отряд игрока. NPC получают отряды с 1.
const PlayerSquad uint8 = 0

// Instance представляет собой один изолированный запущенный уровень.
// Владеет сеткой, агентами и всеми подсистемами; работает в одном потоке.
type Instance struct {
	RunID string // детерминированный, зависит только от сида
	Seed  int64

	Grid   *domain.Grid
	Rooms  []dungeon.Room
	Agents *domain.AgentTable

	PlayerID types.EntityID

	Steering    *systems.Steering
	Integrator  *systems.Integrator
	Coordinator *Coordinator
	Clock       *Clock

	CurrentTick uint64 // число выполненных под-шагов

	Rng *rand.Rand // Локальный генератор

	cfg      Config
	handlers handlers.Registry
	log      *logrus.Entry
}

// NewInstance собирает симуляцию вокруг готового уровня. Агентов нет.
func NewInstance(cfg Config, layout *dungeon.Layout, rng *rand.Rand) *Instance {
	runID := utils.GenerateDeterministicID(rng)
	i := &Instance{
		RunID:       runID,
		Seed:        cfg.Seed,
		Grid:        layout.Grid,
		Rooms:       layout.Rooms,
		Agents:      domain.NewAgentTable(),
		Steering:    systems.NewSteering(cfg.Steering, rng),
		Integrator:  systems.NewIntegrator(cfg.Damping),
		Coordinator: NewCoordinator(),
		Clock:       NewClock(cfg.StepMicros, cfg.MaxSubSteps),
		Rng:         rng,
		cfg:         cfg,
		handlers:    make(handlers.Registry),
		log:         logger.Component("instance").WithField("run_id", runID),
	}
	i.registerHandlers()
	return i
}

func (i *Instance) registerHandlers() {
	i.handlers.Register(handlers.WithPayload(actions.HandleTurn),
		domain.ActionTurnLeft, domain.ActionTurnRight)
	i.handlers.Register(handlers.WithPayload(actions.HandleThrust),
		domain.ActionThrustForward, domain.ActionThrustBackward)
}

// Config возвращает параметры, с которыми собран инстанс.
func (i *Instance) Config() Config {
	return i.cfg
}

// Player возвращает агента игрока, если он ещё жив.
func (i *Instance) Player() *domain.Agent {
	p, ok := i.Agents.Get(i.PlayerID)
	if !ok {
		return nil
	}
	return p
}

// Frame обрабатывает один кадр: фронты ввода применяются один раз,
// затем выполняется столько под-шагов, сколько набралось времени.
// Тяга действует на каждом под-шаге. Возвращает число под-шагов.
func (i *Instance) Frame(elapsedMicros int64, intent domain.InputIntent) int {
	for _, action := range intent.Edges() {
		i.executeAction(action)
	}

	n := i.Clock.Advance(elapsedMicros)
	levels := intent.Levels()
	for k := 0; k < n; k++ {
		for _, action := range levels {
			i.executeAction(action)
		}
		i.Tick()
	}
	return n
}

// Tick - один фиксированный под-шаг: интеграция, восприятие,
// рулевые силы на следующий тик, разбор почты ИИ, остывание heat.
func (i *Instance) Tick() {
	if i.Grid.WallDistancesStale() {
		i.Grid.RecomputeWallDistances()
	}

	agents := i.Agents.All()
	stats := i.Integrator.Step(i.Grid, agents, i.Clock.StepSeconds())
	i.CurrentTick++

	spotted := systems.UpdatePerception(i.Grid, agents, i.PlayerID, i.Coordinator, i.CurrentTick)

	player := i.Player()
	for _, a := range agents {
		if a.AI == nil {
			continue
		}
		a.Body.AddForce(systems.ComputeNPCForce(i.Steering, i.Grid, a, player))
	}

	drained := i.Coordinator.Drain()

	if i.cfg.HeatDecayEvery > 0 && i.CurrentTick%i.cfg.HeatDecayEvery == 0 {
		i.Grid.DecayHeat(i.cfg.HeatDecay)
	}

	if i.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		i.log.WithFields(logrus.Fields{
			"component": "instance",
			"tick":      i.CurrentTick,
			"crossed":   stats.Crossed,
			"blocked":   stats.Blocked,
			"spotted":   spotted,
			"drained":   drained,
		}).Trace("Tick")
	}
}

// Spawn ставит агента из шаблона в центр клетки tile.
// Клетка должна быть в сетке, свободной и не твёрдой.
func (i *Instance) Spawn(tpl dungeon.AgentTemplate, squad uint8, tile domain.Tile) (*domain.Agent, error) {
	cell, ok := i.Grid.GetCell(tile)
	switch {
	case !ok:
		return nil, fmt.Errorf("spawn %s at %v: %w", tpl.Name, tile, domain.ErrOutOfBounds)
	case cell.Solid:
		return nil, fmt.Errorf("spawn %s at %v: %w", tpl.Name, tile, domain.ErrCellSolid)
	case !cell.Occupant.IsNil():
		return nil, fmt.Errorf("spawn %s at %v: %w", tpl.Name, tile, domain.ErrCellOccupied)
	case !cell.Reserved.IsNil():
		return nil, fmt.Errorf("spawn %s at %v: %w", tpl.Name, tile, domain.ErrCellReserved)
	}

	a := tpl.Spawn()
	id := i.Agents.Insert(squad, a)
	a.Body.Place(i.Grid.TileCenter(tile), tile)
	// Проверено выше, отказа быть не может.
	_ = i.Grid.SetOccupant(tile, id)

	if a.IsPlayer() {
		i.PlayerID = id
	} else {
		a.Body.Facing = utils.RandFloat(i.Rng, -math.Pi, math.Pi)
		a.Debug = i.cfg.DebugOverlays
	}

	i.log.WithFields(logrus.Fields{
		"component": "instance",
		"agent":     id,
		"name":      a.Name,
		"tile":      tile,
	}).Debug("Agent spawned")
	return a, nil
}

// Eliminate убирает агента из симуляции: освобождает клетку, забывает
// состояние блуждания и переносит в список погибших.
func (i *Instance) Eliminate(id types.EntityID) bool {
	a, ok := i.Agents.Get(id)
	if !ok {
		return false
	}

	i.Grid.ClearOccupant(a.Body.Tile, id)
	i.Grid.ReleaseReservation(a.Body.Tile, id)
	i.Steering.Forget(id)
	i.Agents.Remove(id)

	i.log.WithFields(logrus.Fields{
		"component": "instance",
		"agent":     id,
		"name":      a.Name,
		"tick":      i.CurrentTick,
	}).Info("Agent eliminated")
	return true
}

// AgentAt ищет агента, стоящего в клетке под мировой точкой.
func (i *Instance) AgentAt(pos domain.Vec2) (*domain.Agent, bool) {
	id, ok := i.Grid.Occupant(i.Grid.WorldToTile(pos))
	if !ok || id.IsNil() {
		return nil, false
	}
	return i.Agents.Get(id)
}

// Close завершает жизнь инстанса.
func (i *Instance) Close() {
	i.Coordinator.Close()
	i.log.WithFields(logrus.Fields{
		"component": "instance",
		"ticks":     i.CurrentTick,
		"dropped":   i.Clock.Dropped(),
	}).Info("Instance closed")
}

// executeAction выполняет действие ввода от имени игрока
func (i *Instance) executeAction(action domain.ActionType) {
	player := i.Player()
	if player == nil {
		return
	}

	ctx := handlers.Context{
		Grid:        i.Grid,
		Actor:       player,
		TurnStep:    i.cfg.TurnStep,
		ThrustForce: i.cfg.ThrustForce,
	}

	result, err := i.handlers.Dispatch(ctx, action, actionPayloads[action])
	if err != nil {
		i.log.WithFields(logrus.Fields{
			"component": "input",
			"action":    action,
		}).WithError(err).Warn("Action rejected")
		return
	}
	if result.Msg != "" {
		i.logAction(action, result.Msg)
	}
}

// actionPayloads: аргументы действий в том виде, в каком их прислал бы
// внешний слой ввода. Кодируются один раз при старте.
var actionPayloads = map[domain.ActionType]json.RawMessage{
	domain.ActionTurnLeft:       mustPayload(api.TurnPayload{Sign: -1}),
	domain.ActionTurnRight:      mustPayload(api.TurnPayload{Sign: 1}),
	domain.ActionThrustForward:  mustPayload(api.ThrustPayload{Sign: 1}),
	domain.ActionThrustBackward: mustPayload(api.ThrustPayload{Sign: -1}),
}

func mustPayload(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("encode action payload %T: %v", v, err))
	}
	return raw
}
