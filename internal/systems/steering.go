package systems

import (
	"math"
	"math/rand"

	"squad-sim/internal/core/types"
	"squad-sim/internal/domain"
	"squad-sim/pkg/utils"
)

// SteeringConfig - параметры поведений. Длины в тайлах, скорости в тайлах/с.
type SteeringConfig struct {
	// SeekScale умножает (desired - vel) в Seek/Arrive/Pursuit.
	SeekScale float64
	// DefaultMaxSpeed используется, если у агента MaxSpeed не задан.
	DefaultMaxSpeed float64
	// ArriveSlowRadius - на этой дистанции Arrive начинает тормозить.
	ArriveSlowRadius float64

	WanderOffset   float64
	WanderRadius   float64
	WanderJitter   float64 // максимальный шаг угла за тик, радианы
	WanderMinTicks int
	WanderMaxTicks int
	WanderForce    float64

	// WallThreshold - дальше этой дистанции стена не отталкивает.
	WallThreshold float64
	// WallForce - отталкивание вплотную к стене.
	WallForce float64
}

// DefaultSteeringConfig возвращает параметры по умолчанию.
func DefaultSteeringConfig() SteeringConfig {
	return SteeringConfig{
		SeekScale:        1,
		DefaultMaxSpeed:  1,
		ArriveSlowRadius: 2,
		WanderOffset:     10,
		WanderRadius:     10,
		WanderJitter:     0.01,
		WanderMinTicks:   500,
		WanderMaxTicks:   1000,
		WanderForce:      1,
		WallThreshold:    1.5,
		WallForce:        3,
	}
}

type wanderState struct {
	circleOffset float64
	circleRadius float64
	angle        float64
	ticks        int
	dir          int
}

// Steering - библиотека поведений. Все поведения возвращают силу и
// складываются простым сложением векторов.
// Состояние блуждания хранится только здесь и наружу не отдаётся.
type Steering struct {
	cfg    SteeringConfig
	rng    *rand.Rand
	wander map[types.EntityID]*wanderState
}

func NewSteering(cfg SteeringConfig, rng *rand.Rand) *Steering {
	return &Steering{
		cfg:    cfg,
		rng:    rng,
		wander: make(map[types.EntityID]*wanderState),
	}
}

// Config возвращает текущие параметры.
func (s *Steering) Config() SteeringConfig {
	return s.cfg
}

func (s *Steering) maxSpeed(a *domain.Agent) float64 {
	if a.Body.MaxSpeed > 0 {
		return a.Body.MaxSpeed
	}
	return s.cfg.DefaultMaxSpeed
}

// Seek: желаемая скорость - maxSpeed к точке, сила - разница со скоростью.
func (s *Steering) Seek(a *domain.Agent, dest domain.Vec2) domain.Vec2 {
	desired := dest.Sub(a.Body.Pos).Normalize().Scale(s.maxSpeed(a))
	return desired.Sub(a.Body.Vel).Scale(s.cfg.SeekScale)
}

// Arrive как Seek, но желаемая скорость падает линейно внутри ArriveSlowRadius.
// Своего оверлея у Arrive нет, поэтому оверлей прошлого поведения снимается.
func (s *Steering) Arrive(a *domain.Agent, dest domain.Vec2) domain.Vec2 {
	if a.Debug {
		a.Overlay = domain.Overlay{}
	}

	to := dest.Sub(a.Body.Pos)
	dist := to.Len()
	if dist == 0 {
		return domain.Vec2{}
	}

	speed := s.maxSpeed(a)
	if s.cfg.ArriveSlowRadius > 0 {
		speed = math.Min(speed, speed*dist/s.cfg.ArriveSlowRadius)
	}
	desired := to.Scale(speed / dist)
	return desired.Sub(a.Body.Vel).Scale(s.cfg.SeekScale)
}

// Pursuit ведёт на предсказанную позицию цели.
// Нулевая сумма скоростей - бесконечное упреждение, берём текущую позицию цели.
func (s *Steering) Pursuit(a, target *domain.Agent) domain.Vec2 {
	toTarget := target.Body.Pos.Sub(a.Body.Pos)
	predicted := target.Body.Pos

	denom := a.Body.Vel.Len() + target.Body.Vel.Len()
	if denom > 0 {
		lead := toTarget.Len() / denom
		predicted = target.Body.Pos.Add(target.Body.Vel.Scale(lead))
	}

	if a.Debug {
		a.Overlay = domain.Overlay{Kind: domain.OverlayPursuitLookahead, Point: predicted}
	}
	return s.Seek(a, predicted)
}

// Wander: окружность проецируется вперёд по скорости, угол на ней дрейфует
// на случайный шаг в текущем направлении поворота; направление время от
// времени меняется. Сила - к точке на окружности.
func (s *Steering) Wander(a *domain.Agent) domain.Vec2 {
	st, ok := s.wander[a.ID]
	if !ok {
		st = &wanderState{
			circleOffset: s.cfg.WanderOffset,
			circleRadius: s.cfg.WanderRadius,
			angle:        utils.RandFloat(s.rng, -math.Pi, math.Pi),
			ticks:        utils.RandRange(s.rng, s.cfg.WanderMinTicks, s.cfg.WanderMaxTicks),
			dir:          utils.RandSign(s.rng),
		}
		s.wander[a.ID] = st
	}

	center := a.Body.Pos.Add(a.Body.Vel.Normalize().Scale(st.circleOffset))

	st.angle += float64(st.dir) * utils.RandFloat(s.rng, 0, s.cfg.WanderJitter)
	st.ticks--
	if st.ticks <= 0 {
		st.ticks = utils.RandRange(s.rng, s.cfg.WanderMinTicks, s.cfg.WanderMaxTicks)
		st.dir = utils.RandSign(s.rng)
	}

	pt := center.Add(domain.FromAngle(st.angle).Scale(st.circleRadius))

	if a.Debug {
		a.Overlay = domain.Overlay{
			Kind:   domain.OverlayWanderCircle,
			Point:  pt,
			Center: center,
			Radius: st.circleRadius,
		}
	}
	return pt.Sub(a.Body.Pos).Normalize().Scale(s.cfg.WanderForce)
}

// Forget удаляет состояние блуждания убранного агента.
func (s *Steering) Forget(id types.EntityID) {
	delete(s.wander, id)
}

// Tracked - число агентов с состоянием блуждания.
func (s *Steering) Tracked() int {
	return len(s.wander)
}

// AvoidWall отталкивает от стен по полю расстояний клетки.
// Вплотную к стене - WallForce, к порогу линейно спадает до нуля.
func (s *Steering) AvoidWall(a *domain.Agent, cell *domain.Cell) domain.Vec2 {
	if cell == nil {
		return domain.Vec2{}
	}

	var res domain.Vec2
	res = res.Add(domain.Vec2{X: 0, Y: +1}.Scale(s.wallScale(cell.WallDist(domain.North))))
	res = res.Add(domain.Vec2{X: 0, Y: -1}.Scale(s.wallScale(cell.WallDist(domain.South))))
	res = res.Add(domain.Vec2{X: -1, Y: 0}.Scale(s.wallScale(cell.WallDist(domain.East))))
	res = res.Add(domain.Vec2{X: +1, Y: 0}.Scale(s.wallScale(cell.WallDist(domain.West))))
	return res
}

func (s *Steering) wallScale(d uint16) float64 {
	dist := float64(d)
	if s.cfg.WallThreshold <= 0 || dist >= s.cfg.WallThreshold {
		return 0
	}
	return domain.Lerp(s.cfg.WallForce, 0, dist/s.cfg.WallThreshold)
}
