package actions

import (
	"fmt"
	"math"

	"squad-sim/internal/engine/handlers"
	"squad-sim/pkg/api"
)

// HandleTurn поворачивает взгляд на TurnStep. Sign +1 - по часовой
// стрелке на экране (ось Y смотрит вниз), -1 - против.
func HandleTurn(ctx handlers.Context, p api.TurnPayload) (handlers.Result, error) {
	if ctx.Actor == nil {
		return handlers.EmptyResult(), nil
	}

	b := &ctx.Actor.Body
	b.Facing = NormalizeAngle(b.Facing + float64(p.Sign)*ctx.TurnStep)

	return handlers.Result{
		Msg: fmt.Sprintf("%s turns to %.0f°", ctx.Actor.Name, b.Facing*180/math.Pi),
	}, nil
}

// NormalizeAngle приводит угол к (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
