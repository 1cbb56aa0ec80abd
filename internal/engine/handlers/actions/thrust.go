package actions

import (
	"squad-sim/internal/engine/handlers"
	"squad-sim/pkg/api"
)

// HandleThrust добавляет силу вдоль взгляда (или против него).
// Действует один под-шаг: интегратор обнуляет силу после шага.
func HandleThrust(ctx handlers.Context, p api.ThrustPayload) (handlers.Result, error) {
	if ctx.Actor == nil {
		return handlers.EmptyResult(), nil
	}

	b := &ctx.Actor.Body
	b.AddForce(b.Heading().Scale(float64(p.Sign) * ctx.ThrustForce))
	return handlers.EmptyResult(), nil
}
