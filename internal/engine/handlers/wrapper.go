package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"squad-sim/pkg/api"
)

// ErrEmptyPayload: действию с аргументом не передали аргумент.
var ErrEmptyPayload = errors.New("empty payload")

// TypedHandlerFunc работает с уже разобранным аргументом T.
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// WithPayload разбирает JSON в T, проверяет его через api.Validator
// (если T его реализует) и только потом зовёт handler.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		if len(raw) == 0 {
			return Result{}, ErrEmptyPayload
		}

		var payload T
		if err := json.Unmarshal(raw, &payload); err != nil {
			return Result{}, fmt.Errorf("decode payload: %w", err)
		}
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("validate payload: %w", err)
			}
		}
		return handler(ctx, payload)
	}
}
