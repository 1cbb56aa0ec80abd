package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"squad-sim/internal/domain"
)

// ErrUnknownAction возвращается реестром для действия без обработчика.
var ErrUnknownAction = errors.New("unknown action")

// Context: агент под управлением ввода и параметры управления.
// Обработчик мутирует Actor напрямую.
type Context struct {
	Grid  *domain.Grid
	Actor *domain.Agent

	TurnStep    float64
	ThrustForce float64
}

// Result: обработчик не логирует сам, а отдаёт строку для отладочного лога.
type Result struct {
	Msg string
}

// HandlerFunc обрабатывает одно действие ввода с сырым JSON-аргументом.
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult: успешное действие без сообщения.
func EmptyResult() Result {
	return Result{}
}

// Registry сопоставляет действию ввода его обработчик.
type Registry map[domain.ActionType]HandlerFunc

// Register привязывает обработчик к одному или нескольким действиям.
func (r Registry) Register(h HandlerFunc, actions ...domain.ActionType) {
	for _, a := range actions {
		r[a] = h
	}
}

// Dispatch находит обработчик и вызывает его.
func (r Registry) Dispatch(ctx Context, action domain.ActionType, payload json.RawMessage) (Result, error) {
	h, ok := r[action]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	return h(ctx, payload)
}
