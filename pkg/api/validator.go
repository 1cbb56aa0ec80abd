package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p TurnPayload) Validate() error {
	if p.Sign != -1 && p.Sign != 1 {
		return errors.New("turn sign must be -1 or 1")
	}
	return nil
}

func (p ThrustPayload) Validate() error {
	if p.Sign != -1 && p.Sign != 1 {
		return errors.New("thrust sign must be -1 or 1")
	}
	return nil
}
