package domain

import (
	"context"
	"errors"
)

type StateRequest struct {
	EmployeeID string
}

// Metrics are linear projections of the average mood onto a 0-100 scale.
// Placeholder signal, not statistically validated.
type Metrics struct {
	Physical     int `json:"physical"`
	Emotional    int `json:"emotional"`
	Productivity int `json:"productivity"`
}

// StateResponse is the rolling emotional-state projection, recomputed on
// every read; it has no identity or lifecycle of its own.
type StateResponse struct {
	CurrentState string  `json:"currentState"`
	Summary      string  `json:"summary"`
	Metrics      Metrics `json:"metrics"`
}

type Service interface {
	State(context.Context, StateRequest) (StateResponse, error)
}

var ErrInvalidEmployee = errors.New("invalid_employee_id")

const (
	StatePositive = "Positive"
	StateNeutral  = "Neutral"
	StateNegative = "Negative"
)
