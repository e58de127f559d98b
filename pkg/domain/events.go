package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRunStart   EventType = "run_start"
	EventTrialStart EventType = "trial_start"
	EventTrialEnd   EventType = "trial_end"
	EventStep       EventType = "step"
	EventRunEnd     EventType = "run_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// RunEvent is emitted once before and once after a multi-trial run.
type RunEvent struct {
	EventBase
	Trials     int           `json:"trials"`
	Iterations int           `json:"iterations"`
	Initial    State         `json:"initial"`
	Duration   time.Duration `json:"duration,omitempty"`
	Err        error         `json:"-"`
}

// TrialEvent marks the start or the end of one trial.
type TrialEvent struct {
	EventBase
	Trial   int   `json:"trial"`
	Initial State `json:"initial"`
	Final   State `json:"final,omitempty"`
	Steps   int   `json:"steps,omitempty"`
}

// StepEvent is emitted for every sampled transition.
type StepEvent struct {
	EventBase
	Step int   `json:"step"`
	From State `json:"from"`
	To   State `json:"to"`
}

// LifecycleHooks defines callbacks for run observability.
// Any field may be nil.
type LifecycleHooks struct {
	OnRunStart   func(context.Context, *RunEvent)
	OnRunEnd     func(context.Context, *RunEvent)
	OnTrialStart func(context.Context, *TrialEvent)
	OnTrialEnd   func(context.Context, *TrialEvent)
	OnStep       func(*StepEvent)
}
