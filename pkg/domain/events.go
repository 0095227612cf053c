package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRunStart  EventType = "run_start"
	EventRunFinish EventType = "run_finish"
	EventMove      EventType = "move"
	EventBlocked   EventType = "blocked"
	EventClean     EventType = "clean"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// StepEvent represents a single unit action of the robot.
// For EventBlocked, Position is the rejected destination and From is where the robot stayed.
type StepEvent struct {
	EventBase
	Strategy string `json:"strategy"`
	From     Point  `json:"from"`
	Position Point  `json:"position"`
}

// RunEvent represents the start or the end of a cleaning run.
type RunEvent struct {
	EventBase
	Strategy      string `json:"strategy"`
	Position      Point  `json:"position"`
	DirtRemaining int    `json:"dirt_remaining"`
	Err           error  `json:"-"`
}

// NewStepEvent stamps a step event with the current time.
func NewStepEvent(t EventType, strategy string, from, to Point) *StepEvent {
	return &StepEvent{
		EventBase: EventBase{Timestamp: time.Now(), Type: t},
		Strategy:  strategy,
		From:      from,
		Position:  to,
	}
}

// LifecycleHooks defines callbacks for run observability.
// Hooks run synchronously on the robot's goroutine, in the order the actions happen.
type LifecycleHooks struct {
	OnRunStart  func(*RunEvent)
	OnMove      func(*StepEvent)
	OnBlocked   func(*StepEvent)
	OnClean     func(*StepEvent)
	OnRunFinish func(*RunEvent)
}

// MergeHooks combines several hook sets. Each event is delivered to every set in argument order.
func MergeHooks(sets ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnRunStart:  fanOut(sets, func(h LifecycleHooks) func(*RunEvent) { return h.OnRunStart }),
		OnMove:      fanOut(sets, func(h LifecycleHooks) func(*StepEvent) { return h.OnMove }),
		OnBlocked:   fanOut(sets, func(h LifecycleHooks) func(*StepEvent) { return h.OnBlocked }),
		OnClean:     fanOut(sets, func(h LifecycleHooks) func(*StepEvent) { return h.OnClean }),
		OnRunFinish: fanOut(sets, func(h LifecycleHooks) func(*RunEvent) { return h.OnRunFinish }),
	}
}

func fanOut[E any](sets []LifecycleHooks, pick func(LifecycleHooks) func(E)) func(E) {
	var fns []func(E)
	for _, s := range sets {
		if fn := pick(s); fn != nil {
			fns = append(fns, fn)
		}
	}
	if len(fns) == 0 {
		return nil
	}
	return func(e E) {
		for _, fn := range fns {
			fn(e)
		}
	}
}
