package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventScreenEnter   EventType = "screen_enter"
	EventInputAccepted EventType = "input_accepted"
	EventInputRejected EventType = "input_rejected"
	EventPush          EventType = "push"
	EventPop           EventType = "pop"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// NewEventBase stamps an event of the given type with the current time.
func NewEventBase(t EventType) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t}
}

// ScreenEvent reports activity on a prompt screen.
type ScreenEvent struct {
	EventBase
	Screen string `json:"screen"`
	Input  string `json:"input,omitempty"`
}

// NavigationEvent reports a push or pop on a navigation stack.
type NavigationEvent struct {
	EventBase
	Stack    string `json:"stack"`
	Depth    int    `json:"depth"` // stack size after the mutation
	Animated bool   `json:"animated"`
}

// LifecycleHooks defines callbacks for session observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnScreenEnter   func(context.Context, *ScreenEvent)
	OnInputAccepted func(context.Context, *ScreenEvent)
	OnInputRejected func(context.Context, *ScreenEvent)
	OnNavigate      func(context.Context, *NavigationEvent)
}

// EmitScreen dispatches a screen event to the matching hook.
func (h LifecycleHooks) EmitScreen(ctx context.Context, e *ScreenEvent) {
	var fn func(context.Context, *ScreenEvent)
	switch e.Type {
	case EventScreenEnter:
		fn = h.OnScreenEnter
	case EventInputAccepted:
		fn = h.OnInputAccepted
	case EventInputRejected:
		fn = h.OnInputRejected
	}
	if fn != nil {
		fn(ctx, e)
	}
}

// EmitNavigation dispatches a navigation event to OnNavigate.
func (h LifecycleHooks) EmitNavigation(ctx context.Context, e *NavigationEvent) {
	if h.OnNavigate != nil {
		h.OnNavigate(ctx, e)
	}
}

// ComposeHooks fans every event out to each of the given hooks in order.
func ComposeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnScreenEnter: func(ctx context.Context, e *ScreenEvent) {
			for _, h := range hooks {
				if h.OnScreenEnter != nil {
					h.OnScreenEnter(ctx, e)
				}
			}
		},
		OnInputAccepted: func(ctx context.Context, e *ScreenEvent) {
			for _, h := range hooks {
				if h.OnInputAccepted != nil {
					h.OnInputAccepted(ctx, e)
				}
			}
		},
		OnInputRejected: func(ctx context.Context, e *ScreenEvent) {
			for _, h := range hooks {
				if h.OnInputRejected != nil {
					h.OnInputRejected(ctx, e)
				}
			}
		},
		OnNavigate: func(ctx context.Context, e *NavigationEvent) {
			for _, h := range hooks {
				h.EmitNavigation(ctx, e)
			}
		},
	}
}
