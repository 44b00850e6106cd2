package screen

import (
	"context"

	"github.com/aretw0/screenstack/pkg/domain"
	"github.com/aretw0/screenstack/pkg/session"
)

// ParseFunc converts raw input into a value. ok is false for invalid input.
type ParseFunc[T any] func(raw string) (value T, ok bool)

// CompleteFunc reacts to a successfully parsed value.
type CompleteFunc[T any] func(ctx context.Context, value T)

// Screen is a single prompt/parse/react unit producing values of type T.
type Screen[T any] struct {
	prompt     string
	parse      ParseFunc[T]
	onComplete CompleteFunc[T]
	name       string
}

// Option defines a functional option for configuring a Screen.
type Option func(*options)

type options struct {
	name string
}

// WithName labels the screen in lifecycle events and logs. Defaults to the prompt.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

var _ domain.Screen = (*Screen[int])(nil)

// New creates a screen. A nil parse rejects every input; a nil onComplete
// does nothing.
func New[T any](prompt string, parse ParseFunc[T], onComplete CompleteFunc[T], opts ...Option) *Screen[T] {
	o := options{name: prompt}
	for _, opt := range opts {
		opt(&o)
	}
	return &Screen[T]{
		prompt:     prompt,
		parse:      parse,
		onComplete: onComplete,
		name:       o.name,
	}
}

// Prompt returns the text shown before reading input.
func (s *Screen[T]) Prompt() string { return s.prompt }

// Name returns the label used in lifecycle events.
func (s *Screen[T]) Name() string { return s.name }

// Execute prompts, reads one line and, if it parses, invokes the completion
// callback exactly once. Exhausted input counts as an empty line.
func (s *Screen[T]) Execute(ctx context.Context) {
	sess := session.FromContext(ctx)
	sess.Hooks.EmitScreen(ctx, &domain.ScreenEvent{
		EventBase: domain.NewEventBase(domain.EventScreenEnter),
		Screen:    s.name,
	})

	sess.Terminal.PrintLine(ctx, s.prompt)

	raw, ok := sess.Terminal.ReadLine(ctx)
	if !ok {
		raw = ""
	}

	var value T
	accepted := false
	if s.parse != nil {
		value, accepted = s.parse(raw)
	}
	if !accepted {
		sess.Logger.DebugContext(ctx, "input rejected", "screen", s.name)
		sess.Hooks.EmitScreen(ctx, &domain.ScreenEvent{
			EventBase: domain.NewEventBase(domain.EventInputRejected),
			Screen:    s.name,
			Input:     raw,
		})
		return
	}

	sess.Hooks.EmitScreen(ctx, &domain.ScreenEvent{
		EventBase: domain.NewEventBase(domain.EventInputAccepted),
		Screen:    s.name,
		Input:     raw,
	})
	if s.onComplete != nil {
		s.onComplete(ctx, value)
	}
}
