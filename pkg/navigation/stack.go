package navigation

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aretw0/screenstack/pkg/domain"
	"github.com/aretw0/screenstack/pkg/session"
)

// DefaultAnimationDelay is the wait applied to animated push/pop.
const DefaultAnimationDelay = 2 * time.Second

// HeaderFunc renders the lines printed before the visible screen.
type HeaderFunc func(title string) []string

// Stack is an ordered collection of screens. The last one is visible.
type Stack struct {
	name    string
	title   string
	delay   time.Duration
	header  HeaderFunc
	screens []domain.Screen
}

var _ domain.Screen = (*Stack)(nil)

// Option defines a functional option for configuring a Stack.
type Option func(*Stack)

// WithTitle sets the header printed on every Execute. Empty means no header.
func WithTitle(title string) Option {
	return func(s *Stack) {
		s.title = title
	}
}

// WithName identifies the stack in lifecycle events and metrics.
// Without it the title is used.
func WithName(name string) Option {
	return func(s *Stack) {
		s.name = name
	}
}

// WithAnimationDelay sets the wait used by animated push/pop. Negative values clamp to zero.
func WithAnimationDelay(d time.Duration) Option {
	return func(s *Stack) {
		s.delay = max(d, 0)
	}
}

// WithScreens seeds the stack, bottom first. Nil entries are skipped.
func WithScreens(screens ...domain.Screen) Option {
	return func(s *Stack) {
		for _, sc := range screens {
			if sc != nil {
				s.screens = append(s.screens, sc)
			}
		}
	}
}

// WithHeader replaces the default header format.
func WithHeader(fn HeaderFunc) Option {
	return func(s *Stack) {
		if fn != nil {
			s.header = fn
		}
	}
}

// New creates a stack. Without options it is empty, untitled and uses
// DefaultAnimationDelay.
func New(opts ...Option) *Stack {
	s := &Stack{
		delay:  DefaultAnimationDelay,
		header: PlainHeader,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlainHeader renders "== title ==" followed by a dashed separator of the same width.
func PlainHeader(title string) []string {
	line := "== " + title + " =="
	return []string{line, strings.Repeat("-", utf8.RuneCountInString(line))}
}

// Title returns the stack title.
func (s *Stack) Title() string { return s.title }

// Name returns the stack name, falling back to the title.
func (s *Stack) Name() string {
	if s.name != "" {
		return s.name
	}
	return s.title
}

// AnimationDelay returns the wait used by animated operations.
func (s *Stack) AnimationDelay() time.Duration { return s.delay }

// Len returns the number of screens.
func (s *Stack) Len() int { return len(s.screens) }

// Screens returns a copy of the screens, bottom first.
func (s *Stack) Screens() []domain.Screen {
	return append([]domain.Screen(nil), s.screens...)
}

// Top returns the visible screen, or nil when the stack is empty.
func (s *Stack) Top() domain.Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Bottom returns the root screen, or nil when the stack is empty.
func (s *Stack) Bottom() domain.Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[0]
}

// Push makes screen visible and executes the stack. A nil screen is ignored.
func (s *Stack) Push(ctx context.Context, screen domain.Screen, animated bool) {
	if screen == nil {
		return
	}
	sess := session.FromContext(ctx)
	if animated {
		sess.Terminal.Sleep(ctx, s.delay)
	}

	s.screens = append(s.screens, screen)
	sess.Logger.DebugContext(ctx, "screen pushed", "stack", s.Name(), "depth", len(s.screens))
	s.emit(ctx, sess, domain.EventPush, animated)

	s.Execute(ctx)
}

// Pop removes the visible screen and executes the stack. Popping an empty
// stack does nothing at all.
func (s *Stack) Pop(ctx context.Context, animated bool) {
	sess := session.FromContext(ctx)
	if len(s.screens) == 0 {
		sess.Logger.DebugContext(ctx, "pop on empty stack ignored", "stack", s.Name())
		return
	}
	if animated {
		sess.Terminal.Sleep(ctx, s.delay)
	}

	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
	sess.Logger.DebugContext(ctx, "screen popped", "stack", s.Name(), "depth", len(s.screens))
	s.emit(ctx, sess, domain.EventPop, animated)

	s.Execute(ctx)
}

// Execute prints the header (if titled) and executes the visible screen.
// The top is looked up on every call, so callbacks may mutate the stack
// while it executes.
func (s *Stack) Execute(ctx context.Context) {
	top := s.Top()
	if top == nil {
		return
	}
	if s.title != "" {
		out := session.FromContext(ctx).Terminal
		for _, line := range s.header(s.title) {
			out.PrintLine(ctx, line)
		}
	}
	top.Execute(ctx)
}

func (s *Stack) emit(ctx context.Context, sess *session.Session, t domain.EventType, animated bool) {
	sess.Hooks.EmitNavigation(ctx, &domain.NavigationEvent{
		EventBase: domain.NewEventBase(t),
		Stack:     s.Name(),
		Depth:     len(s.screens),
		Animated:  animated,
	})
}
