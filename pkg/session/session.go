package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aretw0/screenstack/internal/logging"
	"github.com/aretw0/screenstack/pkg/domain"
	"github.com/aretw0/screenstack/pkg/ports"
	"github.com/aretw0/screenstack/pkg/terminal"
)

// Session is the environment shared by every screen of a run.
type Session struct {
	Terminal ports.Terminal
	Hooks    domain.LifecycleHooks
	Logger   *slog.Logger
}

type contextKey struct{}

// stdio is shared so buffered stdin survives across sessions.
var stdio = sync.OnceValue(func() ports.Terminal {
	return terminal.NewConsole(nil, nil)
})

// New returns a session bound to t. A nil terminal means stdin/stdout.
func New(t ports.Terminal, hooks domain.LifecycleHooks, logger *slog.Logger) *Session {
	s := &Session{Terminal: t, Hooks: hooks, Logger: logger}
	if s.Terminal == nil {
		s.Terminal = stdio()
	}
	if s.Logger == nil {
		s.Logger = logging.NewNop()
	}
	return s
}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session attached to ctx, or the default session.
func FromContext(ctx context.Context) *Session {
	if ctx != nil {
		if s, ok := ctx.Value(contextKey{}).(*Session); ok && s != nil {
			return s
		}
	}
	return New(nil, domain.LifecycleHooks{}, nil)
}
