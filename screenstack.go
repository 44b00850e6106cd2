package screenstack

import (
	"context"
	"log/slog"

	"github.com/aretw0/screenstack/pkg/domain"
	"github.com/aretw0/screenstack/pkg/ports"
	"github.com/aretw0/screenstack/pkg/session"
)

// Application is the entry point of an interactive program. It holds one
// root screen, usually a navigation stack.
type Application struct {
	root     domain.Screen
	terminal ports.Terminal
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Application.
type Option func(*Application)

// WithTerminal sets the host terminal. Defaults to stdin/stdout.
func WithTerminal(t ports.Terminal) Option {
	return func(a *Application) {
		a.terminal = t
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Application) {
		a.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Application) {
		a.hooks = hooks
	}
}

// New creates an application. root may be nil, in which case Run does nothing.
func New(root domain.Screen, opts ...Option) *Application {
	a := &Application{root: root}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Root returns the root screen.
func (a *Application) Root() domain.Screen {
	return a.root
}

// Run executes the root screen once. It returns when the chain of screens
// triggered by user input unwinds; it does not loop. Run may be called again
// to start a fresh session.
func (a *Application) Run(ctx context.Context) {
	if a.root == nil {
		return
	}
	sess := session.New(a.terminal, a.hooks, a.logger)
	sess.Logger.DebugContext(ctx, "session started")
	a.root.Execute(session.NewContext(ctx, sess))
	sess.Logger.DebugContext(ctx, "session finished")
}
