package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/screenstack/pkg/domain"
)

// New creates the application logger on stderr, keeping stdout for the
// interactive session itself.
func New(level slog.Level) *slog.Logger {
	return NewTo(os.Stderr, level)
}

// NewTo creates a text logger writing to w.
// It standardizes common keys (e.g., "error" -> "err").
func NewTo(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// DebugHooks logs every lifecycle event at debug level.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnScreenEnter: func(ctx context.Context, e *domain.ScreenEvent) {
			logger.DebugContext(ctx, "Enter Screen", "screen", e.Screen)
		},
		OnInputAccepted: func(ctx context.Context, e *domain.ScreenEvent) {
			logger.DebugContext(ctx, "Input Accepted", "screen", e.Screen)
		},
		OnInputRejected: func(ctx context.Context, e *domain.ScreenEvent) {
			logger.DebugContext(ctx, "Input Rejected", "screen", e.Screen, "input", e.Input)
		},
		OnNavigate: func(ctx context.Context, e *domain.NavigationEvent) {
			logger.DebugContext(ctx, "Navigate", "action", string(e.Type), "stack", e.Stack, "depth", e.Depth, "animated", e.Animated)
		},
	}
}
