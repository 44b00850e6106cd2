package graph

import (
	"context"

	"github.com/aretw0/screenstack/pkg/domain"
)

// Trace records the screens entered during a session, in order.
type Trace struct {
	visited []string
}

// Hooks returns lifecycle hooks that feed the trace.
func (t *Trace) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnScreenEnter: func(_ context.Context, e *domain.ScreenEvent) {
			t.visited = append(t.visited, e.Screen)
		},
	}
}

// Overlay marks every entered screen as visited and the last one as current.
func (t *Trace) Overlay() *Overlay {
	o := &Overlay{Visited: append([]string(nil), t.visited...)}
	if n := len(t.visited); n > 0 {
		o.Current = t.visited[n-1]
	}
	return o
}
