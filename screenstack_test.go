package screenstack

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/screenstack/internal/logging"
	"github.com/aretw0/screenstack/pkg/domain"
	"github.com/aretw0/screenstack/pkg/navigation"
	"github.com/aretw0/screenstack/pkg/screen"
	"github.com/aretw0/screenstack/pkg/session"
	"github.com/aretw0/screenstack/pkg/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NilRootIsNoop(t *testing.T) {
	script := terminal.NewScript("unused")
	app := New(nil, WithTerminal(script))

	require.NotPanics(t, func() { app.Run(context.Background()) })
	assert.Empty(t, script.Lines)
	assert.Zero(t, script.Reads)
	assert.Nil(t, app.Root())
}

func TestRun_ExecutesRootWithSession(t *testing.T) {
	script := terminal.NewScript()
	var seen *session.Session
	root := domain.ScreenFunc(func(ctx context.Context) {
		seen = session.FromContext(ctx)
	})

	New(root, WithTerminal(script)).Run(context.Background())

	require.NotNil(t, seen)
	assert.Same(t, script, seen.Terminal)
}

func TestRun_RepeatableSessions(t *testing.T) {
	script := terminal.NewScript("1", "2")
	var got []int
	stack := navigation.New(navigation.WithScreens(
		screen.New("n?", screen.Int, func(ctx context.Context, n int) { got = append(got, n) }),
	))
	app := New(stack, WithTerminal(script))

	app.Run(context.Background())
	app.Run(context.Background())

	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 1, stack.Len(), "running does not mutate the stack by itself")
}

func TestRun_HooksAndLogger(t *testing.T) {
	script := terminal.NewScript("x")
	logs := &bytes.Buffer{}
	var rejected int

	app := New(
		screen.New("n?", screen.Int, nil),
		WithTerminal(script),
		WithLogger(logging.NewTo(logs, slog.LevelDebug)),
		WithLifecycleHooks(domain.LifecycleHooks{
			OnInputRejected: func(context.Context, *domain.ScreenEvent) { rejected++ },
		}),
	)
	app.Run(context.Background())

	assert.Equal(t, 1, rejected)
	assert.Contains(t, logs.String(), "session started")
	assert.Contains(t, logs.String(), "input rejected")
	assert.Contains(t, logs.String(), "session finished")
}

func TestRun_WizardFlow(t *testing.T) {
	script := terminal.NewScript("Ada", "y")
	var greeting string

	var stack *navigation.Stack
	name := screen.New("Your name?", screen.NonEmpty, func(ctx context.Context, who string) {
		stack.Push(ctx, screen.New("Confirm "+who+"?", screen.Confirm, func(ctx context.Context, ok bool) {
			if ok {
				greeting = "welcome " + who
			}
		}), true)
	})
	stack = navigation.New(
		navigation.WithTitle("Signup"),
		navigation.WithAnimationDelay(0),
		navigation.WithScreens(name),
	)

	New(stack, WithTerminal(script)).Run(context.Background())

	assert.Equal(t, "welcome Ada", greeting)
	assert.Equal(t, 2, stack.Len())
	assert.Equal(t, []string{
		"== Signup ==", "------------", "Your name?",
		"== Signup ==", "------------", "Confirm Ada?",
	}, script.Lines)
	assert.Len(t, script.Delays, 1)
}
