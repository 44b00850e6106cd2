package screen

import (
	"context"
	"testing"

	"github.com/aretw0/screenstack/pkg/domain"
	"github.com/aretw0/screenstack/pkg/session"
	"github.com/aretw0/screenstack/pkg/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withScript(script *terminal.Script, hooks domain.LifecycleHooks) context.Context {
	return session.NewContext(context.Background(), session.New(script, hooks, nil))
}

func TestScreen_AcceptedInputCompletesOnce(t *testing.T) {
	script := terminal.NewScript("42")
	var got []int

	s := New("Enter a number", Int, func(ctx context.Context, n int) {
		got = append(got, n)
	})
	s.Execute(withScript(script, domain.LifecycleHooks{}))

	assert.Equal(t, []int{42}, got)
	assert.Equal(t, []string{"Enter a number"}, script.Lines)
	assert.Equal(t, 1, script.Reads)
}

func TestScreen_RejectedInputIsSilent(t *testing.T) {
	script := terminal.NewScript("x")
	called := false

	s := New("Enter a number", Int, func(ctx context.Context, n int) {
		called = true
	})

	require.NotPanics(t, func() {
		s.Execute(withScript(script, domain.LifecycleHooks{}))
	})
	assert.False(t, called)
	assert.Equal(t, []string{"Enter a number"}, script.Lines, "only the prompt is printed")
}

func TestScreen_ExhaustedInputIsEmptyLine(t *testing.T) {
	script := terminal.NewScript()
	var got []string

	s := New("Name?", Text, func(ctx context.Context, v string) {
		got = append(got, v)
	})
	s.Execute(withScript(script, domain.LifecycleHooks{}))

	assert.Equal(t, []string{""}, got, "end of input is parsed as an empty string")
}

func TestScreen_EachExecuteReadsAgain(t *testing.T) {
	script := terminal.NewScript("1", "2", "nope", "3")
	var got []int

	s := New("n", Int, func(ctx context.Context, n int) { got = append(got, n) })
	ctx := withScript(script, domain.LifecycleHooks{})
	for range 4 {
		s.Execute(ctx)
	}

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestScreen_NilParseAndCallback(t *testing.T) {
	script := terminal.NewScript("a", "b")
	ctx := withScript(script, domain.LifecycleHooks{})

	assert.NotPanics(t, func() {
		New[string]("no parse", nil, func(ctx context.Context, v string) {
			t.Fatal("must not complete without a parse function")
		}).Execute(ctx)
		New("no callback", Text, nil).Execute(ctx)
	})
}

func TestScreen_CallbackReceivesSessionContext(t *testing.T) {
	script := terminal.NewScript("go", "inner")
	ctx := withScript(script, domain.LifecycleHooks{})
	var inner string

	next := New("second", Text, func(ctx context.Context, v string) { inner = v })
	first := New("first", Text, func(ctx context.Context, v string) {
		next.Execute(ctx)
	})
	first.Execute(ctx)

	assert.Equal(t, "inner", inner)
	assert.Equal(t, []string{"first", "second"}, script.Lines)
}

func TestScreen_Hooks(t *testing.T) {
	var events []string
	record := func(_ context.Context, e *domain.ScreenEvent) {
		events = append(events, string(e.Type)+":"+e.Screen+":"+e.Input)
	}
	hooks := domain.LifecycleHooks{
		OnScreenEnter:   record,
		OnInputAccepted: record,
		OnInputRejected: record,
	}

	s := New("Pick", IntRange(1, 2), nil, WithName("picker"))
	ctx := withScript(terminal.NewScript("2", "9"), hooks)
	s.Execute(ctx)
	s.Execute(ctx)

	assert.Equal(t, []string{
		"screen_enter:picker:",
		"input_accepted:picker:2",
		"screen_enter:picker:",
		"input_rejected:picker:9",
	}, events)
}

func TestScreen_Accessors(t *testing.T) {
	s := New("Prompt text", Text, nil)
	assert.Equal(t, "Prompt text", s.Prompt())
	assert.Equal(t, "Prompt text", s.Name())

	named := New("Prompt text", Text, nil, WithName("custom"))
	assert.Equal(t, "custom", named.Name())
}
