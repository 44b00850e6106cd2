package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/screenstack/pkg/domain"
	"github.com/aretw0/screenstack/pkg/navigation"
	"github.com/aretw0/screenstack/pkg/screen"
	"github.com/aretw0/screenstack/pkg/session"
)

// InvalidChoiceMessage is printed before a retry.
const InvalidChoiceMessage = "invalid choice"

// builder resolves screens by ID at call time so options may reference
// screens declared later in the file, or the stack built last.
type builder struct {
	def     *Definition
	stack   *navigation.Stack
	screens map[string]domain.Screen
}

// Build validates def and returns a stack holding its start screen.
// Extra options are applied after the ones derived from def.
func Build(def *Definition, extra ...navigation.Option) (*navigation.Stack, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	b := &builder{def: def, screens: make(map[string]domain.Screen, len(def.Screens))}
	for _, id := range def.ScreenIDs() {
		b.screens[id] = b.screen(id, def.Screens[id])
	}

	opts := append([]navigation.Option{
		navigation.WithTitle(def.Title),
		navigation.WithAnimationDelay(def.AnimationDelay),
		navigation.WithScreens(b.screens[def.Start]),
	}, extra...)
	b.stack = navigation.New(opts...)
	return b.stack, nil
}

func (b *builder) screen(id string, sc ScreenDef) domain.Screen {
	labels := make([]string, len(sc.Options))
	for i, opt := range sc.Options {
		labels[i] = opt.Label
	}

	r := &retrying{retries: b.def.Retries}
	r.inner = screen.New(FormatPrompt(sc.Prompt, labels), screen.Choice(labels...),
		func(ctx context.Context, choice int) {
			r.accept()
			b.act(ctx, sc.Options[choice])
		},
		screen.WithName(id),
	)
	return r
}

func (b *builder) act(ctx context.Context, opt OptionDef) {
	switch {
	case opt.Push != "":
		b.stack.Push(ctx, b.screens[opt.Push], b.def.Animated)
	case opt.Pop:
		b.stack.Pop(ctx, b.def.Animated)
	case opt.Say != "":
		session.FromContext(ctx).Terminal.PrintLine(ctx, opt.Say)
		b.stack.Execute(ctx)
	case opt.Quit:
		session.FromContext(ctx).Logger.DebugContext(ctx, "menu quit", "menu", b.def.Title)
	}
}

// FormatPrompt renders a prompt followed by its numbered options.
func FormatPrompt(prompt string, labels []string) string {
	var sb strings.Builder
	sb.WriteString(prompt)
	for i, label := range labels {
		fmt.Fprintf(&sb, "\n  %d) %s", i+1, label)
	}
	return sb.String()
}

// retrying re-executes a screen whose input was rejected, up to retries
// extra times. Frames track acceptance per nested Execute, since accepting
// usually navigates and may re-enter the same screen before returning.
type retrying struct {
	inner   domain.Screen
	retries int
	frames  []bool
}

func (r *retrying) accept() {
	if n := len(r.frames); n > 0 {
		r.frames[n-1] = true
	}
}

func (r *retrying) Execute(ctx context.Context) {
	r.frames = append(r.frames, false)
	frame := len(r.frames) - 1
	defer func() { r.frames = r.frames[:frame] }()

	for attempt := 0; ; attempt++ {
		r.inner.Execute(ctx)
		if r.frames[frame] || attempt >= r.retries {
			return
		}
		session.FromContext(ctx).Terminal.PrintLine(ctx, InvalidChoiceMessage)
	}
}
