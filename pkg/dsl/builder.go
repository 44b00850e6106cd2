package dsl

import (
	"time"

	"github.com/aretw0/screenstack/pkg/menu"
	"github.com/aretw0/screenstack/pkg/navigation"
)

// Builder manages the menu construction.
type Builder struct {
	def   menu.Definition
	order []string
}

// New creates a menu builder with the default animation settings.
func New(title string) *Builder {
	return &Builder{
		def: menu.Definition{
			Title:          title,
			AnimationDelay: navigation.DefaultAnimationDelay,
			Animated:       true,
			Screens:        make(map[string]menu.ScreenDef),
		},
	}
}

// Delay sets the animation delay.
func (b *Builder) Delay(d time.Duration) *Builder {
	b.def.AnimationDelay = d
	return b
}

// Instant disables animated navigation.
func (b *Builder) Instant() *Builder {
	b.def.Animated = false
	return b
}

// Retries sets how many times an invalid choice is re-prompted.
func (b *Builder) Retries(n int) *Builder {
	b.def.Retries = n
	return b
}

// Start overrides the start screen. By default it is the first screen added.
func (b *Builder) Start(id string) *Builder {
	b.def.Start = id
	return b
}

// Screen adds (or returns the existing) screen with the given prompt.
func (b *Builder) Screen(id, prompt string) *ScreenBuilder {
	if _, ok := b.def.Screens[id]; !ok {
		b.order = append(b.order, id)
	}
	sc := b.def.Screens[id]
	sc.Prompt = prompt
	b.def.Screens[id] = sc
	if b.def.Start == "" {
		b.def.Start = id
	}
	return &ScreenBuilder{id: id, builder: b}
}

// Definition returns a validated copy of the menu.
func (b *Builder) Definition() (*menu.Definition, error) {
	def := b.def
	def.Screens = make(map[string]menu.ScreenDef, len(b.def.Screens))
	for id, sc := range b.def.Screens {
		sc.Options = append([]menu.OptionDef(nil), sc.Options...)
		def.Screens[id] = sc
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Stack validates the menu and builds its navigation stack.
func (b *Builder) Stack(opts ...navigation.Option) (*navigation.Stack, error) {
	def, err := b.Definition()
	if err != nil {
		return nil, err
	}
	return menu.Build(def, opts...)
}
