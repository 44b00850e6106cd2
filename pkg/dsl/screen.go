package dsl

import "github.com/aretw0/screenstack/pkg/menu"

// ScreenBuilder provides a fluent API for adding options to a screen.
type ScreenBuilder struct {
	id      string
	builder *Builder
}

func (s *ScreenBuilder) add(opt menu.OptionDef) *ScreenBuilder {
	sc := s.builder.def.Screens[s.id]
	sc.Options = append(sc.Options, opt)
	s.builder.def.Screens[s.id] = sc
	return s
}

// Push adds an option that pushes the target screen.
func (s *ScreenBuilder) Push(label, target string) *ScreenBuilder {
	return s.add(menu.OptionDef{Label: label, Push: target})
}

// Pop adds an option that returns to the previous screen.
func (s *ScreenBuilder) Pop(label string) *ScreenBuilder {
	return s.add(menu.OptionDef{Label: label, Pop: true})
}

// Say adds an option that prints text and shows the menu again.
func (s *ScreenBuilder) Say(label, text string) *ScreenBuilder {
	return s.add(menu.OptionDef{Label: label, Say: text})
}

// Quit adds an option that ends the session.
func (s *ScreenBuilder) Quit(label string) *ScreenBuilder {
	return s.add(menu.OptionDef{Label: label, Quit: true})
}

// Screen starts another screen on the same builder.
func (s *ScreenBuilder) Screen(id, prompt string) *ScreenBuilder {
	return s.builder.Screen(id, prompt)
}
