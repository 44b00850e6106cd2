/*
Package dsl provides a fluent Go API for declaring menus without a YAML file.

It produces the same menu.Definition a menu file does, so validation,
building and diagram export work the same way.

Example usage:

	b := dsl.New("Main Menu").Delay(500 * time.Millisecond)

	b.Screen("home", "What now?").
		Push("Settings", "settings").
		Say("Greet", "Hello!").
		Quit("Quit")

	b.Screen("settings", "Settings").
		Pop("Back")

	stack, err := b.Stack()
*/
package dsl
