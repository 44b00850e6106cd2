/*
Package screenstack is a small framework for structuring interactive
command-line programs as a stack of screens.

Each screen prompts, reads one line, parses it and reacts. Screens are
grouped in navigation stacks where only the top screen is visible; pushing
or popping re-displays the stack, optionally after an "animation" delay.
The Application runs a root screen and the session continues for as long as
completion callbacks keep navigating.

# Concept

There is no event loop. Every step is a synchronous call triggered by user
input: a screen's callback pushes the next screen, which executes
immediately, and so on. When a callback does not navigate, the chain unwinds
and Run returns.

Terminal I/O and the animation delay go through the ports.Terminal
interface, so sessions can be scripted in tests with terminal.Script.

# Usage

	package main

	import (
		"context"
		"fmt"

		"github.com/aretw0/screenstack"
		"github.com/aretw0/screenstack/pkg/navigation"
		"github.com/aretw0/screenstack/pkg/screen"
	)

	func main() {
		pick := screen.New("Pick 1 or 2", screen.IntRange(1, 2),
			func(ctx context.Context, n int) {
				fmt.Printf("chose %d\n", n)
			})

		app := screenstack.New(navigation.New(
			navigation.WithTitle("Menu"),
			navigation.WithScreens(pick),
		))
		app.Run(context.Background())
	}
*/
package screenstack
