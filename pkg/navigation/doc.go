/*
Package navigation implements a stack of screens where only the top one is
visible.

Push and Pop mutate the stack and then execute it again, so every navigation
action re-displays the current screen. Because a screen's completion callback
typically pushes or pops the very stack that is executing it, a session is a
synchronous depth-first chain of Execute calls: the Go call stack holds the
navigation history while the Stack holds the navigation model.

	menu := navigation.New(navigation.WithTitle("Menu"))
	menu.Push(ctx, home, false)

Animated operations wait for the stack's animation delay through the session
terminal's Delayer before mutating.
*/
package navigation
