package domain

import "context"

// Screen is anything that can be displayed and driven by user input.
//
// Execute performs the screen's action synchronously. It never returns an
// error: rejected input is a silent no-op and navigation side effects happen
// inside the call.
type Screen interface {
	Execute(ctx context.Context)
}

// ScreenFunc adapts an ordinary function to the Screen interface.
type ScreenFunc func(ctx context.Context)

// Execute calls f(ctx).
func (f ScreenFunc) Execute(ctx context.Context) {
	f(ctx)
}
