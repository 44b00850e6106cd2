/*
Package screen implements the plain prompt/parse/react Screen.

A Screen[T] prints its prompt, reads one line, and hands the line to its
parse function. If parsing yields a value, the completion callback receives
it; otherwise the screen returns silently. There is no built-in retry: hosts
that want to re-prompt do so explicitly.

	pick := screen.New("Pick 1 or 2", screen.IntRange(1, 2),
		func(ctx context.Context, n int) {
			stack.Push(ctx, details[n], true)
		})

The parse helpers in this package (Int, OneOf, Confirm, Choice...) cover the
usual cases; any func(string) (T, bool) works.
*/
package screen
