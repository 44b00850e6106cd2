package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/screenstack/pkg/ports"
)

// TerminalFactory builds a terminal that answers reads with input, in order,
// and returns a function exposing everything printed so far.
type TerminalFactory func(t *testing.T, input []string) (ports.Terminal, func() string)

// TerminalContractTest is a reusable test suite that verifies if an adapter complies with ports.Terminal.
func TerminalContractTest(t *testing.T, factory TerminalFactory) {
	t.Helper()
	ctx := context.Background()

	// 1. Reads come back in order
	t.Run("ReadLine_InOrder", func(t *testing.T) {
		term, _ := factory(t, []string{"first", "second"})
		for _, want := range []string{"first", "second"} {
			got, ok := term.ReadLine(ctx)
			if !ok {
				t.Fatalf("expected a line, got none")
			}
			if got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		}
	})

	// 2. Exhausted input reports no line, repeatedly
	t.Run("ReadLine_Exhausted", func(t *testing.T) {
		term, _ := factory(t, []string{"only"})
		_, _ = term.ReadLine(ctx)
		for i := 0; i < 2; i++ {
			got, ok := term.ReadLine(ctx)
			if ok || got != "" {
				t.Errorf("read %d after exhaustion: got (%q, %v), want (\"\", false)", i, got, ok)
			}
		}
	})

	// 3. Printed lines appear in order
	t.Run("PrintLine_Order", func(t *testing.T) {
		term, output := factory(t, nil)
		term.PrintLine(ctx, "alpha")
		term.PrintLine(ctx, "beta")

		out := output()
		a, b := strings.Index(out, "alpha"), strings.Index(out, "beta")
		if a < 0 || b < 0 {
			t.Fatalf("missing lines in output %q", out)
		}
		if a > b {
			t.Errorf("lines out of order in %q", out)
		}
	})

	// 4. A zero delay never blocks
	t.Run("Sleep_Zero", func(t *testing.T) {
		term, _ := factory(t, nil)
		term.Sleep(ctx, 0)
	})
}
