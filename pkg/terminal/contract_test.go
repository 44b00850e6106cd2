package terminal_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/screenstack/pkg/ports"
	"github.com/aretw0/screenstack/pkg/ports/tests"
	"github.com/aretw0/screenstack/pkg/terminal"
)

func TestConsole_Contract(t *testing.T) {
	tests.TerminalContractTest(t, func(t *testing.T, input []string) (ports.Terminal, func() string) {
		in := ""
		if len(input) > 0 {
			in = strings.Join(input, "\n") + "\n"
		}
		out := &bytes.Buffer{}
		c := terminal.NewConsole(strings.NewReader(in), out,
			terminal.WithInputMarker(""),
			terminal.WithSleeper(func(time.Duration) { t.Fatal("console slept") }),
		)
		return c, out.String
	})
}

func TestScript_Contract(t *testing.T) {
	tests.TerminalContractTest(t, func(t *testing.T, input []string) (ports.Terminal, func() string) {
		s := terminal.NewScript(input...)
		return s, s.Output
	})
}
