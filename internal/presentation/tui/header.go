package tui

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/screenstack/pkg/navigation"
	"github.com/muesli/termenv"
)

// StyledHeader renders stack titles in bold with a coloured underline,
// degrading to plain text on terminals without colour support.
func StyledHeader(w io.Writer) navigation.HeaderFunc {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()
	return func(title string) []string {
		width := utf8.RuneCountInString(title) + 4
		return []string{
			out.String("  " + title).Bold().Foreground(p.Color("#22d3ee")).String(),
			out.String(strings.Repeat("─", width)).Foreground(p.Color("#60a5fa")).String(),
		}
	}
}
