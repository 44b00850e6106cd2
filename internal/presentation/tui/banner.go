package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ScreenStack banner with a teal-to-blue gradient.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`  ___                        ___ _           _   `, "#2dd4bf"},
		{` / __| __ _ _ ___ ___ _ _   / __| |_ __ _ __| |__`, "#22d3ee"},
		{` \__ \/ _| '_/ -_) -_) ' \  \__ \  _/ _' / _| / /`, "#38bdf8"},
		{` |___/\__|_| \___\___|_||_| |___/\__\__,_\__|_\_\`, "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
