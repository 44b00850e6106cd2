package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/screenstack/pkg/menu"
)

// Overlay highlights screens on the diagram.
type Overlay struct {
	Visited []string
	Current string
}

// Screen node IDs carry this prefix, so they can never collide with the
// shared back/end nodes or with Mermaid keywords such as "end".
const screenPrefix = "s_"

// GenerateMermaid produces a Mermaid flowchart of a menu.
// It applies semantic styling:
// - Start screen: ((Circle))
// - Other screens: [/Parallelogram/] (they all read input)
// - Push: solid arrow labelled with the option
// - Pop: dotted arrow to a shared "back" node
// - Quit: arrow to a shared "end" node
// - Say: self loop
func GenerateMermaid(def *menu.Definition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	usesBack, usesEnd := false, false
	for _, id := range def.ScreenIDs() {
		safeID := sanitizeMermaidID(id)

		opener, closer := "[/", "/]"
		if id == def.Start {
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, id, closer)

		for _, opt := range def.Screens[id].Options {
			label := strings.ReplaceAll(opt.Label, "\"", "'")
			switch {
			case opt.Push != "":
				fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, label, sanitizeMermaidID(opt.Push))
			case opt.Pop:
				usesBack = true
				fmt.Fprintf(&sb, "    %s -. \"%s\" .-> back\n", safeID, label)
			case opt.Quit:
				usesEnd = true
				fmt.Fprintf(&sb, "    %s -- \"%s\" --> end_\n", safeID, label)
			case opt.Say != "":
				fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, label, safeID)
			}
		}
	}

	if usesBack {
		sb.WriteString("    back{{\"back\"}}\n")
	}
	if usesEnd {
		sb.WriteString("    end_(((\"end\")))\n")
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		// Only declared screens are styled; a class line would otherwise create a node.
		seen := make(map[string]bool)
		for _, id := range overlay.Visited {
			if _, ok := def.Screens[id]; ok && !seen[id] {
				seen[id] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", sanitizeMermaidID(id))
			}
		}
		if _, ok := def.Screens[overlay.Current]; ok {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.Current))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	return screenPrefix + strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_").Replace(id)
}
