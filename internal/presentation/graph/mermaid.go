package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/migkairl/internal/validator"
	"github.com/aretw0/migkairl/pkg/domain"
)

const maxLabel = 40

// GenerateMermaid produces a Mermaid flowchart of the screen graph.
// It applies semantic styling:
// - Home: ((Circle))
// - Screens that take an answer: [/Parallelogram/]
// - Drink outcomes: {{Hexagon}}
// - Default: [Rectangle]
// Submit edges are dotted because their target depends on the answer.
func GenerateMermaid(g validator.Graph) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, s := range g.Screens {
		opener, closer := "[", "]"
		switch {
		case s.Kind == domain.KindHome:
			opener, closer = "((", "))"
		case s.Input:
			opener, closer = "[/", "/]"
		case s.Kind == domain.KindDrink || s.Kind == domain.KindGiveDrinks:
			opener, closer = "{{", "}}"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", s.ID, opener, escape(s.Label), closer)
	}

	for _, e := range g.Edges {
		arrow := fmt.Sprintf("-- \"%s\" -->", escape(e.Label))
		if e.Lazy {
			arrow = fmt.Sprintf("-. \"%s\" .->", escape(e.Label))
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", e.From, arrow, e.To)
	}

	return sb.String()
}

// escape keeps labels short and free of characters Mermaid treats as syntax.
func escape(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	if r := []rune(s); len(r) > maxLabel {
		s = string(r[:maxLabel-3]) + "..."
	}
	return s
}
