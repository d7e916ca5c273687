package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/migkairl/pkg/domain"
)

// Renderer builds views. *migkairl.Game implements it.
type Renderer interface {
	Render(state domain.State, entry string) domain.View
}

// Screen is one distinct state found while crawling.
type Screen struct {
	ID    string
	Label string
	Kind  domain.Kind
	Input bool
}

// Edge is an action leading from one screen to another.
type Edge struct {
	From  string
	To    string
	Label string
	Lazy  bool
}

// Graph is the set of screens reachable from Home.
type Graph struct {
	Screens []Screen
	Edges   []Edge
	Errors  []string
}

// Crawl walks every screen reachable from Home plus every trivia item.
// Submit actions are followed through domain.OutcomeLister when the validator
// implements it, and by probing with an empty answer otherwise.
func Crawl(r Renderer, items []domain.TriviaItem) Graph {
	c := &crawler{ids: make(map[string]string)}

	queue := []domain.State{domain.Home{}}
	for _, item := range items {
		queue = append(queue, domain.Trivia{Item: item})
	}

	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]

		id, seen := c.id(state)
		if seen {
			continue
		}
		view := r.Render(state, "")
		c.graph.Screens = append(c.graph.Screens, Screen{
			ID:    id,
			Label: label(state, view),
			Kind:  state.Kind(),
			Input: view.Input != nil,
		})
		c.check(id, state, view)

		for _, act := range view.Actions {
			for _, next := range targets(act) {
				if next == nil {
					c.fail("%s: action %q leads nowhere", id, act.Label)
					continue
				}
				to, _ := c.lookup(next)
				c.graph.Edges = append(c.graph.Edges, Edge{From: id, To: to, Label: act.Label, Lazy: act.IsSubmit()})
				queue = append(queue, next)
			}
		}
	}
	return c.graph
}

// ValidateGraph crawls and returns an error listing every screen problem.
func ValidateGraph(r Renderer, items []domain.TriviaItem) error {
	g := Crawl(r, items)
	if len(g.Errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(g.Errors), strings.Join(g.Errors, "\n- "))
	}
	return nil
}

type crawler struct {
	ids     map[string]string
	visited map[string]bool
	graph   Graph
}

// lookup returns the ID for state, allocating one on first sight.
func (c *crawler) lookup(state domain.State) (string, bool) {
	key := stateKey(state)
	if id, ok := c.ids[key]; ok {
		return id, true
	}
	id := fmt.Sprintf("s%d", len(c.ids))
	c.ids[key] = id
	return id, false
}

// id returns the ID for state and whether it has already been rendered.
func (c *crawler) id(state domain.State) (string, bool) {
	if c.visited == nil {
		c.visited = make(map[string]bool)
	}
	id, _ := c.lookup(state)
	if c.visited[id] {
		return id, true
	}
	c.visited[id] = true
	return id, false
}

func (c *crawler) check(id string, state domain.State, view domain.View) {
	if len(view.Actions) == 0 {
		c.fail("%s (%s): no actions", id, state.Kind())
		return
	}
	if _, home := state.(domain.Home); !home && !view.HomeReachable() {
		c.fail("%s (%s): no way home", id, state.Kind())
	}
}

func (c *crawler) fail(format string, args ...any) {
	c.graph.Errors = append(c.graph.Errors, fmt.Sprintf(format, args...))
}

func targets(act domain.Action) []domain.State {
	if !act.IsSubmit() {
		return []domain.State{act.Target}
	}
	if l, ok := act.Submit.(domain.OutcomeLister); ok {
		return l.Outcomes()
	}
	return []domain.State{act.Submit.Validate("")}
}

// stateKey identifies equal screens. Trivia is keyed by question so rerolls collapse.
func stateKey(state domain.State) string {
	switch s := state.(type) {
	case domain.Trivia:
		if s.Item == nil {
			return "trivia:"
		}
		return "trivia:" + s.Item.Question()
	case domain.Generic:
		return fmt.Sprintf("generic:%p", s.Screen)
	default:
		return fmt.Sprintf("%s:%+v", state.Kind(), state)
	}
}

func label(state domain.State, view domain.View) string {
	switch s := state.(type) {
	case domain.Home:
		return "Home"
	case domain.Unique:
		return s.Person.String()
	case domain.Drink:
		if s.Correct {
			return fmt.Sprintf("Take only %d", s.Count)
		}
		return fmt.Sprintf("Take %d", s.Count)
	case domain.GiveDrinks:
		return fmt.Sprintf("Give %d", s.Count)
	}
	if len(view.Lines) > 0 {
		return view.Lines[0]
	}
	return string(state.Kind())
}
