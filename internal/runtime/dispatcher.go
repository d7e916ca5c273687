package runtime

import (
	"fmt"

	"github.com/aretw0/migkairl/pkg/domain"
)

const (
	// Title is shown on the home screen.
	Title = "Savisaac Migkairl!"

	LabelTrivia   = "Trivia"
	LabelUnique   = "Unique"
	LabelSubmit   = "Submit"
	LabelAnswered = "This question was already answered"
)

// Drawer supplies trivia items. *bank.Bank implements it.
type Drawer interface {
	Random() domain.TriviaItem
}

// Dispatcher maps a State (plus the entry buffer) to its View.
// It never mutates state; the only side effect is drawing trivia for the
// actions that start or reroll a question.
type Dispatcher struct {
	bank Drawer
}

// NewDispatcher creates a dispatcher drawing trivia from bank.
func NewDispatcher(bank Drawer) *Dispatcher {
	return &Dispatcher{bank: bank}
}

// Render builds the view of state. A nil state renders as Home.
func (d *Dispatcher) Render(state domain.State, entry string) domain.View {
	switch s := state.(type) {
	case nil, domain.Home:
		return d.home()
	case domain.Trivia:
		return d.trivia(s.Item, entry)
	case domain.ChoosePerson:
		return choosePerson()
	case domain.Unique:
		return unique(s.Person, entry)
	case domain.Drink:
		return outcome(drinkText(s))
	case domain.GiveDrinks:
		return outcome(fmt.Sprintf("Correct! Give out %d %s!", s.Count, drinks(s.Count)))
	case domain.Generic:
		if s.Screen == nil {
			return outcome()
		}
		return s.Screen.Render()
	default:
		return outcome(fmt.Sprintf("Unknown screen %T.", state))
	}
}

func (d *Dispatcher) home() domain.View {
	return domain.View{
		Title: Title,
		Actions: []domain.Action{
			{Label: LabelTrivia, Target: d.draw()},
			{Label: LabelUnique, Target: domain.ChoosePerson{}},
		},
	}
}

func (d *Dispatcher) draw() domain.State {
	return domain.Trivia{Item: d.bank.Random()}
}

func (d *Dispatcher) trivia(item domain.TriviaItem, entry string) domain.View {
	if item == nil {
		return outcome()
	}
	v := domain.View{Lines: []string{item.Question()}}

	switch q := item.(type) {
	case domain.MultipleChoice:
		for _, c := range q.Choices {
			v.Actions = append(v.Actions, domain.Action{Label: c.Label, Target: c.Next})
		}
	case domain.ShortAnswer:
		v.Input = &domain.InputField{Value: entry}
		v.Actions = append(v.Actions, domain.Action{Label: LabelSubmit, Submit: q.Validator})
	}

	v.Actions = append(v.Actions,
		domain.Action{Label: LabelAnswered, Target: d.draw()},
		domain.HomeAction(),
	)
	return v
}

func choosePerson() domain.View {
	v := domain.View{Lines: []string{"Who are you?"}}
	for _, p := range domain.Persons() {
		v.Actions = append(v.Actions, domain.Action{Label: p.String(), Target: domain.Unique{Person: p}})
	}
	v.Actions = append(v.Actions, domain.HomeAction())
	return v
}

func unique(p domain.Person, entry string) domain.View {
	c, ok := uniqueScreens[p]
	if !ok {
		return outcome()
	}
	v := domain.View{
		Lines: append([]string(nil), c.lines...),
		Image: c.image,
	}
	if c.check != nil {
		v.Input = &domain.InputField{Value: entry}
		v.Actions = append(v.Actions, domain.Action{Label: LabelSubmit, Submit: c.check})
	}
	v.Actions = append(v.Actions, domain.HomeAction())
	return v
}

func outcome(lines ...string) domain.View {
	return domain.View{
		Lines:   lines,
		Actions: []domain.Action{domain.HomeAction()},
	}
}

func drinkText(d domain.Drink) string {
	if d.Correct {
		return fmt.Sprintf("Correct! Take only %d %s!", d.Count, drinks(d.Count))
	}
	return fmt.Sprintf("Wrong! Take %d %s!", d.Count, drinks(d.Count))
}

func drinks(n int) string {
	if n == 1 {
		return "drink"
	}
	return "drinks"
}
