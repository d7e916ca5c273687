package domain

import "fmt"

// TriviaItem is a question plus its grading rule.
// The set of variants is closed: MultipleChoice and ShortAnswer.
type TriviaItem interface {
	Question() string
	isTrivia()
}

// Choice is one labelled answer of a multiple-choice question.
type Choice struct {
	Label string
	Next  State
}

// MultipleChoice grades by direct lookup of the chosen answer.
// Choices are kept in display order.
type MultipleChoice struct {
	Prompt  string
	Choices []Choice
}

// ShortAnswer grades free text through its Validator.
type ShortAnswer struct {
	Prompt    string
	Validator Validator
}

// Validator maps raw user text to the next State. Implementations must be
// total: unrecognized input falls through to a default state.
type Validator interface {
	Validate(input string) State
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(input string) State

func (f ValidatorFunc) Validate(input string) State { return f(input) }

// OutcomeLister is implemented by validators that can enumerate every State
// they may return. Graph tooling uses it to follow lazy submit actions.
type OutcomeLister interface {
	Outcomes() []State
}

func (q MultipleChoice) Question() string { return q.Prompt }
func (q ShortAnswer) Question() string    { return q.Prompt }

func (MultipleChoice) isTrivia() {}
func (ShortAnswer) isTrivia()    {}

// Evaluate returns the state stored for the i-th choice, unchanged.
func (q MultipleChoice) Evaluate(i int) (State, error) {
	if i < 0 || i >= len(q.Choices) {
		return nil, fmt.Errorf("%w: %d of %d", ErrChoiceOutOfRange, i, len(q.Choices))
	}
	return q.Choices[i].Next, nil
}

// Evaluate hands the untrimmed text to the validator.
func (q ShortAnswer) Evaluate(text string) State {
	return q.Validator.Validate(text)
}
