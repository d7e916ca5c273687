package bank

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/migkairl/internal/dto"
	"github.com/aretw0/migkairl/pkg/domain"
)

// Match kinds accepted by short-answer deck items.
const (
	MatchKeywords = "keywords"
	MatchExact    = "exact"
	MatchNumber   = "number"
)

// LoadFile reads a YAML deck from disk.
func LoadFile(path string) ([]domain.TriviaItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	items, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	return items, nil
}

// Decode parses a YAML deck. An empty deck yields domain.ErrEmptyBank.
func Decode(r io.Reader) ([]domain.TriviaItem, error) {
	var file dto.DeckFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, domain.ErrEmptyBank
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDeck, err)
	}
	if len(file.Items) == 0 {
		return nil, domain.ErrEmptyBank
	}

	items := make([]domain.TriviaItem, 0, len(file.Items))
	for i, raw := range file.Items {
		var in dto.DeckItem
		if err := decodeStrict(raw, &in); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", domain.ErrInvalidDeck, i, err)
		}
		item, err := buildItem(in)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeStrict(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

func buildItem(in dto.DeckItem) (domain.TriviaItem, error) {
	switch {
	case in.MultipleChoice != "" && in.ShortAnswer != "":
		return nil, fmt.Errorf("%w: both multiple_choice and short_answer set", domain.ErrInvalidDeck)
	case in.MultipleChoice != "":
		return buildMultipleChoice(in)
	case in.ShortAnswer != "":
		return buildShortAnswer(in)
	default:
		return nil, fmt.Errorf("%w: missing multiple_choice or short_answer", domain.ErrInvalidDeck)
	}
}

func buildMultipleChoice(in dto.DeckItem) (domain.TriviaItem, error) {
	if len(in.Choices) == 0 {
		return nil, fmt.Errorf("%w: %q has no choices", domain.ErrInvalidDeck, in.MultipleChoice)
	}
	choices := make([]domain.Choice, 0, len(in.Choices))
	for i, c := range in.Choices {
		if c.Label == "" {
			return nil, fmt.Errorf("%w: choice %d has no label", domain.ErrInvalidDeck, i)
		}
		next, err := buildOutcome(c.DeckOutcome)
		if err != nil {
			return nil, fmt.Errorf("choice %q: %w", c.Label, err)
		}
		choices = append(choices, domain.Choice{Label: c.Label, Next: next})
	}
	return domain.MultipleChoice{Prompt: in.MultipleChoice, Choices: choices}, nil
}

func buildShortAnswer(in dto.DeckItem) (domain.TriviaItem, error) {
	if in.Pass == nil || in.Fail == nil {
		return nil, fmt.Errorf("%w: %q needs both pass and fail", domain.ErrInvalidDeck, in.ShortAnswer)
	}
	pass, err := buildOutcome(*in.Pass)
	if err != nil {
		return nil, fmt.Errorf("pass: %w", err)
	}
	fail, err := buildOutcome(*in.Fail)
	if err != nil {
		return nil, fmt.Errorf("fail: %w", err)
	}

	var v domain.Validator
	switch in.Match {
	case MatchKeywords:
		if len(in.Answers) == 0 {
			return nil, fmt.Errorf("%w: keywords match needs answers", domain.ErrInvalidDeck)
		}
		v = Keywords{Any: in.Answers, Match: pass, Miss: fail}
	case MatchExact:
		if len(in.Answers) != 1 {
			return nil, fmt.Errorf("%w: exact match needs exactly one answer", domain.ErrInvalidDeck)
		}
		v = Exact{Answer: in.Answers[0], Match: pass, Miss: fail}
	case MatchNumber:
		if in.Value == nil {
			return nil, fmt.Errorf("%w: number match needs a value", domain.ErrInvalidDeck)
		}
		v = NumberEquals{Value: *in.Value, Match: pass, Miss: fail}
	default:
		return nil, fmt.Errorf("%w: unknown match kind %q", domain.ErrInvalidDeck, in.Match)
	}
	return domain.ShortAnswer{Prompt: in.ShortAnswer, Validator: v}, nil
}

func buildOutcome(o dto.DeckOutcome) (domain.State, error) {
	set := 0
	if o.Drink != nil {
		set++
	}
	if o.Give != nil {
		set++
	}
	if len(o.Notice) > 0 {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: outcome needs exactly one of drink, give or notice", domain.ErrInvalidDeck)
	}
	if o.Correct != nil && o.Drink == nil {
		return nil, fmt.Errorf("%w: correct only applies to drink", domain.ErrInvalidDeck)
	}

	switch {
	case o.Drink != nil:
		if *o.Drink < 0 {
			return nil, fmt.Errorf("%w: negative drink count %d", domain.ErrInvalidDeck, *o.Drink)
		}
		if o.Correct != nil {
			return domain.Drink{Correct: *o.Correct, Count: *o.Drink}, nil
		}
		return domain.DrinkCount(*o.Drink), nil
	case o.Give != nil:
		if *o.Give < 0 {
			return nil, fmt.Errorf("%w: negative give count %d", domain.ErrInvalidDeck, *o.Give)
		}
		return domain.GiveDrinks{Count: *o.Give}, nil
	default:
		return domain.Generic{Screen: &Notice{Lines: o.Notice}}, nil
	}
}
