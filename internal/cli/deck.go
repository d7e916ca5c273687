package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/migkairl"
	"github.com/aretw0/migkairl/internal/presentation/graph"
	"github.com/aretw0/migkairl/internal/validator"
	"github.com/aretw0/migkairl/pkg/bank"
	"github.com/aretw0/migkairl/pkg/domain"
)

// ListDeck prints one line per trivia item: index, kind and question.
func ListDeck(w io.Writer, deckPath string) error {
	items, err := loadItems(deckPath, false)
	if err != nil {
		return err
	}
	for i, item := range items {
		fmt.Fprintf(w, "%2d  %-15s  %s\n", i+1, itemKind(item), item.Question())
	}
	return nil
}

// ValidateDeck decodes a deck file, then crawls every screen it can lead to
// and checks that each one offers a way home.
func ValidateDeck(w io.Writer, path string) error {
	items, err := bank.LoadFile(path)
	if err != nil {
		return err
	}
	game, err := migkairl.New(migkairl.WithBank(bank.MustNew(items)))
	if err != nil {
		return err
	}
	if err := validator.ValidateGraph(game, items); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	printSystemMessage(w, "%s: %d items OK", path, len(items))
	return nil
}

// PrintGraph writes the screen graph of a deck as a Mermaid flowchart.
func PrintGraph(w io.Writer, deckPath string, withReference bool) error {
	items, err := loadItems(deckPath, withReference)
	if err != nil {
		return err
	}
	game, err := migkairl.New(migkairl.WithBank(bank.MustNew(items)))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, graph.GenerateMermaid(validator.Crawl(game, items)))
	return err
}

func itemKind(item domain.TriviaItem) string {
	switch q := item.(type) {
	case domain.MultipleChoice:
		return fmt.Sprintf("choice(%d)", len(q.Choices))
	case domain.ShortAnswer:
		return "short answer"
	default:
		return fmt.Sprintf("%T", item)
	}
}
