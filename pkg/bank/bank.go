package bank

import (
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/migkairl/pkg/domain"
)

// Bank is a fixed, ordered collection of trivia items.
// Safe for concurrent use.
type Bank struct {
	items []domain.TriviaItem

	mu     sync.Mutex // guards src
	src    Source
	seeded bool
}

// Option configures a Bank.
type Option func(*Bank)

// WithSource sets the random source used by Random.
func WithSource(src Source) Option {
	return func(b *Bank) {
		if src != nil {
			b.src = src
			b.seeded = true
		}
	}
}

// WithSeed makes draws reproducible.
func WithSeed(seed uint64) Option {
	return WithSource(NewSeededSource(seed))
}

// New builds a bank from items. An empty bank is a configuration error.
func New(items []domain.TriviaItem, opts ...Option) (*Bank, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyBank
	}
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("%w: item %d is nil", domain.ErrInvalidDeck, i)
		}
	}

	b := &Bank{
		items: slices.Clone(items),
		src:   globalSource{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// MustNew is like New but panics on error. Meant for package-level content.
func MustNew(items []domain.TriviaItem, opts ...Option) *Bank {
	b, err := New(items, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Default returns a bank over the reference content.
func Default(opts ...Option) *Bank {
	return MustNew(Reference(), opts...)
}

// Len returns the number of items.
func (b *Bank) Len() int {
	return len(b.items)
}

// Seeded reports whether draws come from an injected source.
func (b *Bank) Seeded() bool {
	return b.seeded
}

// Items returns copies of every item in bank order.
func (b *Bank) Items() []domain.TriviaItem {
	out := make([]domain.TriviaItem, len(b.items))
	for i, item := range b.items {
		out[i] = snapshot(item)
	}
	return out
}

// Random draws an item uniformly. The returned value is a snapshot: its
// choice list is a fresh slice while states, validators and screens are shared.
func (b *Bank) Random() domain.TriviaItem {
	b.mu.Lock()
	i := b.src.IntN(len(b.items))
	b.mu.Unlock()
	return snapshot(b.items[i])
}

func snapshot(item domain.TriviaItem) domain.TriviaItem {
	switch q := item.(type) {
	case domain.MultipleChoice:
		q.Choices = slices.Clone(q.Choices)
		return q
	default:
		return item
	}
}
