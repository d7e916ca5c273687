package bank

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/migkairl/pkg/domain"
)

func TestNew_Empty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyBank)

	_, err = New([]domain.TriviaItem{})
	assert.ErrorIs(t, err, domain.ErrEmptyBank)

	assert.Panics(t, func() { MustNew(nil) })
}

func TestNew_NilItem(t *testing.T) {
	_, err := New([]domain.TriviaItem{nil})
	assert.ErrorIs(t, err, domain.ErrInvalidDeck)
}

func TestRandom_CoversEveryItem(t *testing.T) {
	b := Default()
	seen := make(map[string]int)
	for i := 0; i < 5000; i++ {
		seen[b.Random().Question()]++
	}
	require.Len(t, seen, b.Len())
	for _, item := range b.Items() {
		assert.Positive(t, seen[item.Question()], "never drew %q", item.Question())
	}
}

func TestRandom_SeededIsDeterministic(t *testing.T) {
	a := Default(WithSeed(42))
	b := Default(WithSeed(42))
	assert.True(t, a.Seeded())
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Random().Question(), b.Random().Question())
	}
}

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func TestRandom_UsesSource(t *testing.T) {
	items := Reference()
	b := MustNew(items, WithSource(fixedSource(2)))
	assert.Equal(t, items[2].Question(), b.Random().Question())
}

func TestRandom_SnapshotIsolation(t *testing.T) {
	b := MustNew(Reference(), WithSource(fixedSource(0)))

	first := b.Random().(domain.MultipleChoice)
	first.Choices[0] = domain.Choice{Label: "tampered", Next: domain.Home{}}

	second := b.Random().(domain.MultipleChoice)
	assert.Equal(t, "Evan Holmes", second.Choices[0].Label)
	assert.Equal(t, domain.DrinkCount(4), second.Choices[0].Next)
}

func TestNew_CopiesInput(t *testing.T) {
	items := Reference()
	b := MustNew(items, WithSource(fixedSource(0)))
	items[0] = domain.ShortAnswer{Prompt: "replaced"}
	assert.Equal(t, `Which Evan is "Black Evan"?`, b.Random().Question())
}

func TestRandom_ConcurrentDraws(t *testing.T) {
	b := Default(WithSeed(7))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.NotNil(t, b.Random())
			}
		}()
	}
	wg.Wait()
}
