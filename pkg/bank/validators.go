package bank

import (
	"strconv"
	"strings"

	"github.com/aretw0/migkairl/pkg/domain"
)

// Keywords matches when the lower-cased input contains any of Any.
type Keywords struct {
	Any   []string
	Match domain.State
	Miss  domain.State
}

func (k Keywords) Validate(input string) domain.State {
	s := strings.ToLower(input)
	for _, kw := range k.Any {
		if kw != "" && strings.Contains(s, strings.ToLower(kw)) {
			return k.Match
		}
	}
	return k.Miss
}

// Exact matches when the trimmed, lower-cased input equals Answer.
type Exact struct {
	Answer string
	Match  domain.State
	Miss   domain.State
}

func (e Exact) Validate(input string) domain.State {
	if strings.ToLower(strings.TrimSpace(input)) == strings.ToLower(e.Answer) {
		return e.Match
	}
	return e.Miss
}

// NumberEquals matches when the trimmed input parses as a 32-bit float equal
// to Value. Unparsable input is a miss.
type NumberEquals struct {
	Value float64
	Match domain.State
	Miss  domain.State
}

func (n NumberEquals) Validate(input string) domain.State {
	f, err := strconv.ParseFloat(strings.TrimSpace(input), 32)
	if err != nil || float32(f) != float32(n.Value) {
		return n.Miss
	}
	return n.Match
}

// Outcomes lists the states Validate may return.
func (k Keywords) Outcomes() []domain.State { return []domain.State{k.Match, k.Miss} }

func (e Exact) Outcomes() []domain.State { return []domain.State{e.Match, e.Miss} }

func (n NumberEquals) Outcomes() []domain.State { return []domain.State{n.Match, n.Miss} }
