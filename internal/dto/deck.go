package dto

// DeckFile is the top-level shape of a YAML deck. Items stay generic here and
// are decoded one by one so errors can name the offending item.
type DeckFile struct {
	Items []map[string]any `yaml:"items"`
}

// DeckItem represents one trivia entry of a deck.
// It uses "mapstructure" tags to match the YAML keys.
// Exactly one of MultipleChoice or ShortAnswer must be set.
type DeckItem struct {
	MultipleChoice string       `json:"multiple_choice" mapstructure:"multiple_choice"`
	Choices        []DeckChoice `json:"choices" mapstructure:"choices"`

	ShortAnswer string       `json:"short_answer" mapstructure:"short_answer"`
	Match       string       `json:"match" mapstructure:"match"`
	Answers     []string     `json:"answers" mapstructure:"answers"`
	Value       *float64     `json:"value" mapstructure:"value"`
	Pass        *DeckOutcome `json:"pass" mapstructure:"pass"`
	Fail        *DeckOutcome `json:"fail" mapstructure:"fail"`
}

type DeckChoice struct {
	Label       string `json:"label" mapstructure:"label"`
	DeckOutcome `mapstructure:",squash"`
}

// DeckOutcome names the screen an answer leads to.
// Drink without Correct follows the plain count rule (0 or 1 is correct).
type DeckOutcome struct {
	Drink   *int     `json:"drink" mapstructure:"drink"`
	Correct *bool    `json:"correct" mapstructure:"correct"`
	Give    *int     `json:"give" mapstructure:"give"`
	Notice  []string `json:"notice" mapstructure:"notice"`
}
