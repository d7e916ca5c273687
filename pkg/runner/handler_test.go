package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/migkairl/pkg/domain"
)

var (
	menu = domain.View{Actions: []domain.Action{
		{Label: "Trivia", Target: domain.Home{}},
		{Label: "Unique", Target: domain.ChoosePerson{}},
	}}
	form = domain.View{
		Input: &domain.InputField{},
		Actions: []domain.Action{
			{Label: "Submit", Submit: domain.ValidatorFunc(func(string) domain.State { return domain.Home{} })},
			domain.HomeAction(),
		},
	}
)

func TestParseTextCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		view    domain.View
		want    Command
		wantErr error
	}{
		{"number", "2", menu, Command{Kind: CommandSelect, Action: 1}, nil},
		{"label", "TRIVIA", menu, Command{Kind: CommandSelect, Action: 0}, nil},
		{"quit", "Quit", menu, Command{Kind: CommandQuit}, nil},
		{"exit on form", "exit", form, Command{Kind: CommandQuit}, nil},
		{"zero", "0", menu, Command{}, domain.ErrActionOutOfRange},
		{"too high", "3", menu, Command{}, domain.ErrActionOutOfRange},
		{"garbage", "banana", menu, Command{}, ErrUnknownCommand},
		{"empty on menu", "", menu, Command{}, ErrUnknownCommand},
		{"number on form is an answer", "1", form, Command{Kind: CommandSubmit, Text: "1"}, nil},
		{"hash on form selects", "#2", form, Command{Kind: CommandSelect, Action: 1}, nil},
		{"bad hash", "#x", form, Command{}, ErrUnknownCommand},
		{"empty answer", "", form, Command{Kind: CommandSubmit}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTextCommand(tt.line, tt.view)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseJSONCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    Command
		wantErr bool
	}{
		{`{"action":2}`, Command{Kind: CommandSelect, Action: 2}, false},
		{`{"entry":"1.0"}`, Command{Kind: CommandSubmit, Text: "1.0"}, false},
		{`{"update":"gr"}`, Command{Kind: CommandUpdate, Text: "gr"}, false},
		{`{"quit":true}`, Command{Kind: CommandQuit}, false},
		{`"exit"`, Command{Kind: CommandQuit}, false},
		{`quit`, Command{Kind: CommandQuit}, false},
		{`{}`, Command{}, true},
		{`not json`, Command{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseJSONCommand(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCommand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMarkdown(t *testing.T) {
	md := FormatMarkdown(domain.View{
		Title: "T",
		Lines: []string{"a", "b"},
		Image: "op_amp.png",
		Input: &domain.InputField{Value: "1.0"},
		Actions: []domain.Action{
			{Label: "Submit", Submit: domain.ValidatorFunc(func(string) domain.State { return nil })},
			domain.HomeAction(),
		},
	})

	assert.Equal(t, "# T\n\na\n\nb\n\n![op_amp.png](op_amp.png)\n\n_Answer:_ `1.0`\n\n1. Submit\n2. Home\n", md)
}

func TestNewFrame(t *testing.T) {
	f := NewFrame(domain.Drink{Count: 3}, domain.View{
		Lines:   []string{"Wrong! Take 3 drinks!"},
		Actions: []domain.Action{domain.HomeAction()},
	})

	assert.Equal(t, domain.KindDrink, f.State)
	assert.Equal(t, []FrameAction{{Index: 0, Label: "Home"}}, f.View.Actions)
}
