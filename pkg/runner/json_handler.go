package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/migkairl/pkg/domain"
)

// Frame is one NDJSON line written per turn.
type Frame struct {
	State domain.Kind `json:"state"`
	View  FrameView   `json:"view"`
}

// FrameView is the wire form of a domain.View. Action indexes are 0-based
// and are what {"action":n} refers to.
type FrameView struct {
	Title   string             `json:"title,omitempty"`
	Lines   []string           `json:"lines,omitempty"`
	Image   string             `json:"image,omitempty"`
	Input   *domain.InputField `json:"input,omitempty"`
	Actions []FrameAction      `json:"actions"`
}

type FrameAction struct {
	Index  int    `json:"index"`
	Label  string `json:"label"`
	Submit bool   `json:"submit,omitempty"`
}

// jsonCommand is the inbound NDJSON line. Exactly one field is expected.
type jsonCommand struct {
	Action *int    `json:"action"`
	Entry  *string `json:"entry"`
	Update *string `json:"update"`
	Quit   bool    `json:"quit"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder

	pump *linePump
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
		pump:    newLinePump(r),
	}
}

// NewFrame converts a view to its wire form.
func NewFrame(state domain.State, view domain.View) Frame {
	f := Frame{
		View: FrameView{
			Title:   view.Title,
			Lines:   view.Lines,
			Image:   view.Image,
			Input:   view.Input,
			Actions: make([]FrameAction, len(view.Actions)),
		},
	}
	if state != nil {
		f.State = state.Kind()
	}
	for i, act := range view.Actions {
		f.View.Actions[i] = FrameAction{Index: i, Label: act.Label, Submit: act.IsSubmit()}
	}
	return f
}

func (h *JSONHandler) Output(ctx context.Context, state domain.State, view domain.View) error {
	return h.Encoder.Encode(NewFrame(state, view))
}

func (h *JSONHandler) Input(ctx context.Context, view domain.View) (Command, error) {
	for {
		line, err := h.pump.next(ctx)
		if err != nil {
			return Command{}, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		clean, err := SanitizeInput(line)
		if err != nil {
			return Command{}, err
		}
		return ParseJSONCommand(clean)
	}
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(map[string]string{"system": msg})
}

// ParseJSONCommand decodes one NDJSON command line.
// The bare words quit and exit are accepted as well as {"quit":true}.
func ParseJSONCommand(line string) (Command, error) {
	switch strings.ToLower(strings.Trim(line, `"`)) {
	case "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	}

	var in jsonCommand
	if err := json.Unmarshal([]byte(line), &in); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrUnknownCommand, err)
	}
	switch {
	case in.Quit:
		return Command{Kind: CommandQuit}, nil
	case in.Action != nil:
		return Command{Kind: CommandSelect, Action: *in.Action}, nil
	case in.Entry != nil:
		return Command{Kind: CommandSubmit, Text: *in.Entry}, nil
	case in.Update != nil:
		return Command{Kind: CommandUpdate, Text: *in.Update}, nil
	}
	return Command{}, fmt.Errorf("%w: expected action, entry, update or quit", ErrUnknownCommand)
}
