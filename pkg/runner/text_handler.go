package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/migkairl/pkg/domain"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer

	pump *linePump
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer: w,
		pump:   newLinePump(r),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Output(ctx context.Context, state domain.State, view domain.View) error {
	output := FormatMarkdown(view)
	if h.Renderer != nil {
		if rendered, err := h.Renderer(output); err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimRight(output, "\n"))
	return err
}

func (h *TextHandler) Input(ctx context.Context, view domain.View) (Command, error) {
	if ctx.Err() != nil {
		return Command{}, ctx.Err()
	}
	fmt.Fprint(h.Writer, "> ")

	line, err := h.pump.next(ctx)
	if err != nil {
		return Command{}, err
	}
	clean, err := SanitizeInput(strings.TrimSpace(line))
	if err != nil {
		return Command{}, err
	}
	return ParseTextCommand(clean, view)
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[System] %s\n", msg)
	return err
}

// ParseTextCommand interprets one typed line against the view it answers.
//
// Without an input field a number (1-based) or an action label selects an
// action. With an input field "#n" selects action n and anything else is
// submitted as the answer, so numeric answers never collide with menu numbers.
func ParseTextCommand(line string, view domain.View) (Command, error) {
	switch strings.ToLower(line) {
	case "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	}

	if view.Input != nil {
		if rest, ok := strings.CutPrefix(line, "#"); ok {
			return selectByNumber(rest, view)
		}
		return Command{Kind: CommandSubmit, Text: line}, nil
	}

	if line == "" {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	if _, err := strconv.Atoi(line); err == nil {
		return selectByNumber(line, view)
	}
	for i, act := range view.Actions {
		if strings.EqualFold(act.Label, line) {
			return Command{Kind: CommandSelect, Action: i}, nil
		}
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
}

func selectByNumber(s string, view domain.View) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q is not an action number", ErrUnknownCommand, s)
	}
	if n < 1 || n > len(view.Actions) {
		return Command{}, fmt.Errorf("%w: %d of %d", domain.ErrActionOutOfRange, n, len(view.Actions))
	}
	return Command{Kind: CommandSelect, Action: n - 1}, nil
}

// FormatMarkdown lays a view out as markdown with a numbered action list.
func FormatMarkdown(view domain.View) string {
	var b strings.Builder
	if view.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", view.Title)
	}
	for _, line := range view.Lines {
		fmt.Fprintf(&b, "%s\n\n", line)
	}
	if view.Image != "" {
		fmt.Fprintf(&b, "![%s](%s)\n\n", view.Image, view.Image)
	}
	if view.Input != nil {
		prompt := view.Input.Prompt
		if prompt == "" {
			prompt = "Answer"
		}
		if view.Input.Value != "" {
			fmt.Fprintf(&b, "_%s:_ `%s`\n\n", prompt, view.Input.Value)
		} else {
			fmt.Fprintf(&b, "_%s_ (type your answer, or #n to pick an action)\n\n", prompt)
		}
	}
	for i, act := range view.Actions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, act.Label)
	}
	return b.String()
}
