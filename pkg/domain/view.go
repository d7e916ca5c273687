package domain

// View is the render description of a State: what to show and which
// actions a frontend may offer.
type View struct {
	Title string   `json:"title,omitempty"`
	Lines []string `json:"lines,omitempty"`

	// Image references a static asset shown under the text (e.g. a circuit diagram).
	Image string `json:"image,omitempty"`

	// Input is set when the screen collects free text into the entry buffer.
	Input *InputField `json:"input,omitempty"`

	Actions []Action `json:"actions"`
}

// InputField describes the text entry bound to the entry buffer.
type InputField struct {
	Prompt string `json:"prompt,omitempty"`
	Value  string `json:"value"`
}

// Action is a labelled request to replace the current State.
//
// Target is computed eagerly when the view is built. When Submit is set the
// action is lazy instead: the next State is produced by the validator from the
// entry buffer at the moment the action is applied.
type Action struct {
	Label  string    `json:"label"`
	Target State     `json:"-"`
	Submit Validator `json:"-"`
}

// IsSubmit reports whether the action reads the entry buffer.
func (a Action) IsSubmit() bool {
	return a.Submit != nil
}

// Resolve returns the State this action requests given the entry buffer.
func (a Action) Resolve(entry string) State {
	if a.Submit != nil {
		return a.Submit.Validate(entry)
	}
	return a.Target
}

// SubmitIndex returns the index of the first submit action, or -1.
func (v View) SubmitIndex() int {
	for i, a := range v.Actions {
		if a.IsSubmit() {
			return i
		}
	}
	return -1
}

// HomeReachable reports whether a single action leads back to the Home screen.
func (v View) HomeReachable() bool {
	for _, a := range v.Actions {
		if !a.IsSubmit() {
			if _, ok := a.Target.(Home); ok {
				return true
			}
		}
	}
	return false
}

// HomeAction is the action every non-home screen offers.
func HomeAction() Action {
	return Action{Label: "Home", Target: Home{}}
}
