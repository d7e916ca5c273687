package domain

// Kind names a State variant. It is used for logging and metric labels.
type Kind string

const (
	KindHome         Kind = "home"
	KindTrivia       Kind = "trivia"
	KindChoosePerson Kind = "choose_person"
	KindUnique       Kind = "unique"
	KindDrink        Kind = "drink"
	KindGiveDrinks   Kind = "give_drinks"
	KindGeneric      Kind = "generic"
)

// State is the current screen. Exactly one State is live per session and
// every transition replaces it wholesale.
//
// The set of variants is closed: only types in this package implement State.
type State interface {
	Kind() Kind
	isState()
}

// Home is the main menu.
type Home struct{}

// Trivia holds a snapshot of the active trivia item.
type Trivia struct {
	Item TriviaItem
}

// ChoosePerson lists the players.
type ChoosePerson struct{}

// Unique is the personalized screen of a player.
type Unique struct {
	Person Person
}

// Drink is an outcome telling the player to drink Count times.
type Drink struct {
	Correct bool
	Count   int
}

// GiveDrinks is an outcome letting the player hand out Count drinks.
// It is always a correct answer.
type GiveDrinks struct {
	Count int
}

// Generic is a screen defined entirely by its Screen. The state machine does
// not interpret it; the Screen renders itself.
type Generic struct {
	Screen Screen
}

// Screen renders a complete view on its own. Implementations must be
// immutable since one instance may back many states.
type Screen interface {
	Render() View
}

// ScreenFunc adapts a function to the Screen interface.
type ScreenFunc func() View

func (f ScreenFunc) Render() View { return f() }

func (Home) Kind() Kind         { return KindHome }
func (Trivia) Kind() Kind       { return KindTrivia }
func (ChoosePerson) Kind() Kind { return KindChoosePerson }
func (Unique) Kind() Kind       { return KindUnique }
func (Drink) Kind() Kind        { return KindDrink }
func (GiveDrinks) Kind() Kind   { return KindGiveDrinks }
func (Generic) Kind() Kind      { return KindGeneric }

func (Home) isState()         {}
func (Trivia) isState()       {}
func (ChoosePerson) isState() {}
func (Unique) isState()       {}
func (Drink) isState()        {}
func (GiveDrinks) isState()   {}
func (Generic) isState()      {}

// DrinkCount converts a plain count into a Drink outcome.
// Counts of 0 or 1 are the reward path ("take only N"); anything higher is wrong.
func DrinkCount(n int) Drink {
	return Drink{Correct: n <= 1, Count: n}
}
