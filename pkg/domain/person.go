package domain

import (
	"fmt"
	"strings"
)

// Person identifies one of the players with a personalized screen.
type Person int

const (
	Savannah Person = iota
	Isaac
	Miguel
	Kai
	Carl
	Guest
)

var personNames = [...]string{
	Savannah: "Savannah",
	Isaac:    "Isaac",
	Miguel:   "Miguel",
	Kai:      "Kai",
	Carl:     "Carl",
	Guest:    "Guest",
}

func (p Person) String() string {
	if p < 0 || int(p) >= len(personNames) {
		return fmt.Sprintf("Person(%d)", int(p))
	}
	return personNames[p]
}

// Persons returns every person in the order the ChoosePerson screen lists them.
func Persons() []Person {
	return []Person{Carl, Isaac, Kai, Miguel, Savannah, Guest}
}

// ParsePerson resolves a case-insensitive person name.
func ParsePerson(name string) (Person, error) {
	name = strings.TrimSpace(name)
	for i, n := range personNames {
		if strings.EqualFold(n, name) {
			return Person(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPerson, name)
}
