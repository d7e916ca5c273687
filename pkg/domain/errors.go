package domain

import "errors"

// ErrEmptyBank is returned when a content bank would hold no trivia items.
var ErrEmptyBank = errors.New("content bank is empty")

// ErrInvalidDeck is returned when a deck file describes malformed content.
var ErrInvalidDeck = errors.New("invalid deck")

// ErrChoiceOutOfRange is returned when a multiple-choice index has no answer.
var ErrChoiceOutOfRange = errors.New("choice out of range")

// ErrActionOutOfRange is returned when a frontend selects an action the view does not offer.
var ErrActionOutOfRange = errors.New("action out of range")

// ErrNoInput is returned when text is submitted to a view without an input field.
var ErrNoInput = errors.New("view has no input field")

// ErrUnknownPerson is returned by ParsePerson.
var ErrUnknownPerson = errors.New("unknown person")
