package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersons_Order(t *testing.T) {
	assert.Equal(t, []Person{Carl, Isaac, Kai, Miguel, Savannah, Guest}, Persons())
}

func TestParsePerson(t *testing.T) {
	for _, p := range Persons() {
		got, err := ParsePerson(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePerson("  miguel ")
	require.NoError(t, err)
	assert.Equal(t, Miguel, got)

	_, err = ParsePerson("Evan")
	assert.ErrorIs(t, err, ErrUnknownPerson)
}

func TestPerson_StringOutOfRange(t *testing.T) {
	assert.Equal(t, "Person(42)", Person(42).String())
}
