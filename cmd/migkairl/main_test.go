package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "migkairl version")
}

func TestDeckListCommand(t *testing.T) {
	out, err := execute(t, "", "deck", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Savisaac Migkairl")
}

func TestDeckValidateRequiresFile(t *testing.T) {
	_, err := execute(t, "", "deck", "validate")
	assert.Error(t, err)
}

func TestPlayCommand_JSON(t *testing.T) {
	out, err := execute(t, `{"action":1}`+"\n", "play", "--json", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, `"state":"home"`)
	assert.Contains(t, out, `"state":"choose_person"`)
}

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "", "graph")
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
}
