package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(args ...string) (string, error) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}

	err := app.Run(append([]string{"random"}, args...))
	return out.String(), err
}

func TestRandom(t *testing.T) {
	out, err := runApp("-s", "1", "-n", "8", "-o", "inorder")
	require.NoError(t, err)

	assert.Contains(t, out, "inorder: [0 1 2 3 4 5 6 7]\n")
	assert.NotContains(t, out, "preorder")
	assert.Contains(t, out, "tree:\n")
	assert.Contains(t, out, "minimum: 0 maximum: 7\n")

	// same seed, same output
	again, err := runApp("-s", "1", "-n", "8", "-o", "inorder")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRandom_Sorted(t *testing.T) {
	out, err := runApp("--sorted", "-n", "4", "-o", "pre", "-o", "post", "--no-tree")
	require.NoError(t, err)

	assert.Equal(t, "preorder: [0 1 2 3]\n"+
		"postorder: [3 2 1 0]\n"+
		"height: 4 ideal: 3\n"+
		"minimum: 0 maximum: 3\n", out)
}

func TestRandom_Balanced(t *testing.T) {
	out, err := runApp("-b", "-s", "5", "-n", "7", "--no-tree")
	require.NoError(t, err)

	assert.Contains(t, out, "height: 3 ideal: 3\n")
	assert.Contains(t, out, "attempts: ")
}

func TestRandom_Empty(t *testing.T) {
	out, err := runApp("-n", "0", "--no-tree")
	require.NoError(t, err)
	assert.Contains(t, out, "height: 0 ideal: 0\n")
	assert.NotContains(t, out, "minimum")
}

func TestRandom_BadFlags(t *testing.T) {
	_, err := runApp("-o", "levelorder")
	assert.Error(t, err)

	_, err = runApp("-n", "-1")
	assert.Error(t, err)

	_, err = runApp("--sorted", "--balanced")
	assert.Error(t, err)
}
