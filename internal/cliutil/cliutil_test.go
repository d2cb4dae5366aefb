package cliutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys([]string{"15", "6,18", "3 7\t17", "-2"})
	require.NoError(t, err)
	assert.Equal(t, []int{15, 6, 18, 3, 7, 17, -2}, keys)

	keys, err = ParseKeys(nil)
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = ParseKeys([]string{"1", "x"})
	assert.ErrorContains(t, err, `bad key "x"`)
}
