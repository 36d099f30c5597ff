package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOptions(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOptions(t *testing.T) {
	path := writeOptions(t, `{
		"config": "sat",
		"options": {"quiet": 1},
		"limits": {"conflicts": 100000, "decisions": -1}
	}`)

	opts, err := loadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, "sat", opts.Config)
	assert.Equal(t, map[string]int32{"quiet": 1}, opts.Options)
	assert.Equal(t, map[string]int32{"conflicts": 100000, "decisions": -1}, opts.Limits)
}

func TestLoadOptionsRejectsUnknownKeys(t *testing.T) {
	path := writeOptions(t, `{"configg": "sat"}`)

	_, err := loadOptions(path)
	assert.Error(t, err)
}

func TestLoadOptionsBadJSON(t *testing.T) {
	path := writeOptions(t, `{`)

	_, err := loadOptions(path)
	assert.Error(t, err)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := loadOptions(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
