package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSkillList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
		wantErr  bool
	}{
		{"json array", `["Welding", "Rigging"]`, []string{"Welding", "Rigging"}, false},
		{"lines", "Welding\n\n  Rigging  \n", []string{"Welding", "Rigging"}, false},
		{"empty", "", nil, false},
		{"bad json", `["Welding",`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readSkillList([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCollectSkills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hydraulics\nPneumatics\n"), 0644))

	got, err := collectSkills([]string{"Welding"}, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Welding", "Hydraulics", "Pneumatics"}, got)

	got, err = collectSkills([]string{"Welding"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Welding"}, got)

	_, err = collectSkills(nil, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	require.NoError(t, writeJSON(path, map[string]int{"count": 2}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count": 2}`, string(data))
}
