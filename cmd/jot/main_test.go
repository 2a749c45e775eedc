package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot"
)

func TestResolveRoot(t *testing.T) {
	notebook := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(notebook, ".jot"), 0755))
	nested := filepath.Join(notebook, "sub")
	require.NoError(t, os.MkdirAll(nested, 0755))
	plain := t.TempDir()

	tests := []struct {
		name      string
		flag, env string
		cwd       string
		want      string
	}{
		{"flag wins", "/from/flag", "/from/env", nested, "/from/flag"},
		{"env before discovery", "", "/from/env", nested, "/from/env"},
		{"falls back to cwd", "", "", plain, plain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveRoot(tt.flag, tt.env, tt.cwd))
		})
	}

	t.Run("discovers enclosing notebook", func(t *testing.T) {
		got, err := filepath.EvalSymlinks(resolveRoot("", "", nested))
		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(notebook)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestFilterNotes(t *testing.T) {
	notes := []jot.Note{
		{ID: "1", Title: "Groceries"},
		{ID: "2", Title: "Project ideas"},
		{ID: "3", Title: ""},
	}

	ids := func(ns []jot.Note) []string {
		var out []string
		for _, n := range ns {
			out = append(out, n.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(filterNotes(notes, "")))
	assert.Equal(t, []string{"1"}, ids(filterNotes(notes, "Groc*")))
	assert.Equal(t, []string{"2"}, ids(filterNotes(notes, "*{idea,ideas}")))
	assert.Equal(t, []string{"3"}, ids(filterNotes(notes, "Untitled")))
	assert.Empty(t, filterNotes(notes, "nope"))
}

func TestPrintNotes(t *testing.T) {
	stamp := time.Date(2024, 3, 4, 9, 15, 0, 0, time.Local)
	var buf bytes.Buffer
	printNotes(&buf, []jot.Note{{ID: "abc", Title: "", Content: "<p>hello</p>\nworld", LastModified: stamp}})

	out := buf.String()
	assert.Contains(t, out, "abc  Mar 4, 09:15 AM  Untitled")
	assert.Contains(t, out, "    hello\n")
}
