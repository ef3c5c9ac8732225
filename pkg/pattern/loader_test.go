package pattern

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	data := []byte(`
patterns:
  - name: TODO marker
    id: cp.todo.1
    pattern: 'TODO'
    description: leftover marker
  - name: Tab indent
    id: cp.tab.1
    pattern: "^\t+"
`)

	patterns, err := Load(data)
	require.NoError(t, err)
	require.Len(t, patterns, 2)

	assert.Equal(t, "cp.todo.1", patterns[0].ID)
	assert.Equal(t, "TODO marker", patterns[0].Name)
	assert.Equal(t, "TODO", patterns[0].Pattern)
	assert.Equal(t, "leftover marker", patterns[0].Description)
	assert.Equal(t, "cp.tab.1", patterns[1].ID)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "bad yaml",
			data:    "patterns: [",
			wantErr: "parsing patterns YAML",
		},
		{
			name:    "no patterns",
			data:    "patterns: []",
			wantErr: "no patterns found",
		},
		{
			name:    "missing id",
			data:    "patterns:\n  - name: x\n    pattern: abc",
			wantErr: "ID is required",
		},
		{
			name:    "missing name",
			data:    "patterns:\n  - id: cp.x.1\n    pattern: abc",
			wantErr: "name is required",
		},
		{
			name:    "missing regex",
			data:    "patterns:\n  - id: cp.x.1\n    name: x",
			wantErr: "regex is required",
		},
		{
			name:    "duplicate id",
			data:    "patterns:\n  - {id: cp.x.1, name: x, pattern: a}\n  - {id: cp.x.1, name: y, pattern: b}",
			wantErr: "duplicate pattern ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yaml")
	data := "patterns:\n  - {id: cp.x.1, name: x, pattern: abc}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	patterns, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, "cp.x.1", patterns[0].ID)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading patterns file")
}

func TestBuiltin(t *testing.T) {
	patterns, err := Builtin()
	require.NoError(t, err)
	assert.NotEmpty(t, patterns)

	// Builtin patterns must all compile.
	compiled, err := CompileAll(patterns)
	require.NoError(t, err)
	assert.Len(t, compiled, len(patterns))
}
