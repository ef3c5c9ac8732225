package charpos

import (
	"testing"

	"github.com/codetrail/charpos/pkg/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChars(t *testing.T) {
	it := Chars[LineCol]("hi\n🦀")

	pos, c, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 'h', c)
	assert.Equal(t, LineCol{Line: 1, Col: 1}, pos)

	_, _, _ = it.Next()
	_, _, _ = it.Next()

	pos, c, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, '🦀', c)
	assert.Equal(t, LineCol{Line: 2, Col: 1}, pos)

	_, _, ok = it.Next()
	assert.False(t, ok)
}

func TestAt(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		byteOffset int
		want       position.LineCol
	}{
		{
			name:       "empty content at offset 0",
			input:      "",
			byteOffset: 0,
			want:       position.LineCol{Line: 1, Col: 1},
		},
		{
			name:       "single line at offset 2",
			input:      "hello",
			byteOffset: 2,
			want:       position.LineCol{Line: 1, Col: 3},
		},
		{
			name:       "multi-line at offset 7",
			input:      "hello\nworld",
			byteOffset: 7,
			want:       position.LineCol{Line: 2, Col: 2},
		},
		{
			name:       "offset at newline",
			input:      "hello\nworld",
			byteOffset: 5,
			want:       position.LineCol{Line: 1, Col: 6},
		},
		{
			name:       "offset beyond content length",
			input:      "hello",
			byteOffset: 100,
			want:       position.LineCol{Line: 1, Col: 6},
		},
		{
			name:       "offset at start of second line",
			input:      "hello\nworld",
			byteOffset: 6,
			want:       position.LineCol{Line: 2, Col: 1},
		},
		{
			name:       "offset inside a multibyte character",
			input:      "a👋b",
			byteOffset: 3,
			want:       position.LineCol{Line: 1, Col: 2},
		},
		{
			name:       "offset after a multibyte character",
			input:      "a👋b",
			byteOffset: 5,
			want:       position.LineCol{Line: 1, Col: 3},
		},
		{
			name:       "offset past trailing newline",
			input:      "ab\n",
			byteOffset: 3,
			want:       position.LineCol{Line: 2, Col: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, At(tt.input, tt.byteOffset))
		})
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(""))
	assert.Equal(t, 5, Count("hello"))
	// 18 scalar values, 30 bytes
	assert.Equal(t, 18, Count("Hello 👋\nWorld 🌏\n🦀🦀"))
}

func TestLast(t *testing.T) {
	pos, c, ok := Last("Hello 👋\nWorld 🌏\n🦀🦀")
	require.True(t, ok)
	assert.Equal(t, '🦀', c)
	assert.Equal(t, 3, pos.Line)
	assert.Equal(t, 2, pos.Col)
	assert.Equal(t, position.Span{Start: 26, End: 30}, pos.Range)

	_, _, ok = Last("")
	assert.False(t, ok)
}
