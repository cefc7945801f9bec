package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "NAME"},
		[][]string{
			{"1", "Cement"},
			{"12", "Bricks"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, out, "Cement")
	assert.Contains(t, out, "Bricks")
}

func TestRenderTableEmpty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		progress int
		want     string
	}{
		{0, "0%"},
		{45, "45%"},
		{100, "100%"},
		{150, "100%"},
		{-10, "0%"},
	}

	for _, tt := range tests {
		out := RenderProgress(tt.progress, 10)
		assert.Contains(t, out, tt.want)
		assert.Contains(t, out, "[")
	}

	full := RenderProgress(100, 8)
	assert.Contains(t, full, strings.Repeat("█", 8))
	empty := RenderProgress(0, 8)
	assert.Contains(t, empty, strings.Repeat("░", 8))
}
