package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
	}{
		{"0%", 0.0, 10},
		{"50%", 0.5, 10},
		{"100%", 1.0, 10},
		{"over 100% clamps", 1.5, 10},
		{"negative clamps", -0.5, 10},
		{"tiny width clamps to 2", 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.Contains(t, got, "[")
			assert.Contains(t, got, "]")
			assert.Contains(t, got, "%")
		})
	}
}

func TestRenderProgressBlocks(t *testing.T) {
	assert.Contains(t, RenderProgress(0, 4), emptyBlock)
	assert.Contains(t, RenderProgress(1, 4), filledBlock)
	assert.Contains(t, RenderProgress(1, 4), "100%")
	assert.Contains(t, RenderProgress(0, 4), "  0%")
}
