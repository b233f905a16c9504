package components

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestElapsed(t *testing.T) {
	assert.Equal(t, 0.0, Elapsed(1500, 1500))
	assert.Equal(t, 1.0, Elapsed(0, 1500))
	assert.InDelta(t, 0.5, Elapsed(150, 300), 1e-9)
	assert.Equal(t, 0.0, Elapsed(10, 0))
	assert.Equal(t, 0.0, Elapsed(2000, 1500))
}

func TestProgressBarWidth(t *testing.T) {
	bar := NewProgressBar("", 0.5, false, 20)
	assert.Equal(t, 20, lipgloss.Width(bar.View()))

	bar = NewProgressBar("", 0.5, true, 30)
	assert.Contains(t, bar.View(), "50%")
}

func TestButtonView(t *testing.T) {
	b := NewButton("space", "Start", false)
	assert.Contains(t, b.View(), "[space] Start")
}
