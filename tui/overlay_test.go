package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestOverlay(t *testing.T) {
	bg := "abcdef\nghijkl\nmnopqr"
	tests := []struct {
		name string
		fg   string
		x, y int
		want string
	}{
		{"inside", "XY", 2, 1, "abcdef\nghXYkl\nmnopqr"},
		{"two lines", "XY\nZW", 0, 1, "abcdef\nXYijkl\nZWopqr"},
		{"clipped right", "XY", 5, 0, "abcdeX\nghijkl\nmnopqr"},
		{"clipped left", "XY", -1, 2, "abcdef\nghijkl\nYnopqr"},
		{"past the right edge", "XY", 6, 0, bg},
		{"below", "XY", 0, 3, bg},
		{"above", "XY\nZW", 1, -1, "aZWdef\nghijkl\nmnopqr"},
		{"empty", "", 1, 1, bg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ansi.Strip(Overlay(bg, tt.fg, tt.x, tt.y)))
		})
	}
}

func TestOverlayKeepsStyledBackgroundWidth(t *testing.T) {
	bg := lipgloss.NewStyle().Bold(true).Render("0123456789")
	out := Overlay(bg, "ab", 3, 0)
	assert.Equal(t, "012ab56789", ansi.Strip(out))
	assert.Equal(t, 10, ansi.StringWidth(out))
}
