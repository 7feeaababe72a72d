package room

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"passthrough", "Alice", "Alice"},
		{"trims", "  Bob  ", "Bob"},
		{"collapses runs", "Ann \t  Marie", "Ann Marie"},
		{"empty falls back", "", "Player"},
		{"whitespace falls back", " \t\n ", "Player"},
		{"caps at 24 runes", strings.Repeat("x", 30), strings.Repeat("x", 24)},
		{"cap counts runes not bytes", strings.Repeat("é", 30), strings.Repeat("é", 24)},
		{"cap then trim", strings.Repeat("x", 23) + " y", strings.Repeat("x", 23)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanName(tt.raw, "Player"))
		})
	}
}

func TestUniqueName(t *testing.T) {
	roster := []*Player{
		{Name: "Alice"},
		{Name: "Alice 2"},
		{Name: "bob"},
	}

	assert.Equal(t, "Carol", uniqueName(roster, "Carol", "Player"))
	assert.Equal(t, "Alice 3", uniqueName(roster, "Alice", "Player"), "suffix skips taken variants")
	assert.Equal(t, "Bob 2", uniqueName(roster, "Bob", "Player"), "collision check is case-insensitive")
	assert.Equal(t, "Player", uniqueName(roster, "   ", "Player"))
}
