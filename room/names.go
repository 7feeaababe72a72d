package room

import (
	"fmt"
	"regexp"
	"strings"
)

const maxNameLen = 24

var spaceRun = regexp.MustCompile(`\s+`)

// cleanName trims, collapses inner whitespace, caps length, and substitutes
// fallback for empty input.
func cleanName(raw, fallback string) string {
	name := spaceRun.ReplaceAllString(strings.TrimSpace(raw), " ")
	if runes := []rune(name); len(runes) > maxNameLen {
		name = strings.TrimSpace(string(runes[:maxNameLen]))
	}
	if name == "" {
		return fallback
	}
	return name
}

// uniqueName resolves desired against the current roster, appending an
// incrementing numeric suffix until the name is unique (case-insensitively).
func uniqueName(players []*Player, desired, fallback string) string {
	base := cleanName(desired, fallback)
	if !nameTaken(players, base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s %d", base, i)
		if !nameTaken(players, candidate) {
			return candidate
		}
	}
}

func nameTaken(players []*Player, name string) bool {
	for _, p := range players {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}
