package deck

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/wfunc/chaoscards/logger"
)

// LoadSource reads the prompt and response decks from JSON files. Invalid
// entries are skipped; if a file is missing, unreadable, or contributes no
// valid cards, the built-in deck takes its place. Loading never fails.
func LoadSource(promptPath, responsePath string) *Source {
	return &Source{
		Prompts:   loadPrompts(promptPath),
		Responses: loadResponses(responsePath),
	}
}

func loadPrompts(path string) []PromptCard {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Log.Infof("Prompt deck %s unavailable, using built-in deck: %v", path, err)
		return DefaultPrompts
	}

	var raw []PromptCard
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Log.Warnf("Prompt deck %s unreadable, using built-in deck: %v", path, err)
		return DefaultPrompts
	}

	valid := make([]PromptCard, 0, len(raw))
	for _, card := range raw {
		if strings.TrimSpace(card.Text) == "" {
			continue
		}
		if card.Pick == 0 {
			card.Pick = 1
		}
		if card.Pick < 1 {
			continue
		}
		valid = append(valid, card)
	}
	if len(valid) == 0 {
		logger.Log.Warnf("Prompt deck %s has no valid cards, using built-in deck", path)
		return DefaultPrompts
	}
	return valid
}

func loadResponses(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Log.Infof("Response deck %s unavailable, using built-in deck: %v", path, err)
		return DefaultResponses
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Log.Warnf("Response deck %s unreadable, using built-in deck: %v", path, err)
		return DefaultResponses
	}

	valid := make([]string, 0, len(raw))
	for _, text := range raw {
		if strings.TrimSpace(text) == "" {
			continue
		}
		valid = append(valid, text)
	}
	if len(valid) == 0 {
		logger.Log.Warnf("Response deck %s has no valid cards, using built-in deck", path)
		return DefaultResponses
	}
	return valid
}
