package service

import "strings"

var DefaultTriggerPhrases = []string{
	"order", "get me", "i want", "food", "hungry",
	"pizza", "burger", "sushi", "chinese", "italian",
	"restaurant", "delivery", "doordash", "uber eats",
	"usual", "lunch", "dinner", "breakfast",
}

// KeywordGate screens utterances with a case-insensitive substring match.
type KeywordGate struct {
	phrases []string
}

func NewKeywordGate(phrases ...string) *KeywordGate {
	if len(phrases) == 0 {
		phrases = DefaultTriggerPhrases
	}
	lowered := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		if phrase = strings.ToLower(strings.TrimSpace(phrase)); phrase != "" {
			lowered = append(lowered, phrase)
		}
	}
	return &KeywordGate{phrases: lowered}
}

func (g *KeywordGate) Matches(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range g.phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
