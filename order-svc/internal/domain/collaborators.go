package domain

import "strings"

// CompletionRequest is a single-turn prompt for the language model.
type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

type BrowseRequest struct {
	Command  string `json:"cmd"`
	URL      string `json:"url"`
	MaxSteps int    `json:"max_steps"`
}

type BrowseResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	URL       string `json:"url"`
	SessionID string `json:"session_id,omitempty"`
}

// Completed reports whether the automation signalled that it finished.
func (r *BrowseResponse) Completed() bool {
	if r == nil {
		return false
	}
	switch strings.ToUpper(strings.TrimSpace(r.Status)) {
	case "DONE", "COMPLETED", "SUCCESS":
		return true
	}
	return false
}
