package domain

import (
	"strings"
	"time"
)

type TranscriptSegment struct {
	Text      string  `json:"text"`
	Speaker   string  `json:"speaker"`
	SpeakerID int     `json:"speaker_id"`
	IsUser    bool    `json:"is_user"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
}

type TranscriptWebhook struct {
	SessionID string              `json:"session_id"`
	Segments  []TranscriptSegment `json:"segments"`
}

// UserText joins the user's own segments with single spaces.
func (w TranscriptWebhook) UserText() string {
	parts := make([]string, 0, len(w.Segments))
	for _, segment := range w.Segments {
		if segment.IsUser {
			parts = append(parts, segment.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

type Memory struct {
	ID                 string              `json:"id"`
	CreatedAt          string              `json:"created_at"`
	StartedAt          string              `json:"started_at,omitempty"`
	FinishedAt         string              `json:"finished_at,omitempty"`
	Transcript         string              `json:"transcript"`
	TranscriptSegments []TranscriptSegment `json:"transcript_segments"`
}

type MemoryWebhook struct {
	UID    string `json:"uid"`
	Memory Memory `json:"memory"`
}

type OutcomeStatus string

const (
	OutcomeNoSpeech     OutcomeStatus = "no_speech"
	OutcomeNoIntent     OutcomeStatus = "no_intent"
	OutcomeNoPrevious   OutcomeStatus = "no_previous_order"
	OutcomeSuccess      OutcomeStatus = "success"
	OutcomeError        OutcomeStatus = "error"
	OutcomeNoTranscript OutcomeStatus = "no_transcript"
)

// Outcome is the result of one pipeline cycle.
type Outcome struct {
	Status        OutcomeStatus `json:"status"`
	Message       string        `json:"message"`
	Order         *OrderIntent  `json:"order,omitempty"`
	Result        *OrderResult  `json:"result,omitempty"`
	PriceEstimate string        `json:"price_estimate,omitempty"`
	Summary       string        `json:"summary,omitempty"`
}

type PreferencesOutcome struct {
	Status      OutcomeStatus `json:"status"`
	Preferences *Preferences  `json:"preferences,omitempty"`
}

// OrderEvent is published after every placement.
type OrderEvent struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	UID         string      `json:"uid"`
	Restaurant  string      `json:"restaurant"`
	FoodItem    string      `json:"food_item"`
	Status      OrderStatus `json:"status"`
	DeepLink    string      `json:"deep_link,omitempty"`
	TrackingURL string      `json:"tracking_url,omitempty"`
	QuickOrder  bool        `json:"quick_order"`
	Timestamp   time.Time   `json:"timestamp"`
}

type Notification struct {
	UID     string `json:"uid"`
	Title   string `json:"title"`
	Message string `json:"message"`
}
