package models

// ── Dilemmas ──────────────────────────────────────────────

// DilemmaChoice carries signed weights on the five ethical spectrums.
// A spectrum absent from the map contributes nothing for that choice.
type DilemmaChoice struct {
	Text    string             `json:"text"`
	Weights map[string]float64 `json:"weights"`
}

type Dilemma struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Scenario string          `json:"scenario"`
	Choices  []DilemmaChoice `json:"choices"`
}

// DilemmaAnswer references a dilemma and the index of the chosen option.
type DilemmaAnswer struct {
	DilemmaID   string `json:"dilemma_id"`
	ChoiceIndex int    `json:"choice_index"`
}

// ── Morality Profile ──────────────────────────────────────

// MoralityProfile is the recomputed result of scoring a complete answer
// set. Spectrum values are clamped to [-1, 1].
type MoralityProfile struct {
	Alignment            string             `json:"alignment"`
	AlignmentDescription string             `json:"alignment_description"`
	Spectrums            map[string]float64 `json:"spectrums"`
	TotalAnswered        int                `json:"total_answered"`
}

// ── Request / Response Types ──────────────────────────────

type ScoreDilemmasRequest struct {
	Answers []DilemmaAnswer `json:"answers"`
}

type ScoreDilemmasResponse struct {
	Profile      MoralityProfile `json:"profile"`
	Gamification *EventResult    `json:"gamification,omitempty"`
}
