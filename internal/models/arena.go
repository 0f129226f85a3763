package models

// Arena is one rung of the 100-level debate ladder for a topic.
// Derived on demand from (topic, level) — never persisted.
type Arena struct {
	Level     int    `json:"level"`
	Tier      int    `json:"tier"`
	TierName  string `json:"tier_name"`
	PassScore int    `json:"pass_score"`
	Rounds    int    `json:"rounds"`
	Challenge string `json:"challenge"`
}

// ArenaProgress is the per (user, philosopher, arena level) attempt
// record. Passed is sticky once true; BestScore never decreases.
type ArenaProgress struct {
	UserID        int64  `json:"user_id"`
	PhilosopherID string `json:"philosopher_id"`
	ArenaLevel    int    `json:"arena_level"`
	Score         int    `json:"score"`
	Passed        bool   `json:"passed"`
	BestScore     int    `json:"best_score"`
	Attempts      int    `json:"attempts"`
}

type ArenaCompleteResponse struct {
	Arena        Arena          `json:"arena"`
	Passed       bool           `json:"passed"`
	Progress     *ArenaProgress `json:"progress"`
	Gamification *EventResult   `json:"gamification,omitempty"`
}

type DebateRoundResponse struct {
	Score        int          `json:"score"`
	Feedback     string       `json:"feedback"`
	Gamification *EventResult `json:"gamification,omitempty"`
}
