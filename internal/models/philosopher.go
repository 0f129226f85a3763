package models

// Philosopher is a static roster entry. UnlockLevel is the user level at
// which the philosopher becomes available to debate.
type Philosopher struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Era         string `json:"era"`
	School      string `json:"school"`
	UnlockLevel int    `json:"unlock_level"`
	Unlocked    bool   `json:"unlocked"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	PhilosopherID string `json:"philosopher_id"`
	Reply         string `json:"reply"`
}
