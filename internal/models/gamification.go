package models

import "time"

// ── Core Gamification Structs ─────────────────────────────

// XPState is the per-user experience record. Level is always the value
// derived from TotalXP by the leveling table — never stored out of sync.
type XPState struct {
	UserID    int64     `json:"user_id"`
	TotalXP   int64     `json:"total_xp"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StreakState tracks consecutive calendar days with at least one
// qualifying action. LastActivityDate is day-granular (no time of day).
type StreakState struct {
	UserID           int64      `json:"user_id"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date"`
}

type XPEvent struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	EventType string    `json:"event_type"`
	XPAmount  int       `json:"xp_amount"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UnlockedAchievement struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// ── Notifications ─────────────────────────────────────────

// Notification kinds emitted by the gamification engine for the UI layer.
const (
	NotificationLevelUp             = "level_up"
	NotificationPhilosopherUnlocked = "philosopher_unlocked"
	NotificationAchievementUnlocked = "achievement_unlocked"
	NotificationStreakMilestone     = "streak_milestone"
)

// Notification is a single outbound event for the UI layer. Fields are
// populated per kind: level-ups carry Level+Title, philosopher unlocks
// carry Name+Level, achievement unlocks carry Icon+Name+Description,
// streak milestones carry Days.
type Notification struct {
	Kind        string `json:"kind"`
	Title       string `json:"title,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Level       int    `json:"level,omitempty"`
	Days        int    `json:"days,omitempty"`
}

// ── Request Types ─────────────────────────────────────────

type DebateRoundRequest struct {
	PhilosopherID string `json:"philosopher_id"`
	TopicID       string `json:"topic_id"`
	ArenaLevel    int    `json:"arena_level"`
	Argument      string `json:"argument"`
	TotalSpars    int    `json:"total_spars"`
	TotalPoints   int    `json:"total_points"`
}

type ArenaCompleteRequest struct {
	PhilosopherID string `json:"philosopher_id"`
	TopicID       string `json:"topic_id"`
	ArenaLevel    int    `json:"arena_level"`
	FinalScore    int    `json:"final_score"`
	BestScore     int    `json:"best_score"`
}

// ── Response Types ────────────────────────────────────────

// EventResult is returned from every engine event: what was awarded,
// where the user stands now, and what the UI should announce.
type EventResult struct {
	XPAwarded     int            `json:"xp_awarded"`
	TotalXP       int64          `json:"total_xp"`
	Level         int            `json:"level"`
	Notifications []Notification `json:"notifications"`
}

type LevelProgress struct {
	CurrentLevel    int    `json:"current_level"`
	CurrentTitle    string `json:"current_title"`
	NextLevel       int    `json:"next_level,omitempty"`
	XPIntoLevel     int64  `json:"xp_into_level"`
	XPForNextLevel  int64  `json:"xp_for_next_level"`
	PercentComplete int    `json:"percent_complete"`
}

type GamificationResponse struct {
	TotalXP       int64         `json:"total_xp"`
	Level         int           `json:"level"`
	LevelTitle    string        `json:"level_title"`
	Progress      LevelProgress `json:"progress"`
	CurrentStreak int           `json:"current_streak"`
	LongestStreak int           `json:"longest_streak"`
	Achievements  []string      `json:"achievements"`
}
