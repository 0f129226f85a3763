package gamification

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/agora-app/backend/internal/models"
)

// SQLStore is the Postgres-backed Store.
type SQLStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// ── XP ──────────────────────────────────────────────────

func (s *SQLStore) GetOrCreateXP(userID int64) (*models.XPState, error) {
	_, err := s.db.Exec(
		`INSERT INTO user_xp (user_id) VALUES ($1)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert xp: %w", err)
	}

	var xp models.XPState
	err = s.db.QueryRow(
		`SELECT user_id, total_xp, level, created_at, updated_at
		 FROM user_xp WHERE user_id = $1`,
		userID,
	).Scan(&xp.UserID, &xp.TotalXP, &xp.Level, &xp.CreatedAt, &xp.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get xp: %w", err)
	}
	return &xp, nil
}

func (s *SQLStore) UpdateXP(userID int64, totalXP int64, level int) error {
	_, err := s.db.Exec(
		`UPDATE user_xp SET total_xp = $2, level = $3, updated_at = NOW()
		 WHERE user_id = $1`,
		userID, totalXP, level,
	)
	return err
}

// ── Streak ──────────────────────────────────────────────

func (s *SQLStore) GetOrCreateStreak(userID int64) (*models.StreakState, error) {
	_, err := s.db.Exec(
		`INSERT INTO user_streaks (user_id) VALUES ($1)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert streak: %w", err)
	}

	var st models.StreakState
	err = s.db.QueryRow(
		`SELECT user_id, current_streak, longest_streak, last_activity_date
		 FROM user_streaks WHERE user_id = $1`,
		userID,
	).Scan(&st.UserID, &st.CurrentStreak, &st.LongestStreak, &st.LastActivityDate)
	if err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}
	return &st, nil
}

func (s *SQLStore) UpdateStreak(userID int64, st *models.StreakState) error {
	// Conditional on the stored date so two same-day requests cannot
	// both count: the loser's update matches zero rows.
	_, err := s.db.Exec(
		`UPDATE user_streaks SET
		    current_streak = $2, longest_streak = $3, last_activity_date = $4,
		    updated_at = NOW()
		 WHERE user_id = $1
		   AND (last_activity_date IS NULL OR last_activity_date < $4)`,
		userID, st.CurrentStreak, st.LongestStreak, st.LastActivityDate,
	)
	return err
}

// ── Achievements ────────────────────────────────────────

func (s *SQLStore) GetUnlockedAchievementIDs(userID int64) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT achievement_id FROM unlocked_achievements
		 WHERE user_id = $1 ORDER BY unlocked_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get achievements: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, rows.Err()
}

func (s *SQLStore) InsertUnlockedAchievement(userID int64, achievementID string) error {
	_, err := s.db.Exec(
		`INSERT INTO unlocked_achievements (user_id, achievement_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, achievement_id) DO NOTHING`,
		userID, achievementID,
	)
	return err
}

// ── Arena Counts ────────────────────────────────────────

func (s *SQLStore) GetPassedArenaCount(userID int64) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM arena_progress WHERE user_id = $1 AND passed = TRUE`,
		userID,
	).Scan(&count)
	return count, err
}

// CountDilemmaAnswers returns the user's lifetime answered-dilemma
// count from the event log.
func (s *SQLStore) CountDilemmaAnswers(userID int64) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM xp_events WHERE user_id = $1 AND event_type = 'dilemma_answered'`,
		userID,
	).Scan(&count)
	return count, err
}

// ── XP Event Log ────────────────────────────────────────

func (s *SQLStore) LogXPEvent(userID int64, eventType string, xpAmount int, metadata map[string]interface{}) error {
	var metaJSON *string
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err == nil {
			str := string(b)
			metaJSON = &str
		}
	}
	_, err := s.db.Exec(
		`INSERT INTO xp_events (user_id, event_type, xp_amount, metadata)
		 VALUES ($1, $2, $3, $4)`,
		userID, eventType, xpAmount, metaJSON,
	)
	return err
}
