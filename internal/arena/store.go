package arena

import (
	"database/sql"
	"fmt"

	"github.com/agora-app/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RecordAttempt merges one completed session into the progress row for
// (user, philosopher, level) in a single statement: the latest score
// overwrites, passed is OR-sticky, best score is max-merged, attempts
// increments by exactly one. Concurrent sessions for the same key
// cannot lose an increment.
func (s *Store) RecordAttempt(userID int64, philosopherID string, arenaLevel, score int, passed bool, bestScore int) (*models.ArenaProgress, error) {
	var p models.ArenaProgress
	err := s.db.QueryRow(
		`INSERT INTO arena_progress (user_id, philosopher_id, arena_level, score, passed, best_score, attempts)
		 VALUES ($1, $2, $3, $4, $5, $6, 1)
		 ON CONFLICT (user_id, philosopher_id, arena_level) DO UPDATE SET
		    score = EXCLUDED.score,
		    passed = arena_progress.passed OR EXCLUDED.passed,
		    best_score = GREATEST(arena_progress.best_score, EXCLUDED.best_score),
		    attempts = arena_progress.attempts + 1,
		    updated_at = NOW()
		 RETURNING user_id, philosopher_id, arena_level, score, passed, best_score, attempts`,
		userID, philosopherID, arenaLevel, score, passed, bestScore,
	).Scan(&p.UserID, &p.PhilosopherID, &p.ArenaLevel, &p.Score, &p.Passed, &p.BestScore, &p.Attempts)
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}
	return &p, nil
}

// GetProgress returns the progress row for an exact key, or nil when
// the user has never attempted that arena.
func (s *Store) GetProgress(userID int64, philosopherID string, arenaLevel int) (*models.ArenaProgress, error) {
	var p models.ArenaProgress
	err := s.db.QueryRow(
		`SELECT user_id, philosopher_id, arena_level, score, passed, best_score, attempts
		 FROM arena_progress
		 WHERE user_id = $1 AND philosopher_id = $2 AND arena_level = $3`,
		userID, philosopherID, arenaLevel,
	).Scan(&p.UserID, &p.PhilosopherID, &p.ArenaLevel, &p.Score, &p.Passed, &p.BestScore, &p.Attempts)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return &p, nil
}

// ListProgress returns all progress rows for a user and philosopher,
// ascending by arena level.
func (s *Store) ListProgress(userID int64, philosopherID string) ([]models.ArenaProgress, error) {
	rows, err := s.db.Query(
		`SELECT user_id, philosopher_id, arena_level, score, passed, best_score, attempts
		 FROM arena_progress
		 WHERE user_id = $1 AND philosopher_id = $2
		 ORDER BY arena_level`,
		userID, philosopherID,
	)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	var progress []models.ArenaProgress
	for rows.Next() {
		var p models.ArenaProgress
		if err := rows.Scan(&p.UserID, &p.PhilosopherID, &p.ArenaLevel, &p.Score, &p.Passed, &p.BestScore, &p.Attempts); err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}
	if progress == nil {
		progress = []models.ArenaProgress{}
	}
	return progress, rows.Err()
}
