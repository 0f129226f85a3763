package morality

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/agora-app/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveProfile overwrites the user's profile with the freshly recomputed
// one. Each quiz attempt replaces the record whole.
func (s *Store) SaveProfile(userID int64, p *models.MoralityProfile) error {
	spectrumsJSON, err := json.Marshal(p.Spectrums)
	if err != nil {
		return fmt.Errorf("marshal spectrums: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO morality_profiles (user_id, alignment, alignment_description, spectrums, total_answered, updated_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		    alignment = EXCLUDED.alignment,
		    alignment_description = EXCLUDED.alignment_description,
		    spectrums = EXCLUDED.spectrums,
		    total_answered = EXCLUDED.total_answered,
		    updated_at = NOW()`,
		userID, p.Alignment, p.AlignmentDescription, spectrumsJSON, p.TotalAnswered,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile returns the stored profile, or nil if never scored.
func (s *Store) GetProfile(userID int64) (*models.MoralityProfile, error) {
	var p models.MoralityProfile
	var spectrumsJSON []byte
	err := s.db.QueryRow(
		`SELECT alignment, alignment_description, spectrums, total_answered
		 FROM morality_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.Alignment, &p.AlignmentDescription, &spectrumsJSON, &p.TotalAnswered)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if err := json.Unmarshal(spectrumsJSON, &p.Spectrums); err != nil {
		return nil, fmt.Errorf("decode spectrums: %w", err)
	}
	return &p, nil
}
