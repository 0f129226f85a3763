package arena

import (
	"context"
	"fmt"

	"github.com/agora-app/backend/internal/debate"
	"github.com/agora-app/backend/internal/gamification"
	"github.com/agora-app/backend/internal/models"
	"github.com/agora-app/backend/internal/philosophers"
)

// ErrArenaNotFound marks an arena level outside the ladder. Callers
// treat it as an empty state, not a crash.
var ErrArenaNotFound = fmt.Errorf("arena not found")

// progressStore is the slice of Store the service needs.
type progressStore interface {
	RecordAttempt(userID int64, philosopherID string, arenaLevel, score int, passed bool, bestScore int) (*models.ArenaProgress, error)
	GetProgress(userID int64, philosopherID string, arenaLevel int) (*models.ArenaProgress, error)
	ListProgress(userID int64, philosopherID string) ([]models.ArenaProgress, error)
}

type Service struct {
	store  progressStore
	engine *gamification.Service
	judge  debate.Judge
}

func NewService(store progressStore, engine *gamification.Service, judge debate.Judge) *Service {
	return &Service{store: store, engine: engine, judge: judge}
}

// ScoreRound judges one debate argument against the arena's challenge
// and reports the round to the gamification engine.
func (s *Service) ScoreRound(ctx context.Context, userID int64, req models.DebateRoundRequest) (*models.DebateRoundResponse, error) {
	a := ArenaAt(req.TopicID, req.ArenaLevel)
	if a == nil {
		return nil, ErrArenaNotFound
	}
	phil := philosophers.ByID(req.PhilosopherID)
	if phil == nil {
		return nil, fmt.Errorf("unknown philosopher %q", req.PhilosopherID)
	}

	topicName := req.TopicID
	if t := TopicByID(req.TopicID); t != nil {
		topicName = t.Name
	}

	verdict, err := s.judge.ScoreArgument(ctx, phil.Name, topicName, a.Challenge, req.Argument)
	if err != nil {
		return nil, fmt.Errorf("judge round: %w", err)
	}

	result, err := s.engine.OnDebateRoundScored(
		userID,
		verdict.Score,
		req.TotalSpars+1,
		req.TotalPoints+verdict.Score,
		false,
	)
	if err != nil {
		return nil, err
	}

	return &models.DebateRoundResponse{
		Score:        verdict.Score,
		Feedback:     verdict.Feedback,
		Gamification: result,
	}, nil
}

// CompleteSession records a finished arena session. The pass decision
// uses the ladder's pass score against the cumulative session score;
// the progress merge is atomic at the store; milestone checks are
// best-effort and never fail the completion.
func (s *Service) CompleteSession(userID int64, req models.ArenaCompleteRequest) (*models.ArenaCompleteResponse, error) {
	a := ArenaAt(req.TopicID, req.ArenaLevel)
	if a == nil {
		return nil, ErrArenaNotFound
	}

	passed := req.FinalScore >= a.PassScore

	bestScore := req.BestScore
	if bestScore < req.FinalScore {
		bestScore = req.FinalScore
	}

	progress, err := s.store.RecordAttempt(userID, req.PhilosopherID, req.ArenaLevel, req.FinalScore, passed, bestScore)
	if err != nil {
		return nil, err
	}

	resp := &models.ArenaCompleteResponse{
		Arena:    *a,
		Passed:   passed,
		Progress: progress,
	}

	notifs := s.engine.OnArenaSessionCompleted(userID, passed)
	if len(notifs) > 0 {
		resp.Gamification = &models.EventResult{Notifications: notifs}
	}

	return resp, nil
}

// Ladder returns the full ladder for a topic with the user's progress
// against a philosopher folded in.
func (s *Service) Ladder(userID int64, philosopherID, topicID string) ([]models.Arena, map[int]models.ArenaProgress, error) {
	arenas := AllArenas(topicID)

	rows, err := s.store.ListProgress(userID, philosopherID)
	if err != nil {
		return nil, nil, err
	}
	progress := make(map[int]models.ArenaProgress, len(rows))
	for _, p := range rows {
		progress[p.ArenaLevel] = p
	}
	return arenas, progress, nil
}
