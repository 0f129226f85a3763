package arena

import (
	"context"
	"fmt"
	"testing"

	"github.com/agora-app/backend/internal/debate"
	"github.com/agora-app/backend/internal/gamification"
	"github.com/agora-app/backend/internal/models"
)

// fakeProgressStore mirrors the SQL merge semantics in memory.
type fakeProgressStore struct {
	rows map[string]*models.ArenaProgress
	fail bool
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{rows: make(map[string]*models.ArenaProgress)}
}

func progressKey(userID int64, philosopherID string, arenaLevel int) string {
	return fmt.Sprintf("%d/%s/%d", userID, philosopherID, arenaLevel)
}

func (f *fakeProgressStore) RecordAttempt(userID int64, philosopherID string, arenaLevel, score int, passed bool, bestScore int) (*models.ArenaProgress, error) {
	if f.fail {
		return nil, fmt.Errorf("store down")
	}
	key := progressKey(userID, philosopherID, arenaLevel)
	p, ok := f.rows[key]
	if !ok {
		p = &models.ArenaProgress{UserID: userID, PhilosopherID: philosopherID, ArenaLevel: arenaLevel}
		f.rows[key] = p
	}
	p.Score = score
	p.Passed = p.Passed || passed
	if bestScore > p.BestScore {
		p.BestScore = bestScore
	}
	p.Attempts++
	out := *p
	return &out, nil
}

func (f *fakeProgressStore) GetProgress(userID int64, philosopherID string, arenaLevel int) (*models.ArenaProgress, error) {
	p, ok := f.rows[progressKey(userID, philosopherID, arenaLevel)]
	if !ok {
		return nil, nil
	}
	out := *p
	return &out, nil
}

func (f *fakeProgressStore) ListProgress(userID int64, philosopherID string) ([]models.ArenaProgress, error) {
	var out []models.ArenaProgress
	for level := 1; level <= MaxLevel; level++ {
		if p, ok := f.rows[progressKey(userID, philosopherID, level)]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

// fakeEngineStore backs a real gamification engine for wiring tests.
type fakeEngineStore struct {
	xp           map[int64]*models.XPState
	streaks      map[int64]*models.StreakState
	achievements map[int64][]string
	passedArenas int
}

func newFakeEngineStore() *fakeEngineStore {
	return &fakeEngineStore{
		xp:           make(map[int64]*models.XPState),
		streaks:      make(map[int64]*models.StreakState),
		achievements: make(map[int64][]string),
	}
}

func (f *fakeEngineStore) GetOrCreateXP(userID int64) (*models.XPState, error) {
	if f.xp[userID] == nil {
		f.xp[userID] = &models.XPState{UserID: userID, Level: 1}
	}
	c := *f.xp[userID]
	return &c, nil
}

func (f *fakeEngineStore) UpdateXP(userID int64, totalXP int64, level int) error {
	f.xp[userID] = &models.XPState{UserID: userID, TotalXP: totalXP, Level: level}
	return nil
}

func (f *fakeEngineStore) GetOrCreateStreak(userID int64) (*models.StreakState, error) {
	if f.streaks[userID] == nil {
		f.streaks[userID] = &models.StreakState{UserID: userID}
	}
	c := *f.streaks[userID]
	return &c, nil
}

func (f *fakeEngineStore) UpdateStreak(userID int64, st *models.StreakState) error {
	c := *st
	f.streaks[userID] = &c
	return nil
}

func (f *fakeEngineStore) GetUnlockedAchievementIDs(userID int64) ([]string, error) {
	return f.achievements[userID], nil
}

func (f *fakeEngineStore) InsertUnlockedAchievement(userID int64, achievementID string) error {
	f.achievements[userID] = append(f.achievements[userID], achievementID)
	return nil
}

func (f *fakeEngineStore) GetPassedArenaCount(userID int64) (int, error) {
	return f.passedArenas, nil
}

func (f *fakeEngineStore) CountDilemmaAnswers(userID int64) (int, error) {
	return 0, nil
}

func (f *fakeEngineStore) LogXPEvent(userID int64, eventType string, xpAmount int, metadata map[string]interface{}) error {
	return nil
}

// fakeJudge returns a fixed verdict.
type fakeJudge struct {
	score int
	err   error
}

func (f *fakeJudge) ScoreArgument(ctx context.Context, philosopherName, topicName, challenge, argument string) (*debate.RoundVerdict, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &debate.RoundVerdict{Score: f.score, Feedback: "solid reasoning"}, nil
}

func newTestArenaService(store *fakeProgressStore, judge debate.Judge) *Service {
	engine := gamification.NewService(newFakeEngineStore())
	return NewService(store, engine, judge)
}

// ── ScoreRound ──────────────────────────────────────────

func TestScoreRound(t *testing.T) {
	store := newFakeProgressStore()
	svc := newTestArenaService(store, &fakeJudge{score: 40})

	resp, err := svc.ScoreRound(context.Background(), 1, models.DebateRoundRequest{
		PhilosopherID: "socrates",
		TopicID:       "ethics",
		ArenaLevel:    1,
		Argument:      "The unexamined life is not worth living.",
		TotalSpars:    0,
		TotalPoints:   0,
	})
	if err != nil {
		t.Fatalf("ScoreRound: %v", err)
	}
	if resp.Score != 40 || resp.Feedback == "" {
		t.Errorf("verdict = (%d, %q)", resp.Score, resp.Feedback)
	}
	// base 5 + 40/4 = 15
	if resp.Gamification == nil || resp.Gamification.XPAwarded != 15 {
		t.Errorf("gamification = %+v, want 15 XP awarded", resp.Gamification)
	}
}

func TestScoreRoundInvalidLevel(t *testing.T) {
	svc := newTestArenaService(newFakeProgressStore(), &fakeJudge{score: 40})

	for _, level := range []int{0, 101} {
		req := models.DebateRoundRequest{PhilosopherID: "socrates", TopicID: "ethics", ArenaLevel: level}
		if _, err := svc.ScoreRound(context.Background(), 1, req); err != ErrArenaNotFound {
			t.Errorf("level %d: err = %v, want ErrArenaNotFound", level, err)
		}
	}
}

func TestScoreRoundOpaqueTopic(t *testing.T) {
	svc := newTestArenaService(newFakeProgressStore(), &fakeJudge{score: 20})

	// Ids outside the topic registry still have a ladder to debate on.
	resp, err := svc.ScoreRound(context.Background(), 1, models.DebateRoundRequest{
		PhilosopherID: "socrates",
		TopicID:       "x",
		ArenaLevel:    1,
		Argument:      "Virtue is knowledge.",
	})
	if err != nil {
		t.Fatalf("ScoreRound: %v", err)
	}
	if resp.Score != 20 {
		t.Errorf("Score = %d, want 20", resp.Score)
	}
}

func TestScoreRoundUnknownPhilosopher(t *testing.T) {
	svc := newTestArenaService(newFakeProgressStore(), &fakeJudge{score: 40})

	req := models.DebateRoundRequest{PhilosopherID: "hegel", TopicID: "ethics", ArenaLevel: 1}
	if _, err := svc.ScoreRound(context.Background(), 1, req); err == nil {
		t.Error("unknown philosopher should fail")
	}
}

func TestScoreRoundJudgeFailure(t *testing.T) {
	svc := newTestArenaService(newFakeProgressStore(), &fakeJudge{err: fmt.Errorf("model timeout")})

	req := models.DebateRoundRequest{PhilosopherID: "socrates", TopicID: "ethics", ArenaLevel: 1, Argument: "x"}
	if _, err := svc.ScoreRound(context.Background(), 1, req); err == nil {
		t.Error("judge failure should surface")
	}
}

// ── CompleteSession ─────────────────────────────────────

func TestCompleteSessionPassFail(t *testing.T) {
	// Level 1 pass score is 52.
	tests := []struct {
		finalScore int
		passed     bool
	}{
		{51, false},
		{52, true},
		{150, true},
	}

	for _, tt := range tests {
		store := newFakeProgressStore()
		svc := newTestArenaService(store, &fakeJudge{})

		resp, err := svc.CompleteSession(1, models.ArenaCompleteRequest{
			PhilosopherID: "socrates",
			TopicID:       "ethics",
			ArenaLevel:    1,
			FinalScore:    tt.finalScore,
			BestScore:     0,
		})
		if err != nil {
			t.Fatalf("CompleteSession(%d): %v", tt.finalScore, err)
		}
		if resp.Passed != tt.passed {
			t.Errorf("score %d: Passed = %v, want %v", tt.finalScore, resp.Passed, tt.passed)
		}
		if resp.Progress.Attempts != 1 || resp.Progress.Score != tt.finalScore {
			t.Errorf("score %d: progress = %+v", tt.finalScore, resp.Progress)
		}
	}
}

func TestCompleteSessionMergeSemantics(t *testing.T) {
	store := newFakeProgressStore()
	svc := newTestArenaService(store, &fakeJudge{})

	// Existing record: passed once with best 80 over 2 attempts.
	store.rows[progressKey(1, "socrates", 1)] = &models.ArenaProgress{
		UserID: 1, PhilosopherID: "socrates", ArenaLevel: 1,
		Score: 80, Passed: true, BestScore: 80, Attempts: 2,
	}

	// A later failing session must not unset passed or lower best score.
	resp, err := svc.CompleteSession(1, models.ArenaCompleteRequest{
		PhilosopherID: "socrates",
		TopicID:       "ethics",
		ArenaLevel:    1,
		FinalScore:    40,
		BestScore:     60,
	})
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}

	p := resp.Progress
	if !p.Passed {
		t.Error("passed flag was unset by a failing session")
	}
	if p.BestScore != 80 {
		t.Errorf("BestScore = %d, want 80 preserved", p.BestScore)
	}
	if p.Score != 40 {
		t.Errorf("Score = %d, want latest 40", p.Score)
	}
	if p.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", p.Attempts)
	}
}

func TestCompleteSessionBestScoreTakesFinal(t *testing.T) {
	store := newFakeProgressStore()
	svc := newTestArenaService(store, &fakeJudge{})

	resp, err := svc.CompleteSession(1, models.ArenaCompleteRequest{
		PhilosopherID: "socrates",
		TopicID:       "ethics",
		ArenaLevel:    1,
		FinalScore:    90,
		BestScore:     70,
	})
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if resp.Progress.BestScore != 90 {
		t.Errorf("BestScore = %d, want final score 90", resp.Progress.BestScore)
	}
}

func TestCompleteSessionInvalidLevel(t *testing.T) {
	svc := newTestArenaService(newFakeProgressStore(), &fakeJudge{})

	_, err := svc.CompleteSession(1, models.ArenaCompleteRequest{TopicID: "ethics", ArenaLevel: 0})
	if err != ErrArenaNotFound {
		t.Errorf("err = %v, want ErrArenaNotFound", err)
	}
}

func TestCompleteSessionStoreFailure(t *testing.T) {
	store := newFakeProgressStore()
	store.fail = true
	svc := newTestArenaService(store, &fakeJudge{})

	_, err := svc.CompleteSession(1, models.ArenaCompleteRequest{
		PhilosopherID: "socrates", TopicID: "ethics", ArenaLevel: 1, FinalScore: 100,
	})
	if err == nil {
		t.Error("store failure should surface")
	}
}

// ── Ladder ──────────────────────────────────────────────

func TestLadder(t *testing.T) {
	store := newFakeProgressStore()
	svc := newTestArenaService(store, &fakeJudge{})

	store.rows[progressKey(1, "socrates", 3)] = &models.ArenaProgress{
		UserID: 1, PhilosopherID: "socrates", ArenaLevel: 3, Score: 60, Passed: true, BestScore: 60, Attempts: 1,
	}

	arenas, progress, err := svc.Ladder(1, "socrates", "ethics")
	if err != nil {
		t.Fatalf("Ladder: %v", err)
	}
	if len(arenas) != MaxLevel {
		t.Errorf("len(arenas) = %d, want %d", len(arenas), MaxLevel)
	}
	if p, ok := progress[3]; !ok || !p.Passed {
		t.Errorf("progress[3] = %+v, want passed record", progress[3])
	}
	if _, ok := progress[4]; ok {
		t.Error("progress[4] should be absent")
	}

	// Opaque topic ids get the same full ladder.
	arenas, _, err = svc.Ladder(1, "socrates", "x")
	if err != nil || len(arenas) != MaxLevel {
		t.Errorf("Ladder(x) = %d arenas, err %v; want %d", len(arenas), err, MaxLevel)
	}
}
