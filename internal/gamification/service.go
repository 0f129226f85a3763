package gamification

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/agora-app/backend/internal/models"
	"github.com/agora-app/backend/internal/philosophers"
)

// XP amounts awarded per event.
const (
	DilemmaXP     = 10 // per answered dilemma
	SparBaseXP    = 5  // per scored debate round, before the score share
	StreakBonusXP = 5  // per consecutive-day streak continuation
)

// sparScoreDivisor converts a round score into its XP share.
const sparScoreDivisor = 4.0

// Store is the persistence surface the engine needs. Reads return
// zero-default records for users that have no row yet.
type Store interface {
	GetOrCreateXP(userID int64) (*models.XPState, error)
	UpdateXP(userID int64, totalXP int64, level int) error
	GetOrCreateStreak(userID int64) (*models.StreakState, error)
	UpdateStreak(userID int64, st *models.StreakState) error
	GetUnlockedAchievementIDs(userID int64) ([]string, error)
	InsertUnlockedAchievement(userID int64, achievementID string) error
	GetPassedArenaCount(userID int64) (int, error)
	CountDilemmaAnswers(userID int64) (int, error)
	LogXPEvent(userID int64, eventType string, xpAmount int, metadata map[string]interface{}) error
}

// Service is the gamification engine. It re-reads state per operation
// and persists after each mutation; it holds no cross-request state.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// ── XP ──────────────────────────────────────────────────

// AddXP adds amount to the user's total, recomputes the level, and
// persists both. A level increase emits a level-up notification plus
// one unlock notification per philosopher whose unlock level falls in
// (previousLevel, newLevel], ascending.
func (s *Service) AddXP(userID int64, amount int) (int64, []models.Notification, error) {
	xp, err := s.store.GetOrCreateXP(userID)
	if err != nil {
		return 0, nil, fmt.Errorf("get xp: %w", err)
	}

	newTotal := xp.TotalXP + int64(amount)
	newLevel := LevelFor(newTotal).Level

	if err := s.store.UpdateXP(userID, newTotal, newLevel); err != nil {
		return 0, nil, fmt.Errorf("update xp: %w", err)
	}

	var notifs []models.Notification
	if newLevel > xp.Level && xp.Level > 0 {
		notifs = append(notifs, models.Notification{
			Kind:  models.NotificationLevelUp,
			Level: newLevel,
			Title: TitleFor(newLevel),
		})
		for _, p := range philosophers.UnlockedBetween(xp.Level, newLevel) {
			notifs = append(notifs, models.Notification{
				Kind:  models.NotificationPhilosopherUnlocked,
				Name:  p.Name,
				Level: p.UnlockLevel,
			})
		}
	}

	return newTotal, notifs, nil
}

// ── Streak ──────────────────────────────────────────────

// RecordActivity marks today as active. Called at most effectively once
// per calendar day — a second call on the same day is a no-op. A
// consecutive day extends the streak and awards the streak bonus;
// anything else resets the streak to 1.
func (s *Service) RecordActivity(userID int64) ([]models.Notification, error) {
	streak, err := s.store.GetOrCreateStreak(userID)
	if err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}

	today := s.now().UTC().Truncate(24 * time.Hour)

	isConsecutive := false
	if streak.LastActivityDate != nil {
		last := streak.LastActivityDate.UTC().Truncate(24 * time.Hour)
		if last.Equal(today) {
			return nil, nil
		}
		isConsecutive = last.Equal(today.AddDate(0, 0, -1))
	}

	if isConsecutive {
		streak.CurrentStreak++
	} else {
		streak.CurrentStreak = 1
	}
	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastActivityDate = &today

	if err := s.store.UpdateStreak(userID, streak); err != nil {
		return nil, fmt.Errorf("update streak: %w", err)
	}

	var notifs []models.Notification
	if isConsecutive && streak.CurrentStreak > 1 {
		_, bonusNotifs, err := s.AddXP(userID, StreakBonusXP)
		if err != nil {
			return notifs, fmt.Errorf("streak bonus: %w", err)
		}
		notifs = append(notifs, bonusNotifs...)
		s.logXPEvent(userID, "streak_bonus", StreakBonusXP, map[string]interface{}{
			"streak": streak.CurrentStreak,
		})
	}

	unlocked := s.unlockedSet(userID)
	for _, m := range StreakAchievements {
		if streak.CurrentStreak == m.Days {
			notifs = append(notifs, models.Notification{
				Kind: models.NotificationStreakMilestone,
				Days: m.Days,
			})
		}
		s.checkAndUnlock(userID, m.ID, streak.CurrentStreak >= m.Days, unlocked, &notifs)
	}

	return notifs, nil
}

// ── Achievements ────────────────────────────────────────

// unlockedSet loads the user's unlocked achievement ids once per check
// group. Returns nil when the read fails; checks against a nil set are
// skipped and retried on the next qualifying event.
func (s *Service) unlockedSet(userID int64) map[string]bool {
	ids, err := s.store.GetUnlockedAchievementIDs(userID)
	if err != nil {
		log.Printf("[gamification] achievement check for user %d skipped: %v", userID, err)
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// checkAndUnlock records an achievement if the condition holds and it
// is not already in the unlocked set. Persistence failures here are
// swallowed — the unlock retries on the next qualifying event.
func (s *Service) checkAndUnlock(userID int64, achievementID string, condition bool, unlocked map[string]bool, notifs *[]models.Notification) {
	if !condition || unlocked == nil || unlocked[achievementID] {
		return
	}

	// Duplicate inserts are a no-op at the store; a concurrent unlock
	// is treated as success.
	if err := s.store.InsertUnlockedAchievement(userID, achievementID); err != nil {
		log.Printf("[gamification] failed to unlock %q for user %d: %v", achievementID, userID, err)
		return
	}
	unlocked[achievementID] = true

	def, ok := Achievements[achievementID]
	if !ok {
		return
	}
	*notifs = append(*notifs, models.Notification{
		Kind:        models.NotificationAchievementUnlocked,
		Name:        def.Name,
		Description: def.Description,
		Icon:        def.Icon,
	})
}

// ── Events ──────────────────────────────────────────────

// OnDilemmaAnswered awards the per-answer XP, records the day's
// activity, and evaluates dilemma count milestones against the user's
// lifetime answer count from the event log.
func (s *Service) OnDilemmaAnswered(userID int64) (*models.EventResult, error) {
	totalAnswered := 0
	if n, err := s.store.CountDilemmaAnswers(userID); err != nil {
		log.Printf("[gamification] dilemma count for user %d unavailable: %v", userID, err)
	} else {
		totalAnswered = n + 1
	}

	_, notifs, err := s.AddXP(userID, DilemmaXP)
	if err != nil {
		return nil, err
	}
	s.logXPEvent(userID, "dilemma_answered", DilemmaXP, map[string]interface{}{
		"total_answered": totalAnswered,
	})

	streakNotifs, err := s.RecordActivity(userID)
	if err != nil {
		return nil, err
	}
	notifs = append(notifs, streakNotifs...)

	unlocked := s.unlockedSet(userID)
	s.checkAndUnlock(userID, "first_dilemma", totalAnswered >= 1, unlocked, &notifs)
	s.checkAndUnlock(userID, "dilemma_10", totalAnswered >= 10, unlocked, &notifs)
	s.checkAndUnlock(userID, "dilemma_30", totalAnswered >= 30, unlocked, &notifs)
	s.checkAndUnlock(userID, "dilemma_50", totalAnswered >= 50, unlocked, &notifs)
	s.checkAndUnlock(userID, "dilemma_100", totalAnswered >= 100, unlocked, &notifs)

	return s.eventResult(userID, DilemmaXP, notifs), nil
}

// OnDebateRoundScored awards round XP (base plus a share of the score),
// records activity, and evaluates spar, point, and — when the round
// passed an arena — arena milestones.
func (s *Service) OnDebateRoundScored(userID int64, roundScore, totalSpars, totalPoints int, arenaPassed bool) (*models.EventResult, error) {
	awarded := SparBaseXP + int(math.Round(float64(roundScore)/sparScoreDivisor))

	_, notifs, err := s.AddXP(userID, awarded)
	if err != nil {
		return nil, err
	}
	s.logXPEvent(userID, "spar_round", awarded, map[string]interface{}{
		"round_score":  roundScore,
		"total_spars":  totalSpars,
		"total_points": totalPoints,
	})

	streakNotifs, err := s.RecordActivity(userID)
	if err != nil {
		return nil, err
	}
	notifs = append(notifs, streakNotifs...)

	unlocked := s.unlockedSet(userID)
	s.checkAndUnlock(userID, "first_spar", totalSpars >= 1, unlocked, &notifs)
	s.checkAndUnlock(userID, "spar_5", totalSpars >= 5, unlocked, &notifs)
	s.checkAndUnlock(userID, "spar_20", totalSpars >= 20, unlocked, &notifs)
	s.checkAndUnlock(userID, "points_100", totalPoints >= 100, unlocked, &notifs)
	s.checkAndUnlock(userID, "points_500", totalPoints >= 500, unlocked, &notifs)

	if arenaPassed {
		s.checkArenaMilestones(userID, unlocked, &notifs)
	}

	return s.eventResult(userID, awarded, notifs), nil
}

// OnArenaSessionCompleted evaluates arena milestones after a finished
// session. Best-effort: milestone failures never surface.
func (s *Service) OnArenaSessionCompleted(userID int64, passed bool) []models.Notification {
	var notifs []models.Notification
	if passed {
		s.checkArenaMilestones(userID, s.unlockedSet(userID), &notifs)
	}
	return notifs
}

func (s *Service) checkArenaMilestones(userID int64, unlocked map[string]bool, notifs *[]models.Notification) {
	passedCount, err := s.store.GetPassedArenaCount(userID)
	if err != nil {
		log.Printf("[gamification] arena milestone check for user %d skipped: %v", userID, err)
		return
	}
	s.checkAndUnlock(userID, "arena_1", passedCount >= 1, unlocked, notifs)
	s.checkAndUnlock(userID, "arena_10", passedCount >= 10, unlocked, notifs)
}

// ── State ───────────────────────────────────────────────

func (s *Service) GetGamification(userID int64) (*models.GamificationResponse, error) {
	xp, err := s.store.GetOrCreateXP(userID)
	if err != nil {
		return nil, err
	}
	streak, err := s.store.GetOrCreateStreak(userID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.store.GetUnlockedAchievementIDs(userID)
	if err != nil {
		achievements = []string{}
	}
	if achievements == nil {
		achievements = []string{}
	}

	return &models.GamificationResponse{
		TotalXP:       xp.TotalXP,
		Level:         xp.Level,
		LevelTitle:    TitleFor(xp.Level),
		Progress:      ProgressFor(xp.TotalXP),
		CurrentStreak: streak.CurrentStreak,
		LongestStreak: streak.LongestStreak,
		Achievements:  achievements,
	}, nil
}

// logXPEvent writes to the XP event log. Best-effort: a failed write is
// logged and the event proceeds.
func (s *Service) logXPEvent(userID int64, eventType string, xpAmount int, metadata map[string]interface{}) {
	if err := s.store.LogXPEvent(userID, eventType, xpAmount, metadata); err != nil {
		log.Printf("[gamification] xp event %q for user %d not logged: %v", eventType, userID, err)
	}
}

// eventResult re-reads XP so the caller sees totals that include any
// streak bonus awarded during the event.
func (s *Service) eventResult(userID int64, awarded int, notifs []models.Notification) *models.EventResult {
	result := &models.EventResult{XPAwarded: awarded, Notifications: notifs}
	if result.Notifications == nil {
		result.Notifications = []models.Notification{}
	}
	if xp, err := s.store.GetOrCreateXP(userID); err == nil {
		result.TotalXP = xp.TotalXP
		result.Level = xp.Level
	}
	return result
}
