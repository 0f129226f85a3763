package gamification

import "github.com/agora-app/backend/internal/models"

// LevelEntry maps a cumulative XP threshold to a level and title.
type LevelEntry struct {
	Level       int
	XPThreshold int64
	Title       string
}

// Levels is the static leveling table, ascending by level. Thresholds
// are strictly increasing above level 1.
var Levels = []LevelEntry{
	{Level: 1, XPThreshold: 0, Title: "Novice Thinker"},
	{Level: 2, XPThreshold: 50, Title: "Curious Mind"},
	{Level: 3, XPThreshold: 150, Title: "Apprentice"},
	{Level: 4, XPThreshold: 300, Title: "Dialectician"},
	{Level: 5, XPThreshold: 500, Title: "Rhetorician"},
	{Level: 6, XPThreshold: 800, Title: "Philosopher I"},
	{Level: 7, XPThreshold: 1200, Title: "Philosopher II"},
	{Level: 8, XPThreshold: 1800, Title: "Philosopher III"},
	{Level: 9, XPThreshold: 2500, Title: "Sage"},
	{Level: 10, XPThreshold: 3500, Title: "Grand Philosopher"},
}

// LevelFor returns the highest entry whose threshold has been reached.
func LevelFor(totalXP int64) LevelEntry {
	entry := Levels[0]
	for _, l := range Levels {
		if totalXP >= l.XPThreshold {
			entry = l
		}
	}
	return entry
}

// ProgressFor reports where totalXP sits between the current level's
// threshold and the next. At max level PercentComplete is 100 and
// NextLevel is zero.
func ProgressFor(totalXP int64) models.LevelProgress {
	current := LevelFor(totalXP)

	progress := models.LevelProgress{
		CurrentLevel: current.Level,
		CurrentTitle: current.Title,
	}

	if current.Level >= Levels[len(Levels)-1].Level {
		progress.XPIntoLevel = totalXP - current.XPThreshold
		progress.PercentComplete = 100
		return progress
	}

	next := Levels[current.Level] // entries are ordered, level N at index N-1
	progress.NextLevel = next.Level
	progress.XPIntoLevel = totalXP - current.XPThreshold
	progress.XPForNextLevel = next.XPThreshold - current.XPThreshold
	progress.PercentComplete = int(progress.XPIntoLevel * 100 / progress.XPForNextLevel)
	return progress
}

// TitleFor returns the title for a level number, or "" if out of range.
func TitleFor(level int) string {
	for _, l := range Levels {
		if l.Level == level {
			return l.Title
		}
	}
	return ""
}
