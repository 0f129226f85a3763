package arena

import (
	"fmt"

	"github.com/agora-app/backend/internal/models"
)

// MaxLevel is the depth of the ladder per topic.
const MaxLevel = 100

// tierNames indexes difficulty names by tier-1; each tier spans ten
// consecutive levels.
var tierNames = [10]string{
	"Novice",
	"Apprentice",
	"Adept",
	"Scholar",
	"Debater",
	"Rhetorician",
	"Master",
	"Sage",
	"Luminary",
	"Immortal",
}

// Topic is a debate subject arenas are generated for.
type Topic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var Topics = []Topic{
	{ID: "ethics", Name: "Ethics"},
	{ID: "free_will", Name: "Free Will"},
	{ID: "knowledge", Name: "Knowledge & Truth"},
	{ID: "justice", Name: "Justice & the State"},
	{ID: "meaning", Name: "The Meaning of Life"},
	{ID: "mind", Name: "Mind & Consciousness"},
}

// TopicByID returns the topic for an id, or nil if unknown.
func TopicByID(id string) *Topic {
	for i := range Topics {
		if Topics[i].ID == id {
			return &Topics[i]
		}
	}
	return nil
}

// ArenaAt derives the arena for a (topic, level) pair. Nothing is
// persisted — the ladder regenerates deterministically from its inputs.
// The topic id is opaque: ids outside the registry still produce a
// ladder, with the raw id standing in for the display name.
// Returns nil for a level outside 1..MaxLevel.
func ArenaAt(topicID string, level int) *models.Arena {
	if level < 1 || level > MaxLevel {
		return nil
	}

	topicName := topicID
	if t := TopicByID(topicID); t != nil {
		topicName = t.Name
	}

	tier := (level + 9) / 10
	rounds := 3 + level/20
	if rounds > 5 {
		rounds = 5
	}

	return &models.Arena{
		Level:     level,
		Tier:      tier,
		TierName:  tierNames[tier-1],
		PassScore: 50 + level*2,
		Rounds:    rounds,
		Challenge: fmt.Sprintf("Defend your position on %s against a %s-tier opponent (level %d).", topicName, tierNames[tier-1], level),
	}
}

// AllArenas derives the full 100-level ladder for a topic, ascending.
func AllArenas(topicID string) []models.Arena {
	arenas := make([]models.Arena, 0, MaxLevel)
	for level := 1; level <= MaxLevel; level++ {
		arenas = append(arenas, *ArenaAt(topicID, level))
	}
	return arenas
}
