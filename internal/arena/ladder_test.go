package arena

import (
	"strings"
	"testing"
)

func TestArenaAt(t *testing.T) {
	tests := []struct {
		level     int
		tier      int
		tierName  string
		rounds    int
		passScore int
	}{
		{1, 1, "Novice", 3, 52},
		{10, 1, "Novice", 3, 70},
		{11, 2, "Apprentice", 3, 72},
		{19, 2, "Apprentice", 3, 88},
		{20, 2, "Apprentice", 4, 90},
		{39, 4, "Scholar", 4, 128},
		{40, 4, "Scholar", 5, 130},
		{60, 6, "Rhetorician", 5, 170},
		{99, 10, "Immortal", 5, 248},
		{100, 10, "Immortal", 5, 250},
	}

	for _, tt := range tests {
		a := ArenaAt("ethics", tt.level)
		if a == nil {
			t.Fatalf("ArenaAt(ethics, %d) = nil", tt.level)
		}
		if a.Level != tt.level {
			t.Errorf("level %d: Level = %d", tt.level, a.Level)
		}
		if a.Tier != tt.tier || a.TierName != tt.tierName {
			t.Errorf("level %d: tier = %d %q, want %d %q", tt.level, a.Tier, a.TierName, tt.tier, tt.tierName)
		}
		if a.Rounds != tt.rounds {
			t.Errorf("level %d: Rounds = %d, want %d", tt.level, a.Rounds, tt.rounds)
		}
		if a.PassScore != tt.passScore {
			t.Errorf("level %d: PassScore = %d, want %d", tt.level, a.PassScore, tt.passScore)
		}
		if a.Challenge == "" {
			t.Errorf("level %d: empty challenge", tt.level)
		}
	}
}

func TestArenaAtOutOfRange(t *testing.T) {
	for _, level := range []int{0, -1, 101, 1000} {
		if a := ArenaAt("ethics", level); a != nil {
			t.Errorf("ArenaAt(ethics, %d) = %+v, want nil", level, a)
		}
	}
}

func TestArenaAtOpaqueTopic(t *testing.T) {
	// The ladder derives from (topic, level) alone; ids outside the
	// registry get the same arenas, with the raw id in the challenge.
	a := ArenaAt("x", 1)
	if a == nil {
		t.Fatal("ArenaAt(x, 1) = nil")
	}
	if a.Level != 1 || a.Tier != 1 || a.TierName != "Novice" || a.Rounds != 3 || a.PassScore != 52 {
		t.Errorf("ArenaAt(x, 1) = %+v, want level 1, tier 1 Novice, 3 rounds, pass 52", a)
	}
	if !strings.Contains(a.Challenge, "x") {
		t.Errorf("challenge %q does not name the topic", a.Challenge)
	}

	// Registered ids still resolve to their display name.
	if c := ArenaAt("free_will", 1).Challenge; !strings.Contains(c, "Free Will") {
		t.Errorf("challenge %q does not use the display name", c)
	}
}

func TestRoundsCapAtFive(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		a := ArenaAt("mind", level)
		if a.Rounds < 3 || a.Rounds > 5 {
			t.Errorf("level %d: Rounds = %d, want within 3..5", level, a.Rounds)
		}
		if level >= 40 && a.Rounds != 5 {
			t.Errorf("level %d: Rounds = %d, want 5", level, a.Rounds)
		}
	}
}

func TestAllArenas(t *testing.T) {
	for _, topicID := range []string{"justice", "x"} {
		arenas := AllArenas(topicID)
		if len(arenas) != MaxLevel {
			t.Fatalf("AllArenas(%s): len = %d, want %d", topicID, len(arenas), MaxLevel)
		}
		for i, a := range arenas {
			if a.Level != i+1 {
				t.Fatalf("AllArenas(%s)[%d].Level = %d, want ascending from 1", topicID, i, a.Level)
			}
		}
		first := arenas[0]
		if first.Tier != 1 || first.TierName != "Novice" || first.Rounds != 3 || first.PassScore != 52 {
			t.Errorf("AllArenas(%s)[0] = %+v, want tier 1 Novice, 3 rounds, pass 52", topicID, first)
		}
	}
}

func TestTopicByID(t *testing.T) {
	for _, topic := range Topics {
		got := TopicByID(topic.ID)
		if got == nil || got.Name != topic.Name {
			t.Errorf("TopicByID(%s) = %+v", topic.ID, got)
		}
	}
	if TopicByID("") != nil {
		t.Error("empty id should be unknown")
	}
}
