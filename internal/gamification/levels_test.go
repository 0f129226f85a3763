package gamification

import "testing"

func TestLevelFor(t *testing.T) {
	tests := []struct {
		totalXP int64
		want    int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{149, 2},
		{150, 3},
		{300, 4},
		{499, 4},
		{500, 5},
		{800, 6},
		{1200, 7},
		{1800, 8},
		{2500, 9},
		{3499, 9},
		{3500, 10},
		{999999, 10},
	}

	for _, tt := range tests {
		got := LevelFor(tt.totalXP)
		if got.Level != tt.want {
			t.Errorf("LevelFor(%d).Level = %d, want %d", tt.totalXP, got.Level, tt.want)
		}
	}
}

func TestLevelForMonotonic(t *testing.T) {
	prev := 0
	for xp := int64(0); xp <= 4000; xp += 7 {
		level := LevelFor(xp).Level
		if level < prev {
			t.Fatalf("LevelFor not monotonic: level dropped to %d at xp=%d", level, xp)
		}
		prev = level
	}
}

func TestLevelTitles(t *testing.T) {
	if got := LevelFor(0).Title; got != "Novice Thinker" {
		t.Errorf("LevelFor(0).Title = %q, want Novice Thinker", got)
	}
	if got := LevelFor(3500).Title; got != "Grand Philosopher" {
		t.Errorf("LevelFor(3500).Title = %q, want Grand Philosopher", got)
	}
	if got := TitleFor(5); got != "Rhetorician" {
		t.Errorf("TitleFor(5) = %q, want Rhetorician", got)
	}
	if got := TitleFor(11); got != "" {
		t.Errorf("TitleFor(11) = %q, want empty", got)
	}
}

func TestProgressFor(t *testing.T) {
	// Level 1, halfway to level 2
	p := ProgressFor(25)
	if p.CurrentLevel != 1 || p.NextLevel != 2 {
		t.Errorf("ProgressFor(25) levels = %d→%d, want 1→2", p.CurrentLevel, p.NextLevel)
	}
	if p.XPIntoLevel != 25 || p.XPForNextLevel != 50 {
		t.Errorf("ProgressFor(25) xp = %d/%d, want 25/50", p.XPIntoLevel, p.XPForNextLevel)
	}
	if p.PercentComplete != 50 {
		t.Errorf("ProgressFor(25).PercentComplete = %d, want 50", p.PercentComplete)
	}

	// Exactly at a threshold
	p = ProgressFor(150)
	if p.CurrentLevel != 3 || p.XPIntoLevel != 0 || p.PercentComplete != 0 {
		t.Errorf("ProgressFor(150) = %+v, want level 3 at 0%%", p)
	}

	// Max level
	p = ProgressFor(3500)
	if p.CurrentLevel != 10 || p.NextLevel != 0 || p.PercentComplete != 100 {
		t.Errorf("ProgressFor(3500) = %+v, want level 10 at 100%% with no next", p)
	}
	p = ProgressFor(99999)
	if p.PercentComplete != 100 {
		t.Errorf("ProgressFor(99999).PercentComplete = %d, want 100", p.PercentComplete)
	}
}

func TestProgressForPercentBounds(t *testing.T) {
	for xp := int64(0); xp <= 5000; xp += 13 {
		p := ProgressFor(xp)
		if p.PercentComplete < 0 || p.PercentComplete > 100 {
			t.Fatalf("ProgressFor(%d).PercentComplete = %d, out of [0,100]", xp, p.PercentComplete)
		}
	}
}
