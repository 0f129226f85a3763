package gamification

// AchievementDef defines a single achievement.
type AchievementDef struct {
	Name        string
	Description string
	Icon        string
}

// Achievements maps achievement ids to their definitions.
var Achievements = map[string]AchievementDef{
	"first_dilemma": {Name: "First Steps", Description: "Answer your first moral dilemma", Icon: "🌱"},
	"dilemma_10":    {Name: "Moral Explorer", Description: "Answer 10 moral dilemmas", Icon: "🧭"},
	"dilemma_30":    {Name: "Ethical Cartographer", Description: "Answer 30 moral dilemmas", Icon: "🗺️"},
	"dilemma_50":    {Name: "Conscience Keeper", Description: "Answer 50 moral dilemmas", Icon: "⚖️"},
	"dilemma_100":   {Name: "Moral Philosopher", Description: "Answer 100 moral dilemmas", Icon: "🏛️"},
	"first_spar":    {Name: "Opening Argument", Description: "Complete your first debate round", Icon: "🗣️"},
	"spar_5":        {Name: "Sparring Partner", Description: "Complete 5 debate rounds", Icon: "🤺"},
	"spar_20":       {Name: "Seasoned Debater", Description: "Complete 20 debate rounds", Icon: "🏅"},
	"streak_3":      {Name: "Getting Started", Description: "3-day streak", Icon: "🔥"},
	"streak_7":      {Name: "Week of Wisdom", Description: "7-day streak", Icon: "📅"},
	"streak_30":     {Name: "Monthly Devotion", Description: "30-day streak", Icon: "🌙"},
	"arena_1":       {Name: "First Victory", Description: "Pass your first arena level", Icon: "🏆"},
	"arena_10":      {Name: "Arena Veteran", Description: "Pass 10 arena levels", Icon: "👑"},
	"points_100":    {Name: "Century of Points", Description: "Earn 100 total debate points", Icon: "💯"},
	"points_500":    {Name: "Point Master", Description: "Earn 500 total debate points", Icon: "💎"},
}

// StreakAchievements lists streak milestones in ascending day order.
var StreakAchievements = []struct {
	ID   string
	Days int
}{
	{"streak_3", 3},
	{"streak_7", 7},
	{"streak_30", 30},
}
