package philosophers

import "github.com/agora-app/backend/internal/models"

// Roster is the static philosopher list, ascending by unlock level.
var Roster = []models.Philosopher{
	{ID: "socrates", Name: "Socrates", Era: "Classical Greece", School: "Socratic method", UnlockLevel: 1},
	{ID: "epicurus", Name: "Epicurus", Era: "Hellenistic Greece", School: "Epicureanism", UnlockLevel: 2},
	{ID: "confucius", Name: "Confucius", Era: "Ancient China", School: "Confucianism", UnlockLevel: 3},
	{ID: "aristotle", Name: "Aristotle", Era: "Classical Greece", School: "Virtue ethics", UnlockLevel: 4},
	{ID: "marcus_aurelius", Name: "Marcus Aurelius", Era: "Imperial Rome", School: "Stoicism", UnlockLevel: 5},
	{ID: "kant", Name: "Immanuel Kant", Era: "Enlightenment", School: "Deontology", UnlockLevel: 6},
	{ID: "mill", Name: "John Stuart Mill", Era: "Victorian Britain", School: "Utilitarianism", UnlockLevel: 7},
	{ID: "nietzsche", Name: "Friedrich Nietzsche", Era: "19th century", School: "Existentialism", UnlockLevel: 8},
	{ID: "de_beauvoir", Name: "Simone de Beauvoir", Era: "20th century", School: "Existentialist ethics", UnlockLevel: 9},
	{ID: "rawls", Name: "John Rawls", Era: "20th century", School: "Political philosophy", UnlockLevel: 10},
}

// ByID returns the roster entry for an id, or nil if unknown.
func ByID(id string) *models.Philosopher {
	for i := range Roster {
		if Roster[i].ID == id {
			return &Roster[i]
		}
	}
	return nil
}

// UnlockedBetween returns philosophers whose unlock level lies in
// (prevLevel, newLevel], ascending by unlock level.
func UnlockedBetween(prevLevel, newLevel int) []models.Philosopher {
	var unlocked []models.Philosopher
	for _, p := range Roster {
		if p.UnlockLevel > prevLevel && p.UnlockLevel <= newLevel {
			unlocked = append(unlocked, p)
		}
	}
	return unlocked
}

// ForLevel returns the full roster with Unlocked set for a user level.
func ForLevel(level int) []models.Philosopher {
	out := make([]models.Philosopher, len(Roster))
	copy(out, Roster)
	for i := range out {
		out[i].Unlocked = out[i].UnlockLevel <= level
	}
	return out
}
