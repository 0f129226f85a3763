package morality

import (
	"math"
	"testing"

	"github.com/agora-app/backend/internal/models"
)

func testPool() []models.Dilemma {
	return []models.Dilemma{
		{
			ID: "d1",
			Choices: []models.DilemmaChoice{
				{Text: "a", Weights: map[string]float64{SpectrumCompassionLogic: -0.4}},
				{Text: "b", Weights: map[string]float64{SpectrumCompassionLogic: 0.4}},
			},
		},
		{
			ID: "d2",
			Choices: []models.DilemmaChoice{
				{Text: "a", Weights: map[string]float64{SpectrumMercyJustice: 0.3, SpectrumRulesOutcomes: -0.1}},
				{Text: "b", Weights: map[string]float64{SpectrumMercyJustice: -0.3}},
			},
		},
		{
			ID: "d3",
			Choices: []models.DilemmaChoice{
				{Text: "a", Weights: map[string]float64{SpectrumIndividualCollective: 0.2, "not_a_spectrum": 0.9}},
			},
		},
	}
}

func TestScoreEmptyBatch(t *testing.T) {
	profile := Score(nil, testPool())

	if profile.Alignment != "Balanced Philosopher" {
		t.Errorf("Alignment = %q, want Balanced Philosopher", profile.Alignment)
	}
	if profile.TotalAnswered != 0 {
		t.Errorf("TotalAnswered = %d, want 0", profile.TotalAnswered)
	}
	if len(profile.Spectrums) != len(SpectrumOrder) {
		t.Fatalf("Spectrums has %d keys, want %d", len(profile.Spectrums), len(SpectrumOrder))
	}
	for s, v := range profile.Spectrums {
		if v != 0 {
			t.Errorf("spectrum %s = %v, want 0", s, v)
		}
	}
}

func TestScoreDominantPoles(t *testing.T) {
	tests := []struct {
		name      string
		answers   []models.DilemmaAnswer
		alignment string
	}{
		{
			name: "negative pole",
			answers: []models.DilemmaAnswer{
				{DilemmaID: "d1", ChoiceIndex: 0},
			},
			alignment: "Empathic Guardian",
		},
		{
			name: "positive pole",
			answers: []models.DilemmaAnswer{
				{DilemmaID: "d1", ChoiceIndex: 1},
			},
			alignment: "Analytical Sage",
		},
		{
			name: "mercy dominates weaker rules signal",
			answers: []models.DilemmaAnswer{
				{DilemmaID: "d2", ChoiceIndex: 0},
			},
			alignment: "Arbiter of Justice",
		},
		{
			name: "opposing answers cancel to balanced",
			answers: []models.DilemmaAnswer{
				{DilemmaID: "d1", ChoiceIndex: 0},
				{DilemmaID: "d1", ChoiceIndex: 1},
			},
			alignment: "Balanced Philosopher",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Score(tt.answers, testPool())
			if profile.Alignment != tt.alignment {
				t.Errorf("Alignment = %q, want %q", profile.Alignment, tt.alignment)
			}
			if profile.AlignmentDescription == "" {
				t.Error("AlignmentDescription is empty")
			}
		})
	}
}

func TestScoreNeutralThreshold(t *testing.T) {
	// A single d2 answer leaves mercy at exactly 0.3, above the
	// threshold; rules at -0.1 stays below it and must not drive the
	// alignment even though it is nonzero.
	profile := Score([]models.DilemmaAnswer{{DilemmaID: "d2", ChoiceIndex: 0}}, testPool())
	if profile.Spectrums[SpectrumRulesOutcomes] != -0.1 {
		t.Errorf("rules = %v, want -0.1", profile.Spectrums[SpectrumRulesOutcomes])
	}
	if profile.Alignment != "Arbiter of Justice" {
		t.Errorf("Alignment = %q, want Arbiter of Justice", profile.Alignment)
	}

	// d3 alone reaches only 0.2 on collective — above threshold.
	profile = Score([]models.DilemmaAnswer{{DilemmaID: "d3", ChoiceIndex: 0}}, testPool())
	if profile.Alignment != "Communal Harmonizer" {
		t.Errorf("Alignment = %q, want Communal Harmonizer", profile.Alignment)
	}
}

func TestScoreClamping(t *testing.T) {
	// Ten same-direction answers would sum to 4.0 unclamped.
	var answers []models.DilemmaAnswer
	for i := 0; i < 10; i++ {
		answers = append(answers, models.DilemmaAnswer{DilemmaID: "d1", ChoiceIndex: 1})
	}

	profile := Score(answers, testPool())
	if got := profile.Spectrums[SpectrumCompassionLogic]; got != 1 {
		t.Errorf("compassion_vs_logic = %v, want clamped to 1", got)
	}
	if profile.Alignment != "Analytical Sage" {
		t.Errorf("Alignment = %q, want Analytical Sage", profile.Alignment)
	}

	for i := range answers {
		answers[i].ChoiceIndex = 0
	}
	profile = Score(answers, testPool())
	if got := profile.Spectrums[SpectrumCompassionLogic]; got != -1 {
		t.Errorf("compassion_vs_logic = %v, want clamped to -1", got)
	}
}

func TestScoreTieBreaksCanonicalOrder(t *testing.T) {
	pool := []models.Dilemma{
		{
			ID: "tied",
			Choices: []models.DilemmaChoice{
				{Text: "a", Weights: map[string]float64{
					SpectrumMercyJustice:    0.4,
					SpectrumCompassionLogic: -0.4,
				}},
			},
		},
	}

	profile := Score([]models.DilemmaAnswer{{DilemmaID: "tied", ChoiceIndex: 0}}, pool)
	// Equal magnitudes: compassion_vs_logic precedes mercy_vs_justice.
	if profile.Alignment != "Empathic Guardian" {
		t.Errorf("Alignment = %q, want Empathic Guardian from the earlier spectrum", profile.Alignment)
	}
}

func TestScoreSkipsMalformedAnswers(t *testing.T) {
	answers := []models.DilemmaAnswer{
		{DilemmaID: "no_such_dilemma", ChoiceIndex: 0},
		{DilemmaID: "d1", ChoiceIndex: 5},
		{DilemmaID: "d1", ChoiceIndex: -1},
		{DilemmaID: "d1", ChoiceIndex: 1},
	}

	profile := Score(answers, testPool())
	if got := profile.Spectrums[SpectrumCompassionLogic]; got != 0.4 {
		t.Errorf("compassion_vs_logic = %v, want 0.4 from the single valid answer", got)
	}
	// Malformed answers still count toward the batch size.
	if profile.TotalAnswered != 4 {
		t.Errorf("TotalAnswered = %d, want 4", profile.TotalAnswered)
	}
}

func TestScoreIgnoresUnknownSpectrumKeys(t *testing.T) {
	profile := Score([]models.DilemmaAnswer{{DilemmaID: "d3", ChoiceIndex: 0}}, testPool())

	if _, ok := profile.Spectrums["not_a_spectrum"]; ok {
		t.Error("unknown spectrum key leaked into the profile")
	}
	if got := profile.Spectrums[SpectrumIndividualCollective]; got != 0.2 {
		t.Errorf("individual_vs_collective = %v, want 0.2", got)
	}
}

func TestBankWeightsStayInRange(t *testing.T) {
	for _, d := range Bank {
		if len(d.Choices) < 2 {
			t.Errorf("dilemma %s has %d choices, want at least 2", d.ID, len(d.Choices))
		}
		for i, c := range d.Choices {
			if len(c.Weights) == 0 {
				t.Errorf("dilemma %s choice %d has no weights", d.ID, i)
			}
			for spectrum, w := range c.Weights {
				if _, ok := alignmentPoles[spectrum]; !ok {
					t.Errorf("dilemma %s choice %d references unknown spectrum %q", d.ID, i, spectrum)
				}
				if math.Abs(w) > 0.4 {
					t.Errorf("dilemma %s choice %d weight %s = %v, want |w| <= 0.4", d.ID, i, spectrum, w)
				}
			}
		}
	}
}
