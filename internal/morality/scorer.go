package morality

import (
	"math"

	"github.com/agora-app/backend/internal/models"
)

// The five ethical spectrums, in canonical order. Ties on dominant
// magnitude break toward the earlier spectrum.
const (
	SpectrumCompassionLogic      = "compassion_vs_logic"
	SpectrumIndividualCollective = "individual_vs_collective"
	SpectrumRulesOutcomes        = "rules_vs_outcomes"
	SpectrumIdealismPragmatism   = "idealism_vs_pragmatism"
	SpectrumMercyJustice         = "mercy_vs_justice"
)

var SpectrumOrder = []string{
	SpectrumCompassionLogic,
	SpectrumIndividualCollective,
	SpectrumRulesOutcomes,
	SpectrumIdealismPragmatism,
	SpectrumMercyJustice,
}

// neutralThreshold is the dominant-magnitude floor below which no
// strong identity is declared. Individual choice weights are small
// (at most ±0.4), so low answer counts produce near-neutral signal.
const neutralThreshold = 0.15

type alignmentPole struct {
	Name        string
	Description string
}

// alignmentPoles maps each spectrum to its (negative, positive) pole
// labels. The negative pole is the first-named side of the spectrum.
var alignmentPoles = map[string][2]alignmentPole{
	SpectrumCompassionLogic: {
		{Name: "Empathic Guardian", Description: "You lead with the heart: the suffering in front of you outweighs any abstraction."},
		{Name: "Analytical Sage", Description: "You trust reasoned analysis over sentiment, even when the conclusion is uncomfortable."},
	},
	SpectrumIndividualCollective: {
		{Name: "Sovereign Individualist", Description: "You hold personal liberty and self-determination above the demands of the group."},
		{Name: "Communal Harmonizer", Description: "You weigh the good of the many first, and ask what binds a community together."},
	},
	SpectrumRulesOutcomes: {
		{Name: "Principled Keeper", Description: "You believe some lines must never be crossed, whatever crossing them might buy."},
		{Name: "Consequentialist", Description: "You judge an act by what it brings about, not by the rule it bends."},
	},
	SpectrumIdealismPragmatism: {
		{Name: "Visionary Idealist", Description: "You measure the world against what it ought to be, and refuse to settle."},
		{Name: "Grounded Pragmatist", Description: "You work with the world as it is, one achievable step at a time."},
	},
	SpectrumMercyJustice: {
		{Name: "Merciful Heart", Description: "You temper every verdict with forgiveness and the possibility of redemption."},
		{Name: "Arbiter of Justice", Description: "You believe fairness demands that actions meet their due consequences."},
	},
}

const (
	balancedName        = "Balanced Philosopher"
	balancedDescription = "You draw on every tradition without being captured by any: your compass points to the situation, not a school."
)

// Score folds an ordered answer batch into a morality profile.
// Answers referencing an unknown dilemma or choice are skipped; each
// spectrum accumulator is clamped to [-1, 1] after folding. The
// profile is a complete recomputation — TotalAnswered counts this
// batch, not a running total.
func Score(answers []models.DilemmaAnswer, pool []models.Dilemma) models.MoralityProfile {
	byID := make(map[string]*models.Dilemma, len(pool))
	for i := range pool {
		byID[pool[i].ID] = &pool[i]
	}

	spectrums := make(map[string]float64, len(SpectrumOrder))
	for _, s := range SpectrumOrder {
		spectrums[s] = 0
	}

	for _, a := range answers {
		d, ok := byID[a.DilemmaID]
		if !ok {
			continue
		}
		if a.ChoiceIndex < 0 || a.ChoiceIndex >= len(d.Choices) {
			continue
		}
		for spectrum, weight := range d.Choices[a.ChoiceIndex].Weights {
			if _, known := spectrums[spectrum]; known {
				spectrums[spectrum] += weight
			}
		}
	}

	for s, v := range spectrums {
		spectrums[s] = clamp(v)
	}

	dominant := SpectrumOrder[0]
	for _, s := range SpectrumOrder[1:] {
		if math.Abs(spectrums[s]) > math.Abs(spectrums[dominant]) {
			dominant = s
		}
	}

	profile := models.MoralityProfile{
		Spectrums:     spectrums,
		TotalAnswered: len(answers),
	}

	value := spectrums[dominant]
	if math.Abs(value) <= neutralThreshold {
		profile.Alignment = balancedName
		profile.AlignmentDescription = balancedDescription
		return profile
	}

	poles := alignmentPoles[dominant]
	pole := poles[0]
	if value > 0 {
		pole = poles[1]
	}
	profile.Alignment = pole.Name
	profile.AlignmentDescription = pole.Description
	return profile
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
