package morality

import "github.com/agora-app/backend/internal/models"

// Bank is the static dilemma corpus. Weights stay within ±0.4 so no
// single answer dominates a spectrum.
var Bank = []models.Dilemma{
	{
		ID:       "runaway_trolley",
		Title:    "The Runaway Trolley",
		Category: "classic",
		Scenario: "A runaway trolley is heading toward five workers. You stand by a lever that diverts it to a side track where one worker stands. Do you pull it?",
		Choices: []models.DilemmaChoice{
			{
				Text: "Pull the lever — five lives outweigh one.",
				Weights: map[string]float64{
					SpectrumRulesOutcomes:   0.4,
					SpectrumCompassionLogic: 0.2,
				},
			},
			{
				Text: "Refuse — killing is different from letting die.",
				Weights: map[string]float64{
					SpectrumRulesOutcomes:   -0.4,
					SpectrumMercyJustice:    -0.1,
				},
			},
		},
	},
	{
		ID:       "dying_friend_lie",
		Title:    "The Comforting Lie",
		Category: "honesty",
		Scenario: "A dying friend asks whether their estranged child ever forgave them. You know the child did not. What do you say?",
		Choices: []models.DilemmaChoice{
			{
				Text: "Tell them their child forgave them.",
				Weights: map[string]float64{
					SpectrumCompassionLogic: -0.4,
					SpectrumRulesOutcomes:   0.2,
				},
			},
			{
				Text: "Tell the truth — they deserve to die undeceived.",
				Weights: map[string]float64{
					SpectrumCompassionLogic: 0.4,
					SpectrumRulesOutcomes:   -0.2,
				},
			},
		},
	},
	{
		ID:       "stolen_bread",
		Title:    "The Stolen Loaf",
		Category: "justice",
		Scenario: "A starving man steals bread from a wealthy baker to feed his children. As the judge, how do you rule?",
		Choices: []models.DilemmaChoice{
			{
				Text: "Dismiss the case — necessity excuses the theft.",
				Weights: map[string]float64{
					SpectrumMercyJustice:    -0.4,
					SpectrumCompassionLogic: -0.2,
				},
			},
			{
				Text: "A symbolic sentence — the law must hold, gently.",
				Weights: map[string]float64{
					SpectrumMercyJustice:  -0.1,
					SpectrumRulesOutcomes: -0.2,
				},
			},
			{
				Text: "The full penalty — theft is theft regardless of motive.",
				Weights: map[string]float64{
					SpectrumMercyJustice:  0.4,
					SpectrumRulesOutcomes: -0.3,
				},
			},
		},
	},
	{
		ID:       "whistleblower",
		Title:    "The Whistleblower",
		Category: "loyalty",
		Scenario: "You discover your employer is quietly dumping toxins upstream of a town. Reporting it will ruin your colleagues' livelihoods. What do you do?",
		Choices: []models.DilemmaChoice{
			{
				Text: "Report it publicly at once.",
				Weights: map[string]float64{
					SpectrumIndividualCollective: 0.4,
					SpectrumIdealismPragmatism:   -0.3,
				},
			},
			{
				Text: "Push for change from the inside first.",
				Weights: map[string]float64{
					SpectrumIdealismPragmatism: 0.4,
				},
			},
			{
				Text: "Stay silent — your first duty is to the people beside you.",
				Weights: map[string]float64{
					SpectrumIndividualCollective: -0.4,
					SpectrumRulesOutcomes:        0.1,
				},
			},
		},
	},
	{
		ID:       "lifeboat",
		Title:    "The Overloaded Lifeboat",
		Category: "classic",
		Scenario: "A lifeboat holds ten and twelve are aboard; it will sink in the storm unless two leave. No one volunteers. What should be done?",
		Choices: []models.DilemmaChoice{
			{
				Text: "Draw lots — fairness demands equal chances.",
				Weights: map[string]float64{
					SpectrumMercyJustice:  0.3,
					SpectrumRulesOutcomes: -0.2,
				},
			},
			{
				Text: "The strongest swimmers go over — most likely to survive.",
				Weights: map[string]float64{
					SpectrumRulesOutcomes:      0.4,
					SpectrumIdealismPragmatism: 0.3,
				},
			},
			{
				Text: "No one is forced off, whatever happens.",
				Weights: map[string]float64{
					SpectrumIdealismPragmatism: -0.4,
					SpectrumCompassionLogic:    -0.2,
				},
			},
		},
	},
	{
		ID:       "promise_deathbed",
		Title:    "The Deathbed Promise",
		Category: "honesty",
		Scenario: "You promised a dying relative to spend their fortune on a monument. The money could instead fund a clinic that would save lives. What do you do?",
		Choices: []models.DilemmaChoice{
			{
				Text: "Build the monument — a promise to the dead still binds.",
				Weights: map[string]float64{
					SpectrumRulesOutcomes:      -0.4,
					SpectrumIdealismPragmatism: -0.2,
				},
			},
			{
				Text: "Fund the clinic — the living outweigh the dead.",
				Weights: map[string]float64{
					SpectrumRulesOutcomes:   0.4,
					SpectrumCompassionLogic: -0.1,
				},
			},
		},
	},
	{
		ID:       "village_vote",
		Title:    "The Village Vote",
		Category: "politics",
		Scenario: "Your village votes to seize one family's land for a reservoir that will serve everyone. The family refuses to sell at any price. Do you support the seizure?",
		Choices: []models.DilemmaChoice{
			{
				Text: "Yes — the common good outranks one household.",
				Weights: map[string]float64{
					SpectrumIndividualCollective: 0.4,
					SpectrumRulesOutcomes:        0.2,
				},
			},
			{
				Text: "No — property that can be voted away is no property at all.",
				Weights: map[string]float64{
					SpectrumIndividualCollective: -0.4,
					SpectrumRulesOutcomes:        -0.2,
				},
			},
		},
	},
	{
		ID:       "friends_crime",
		Title:    "A Friend's Confession",
		Category: "loyalty",
		Scenario: "Your closest friend confesses to a hit-and-run years ago. The victim's family still searches for answers. Do you turn your friend in?",
		Choices: []models.DilemmaChoice{
			{
				Text: "Yes — the family's right to truth comes first.",
				Weights: map[string]float64{
					SpectrumMercyJustice:    0.4,
					SpectrumCompassionLogic: 0.2,
				},
			},
			{
				Text: "Urge them to confess, but do not betray them.",
				Weights: map[string]float64{
					SpectrumMercyJustice:       -0.2,
					SpectrumIdealismPragmatism: 0.3,
				},
			},
			{
				Text: "Keep the secret — loyalty is its own law.",
				Weights: map[string]float64{
					SpectrumMercyJustice:         -0.4,
					SpectrumIndividualCollective: -0.2,
				},
			},
		},
	},
	{
		ID:       "utopian_machine",
		Title:    "The Experience Machine",
		Category: "meaning",
		Scenario: "A machine can give you a perfectly happy simulated life, indistinguishable from reality. Once inside, you never know the difference. Do you plug in?",
		Choices: []models.DilemmaChoice{
			{
				Text: "Plug in — happiness is what matters.",
				Weights: map[string]float64{
					SpectrumIdealismPragmatism: 0.4,
					SpectrumCompassionLogic:    -0.1,
				},
			},
			{
				Text: "Refuse — a life must be truly lived to mean anything.",
				Weights: map[string]float64{
					SpectrumIdealismPragmatism: -0.4,
				},
			},
		},
	},
	{
		ID:       "scarce_medicine",
		Title:    "The Last Dose",
		Category: "medicine",
		Scenario: "You have one dose of medicine and two patients: a young stranger likely to recover fully, and your elderly mentor with slimmer odds. Who receives it?",
		Choices: []models.DilemmaChoice{
			{
				Text: "The stranger — triage follows the odds.",
				Weights: map[string]float64{
					SpectrumCompassionLogic: 0.4,
					SpectrumRulesOutcomes:   0.2,
				},
			},
			{
				Text: "Your mentor — bonds of gratitude are real obligations.",
				Weights: map[string]float64{
					SpectrumCompassionLogic:      -0.4,
					SpectrumIndividualCollective: -0.1,
				},
			},
			{
				Text: "Flip a coin — you have no right to weigh lives.",
				Weights: map[string]float64{
					SpectrumMercyJustice:  0.2,
					SpectrumRulesOutcomes: -0.3,
				},
			},
		},
	},
	{
		ID:       "repentant_thief",
		Title:    "The Repentant Thief",
		Category: "justice",
		Scenario: "Decades after a robbery, the now-reformed culprit has built schools and raised a family. New evidence surfaces proving their guilt. Should they be prosecuted?",
		Choices: []models.DilemmaChoice{
			{
				Text: "Yes — justice does not expire.",
				Weights: map[string]float64{
					SpectrumMercyJustice:  0.4,
					SpectrumRulesOutcomes: -0.2,
				},
			},
			{
				Text: "No — the person who committed that crime no longer exists.",
				Weights: map[string]float64{
					SpectrumMercyJustice:  -0.4,
					SpectrumRulesOutcomes: 0.2,
				},
			},
		},
	},
	{
		ID:       "censors_bargain",
		Title:    "The Censor's Bargain",
		Category: "politics",
		Scenario: "A regime offers to distribute your life-saving research nationwide if you remove a chapter criticizing its policies. Refuse, and the research reaches no one. Do you accept?",
		Choices: []models.DilemmaChoice{
			{
				Text: "Accept — saved lives outweigh a silenced chapter.",
				Weights: map[string]float64{
					SpectrumIdealismPragmatism: 0.4,
					SpectrumRulesOutcomes:      0.3,
				},
			},
			{
				Text: "Refuse — truth bartered away is no longer truth.",
				Weights: map[string]float64{
					SpectrumIdealismPragmatism: -0.4,
					SpectrumRulesOutcomes:      -0.2,
				},
			},
		},
	},
}

// DilemmaByID returns the bank entry for an id, or nil if unknown.
func DilemmaByID(id string) *models.Dilemma {
	for i := range Bank {
		if Bank[i].ID == id {
			return &Bank[i]
		}
	}
	return nil
}
