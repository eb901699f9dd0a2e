package engine

// BuiltinScenarios returns the scenarios that ship with the engine.
func BuiltinScenarios() []Scenario {
	return []Scenario{
		{
			Name:        "Crashlanded",
			Summary:     "Three survivors escape a destroyed orbital liner with whatever their pods could carry.",
			Colonists:   3,
			StartSeason: "spring",
		},
		{
			Name:        "Lost Tribe",
			Summary:     "Five tribespeople flee the ruin of their village and start over in the wilds.",
			Colonists:   5,
			StartSeason: "summer",
		},
		{
			Name:        "Rich Explorer",
			Summary:     "A wealthy traveler sets down alone with advanced gear and no backup.",
			Colonists:   1,
			StartSeason: "spring",
		},
		{
			Name:        "Naked Brutality",
			Summary:     "One person, no equipment, no clothes. Good luck.",
			Colonists:   1,
			StartSeason: "autumn",
		},
	}
}
