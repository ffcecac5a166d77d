package nutrition

// Sum adds up the nutrition of several servings.
func Sum(items ...Nutrition) Nutrition {
	var total Nutrition
	for _, n := range items {
		total.Calories += n.Calories
		total.Protein += n.Protein
		total.Carbs += n.Carbs
		total.Fat += n.Fat
	}
	return total
}

// Progress is the percentage of target reached, capped at 100.
func Progress(current, target float64) int {
	if target <= 0 {
		return 0
	}
	p := roundHalfUp(current / target * 100)
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// MacroDistribution returns each macro's share of the total grams eaten.
// ok is false when nothing was eaten.
func MacroDistribution(protein, carbs, fat int) (proteinPct, carbsPct, fatPct int, ok bool) {
	total := float64(protein + carbs + fat)
	if total <= 0 {
		return 0, 0, 0, false
	}
	return roundHalfUp(float64(protein) / total * 100),
		roundHalfUp(float64(carbs) / total * 100),
		roundHalfUp(float64(fat) / total * 100),
		true
}
