package game

// difficultyMatrix holds the relative difficulty of every multiplication fact,
// indexed by [factorA-1][factorB-1]. The values are hand-authored from an
// analysis of typical cognitive difficulty and are deliberately not generated
// from a formula: regenerating them would silently change game balance.
var difficultyMatrix = [10][10]float64{
	// 1    2    3    4    5    6    7    8    9    10
	{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, // table of 1
	{0.5, 0.8, 0.8, 0.9, 0.9, 1.0, 1.1, 1.2, 1.0, 0.5}, // table of 2
	{0.5, 0.8, 1.0, 1.2, 1.2, 1.3, 1.4, 1.5, 1.3, 0.5}, // table of 3
	{0.5, 0.9, 1.2, 1.4, 1.4, 1.5, 1.6, 1.7, 1.5, 0.5}, // table of 4
	{0.5, 0.9, 1.2, 1.4, 1.5, 1.6, 1.7, 1.8, 1.6, 0.5}, // table of 5
	{0.5, 1.0, 1.3, 1.5, 1.6, 2.0, 2.4, 2.5, 2.0, 0.5}, // table of 6
	{0.5, 1.1, 1.4, 1.6, 1.7, 2.4, 3.0, 2.7, 2.2, 0.5}, // table of 7
	{0.5, 1.2, 1.5, 1.7, 1.8, 2.5, 2.7, 2.6, 2.1, 0.5}, // table of 8
	{0.5, 1.0, 1.3, 1.5, 1.6, 2.0, 2.2, 2.1, 1.9, 0.5}, // table of 9
	{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, // table of 10
}

// DifficultyCoefficient returns the difficulty multiplier for a multiplication
// fact. Factors outside [1,10] yield the neutral coefficient 1.0 rather than
// an error: callers validate ranges at the edge, and a wrong lookup must never
// break a scoring pass mid-game.
func DifficultyCoefficient(factorA, factorB int) float64 {
	if factorA < 1 || factorA > 10 || factorB < 1 || factorB > 10 {
		return 1.0
	}
	return difficultyMatrix[factorA-1][factorB-1]
}
