package game

import (
	"fmt"
	"math"
)

// Tier - категория игрока, влияет на формулу очков
type Tier string

const (
	TierStandard Tier = "standard" // adult mode, full difficulty spread
	TierAssisted Tier = "assisted" // child mode, difficulty effect dampened
)

// ParseTier maps a wire string to a Tier. Unknown strings are rejected so an
// invalid tier can never reach scoring or storage.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierStandard:
		return TierStandard, nil
	case TierAssisted:
		return TierAssisted, nil
	default:
		return "", fmt.Errorf("unknown tier %q", s)
	}
}

// ComputeScore converts remaining time (seconds on the per-cell countdown when
// the correct answer came in) and the answered fact into points.
//
// Standard tier scores remaining*d. Assisted tier scores
// remaining*(d*0.7+0.3): the blend compresses the multiplier toward 1 so easy
// facts are not near-worthless for children while harder facts still pay more.
// The 0.7/0.3 constants are load-bearing for game balance.
func ComputeScore(remaining float64, factorA, factorB int, tier Tier) int {
	d := DifficultyCoefficient(factorA, factorB)

	base := remaining * d
	if tier == TierAssisted {
		// evaluated as (d*7+3)/10 rather than d*0.7+0.3: the matrix values
		// are decimal tenths, so this form keeps half-way results exactly on
		// .5 (10s on a 5x5 cell is 13.5 -> 14, not 13.4999... -> 13)
		base = remaining * ((d*7 + 3) / 10)
	}

	return int(math.Round(base))
}
