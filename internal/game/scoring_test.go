package game

import "testing"

func TestDifficultyCoefficientKnownValues(t *testing.T) {
	cases := []struct {
		a, b int
		want float64
	}{
		{7, 7, 3.0},
		{6, 8, 2.5},
		{8, 6, 2.5},
		{5, 5, 1.5},
		{2, 2, 0.8},
		{1, 7, 0.5},
		{7, 1, 0.5},
		{10, 3, 0.5},
		{3, 10, 0.5},
	}

	for _, tc := range cases {
		if got := DifficultyCoefficient(tc.a, tc.b); got != tc.want {
			t.Errorf("DifficultyCoefficient(%d,%d) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDifficultyCoefficientOutOfRangeFallback(t *testing.T) {
	cases := [][2]int{{0, 5}, {5, 11}, {-1, 3}, {11, 11}, {0, 0}}
	for _, tc := range cases {
		if got := DifficultyCoefficient(tc[0], tc[1]); got != 1.0 {
			t.Errorf("DifficultyCoefficient(%d,%d) = %v; want fallback 1.0", tc[0], tc[1], got)
		}
	}
}

func TestDifficultyCoefficientRangeAndSymmetry(t *testing.T) {
	for a := 1; a <= 10; a++ {
		for b := 1; b <= 10; b++ {
			d := DifficultyCoefficient(a, b)
			if d < 0.5 || d > 3.0 {
				t.Fatalf("DifficultyCoefficient(%d,%d) = %v; out of [0.5, 3.0]", a, b, d)
			}
			// symmetry is a property of the published data, not of the code
			if sym := DifficultyCoefficient(b, a); sym != d {
				t.Fatalf("matrix asymmetric at (%d,%d): %v vs %v", a, b, d, sym)
			}
		}
	}
}

func TestDifficultyCoefficientEdges(t *testing.T) {
	for x := 1; x <= 10; x++ {
		if got := DifficultyCoefficient(1, x); got != 0.5 {
			t.Errorf("DifficultyCoefficient(1,%d) = %v; want 0.5", x, got)
		}
		if got := DifficultyCoefficient(10, x); got != 0.5 {
			t.Errorf("DifficultyCoefficient(10,%d) = %v; want 0.5", x, got)
		}
	}
}

func TestComputeScorePinnedValues(t *testing.T) {
	cases := []struct {
		name      string
		remaining float64
		a, b      int
		tier      Tier
		want      int
	}{
		{"hardest fact standard", 10, 7, 7, TierStandard, 30},
		{"5x5 standard", 10, 5, 5, TierStandard, 15},
		{"5x5 assisted", 10, 5, 5, TierAssisted, 14}, // 10 * (1.5*0.7 + 0.3) = 13.5 -> 14
		{"easy fact standard", 10, 1, 9, TierStandard, 5},
		{"easy fact assisted", 10, 1, 9, TierAssisted, 7}, // 10 * (0.5*0.7 + 0.3) = 6.5 -> 7
		{"zero time", 0, 7, 7, TierStandard, 0},
		{"out of range factor", 10, 0, 5, TierStandard, 10}, // fallback d = 1.0
	}

	for _, tc := range cases {
		if got := ComputeScore(tc.remaining, tc.a, tc.b, tc.tier); got != tc.want {
			t.Errorf("%s: ComputeScore(%v,%d,%d,%s) = %d; want %d",
				tc.name, tc.remaining, tc.a, tc.b, tc.tier, got, tc.want)
		}
	}
}

func TestComputeScoreMonotonicInTime(t *testing.T) {
	for _, tier := range []Tier{TierStandard, TierAssisted} {
		prev := -1
		for s := 0; s <= 20; s++ {
			got := ComputeScore(float64(s), 6, 7, tier)
			if got <= prev {
				t.Fatalf("tier %s: score not strictly increasing at t=%d: %d after %d", tier, s, got, prev)
			}
			prev = got
		}
	}
}

func TestComputeScoreMonotonicInDifficulty(t *testing.T) {
	// 7x7 (d=3.0) must never score below 2x2 (d=0.8) at equal time
	for _, tier := range []Tier{TierStandard, TierAssisted} {
		for s := 0; s <= 20; s++ {
			hard := ComputeScore(float64(s), 7, 7, tier)
			easy := ComputeScore(float64(s), 2, 2, tier)
			if hard < easy {
				t.Fatalf("tier %s, t=%d: hard fact scored %d below easy fact %d", tier, s, hard, easy)
			}
		}
	}
}

func TestComputeScoreNonNegative(t *testing.T) {
	for a := 1; a <= 10; a++ {
		for b := 1; b <= 10; b++ {
			for _, tier := range []Tier{TierStandard, TierAssisted} {
				if got := ComputeScore(0.4, a, b, tier); got < 0 {
					t.Fatalf("ComputeScore(0.4,%d,%d,%s) = %d; negative", a, b, tier, got)
				}
			}
		}
	}
}

func TestParseTier(t *testing.T) {
	if tier, err := ParseTier("standard"); err != nil || tier != TierStandard {
		t.Fatalf("ParseTier(standard) = %v, %v", tier, err)
	}
	if tier, err := ParseTier("assisted"); err != nil || tier != TierAssisted {
		t.Fatalf("ParseTier(assisted) = %v, %v", tier, err)
	}
	for _, bad := range []string{"", "adult", "ASSISTED", "child"} {
		if _, err := ParseTier(bad); err == nil {
			t.Fatalf("ParseTier(%q) accepted invalid tier", bad)
		}
	}
}
