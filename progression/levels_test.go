package progression

import "testing"

func TestLevelAtZero(t *testing.T) {
	if got := Level(0); got != 1 {
		t.Errorf("Level(0) = %d, want 1", got)
	}
}

func TestXpForLevelOne(t *testing.T) {
	if got := XpForLevel(1); got != 0 {
		t.Errorf("XpForLevel(1) = %d, want 0", got)
	}
}

func TestLevelNonDecreasing(t *testing.T) {
	prev := Level(0)
	for xp := 1; xp <= 20000; xp++ {
		level := Level(xp)
		if level < prev {
			t.Fatalf("Level(%d) = %d dropped below Level(%d) = %d", xp, level, xp-1, prev)
		}
		prev = level
	}
}

func TestXpForLevelStrictlyIncreasing(t *testing.T) {
	for level := 1; level < 50; level++ {
		if XpForLevel(level+1) <= XpForLevel(level) {
			t.Errorf("XpForLevel(%d) = %d not greater than XpForLevel(%d) = %d",
				level+1, XpForLevel(level+1), level, XpForLevel(level))
		}
	}
}

func TestLevelXpRoundTrip(t *testing.T) {
	for level := 1; level <= 50; level++ {
		if got := Level(XpForLevel(level)); got != level {
			t.Errorf("Level(XpForLevel(%d)) = %d, want %d", level, got, level)
		}
	}
}

func TestKnownThresholds(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{25, 1},
		{49, 1},
		{50, 2},
		{124, 2},
		{125, 3},
		{220, 3},
		{237, 3},
		{238, 4},
		{245, 4},
	}
	for _, tc := range cases {
		if got := Level(tc.xp); got != tc.want {
			t.Errorf("Level(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}

	if got := XpForLevel(2); got != 50 {
		t.Errorf("XpForLevel(2) = %d, want 50", got)
	}
	if got := XpForLevel(4); got != 238 {
		t.Errorf("XpForLevel(4) = %d, want 238", got)
	}
}

func TestXpJustBelowThresholdStaysBelow(t *testing.T) {
	for level := 2; level <= 50; level++ {
		threshold := XpForLevel(level)
		if got := Level(threshold - 1); got != level-1 {
			t.Errorf("Level(%d) = %d, want %d (one below the level-%d threshold)",
				threshold-1, got, level-1, level)
		}
	}
}
