package progression

import "math"

// The level curve is a geometric staircase: each level requires 1.5x the
// cumulative XP of the previous one, anchored at 100 XP for level 2.

// XpForLevel returns the cumulative XP threshold at which a user reaches
// the given level. Level 1 starts at 0 XP.
func XpForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return int(math.Ceil(100 * (math.Pow(1.5, float64(level-1)) - 1)))
}

// Level maps cumulative XP to a level. Non-decreasing in xp, Level(0) = 1.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	level := int(math.Floor(math.Log(float64(xp)/100+1)/math.Log(1.5))) + 1
	// Float rounding at exact thresholds can land one step off; settle
	// against the staircase so Level(XpForLevel(L)) == L always holds.
	for level > 1 && xp < XpForLevel(level) {
		level--
	}
	for xp >= XpForLevel(level+1) {
		level++
	}
	return level
}
