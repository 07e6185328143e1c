package progression

// XPPerLevel is the XP span of one level. Levels start at 1.
const XPPerLevel = 1000

// Star thresholds over the session completion ratio.
const (
	oneStarRatio   = 0.4
	twoStarRatio   = 0.6
	threeStarRatio = 0.8
	MaxStars       = 3
)

// LevelFromXP returns the level reached at the given cumulative XP.
func LevelFromXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// NextLevelXP returns the cumulative XP needed to finish the given level.
func NextLevelXP(level int) int {
	if level < 1 {
		level = 1
	}
	return level * XPPerLevel
}

// StarsForRatio maps a completion ratio to a star count, keeping the
// current count when no threshold is newly reached. Stars never decrease
// within a session.
func StarsForRatio(ratio float64, current int) int {
	stars := current
	switch {
	case ratio >= threeStarRatio:
		stars = 3
	case ratio >= twoStarRatio:
		stars = 2
	case ratio >= oneStarRatio:
		stars = 1
	}
	if stars < current {
		return current
	}
	return stars
}
