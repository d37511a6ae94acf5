package domain

// Level bands. Thresholds are inclusive lower bounds; every non-negative
// experience value maps to exactly one band.
var levelBands = []struct {
	MinXP int64
	Level int
	Name  string
}{
	{500, 6, "전문가"},
	{400, 5, "숙련자"},
	{300, 4, "중급자"},
	{200, 3, "초보자"},
	{100, 2, "입문자"},
	{0, 1, "관심인"},
}

// LevelForXP maps cumulative experience points to a (level, level name) pair.
// It is recomputed after every experience change and is the only source of
// the persisted level columns.
func LevelForXP(xp int64) (int, string) {
	for _, band := range levelBands {
		if xp >= band.MinXP {
			return band.Level, band.Name
		}
	}
	// xp < 0 never happens for persisted users; map it to the lowest band.
	return 1, "관심인"
}
