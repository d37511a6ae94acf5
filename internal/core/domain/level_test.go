package domain_test

import (
	"testing"

	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	testCases := []struct {
		name      string
		xp        int64
		wantLevel int
		wantName  string
	}{
		{"zero xp", 0, 1, "관심인"},
		{"top of band one", 99, 1, "관심인"},
		{"band two lower edge", 100, 2, "입문자"},
		{"top of band two", 199, 2, "입문자"},
		{"band three lower edge", 200, 3, "초보자"},
		{"top of band three", 299, 3, "초보자"},
		{"band four lower edge", 300, 4, "중급자"},
		{"top of band four", 399, 4, "중급자"},
		{"band five lower edge", 400, 5, "숙련자"},
		{"top of band five", 499, 5, "숙련자"},
		{"band six lower edge", 500, 6, "전문가"},
		{"far beyond band six", 123456, 6, "전문가"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, name := domain.LevelForXP(tc.xp)
			assert.Equal(t, tc.wantLevel, level)
			assert.Equal(t, tc.wantName, name)
		})
	}
}

func TestLevelForXPBandsAreContiguous(t *testing.T) {
	// Walk every value in the finite bands; each step moves up by at most
	// one level and never skips a band.
	prevLevel := 1
	for xp := int64(0); xp <= 600; xp++ {
		level, name := domain.LevelForXP(xp)
		assert.NotEmpty(t, name)
		assert.GreaterOrEqual(t, level, prevLevel)
		assert.LessOrEqual(t, level-prevLevel, 1)
		prevLevel = level
	}
	assert.Equal(t, 6, prevLevel)
}
