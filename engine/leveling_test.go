package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelOfThresholds(t *testing.T) {
	cases := []struct {
		xp    uint
		level int
		title string
	}{
		{0, 1, "Beginner"},
		{49, 1, "Beginner"},
		{50, 2, "Intermediate"},
		{149, 2, "Intermediate"},
		{150, 3, "Advanced"},
		{299, 3, "Advanced"},
		{300, 4, "Expert"},
		{325, 4, "Expert"},
		{100000, 4, "Expert"},
	}

	for _, tc := range cases {
		info := LevelOf(tc.xp)
		assert.Equal(t, tc.level, info.Level, "xp=%d", tc.xp)
		assert.Equal(t, tc.title, info.Title, "xp=%d", tc.xp)
	}
}

func TestLevelOfMonotonic(t *testing.T) {
	prev := LevelOf(0).Level
	for xp := uint(1); xp <= 400; xp++ {
		cur := LevelOf(xp).Level
		assert.GreaterOrEqual(t, cur, prev, "level dropped at xp=%d", xp)
		prev = cur
	}
}

func TestQuizXP(t *testing.T) {
	assert.Equal(t, uint(10), QuizXP(0))
	assert.Equal(t, uint(10), QuizXP(60))
	assert.Equal(t, uint(10), QuizXP(99))
	assert.Equal(t, uint(30), QuizXP(100))
}
