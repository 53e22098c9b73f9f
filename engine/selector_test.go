package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyWindow(t *testing.T) {
	cases := []struct {
		skill     int
		low, high int
	}{
		{50, 35, 65},
		{0, 1, 15},
		{5, 1, 20},
		{100, 85, 100},
		{95, 80, 100},
		{16, 1, 31},
		{85, 70, 100},
	}

	for _, tc := range cases {
		low, high := DifficultyWindow(tc.skill)
		assert.Equal(t, tc.low, low, "skill=%d", tc.skill)
		assert.Equal(t, tc.high, high, "skill=%d", tc.skill)
	}
}

func TestDifficultyWindowAlwaysValid(t *testing.T) {
	for skill := 0; skill <= 100; skill++ {
		low, high := DifficultyWindow(skill)
		assert.GreaterOrEqual(t, low, 1)
		assert.LessOrEqual(t, high, 100)
		assert.LessOrEqual(t, low, high)
	}
}
