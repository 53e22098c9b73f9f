package engine

// SkillWindowRadius is how far the difficulty window extends on each side
// of the skill score.
const SkillWindowRadius = 15

// DifficultyWindow returns the inclusive question-difficulty range centered
// on a 0-100 skill score, clamped to the valid 1-100 difficulty scale.
func DifficultyWindow(skillScore int) (low, high int) {
	low = skillScore - SkillWindowRadius
	if low < 1 {
		low = 1
	}
	high = skillScore + SkillWindowRadius
	if high > 100 {
		high = 100
	}
	return low, high
}
