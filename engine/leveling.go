package engine

// LevelInfo is the derived progression state for a user.
type LevelInfo struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

// Experience awards for a completed quiz.
const (
	BaseQuizXP        = 10
	PerfectScoreBonus = 20
)

// LevelOf maps cumulative experience to a level. Level is always derived
// from experience through this function; no other code path may set it.
func LevelOf(experience uint) LevelInfo {
	switch {
	case experience < 50:
		return LevelInfo{Level: 1, Title: "Beginner"}
	case experience < 150:
		return LevelInfo{Level: 2, Title: "Intermediate"}
	case experience < 300:
		return LevelInfo{Level: 3, Title: "Advanced"}
	default:
		return LevelInfo{Level: 4, Title: "Expert"}
	}
}

// QuizXP returns the experience awarded for a completed quiz. A perfect
// score earns the bonus on top of the base award.
func QuizXP(score int) uint {
	xp := uint(BaseQuizXP)
	if score == 100 {
		xp += PerfectScoreBonus
	}
	return xp
}
