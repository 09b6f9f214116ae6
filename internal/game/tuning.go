package game

const (
	FieldW = 800.0
	FieldH = 600.0

	MaxHealth          = 100
	ContactDamage      = 25  // per enemy touch
	WrongAnswerPenalty = 10  // health cost of a wrong choice or a timeout
	InvulnSeconds      = 2.0 // contact debounce window

	AnswerScore   = 50 // × level per correct answer
	StreakBonus   = 25 // × streak when streak > 1
	KillScore     = 10 // × level per shot-down enemy
	ClearBonus    = 5  // × level per enemy swept on a correct answer
	LevelUpStreak = 3  // consecutive correct answers per level

	QuestionSeconds = 20.0 // countdown before a question expires
	ScoredPause     = 0.8  // pause between answer and next question

	ShotRadius = 18.0 // hit radius around the click point
)
