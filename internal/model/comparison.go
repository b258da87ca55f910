package model

// ComparisonResult tags how a guessed attribute relates to the target's
type ComparisonResult string

const (
	ComparisonCorrect   ComparisonResult = "correct"
	ComparisonIncorrect ComparisonResult = "incorrect"
	ComparisonPartial   ComparisonResult = "partial"
)

// AttributeComparison is the outcome for a single attribute of a guess
type AttributeComparison struct {
	Attribute    string
	GuessValue   string
	CorrectValue string
	Result       ComparisonResult
}

// GuessOutcome is the full result of one guess submission.
// Values are never mutated after creation.
type GuessOutcome struct {
	Correct          bool
	Guess            Firearm
	Target           Firearm
	Comparisons      []AttributeComparison
	RemainingGuesses int
	GameCompleted    bool
}
