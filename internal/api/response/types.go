package response

import (
	"time"

	"github.com/gungle/gungle/internal/model"
)

// Firearm represents a catalog record in API responses
type Firearm struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Manufacturer    string `json:"manufacturer"`
	Type            string `json:"type"`
	Caliber         string `json:"caliber"`
	CountryOfOrigin string `json:"country_of_origin"`
	ModelType       string `json:"model_type"`
	YearIntroduced  *int   `json:"year_introduced"`
	ActionType      string `json:"action_type"`
	Description     string `json:"description,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
}

// FirearmFromModel converts a model.Firearm to a response Firearm
func FirearmFromModel(f *model.Firearm) Firearm {
	return Firearm{
		ID:              string(f.ID),
		Name:            f.Name,
		Manufacturer:    f.Manufacturer,
		Type:            string(f.Type),
		Caliber:         f.Caliber,
		CountryOfOrigin: f.CountryOfOrigin,
		ModelType:       string(f.ModelType),
		YearIntroduced:  f.YearIntroduced,
		ActionType:      string(f.ActionType),
		Description:     f.Description,
		ImageURL:        f.ImageURL,
	}
}

// AttributeComparison is the outcome for one attribute of a guess
type AttributeComparison struct {
	Attribute    string `json:"attribute"`
	GuessValue   string `json:"guess_value"`
	CorrectValue string `json:"correct_value"`
	Result       string `json:"result"`
}

// AttributeComparisonFromModel converts model.AttributeComparison
func AttributeComparisonFromModel(c model.AttributeComparison) AttributeComparison {
	return AttributeComparison{
		Attribute:    c.Attribute,
		GuessValue:   c.GuessValue,
		CorrectValue: c.CorrectValue,
		Result:       string(c.Result),
	}
}

// GuessResult is the response for a guess submission
type GuessResult struct {
	IsCorrect        bool                  `json:"is_correct"`
	GuessFirearm     Firearm               `json:"guess_firearm"`
	TargetFirearm    *Firearm              `json:"target_firearm,omitempty"`
	Comparisons      []AttributeComparison `json:"comparisons"`
	RemainingGuesses int                   `json:"remaining_guesses"`
	GameCompleted    bool                  `json:"game_completed"`
}

// GuessResultFromModel converts a model.GuessOutcome.
// The target record is withheld until the game is completed.
func GuessResultFromModel(o *model.GuessOutcome) GuessResult {
	comparisons := make([]AttributeComparison, len(o.Comparisons))
	for i, c := range o.Comparisons {
		comparisons[i] = AttributeComparisonFromModel(c)
	}

	var target *Firearm
	if o.GameCompleted {
		t := FirearmFromModel(&o.Target)
		target = &t
	}

	return GuessResult{
		IsCorrect:        o.Correct,
		GuessFirearm:     FirearmFromModel(&o.Guess),
		TargetFirearm:    target,
		Comparisons:      comparisons,
		RemainingGuesses: o.RemainingGuesses,
		GameCompleted:    o.GameCompleted,
	}
}

// NewGame is the response for starting a game
type NewGame struct {
	SessionID       string `json:"session_id"`
	FirearmImageURL string `json:"firearm_image_url,omitempty"`
	MaxGuesses      int    `json:"max_guesses"`
}

// NewGameFromModel builds a NewGame view. Only the target's image is
// exposed; its identity stays hidden.
func NewGameFromModel(s *model.GameSession) NewGame {
	return NewGame{
		SessionID:       string(s.ID),
		FirearmImageURL: s.Target.ImageURL,
		MaxGuesses:      s.MaxGuesses,
	}
}

// GameStatus is the status view of a session
type GameStatus struct {
	SessionID         string        `json:"session_id"`
	TargetFirearmName *string       `json:"target_firearm_name"`
	GuessesMade       int           `json:"guesses_made"`
	MaxGuesses        int           `json:"max_guesses"`
	IsCompleted       bool          `json:"is_completed"`
	IsWon             bool          `json:"is_won"`
	TargetFirearm     *Firearm      `json:"target_firearm,omitempty"`
	AllGuessResults   []GuessResult `json:"all_guess_results"`
}

// GameStatusFromModel builds the status view. The target is included
// only once the session is terminal; guess history is always included.
func GameStatusFromModel(s *model.GameSession) GameStatus {
	results := make([]GuessResult, len(s.History))
	for i := range s.History {
		results[i] = GuessResultFromModel(&s.History[i])
	}

	var targetName *string
	var target *Firearm
	if s.IsCompleted() {
		n := s.Target.Name
		targetName = &n
		t := FirearmFromModel(&s.Target)
		target = &t
	}

	return GameStatus{
		SessionID:         string(s.ID),
		TargetFirearmName: targetName,
		GuessesMade:       len(s.Guesses),
		MaxGuesses:        s.MaxGuesses,
		IsCompleted:       s.IsCompleted(),
		IsWon:             s.IsWon(),
		TargetFirearm:     target,
		AllGuessResults:   results,
	}
}

// GameReveal is the reveal view of a completed session
type GameReveal struct {
	TargetFirearm   Firearm       `json:"target_firearm"`
	GuessesMade     []string      `json:"guesses_made"`
	IsWon           bool          `json:"is_won"`
	AllGuessResults []GuessResult `json:"all_guess_results"`
}

// GameRevealFromModel builds the reveal view of a completed session
func GameRevealFromModel(s *model.GameSession) GameReveal {
	results := make([]GuessResult, len(s.History))
	for i := range s.History {
		results[i] = GuessResultFromModel(&s.History[i])
	}

	return GameReveal{
		TargetFirearm:   FirearmFromModel(&s.Target),
		GuessesMade:     s.Guesses,
		IsWon:           s.IsWon(),
		AllGuessResults: results,
	}
}

// GameSession is the admin view of a session
type GameSession struct {
	SessionID     string    `json:"session_id"`
	TargetFirearm Firearm   `json:"target_firearm"`
	GuessesMade   []string  `json:"guesses_made"`
	IsCompleted   bool      `json:"is_completed"`
	IsWon         bool      `json:"is_won"`
	CreatedAt     time.Time `json:"created_at"`
	MaxGuesses    int       `json:"max_guesses"`
}

// GameSessionFromModel converts a model.GameSession for the admin view
func GameSessionFromModel(s *model.GameSession) GameSession {
	return GameSession{
		SessionID:     string(s.ID),
		TargetFirearm: FirearmFromModel(&s.Target),
		GuessesMade:   s.Guesses,
		IsCompleted:   s.IsCompleted(),
		IsWon:         s.IsWon(),
		CreatedAt:     s.CreatedAt,
		MaxGuesses:    s.MaxGuesses,
	}
}

// DailyFirearm is the debug view of today's target
type DailyFirearm struct {
	Firearm Firearm `json:"firearm"`
	Message string  `json:"message"`
}
