package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case NewGame:
		o.printNewGame(v)
	case GuessResult:
		o.printGuessResult(v)
	case GameStatus:
		o.printGameStatus(v)
	case GameReveal:
		o.printGameReveal(v)
	case Firearm:
		o.printFirearm(v)
	case []Firearm:
		o.printFirearmList(v)
	case []string:
		o.printNames(v)
	case DailyFirearm:
		o.printDailyFirearm(v)
	case []GameSession:
		o.printSessions(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// NewGame response type (matches API)
type NewGame struct {
	SessionID       string `json:"session_id"`
	FirearmImageURL string `json:"firearm_image_url,omitempty"`
	MaxGuesses      int    `json:"max_guesses"`
}

// Firearm response type
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

// AttributeComparison response type
type AttributeComparison struct {
	Attribute    string `json:"attribute"`
	GuessValue   string `json:"guess_value"`
	CorrectValue string `json:"correct_value"`
	Result       string `json:"result"`
}

// GuessResult response type
type GuessResult struct {
	IsCorrect        bool                  `json:"is_correct"`
	GuessFirearm     Firearm               `json:"guess_firearm"`
	TargetFirearm    *Firearm              `json:"target_firearm,omitempty"`
	Comparisons      []AttributeComparison `json:"comparisons"`
	RemainingGuesses int                   `json:"remaining_guesses"`
	GameCompleted    bool                  `json:"game_completed"`
}

// GameStatus response type
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

// GameReveal response type
type GameReveal struct {
	TargetFirearm   Firearm       `json:"target_firearm"`
	GuessesMade     []string      `json:"guesses_made"`
	IsWon           bool          `json:"is_won"`
	AllGuessResults []GuessResult `json:"all_guess_results"`
}

// GameSession response type (admin view)
type GameSession struct {
	SessionID     string    `json:"session_id"`
	TargetFirearm Firearm   `json:"target_firearm"`
	GuessesMade   []string  `json:"guesses_made"`
	IsCompleted   bool      `json:"is_completed"`
	IsWon         bool      `json:"is_won"`
	CreatedAt     time.Time `json:"created_at"`
	MaxGuesses    int       `json:"max_guesses"`
}

// DailyFirearm response type
type DailyFirearm struct {
	Firearm Firearm `json:"firearm"`
	Message string  `json:"message"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printNewGame(g NewGame) {
	fmt.Printf("Session: %s\n", g.SessionID)
	fmt.Printf("Max Guesses: %d\n", g.MaxGuesses)
	if g.FirearmImageURL != "" {
		fmt.Printf("Image: %s\n", g.FirearmImageURL)
	}
}

func (o *Output) printGuessResult(r GuessResult) {
	if r.IsCorrect {
		fmt.Printf("Correct! The firearm was %s\n", r.GuessFirearm.Name)
	} else {
		fmt.Printf("Incorrect: %s\n", r.GuessFirearm.Name)
	}

	o.printComparisons(r.Comparisons)

	fmt.Printf("\nRemaining Guesses: %d\n", r.RemainingGuesses)
	if r.GameCompleted {
		fmt.Println("Game complete!")
		if r.TargetFirearm != nil {
			fmt.Printf("Target: %s\n", r.TargetFirearm.Name)
		}
	}
}

func (o *Output) printComparisons(comparisons []AttributeComparison) {
	if len(comparisons) == 0 {
		return
	}

	fmt.Println("\nComparisons:")
	width := 0
	for _, c := range comparisons {
		if len(c.Attribute) > width {
			width = len(c.Attribute)
		}
	}
	for _, c := range comparisons {
		marker := " "
		switch c.Result {
		case "correct":
			marker = "="
		case "partial":
			marker = "~"
		case "incorrect":
			marker = "x"
		}
		fmt.Printf("  %s %-*s %s\n", marker, width, c.Attribute, c.GuessValue)
	}
}

func (o *Output) printGameStatus(s GameStatus) {
	fmt.Printf("Session: %s\n", s.SessionID)
	fmt.Printf("Guesses: %d/%d\n", s.GuessesMade, s.MaxGuesses)

	state := "in progress"
	if s.IsCompleted {
		if s.IsWon {
			state = "won"
		} else {
			state = "lost"
		}
	}
	fmt.Printf("State: %s\n", state)

	if s.TargetFirearmName != nil {
		fmt.Printf("Target: %s\n", *s.TargetFirearmName)
	}

	if len(s.AllGuessResults) > 0 {
		guesses := make([]string, len(s.AllGuessResults))
		for i, r := range s.AllGuessResults {
			guesses[i] = r.GuessFirearm.Name
		}
		fmt.Printf("History: %s\n", strings.Join(guesses, ", "))
	}
}

func (o *Output) printGameReveal(r GameReveal) {
	outcome := "Lost"
	if r.IsWon {
		outcome = "Won"
	}
	fmt.Printf("Result: %s\n", outcome)
	fmt.Printf("Target: %s\n", r.TargetFirearm.Name)
	if len(r.GuessesMade) > 0 {
		fmt.Printf("Guesses: %s\n", strings.Join(r.GuessesMade, ", "))
	}
}

func (o *Output) printFirearm(f Firearm) {
	fmt.Printf("Firearm: %s (%s)\n", f.Name, f.ID)
	fmt.Printf("Manufacturer: %s\n", f.Manufacturer)
	fmt.Printf("Type: %s\n", f.Type)
	fmt.Printf("Caliber: %s\n", f.Caliber)
	fmt.Printf("Country: %s\n", f.CountryOfOrigin)
	fmt.Printf("Model Type: %s\n", f.ModelType)
	if f.YearIntroduced != nil {
		fmt.Printf("Year: %d\n", *f.YearIntroduced)
	} else {
		fmt.Println("Year: Unknown")
	}
	fmt.Printf("Action: %s\n", f.ActionType)
	if f.Description != "" {
		fmt.Printf("Description: %s\n", f.Description)
	}
}

func (o *Output) printFirearmList(firearms []Firearm) {
	fmt.Printf("Firearms (%d):\n", len(firearms))
	for _, f := range firearms {
		fmt.Printf("  - %s (%s) - %s, %s\n", f.Name, f.ID, f.Type, f.CountryOfOrigin)
	}
}

func (o *Output) printNames(names []string) {
	for _, n := range names {
		fmt.Println(n)
	}
}

func (o *Output) printDailyFirearm(d DailyFirearm) {
	if d.Message != "" {
		fmt.Println(d.Message)
	}
	o.printFirearm(d.Firearm)
}

func (o *Output) printSessions(sessions []GameSession) {
	fmt.Printf("Sessions (%d):\n", len(sessions))
	for _, s := range sessions {
		state := "open"
		if s.IsCompleted {
			if s.IsWon {
				state = "won"
			} else {
				state = "lost"
			}
		}
		fmt.Printf("  - %s - %s, %d/%d guesses, target %s\n",
			s.SessionID, state, len(s.GuessesMade), s.MaxGuesses, s.TargetFirearm.Name)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
