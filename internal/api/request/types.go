package request

// NameGuess is the body for submitting a guess by firearm name
type NameGuess struct {
	FirearmName string `json:"firearm_name"`
}

// Firearm is the body for creating or updating a catalog record
type Firearm struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Manufacturer    string `json:"manufacturer"`
	Type            string `json:"type"`
	Caliber         string `json:"caliber"`
	CountryOfOrigin string `json:"country_of_origin"`
	ModelType       string `json:"model_type"`
	YearIntroduced  *int   `json:"year_introduced,omitempty"`
	ActionType      string `json:"action_type"`
	Description     string `json:"description,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
}
