package comparison

import (
	"strconv"

	"github.com/gungle/gungle/internal/model"
)

// YearTolerance is the window within which a wrong introduction year
// still counts as a partial match
const YearTolerance = 5

// Attribute labels, in the fixed output order clients render
const (
	AttrManufacturer    = "manufacturer"
	AttrType            = "type"
	AttrCaliber         = "caliber"
	AttrActionType      = "action_type"
	AttrCountryOfOrigin = "country_of_origin"
	AttrAdoptionStatus  = "adoption_status"
	AttrYearIntroduced  = "year_introduced"
)

// Compare produces the attribute-by-attribute comparison between a guess
// and the target. Pure function of its inputs; the output order is fixed.
func Compare(guess, target *model.Firearm) []model.AttributeComparison {
	return []model.AttributeComparison{
		exact(AttrManufacturer, guess.Manufacturer, target.Manufacturer),
		exact(AttrType, string(guess.Type), string(target.Type)),
		exact(AttrCaliber, guess.Caliber, target.Caliber),
		exact(AttrActionType, string(guess.ActionType), string(target.ActionType)),
		exact(AttrCountryOfOrigin, guess.CountryOfOrigin, target.CountryOfOrigin),
		exact(AttrAdoptionStatus, string(guess.ModelType), string(target.ModelType)),
		compareYears(guess.YearIntroduced, target.YearIntroduced),
	}
}

// exact compares as-stored values case-sensitively
func exact(attribute, guessValue, correctValue string) model.AttributeComparison {
	result := model.ComparisonIncorrect
	if guessValue == correctValue {
		result = model.ComparisonCorrect
	}
	return model.AttributeComparison{
		Attribute:    attribute,
		GuessValue:   guessValue,
		CorrectValue: correctValue,
		Result:       result,
	}
}

// compareYears is incorrect when either year is unknown, correct on an
// exact match, and partial within the tolerance window
func compareYears(guess, target *int) model.AttributeComparison {
	result := model.ComparisonIncorrect
	if guess != nil && target != nil {
		diff := *guess - *target
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff == 0:
			result = model.ComparisonCorrect
		case diff <= YearTolerance:
			result = model.ComparisonPartial
		}
	}
	return model.AttributeComparison{
		Attribute:    AttrYearIntroduced,
		GuessValue:   formatYear(guess),
		CorrectValue: formatYear(target),
		Result:       result,
	}
}

func formatYear(year *int) string {
	if year == nil {
		return "Unknown"
	}
	return strconv.Itoa(*year)
}
