package comparison

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/gungle/gungle/internal/model"
)

type ComparisonSuite struct {
	suite.Suite
}

func TestComparisonSuite(t *testing.T) {
	suite.Run(t, new(ComparisonSuite))
}

func intPtr(v int) *int {
	return &v
}

func testFirearm() *model.Firearm {
	return &model.Firearm{
		ID:              "ak47",
		Name:            "AK-47",
		Manufacturer:    "Kalashnikov Concern",
		Type:            model.FirearmTypeRifle,
		Caliber:         "7.62x39mm",
		CountryOfOrigin: "Soviet Union",
		ModelType:       model.ModelTypeMilitary,
		YearIntroduced:  intPtr(1947),
		ActionType:      model.ActionLongStrokeGasPiston,
	}
}

func (s *ComparisonSuite) TestIdenticalFirearmsAllCorrect() {
	guess := testFirearm()
	target := testFirearm()

	comparisons := Compare(guess, target)

	s.Require().Len(comparisons, 7)
	for _, c := range comparisons {
		s.Equal(model.ComparisonCorrect, c.Result, "attribute %s", c.Attribute)
	}
}

func (s *ComparisonSuite) TestFixedAttributeOrder() {
	comparisons := Compare(testFirearm(), testFirearm())

	expected := []string{
		AttrManufacturer,
		AttrType,
		AttrCaliber,
		AttrActionType,
		AttrCountryOfOrigin,
		AttrAdoptionStatus,
		AttrYearIntroduced,
	}

	s.Require().Len(comparisons, len(expected))
	for i, attr := range expected {
		s.Equal(attr, comparisons[i].Attribute)
	}
}

func (s *ComparisonSuite) TestDifferingAttributesIncorrect() {
	guess := testFirearm()
	target := &model.Firearm{
		ID:              "mp40",
		Name:            "MP 40",
		Manufacturer:    "Erma Werke",
		Type:            model.FirearmTypeSMG,
		Caliber:         "9x19mm Parabellum",
		CountryOfOrigin: "Germany",
		ModelType:       model.ModelTypeCivilian,
		YearIntroduced:  intPtr(1847),
		ActionType:      model.ActionSimpleBlowback,
	}

	comparisons := Compare(guess, target)

	s.Require().Len(comparisons, 7)
	for _, c := range comparisons {
		s.Equal(model.ComparisonIncorrect, c.Result, "attribute %s", c.Attribute)
	}
}

func (s *ComparisonSuite) TestStringComparisonIsCaseSensitive() {
	guess := testFirearm()
	target := testFirearm()
	target.CountryOfOrigin = "soviet union"

	comparisons := Compare(guess, target)

	s.Equal(model.ComparisonIncorrect, comparisons[4].Result)
	s.Equal("Soviet Union", comparisons[4].GuessValue)
	s.Equal("soviet union", comparisons[4].CorrectValue)
}

func (s *ComparisonSuite) TestYearExactMatchCorrect() {
	comparisons := Compare(testFirearm(), testFirearm())

	year := comparisons[6]
	s.Equal(model.ComparisonCorrect, year.Result)
	s.Equal("1947", year.GuessValue)
	s.Equal("1947", year.CorrectValue)
}

func (s *ComparisonSuite) TestYearWithinTolerancePartial() {
	guess := testFirearm()
	target := testFirearm()
	target.YearIntroduced = intPtr(1950)

	comparisons := Compare(guess, target)
	s.Equal(model.ComparisonPartial, comparisons[6].Result)
}

func (s *ComparisonSuite) TestYearAtToleranceBoundaryPartial() {
	guess := testFirearm()
	target := testFirearm()
	target.YearIntroduced = intPtr(1947 + YearTolerance)

	comparisons := Compare(guess, target)
	s.Equal(model.ComparisonPartial, comparisons[6].Result)

	guess.YearIntroduced = intPtr(1947 + YearTolerance)
	target.YearIntroduced = intPtr(1947)

	comparisons = Compare(guess, target)
	s.Equal(model.ComparisonPartial, comparisons[6].Result)
}

func (s *ComparisonSuite) TestYearBeyondToleranceIncorrect() {
	guess := testFirearm()
	target := testFirearm()
	target.YearIntroduced = intPtr(1947 + YearTolerance + 1)

	comparisons := Compare(guess, target)
	s.Equal(model.ComparisonIncorrect, comparisons[6].Result)
}

func (s *ComparisonSuite) TestUnknownYearIncorrect() {
	guess := testFirearm()
	guess.YearIntroduced = nil
	target := testFirearm()

	comparisons := Compare(guess, target)
	s.Equal(model.ComparisonIncorrect, comparisons[6].Result)
	s.Equal("Unknown", comparisons[6].GuessValue)
	s.Equal("1947", comparisons[6].CorrectValue)

	target.YearIntroduced = nil
	comparisons = Compare(guess, target)
	s.Equal(model.ComparisonIncorrect, comparisons[6].Result)
	s.Equal("Unknown", comparisons[6].CorrectValue)
}

func (s *ComparisonSuite) TestComparisonCarriesBothValues() {
	guess := testFirearm()
	target := testFirearm()
	target.Manufacturer = "Izhmash"

	comparisons := Compare(guess, target)

	s.Equal("Kalashnikov Concern", comparisons[0].GuessValue)
	s.Equal("Izhmash", comparisons[0].CorrectValue)
	s.Equal(model.ComparisonIncorrect, comparisons[0].Result)
}
