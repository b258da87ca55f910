package factory

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/gungle/gungle/internal/dependencies/mocks"
	"github.com/gungle/gungle/internal/model"
	"github.com/gungle/gungle/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDGen *mocks.MockIDGenerator
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The clock starts on 2024-01-15, so with the test catalog loaded the
// daily target is the AK-47.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	mockIDGen := mocks.NewMockIDGenerator()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	app := newWithDependencies(store, mockClock, mockIDGen, 0, logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDGen: mockIDGen,
	}
}

// LoadTestCatalog loads a small two-entry catalog for testing
func (t *TestApp) LoadTestCatalog(ctx context.Context) error {
	year1947 := 1947
	year1936 := 1936

	firearms := []*model.Firearm{
		{
			ID:              "ak47",
			Name:            "AK-47",
			Manufacturer:    "Kalashnikov Concern",
			Type:            model.FirearmTypeRifle,
			Caliber:         "7.62x39mm",
			CountryOfOrigin: "Soviet Union",
			ModelType:       model.ModelTypeMilitary,
			YearIntroduced:  &year1947,
			ActionType:      model.ActionLongStrokeGasPiston,
			ImageURL:        "/uploads/ak47.jpg",
		},
		{
			ID:              "m1_garand",
			Name:            "M1 Garand",
			Manufacturer:    "Springfield Armory",
			Type:            model.FirearmTypeRifle,
			Caliber:         ".30-06 Springfield",
			CountryOfOrigin: "United States",
			ModelType:       model.ModelTypeMilitary,
			YearIntroduced:  &year1936,
			ActionType:      model.ActionGasTrap,
			ImageURL:        "/uploads/m1_garand.jpg",
		},
	}
	return t.CatalogService.LoadFirearms(ctx, firearms)
}
