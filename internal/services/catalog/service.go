package catalog

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gungle/gungle/internal/model"
	"github.com/gungle/gungle/internal/storage"
)

// Service provides firearm catalog management and lookup
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new catalog Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// AddFirearm adds a new firearm to the catalog.
// Fails with ErrFirearmExists if the ID is already taken.
func (s *Service) AddFirearm(ctx context.Context, firearm *model.Firearm) error {
	_, err := s.storage.GetFirearm(ctx, firearm.ID)
	if err == nil {
		return model.ErrFirearmExists
	}
	if !errors.Is(err, model.ErrFirearmNotFound) {
		return err
	}
	return s.storage.SaveFirearm(ctx, firearm)
}

// GetFirearm retrieves a firearm by ID
func (s *Service) GetFirearm(ctx context.Context, id model.FirearmID) (*model.Firearm, error) {
	return s.storage.GetFirearm(ctx, id)
}

// UpdateFirearm replaces an existing firearm record
func (s *Service) UpdateFirearm(ctx context.Context, id model.FirearmID, firearm *model.Firearm) error {
	if _, err := s.storage.GetFirearm(ctx, id); err != nil {
		return err
	}
	firearm.ID = id
	return s.storage.SaveFirearm(ctx, firearm)
}

// DeleteFirearm removes a firearm from the catalog
func (s *Service) DeleteFirearm(ctx context.Context, id model.FirearmID) error {
	if _, err := s.storage.GetFirearm(ctx, id); err != nil {
		return err
	}
	return s.storage.DeleteFirearm(ctx, id)
}

// ListFirearms returns all firearms in catalog insertion order
func (s *Service) ListFirearms(ctx context.Context) ([]*model.Firearm, error) {
	return s.storage.ListFirearms(ctx)
}

// FirearmNames returns the display names of all firearms, in catalog order
func (s *Service) FirearmNames(ctx context.Context) ([]string, error) {
	firearms, err := s.storage.ListFirearms(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(firearms))
	for i, f := range firearms {
		names[i] = f.Name
	}
	return names, nil
}

// FindByName resolves a firearm by case-insensitive exact name match.
// If two records share a name, the first in catalog order wins.
func (s *Service) FindByName(ctx context.Context, name string) (*model.Firearm, error) {
	firearms, err := s.storage.ListFirearms(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range firearms {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	return nil, model.ErrFirearmNotFound
}

// seedEntry mirrors the catalog seed file schema
type seedEntry struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Manufacturer    string `yaml:"manufacturer"`
	Type            string `yaml:"type"`
	Caliber         string `yaml:"caliber"`
	CountryOfOrigin string `yaml:"country_of_origin"`
	ModelType       string `yaml:"model_type"`
	YearIntroduced  *int   `yaml:"year_introduced"`
	ActionType      string `yaml:"action_type"`
	Description     string `yaml:"description"`
	ImageURL        string `yaml:"image_url"`
}

// LoadFromFile seeds the catalog from a YAML file.
// Records already present (by ID) are left untouched.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var entries []seedEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return err
	}

	firearms := make([]*model.Firearm, len(entries))
	for i, e := range entries {
		firearms[i] = &model.Firearm{
			ID:              model.FirearmID(e.ID),
			Name:            e.Name,
			Manufacturer:    e.Manufacturer,
			Type:            model.FirearmType(e.Type),
			Caliber:         e.Caliber,
			CountryOfOrigin: e.CountryOfOrigin,
			ModelType:       model.ModelType(e.ModelType),
			YearIntroduced:  e.YearIntroduced,
			ActionType:      model.ActionType(e.ActionType),
			Description:     e.Description,
			ImageURL:        e.ImageURL,
		}
	}

	loaded := 0
	for _, f := range firearms {
		err := s.AddFirearm(ctx, f)
		if errors.Is(err, model.ErrFirearmExists) {
			continue
		}
		if err != nil {
			return err
		}
		loaded++
	}

	s.logger.Info("catalog seeded",
		slog.String("path", path),
		slog.Int("loaded", loaded),
		slog.Int("total", len(firearms)),
	)

	return nil
}

// LoadFirearms directly adds a slice of firearms (useful for testing)
func (s *Service) LoadFirearms(ctx context.Context, firearms []*model.Firearm) error {
	for _, f := range firearms {
		if err := s.AddFirearm(ctx, f); err != nil {
			return err
		}
	}
	return nil
}
