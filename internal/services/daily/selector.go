package daily

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"log/slog"
	"sync"
	"time"

	"github.com/gungle/gungle/internal/dependencies/clock"
	"github.com/gungle/gungle/internal/model"
	"github.com/gungle/gungle/internal/services/catalog"
)

// DateLayout is the ISO-8601 date format fed into the selection hash
const DateLayout = "2006-01-02"

// Selector deterministically maps a calendar date to one catalog record.
// Every caller on the same date gets the same target.
type Selector struct {
	catalog *catalog.Service
	clock   clock.Clock
	logger  *slog.Logger

	mu         sync.Mutex
	cachedDate string
	cached     *model.Firearm
}

// New creates a new daily Selector
func New(catalogService *catalog.Service, clk clock.Clock, logger *slog.Logger) *Selector {
	return &Selector{
		catalog: catalogService,
		clock:   clk,
		logger:  logger,
	}
}

// Select returns the target firearm for the given date.
// The date string is hashed with SHA-256 and the first four bytes,
// read as a big-endian unsigned integer, index the catalog modulo its
// size. Fails with ErrEmptyCatalog if the catalog has no records.
func (s *Selector) Select(ctx context.Context, date time.Time) (*model.Firearm, error) {
	firearms, err := s.catalog.ListFirearms(ctx)
	if err != nil {
		return nil, err
	}
	if len(firearms) == 0 {
		return nil, model.ErrEmptyCatalog
	}

	sum := sha256.Sum256([]byte(date.Format(DateLayout)))
	seed := binary.BigEndian.Uint32(sum[:4])
	idx := int(seed % uint32(len(firearms)))

	return firearms[idx], nil
}

// Today returns the target firearm for the current wall-clock date.
// The result is cached per process and recomputed when the date changes.
func (s *Selector) Today(ctx context.Context) (*model.Firearm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	today := now.Format(DateLayout)

	if s.cachedDate == today && s.cached != nil {
		return s.cached, nil
	}

	target, err := s.Select(ctx, now)
	if err != nil {
		return nil, err
	}

	s.cachedDate = today
	s.cached = target

	s.logger.Info("daily target selected",
		slog.String("date", today),
		slog.String("firearm_id", string(target.ID)),
	)

	return target, nil
}
