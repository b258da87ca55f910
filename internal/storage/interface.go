package storage

import (
	"context"

	"github.com/gungle/gungle/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Firearm catalog operations.
	// ListFirearms must return records in stable insertion order;
	// daily target selection indexes into that ordering.
	SaveFirearm(ctx context.Context, firearm *model.Firearm) error
	GetFirearm(ctx context.Context, id model.FirearmID) (*model.Firearm, error)
	ListFirearms(ctx context.Context) ([]*model.Firearm, error)
	DeleteFirearm(ctx context.Context, id model.FirearmID) error

	// Session operations
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error)
	ListSessions(ctx context.Context) ([]*model.GameSession, error)
}
