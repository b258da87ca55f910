package memory

import (
	"context"
	"sync"

	"github.com/gungle/gungle/internal/model"
	"github.com/gungle/gungle/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	firearms map[model.FirearmID]*model.Firearm
	// firearmOrder preserves catalog insertion order for stable listing
	firearmOrder []model.FirearmID
	sessions     map[model.SessionID]*model.GameSession
	sessionOrder []model.SessionID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		firearms: make(map[model.FirearmID]*model.Firearm),
		sessions: make(map[model.SessionID]*model.GameSession),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Firearm operations

func (s *Storage) SaveFirearm(ctx context.Context, firearm *model.Firearm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.firearms[firearm.ID]; !ok {
		s.firearmOrder = append(s.firearmOrder, firearm.ID)
	}
	s.firearms[firearm.ID] = firearm
	return nil
}

func (s *Storage) GetFirearm(ctx context.Context, id model.FirearmID) (*model.Firearm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	firearm, ok := s.firearms[id]
	if !ok {
		return nil, model.ErrFirearmNotFound
	}
	return firearm, nil
}

func (s *Storage) ListFirearms(ctx context.Context) ([]*model.Firearm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Firearm, 0, len(s.firearmOrder))
	for _, id := range s.firearmOrder {
		result = append(result, s.firearms[id])
	}
	return result, nil
}

func (s *Storage) DeleteFirearm(ctx context.Context, id model.FirearmID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.firearms[id]; !ok {
		return nil
	}
	delete(s.firearms, id)
	for i, fid := range s.firearmOrder {
		if fid == id {
			s.firearmOrder = append(s.firearmOrder[:i], s.firearmOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.ID]; !ok {
		s.sessionOrder = append(s.sessionOrder, session.ID)
	}
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) ListSessions(ctx context.Context) ([]*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.GameSession, 0, len(s.sessionOrder))
	for _, id := range s.sessionOrder {
		result = append(result, s.sessions[id])
	}
	return result, nil
}
