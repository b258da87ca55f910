package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gungle/gungle/internal/model"
	"github.com/gungle/gungle/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Firearm operations

func (s *Storage) SaveFirearm(ctx context.Context, firearm *model.Firearm) error {
	data, err := json.Marshal(firearm)
	if err != nil {
		return err
	}

	key := firearmKey(firearm.ID)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + order index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	if exists == 0 {
		pipe.RPush(ctx, firearmOrderKey(), string(firearm.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetFirearm(ctx context.Context, id model.FirearmID) (*model.Firearm, error) {
	data, err := s.client.Get(ctx, firearmKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrFirearmNotFound
		}
		return nil, err
	}

	var firearm model.Firearm
	if err := json.Unmarshal(data, &firearm); err != nil {
		return nil, err
	}
	return &firearm, nil
}

func (s *Storage) ListFirearms(ctx context.Context) ([]*model.Firearm, error) {
	ids, err := s.client.LRange(ctx, firearmOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.Firearm{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = firearmKey(model.FirearmID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	firearms := make([]*model.Firearm, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var firearm model.Firearm
		if err := json.Unmarshal([]byte(val.(string)), &firearm); err != nil {
			continue // Skip invalid data
		}
		firearms = append(firearms, &firearm)
	}

	return firearms, nil
}

func (s *Storage) DeleteFirearm(ctx context.Context, id model.FirearmID) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, firearmKey(id))
	pipe.LRem(ctx, firearmOrderKey(), 0, string(id))
	_, err := pipe.Exec(ctx)
	return err
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	key := sessionKey(session.ID)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, s.cfg.SessionTTL)
	if exists == 0 {
		pipe.RPush(ctx, sessionIndexKey(), string(session.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.GameSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) ListSessions(ctx context.Context) ([]*model.GameSession, error) {
	ids, err := s.client.LRange(ctx, sessionIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.GameSession{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = sessionKey(model.SessionID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	sessions := make([]*model.GameSession, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Session may have expired
		}
		var session model.GameSession
		if err := json.Unmarshal([]byte(val.(string)), &session); err != nil {
			continue // Skip invalid data
		}
		sessions = append(sessions, &session)
	}

	return sessions, nil
}
