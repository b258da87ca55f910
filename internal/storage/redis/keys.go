package redis

import (
	"fmt"

	"github.com/gungle/gungle/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "gungle"

// firearmKey returns the Redis key for a Firearm
func firearmKey(id model.FirearmID) string {
	return fmt.Sprintf("%s:firearm:%s", keyPrefix, id)
}

// firearmOrderKey returns the Redis key for the LIST of firearm IDs in
// catalog insertion order
func firearmOrderKey() string {
	return fmt.Sprintf("%s:idx:firearm_order", keyPrefix)
}

// sessionKey returns the Redis key for a GameSession
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionIndexKey returns the Redis key for the LIST of session IDs
func sessionIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}
