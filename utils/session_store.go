package utils

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Server-side session records: opaque token -> user id, with TTL.
// Redis is preferred so sessions survive restarts and work across
// instances; when it is unreachable every operation falls back to the
// in-memory map (single-instance only).

type sessionEntry struct {
	userID    uint
	expiresAt time.Time
}

var (
	sessionStore   = map[string]sessionEntry{}
	sessionStoreMu sync.Mutex
)

func sessionKey(token string) string {
	return "session:" + token
}

// NewSessionToken returns a fresh opaque session token.
func NewSessionToken() string {
	return uuid.NewString()
}

// SaveSession stores the token -> userID mapping with TTL.
func SaveSession(token string, userID uint, ttl time.Duration) {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rc.Set(ctx, sessionKey(token), strconv.FormatUint(uint64(userID), 10), ttl).Err(); err == nil {
			return
		}
	}
	sessionStoreMu.Lock()
	sessionStore[token] = sessionEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	sessionStoreMu.Unlock()
}

// LookupSession resolves a token to a user id. A missing or expired token
// reports false.
func LookupSession(token string) (uint, bool) {
	if token == "" {
		return 0, false
	}
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if val, err := rc.Get(ctx, sessionKey(token)).Result(); err == nil {
			id, convErr := strconv.ParseUint(val, 10, 64)
			if convErr != nil {
				return 0, false
			}
			return uint(id), true
		}
		// On Redis error (e.g. network) fall through to the memory fallback.
	}
	sessionStoreMu.Lock()
	defer sessionStoreMu.Unlock()
	entry, ok := sessionStore[token]
	if !ok {
		return 0, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(sessionStore, token)
		return 0, false
	}
	return entry.userID, true
}

// DestroySession removes the record. Destroying an unknown token is a no-op,
// so logout stays idempotent.
func DestroySession(token string) {
	if token == "" {
		return
	}
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = rc.Del(ctx, sessionKey(token)).Err()
	}
	sessionStoreMu.Lock()
	delete(sessionStore, token)
	sessionStoreMu.Unlock()
}
