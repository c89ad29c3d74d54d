// Package client is the Go counterpart of the browser client: a typed API
// client plus an http.RoundTripper that transparently refreshes an expired
// access token and replays the failed request once.
package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"dashmonkey/internal/errors"
)

// CachedSession is the persisted token state of one logged-in user.
type CachedSession struct {
	Username     string    `json:"username"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// SessionCache persists the token pair across process restarts.
// Load returns (nil, nil) when no session is stored; Clear on an empty cache
// is a no-op.
type SessionCache interface {
	Load() (*CachedSession, error)
	Save(session *CachedSession) error
	Clear() error
}

type fileSessionCache struct {
	mu   sync.Mutex
	path string
}

// NewFileSessionCache stores the session as a JSON file at path, created
// with 0600 permissions since it holds live credentials.
func NewFileSessionCache(path string) SessionCache {
	return &fileSessionCache{path: path}
}

func (c *fileSessionCache) Load() (*CachedSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read session cache")
	}

	var session CachedSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode session cache")
	}

	return &session, nil
}

func (c *fileSessionCache) Save(session *CachedSession) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session cache")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create session cache directory")
	}

	if err := os.WriteFile(c.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "failed to write session cache")
	}

	return nil
}

func (c *fileSessionCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to clear session cache")
	}

	return nil
}

type memorySessionCache struct {
	mu      sync.Mutex
	session *CachedSession
}

// NewMemorySessionCache keeps the session in process memory only. Useful for
// tests and for callers that manage persistence themselves.
func NewMemorySessionCache() SessionCache {
	return &memorySessionCache{}
}

func (c *memorySessionCache) Load() (*CachedSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return nil, nil
	}

	copied := *c.session

	return &copied, nil
}

func (c *memorySessionCache) Save(session *CachedSession) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := *session
	c.session = &copied

	return nil
}

func (c *memorySessionCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = nil

	return nil
}
