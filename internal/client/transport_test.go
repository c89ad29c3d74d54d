package client

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenServer simulates the auth backend: /auth/refresh rotates the token
// pair, protected paths accept only the current access token.
type tokenServer struct {
	mu            sync.Mutex
	accessToken   string
	refreshToken  string
	refreshCalls  atomic.Int64
	resourceCalls atomic.Int64
	alwaysReject  bool
	rejectRefresh bool
}

func (s *tokenServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		s.refreshCalls.Add(1)

		var req refreshWireRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.rejectRefresh || req.RefreshToken != s.refreshToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   map[string]string{"code": "INVALID_REFRESH_TOKEN"},
			})

			return
		}

		s.accessToken += "+"
		s.refreshToken += "+"
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]string{
				"accessToken":  s.accessToken,
				"refreshToken": s.refreshToken,
			},
		})
	})
	mux.HandleFunc("/resource", func(w http.ResponseWriter, r *http.Request) {
		s.resourceCalls.Add(1)

		s.mu.Lock()
		current := s.accessToken
		reject := s.alwaysReject
		s.mu.Unlock()

		if reject || r.Header.Get("Authorization") != "Bearer "+current {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}

		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})

	return mux
}

func newTransportFixture(t *testing.T, session *CachedSession) (*tokenServer, *httptest.Server, *http.Client, SessionCache) {
	t.Helper()

	backend := &tokenServer{accessToken: "server-access", refreshToken: "server-refresh"}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	cache := NewMemorySessionCache()
	if session != nil {
		require.NoError(t, cache.Save(session))
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	httpClient := &http.Client{Transport: NewTransport(nil, cache, srv.URL+"/auth/refresh", logger)}

	return backend, srv, httpClient, cache
}

func TestTransport_AttachesCachedToken(t *testing.T) {
	backend, srv, httpClient, _ := newTransportFixture(t, &CachedSession{
		AccessToken:  "server-access",
		RefreshToken: "server-refresh",
	})

	resp, err := httpClient.Get(srv.URL + "/resource")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(0), backend.refreshCalls.Load())
}

func TestTransport_RefreshesAndReplaysOnce(t *testing.T) {
	backend, srv, httpClient, cache := newTransportFixture(t, &CachedSession{
		Username:     "alice",
		AccessToken:  "expired-access",
		RefreshToken: "server-refresh",
	})

	resp, err := httpClient.Post(srv.URL+"/resource", "text/plain", strings.NewReader("payload"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// The replay carries the original body.
	assert.Equal(t, "payload", string(body))
	assert.Equal(t, int64(1), backend.refreshCalls.Load())
	assert.Equal(t, int64(2), backend.resourceCalls.Load())

	session, err := cache.Load()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "server-access+", session.AccessToken)
	assert.Equal(t, "server-refresh+", session.RefreshToken)
	assert.Equal(t, "alice", session.Username)
}

func TestTransport_SecondUnauthorizedIsSurfaced(t *testing.T) {
	backend, srv, httpClient, _ := newTransportFixture(t, &CachedSession{
		AccessToken:  "expired-access",
		RefreshToken: "server-refresh",
	})
	backend.alwaysReject = true

	resp, err := httpClient.Get(srv.URL + "/resource")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	// One refresh, one replay, no second refresh.
	assert.Equal(t, int64(1), backend.refreshCalls.Load())
	assert.Equal(t, int64(2), backend.resourceCalls.Load())
}

func TestTransport_RefreshFailureClearsCache(t *testing.T) {
	backend, srv, httpClient, cache := newTransportFixture(t, &CachedSession{
		AccessToken:  "expired-access",
		RefreshToken: "revoked-refresh",
	})
	backend.rejectRefresh = true

	resp, err := httpClient.Get(srv.URL + "/resource")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	session, err := cache.Load()
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestTransport_NoRefreshTokenNoRetry(t *testing.T) {
	backend, srv, httpClient, _ := newTransportFixture(t, nil)

	resp, err := httpClient.Get(srv.URL + "/resource")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int64(0), backend.refreshCalls.Load())
	assert.Equal(t, int64(1), backend.resourceCalls.Load())
}

func TestTransport_ConcurrentRefreshSingleFlight(t *testing.T) {
	backend, srv, httpClient, _ := newTransportFixture(t, &CachedSession{
		AccessToken:  "expired-access",
		RefreshToken: "server-refresh",
	})

	const parallel = 8

	var wg sync.WaitGroup
	var succeeded atomic.Int64
	for range parallel {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := httpClient.Get(srv.URL + "/resource")
			if err != nil {
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	// All callers recover, but only one of them spends the refresh token.
	assert.Equal(t, int64(parallel), succeeded.Load())
	assert.Equal(t, int64(1), backend.refreshCalls.Load())
}
