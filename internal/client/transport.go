package client

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"dashmonkey/internal/errors"

	"golang.org/x/sync/singleflight"
)

// Transport is an http.RoundTripper that attaches the cached access token
// and, on a 401, redeems the cached refresh token once and replays the
// request once. A 401 on the replayed request is surfaced as-is; a failed
// refresh clears the cache so the caller lands in a logged-out state.
type Transport struct {
	base       http.RoundTripper
	cache      SessionCache
	refreshURL string
	logger     *slog.Logger
	refreshing singleflight.Group
}

// NewTransport wraps base (http.DefaultTransport when nil) with token
// attachment and the refresh-and-replay behavior. refreshURL is the absolute
// URL of the token refresh endpoint.
func NewTransport(base http.RoundTripper, cache SessionCache, refreshURL string, logger *slog.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &Transport{
		base:       base,
		cache:      cache,
		refreshURL: refreshURL,
		logger:     logger,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	session, err := t.cache.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cached session")
	}

	attempt := req.Clone(req.Context())
	if session != nil && session.AccessToken != "" {
		attempt.Header.Set("Authorization", "Bearer "+session.AccessToken)
	}

	resp, err := t.base.RoundTrip(attempt)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	if session == nil || session.RefreshToken == "" {
		return resp, nil
	}
	// A request whose body cannot be rebuilt is never replayed.
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}

	refreshed, refreshErr := t.redeem(req, session.RefreshToken)
	if refreshErr != nil {
		t.logger.WarnContext(req.Context(), "Token refresh failed, clearing session cache",
			slog.Any("error", refreshErr))
		if clearErr := t.cache.Clear(); clearErr != nil {
			t.logger.WarnContext(req.Context(), "Failed to clear session cache",
				slog.Any("error", clearErr))
		}

		return resp, nil
	}

	io.Copy(io.Discard, resp.Body) //nolint:errcheck
	resp.Body.Close()              //nolint:errcheck

	replay := req.Clone(req.Context())
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, errors.Wrap(bodyErr, "failed to rebuild request body for replay")
		}
		replay.Body = body
	}
	replay.Header.Set("Authorization", "Bearer "+refreshed.AccessToken)

	return t.base.RoundTrip(replay)
}

// redeem rotates the refresh token, coalescing concurrent 401s on the same
// stale token into a single call to the refresh endpoint.
func (t *Transport) redeem(req *http.Request, staleToken string) (*CachedSession, error) {
	result, err, _ := t.refreshing.Do(staleToken, func() (any, error) {
		// Another goroutine may have rotated the token while this one was
		// waiting on the flight; reuse its result instead of spending the
		// already-redeemed token again.
		current, err := t.cache.Load()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load cached session")
		}
		if current != nil && current.RefreshToken != "" && current.RefreshToken != staleToken {
			return current, nil
		}

		return t.callRefresh(req, staleToken, current)
	})
	if err != nil {
		return nil, err
	}

	return result.(*CachedSession), nil
}

func (t *Transport) callRefresh(req *http.Request, staleToken string, current *CachedSession) (*CachedSession, error) {
	payload, err := json.Marshal(refreshWireRequest{RefreshToken: staleToken})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode refresh request")
	}

	refreshReq, err := http.NewRequestWithContext(req.Context(), http.MethodPost, t.refreshURL, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build refresh request")
	}
	refreshReq.Header.Set("Content-Type", "application/json")

	resp, err := t.base.RoundTrip(refreshReq)
	if err != nil {
		return nil, errors.Wrap(err, "refresh request failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	var envelope wireEnvelope[tokenPairWire]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode refresh response")
	}
	if resp.StatusCode != http.StatusOK || !envelope.Success {
		return nil, errors.Errorf("refresh rejected: %s", envelope.errorCode())
	}

	session := &CachedSession{
		AccessToken:  envelope.Data.AccessToken,
		RefreshToken: envelope.Data.RefreshToken,
		ExpiresAt:    accessTokenExpiry(envelope.Data.AccessToken),
	}
	if current != nil {
		session.Username = current.Username
	}
	if err := t.cache.Save(session); err != nil {
		return nil, errors.Wrap(err, "failed to persist refreshed session")
	}

	t.logger.DebugContext(req.Context(), "Access token refreshed")

	return session, nil
}
