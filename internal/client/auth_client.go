package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dashmonkey/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// wireEnvelope mirrors the server's response envelope.
type wireEnvelope[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details,omitempty"`
	} `json:"error,omitempty"`
}

func (e wireEnvelope[T]) errorCode() string {
	if e.Error != nil {
		return e.Error.Code
	}

	return "UNKNOWN"
}

type credentialsWire struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshWireRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// User is the client-side view of an account.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Ingress   string `json:"ingress"`
	CreatedAt string `json:"createdAt"`
}

type tokenPairWire struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user,omitempty"`
}

// SessionInfo is one active session as listed by the server. Token material
// never appears here.
type SessionInfo struct {
	CreatedAt string `json:"createdAt"`
	ExpiresAt string `json:"expiresAt"`
}

// Profile is the authenticated user's own profile.
type Profile struct {
	Username       string `json:"username"`
	Ingress        string `json:"ingress"`
	Discord        string `json:"discord,omitempty"`
	Telegram       string `json:"telegram,omitempty"`
	CreatedAt      string `json:"createdAt"`
	ActiveSessions int    `json:"activeSessions"`
}

// APIError is a server-side rejection decoded from the response envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Details != "" {
		return e.Code + ": " + e.Message + " (" + e.Details + ")"
	}

	return e.Code + ": " + e.Message
}

// AuthClient is the typed API client. Credential endpoints go over a plain
// HTTP client; bearer endpoints go through Transport so an expired access
// token is refreshed transparently.
type AuthClient struct {
	baseURL string
	cache   SessionCache
	plain   *http.Client
	authed  *http.Client
	logger  *slog.Logger
}

// NewAuthClient builds a client against baseURL (no trailing slash needed),
// persisting tokens through cache.
func NewAuthClient(baseURL string, cache SessionCache, logger *slog.Logger) *AuthClient {
	baseURL = strings.TrimRight(baseURL, "/")

	return &AuthClient{
		baseURL: baseURL,
		cache:   cache,
		plain:   &http.Client{Timeout: 30 * time.Second},
		authed: &http.Client{
			Timeout:   30 * time.Second,
			Transport: NewTransport(nil, cache, baseURL+"/auth/refresh", logger),
		},
		logger: logger,
	}
}

// HTTPClient returns the refresh-aware client for arbitrary bearer calls.
func (c *AuthClient) HTTPClient() *http.Client {
	return c.authed
}

// Register creates an account and stores the issued token pair, leaving the
// client logged in as the new user.
func (c *AuthClient) Register(ctx context.Context, username, password string) (*User, error) {
	return c.obtainSession(ctx, "/auth/register", username, password)
}

// Login exchanges credentials for a token pair and stores it.
func (c *AuthClient) Login(ctx context.Context, username, password string) (*User, error) {
	return c.obtainSession(ctx, "/auth/login", username, password)
}

func (c *AuthClient) obtainSession(ctx context.Context, path, username, password string) (*User, error) {
	var pair tokenPairWire
	if err := c.postJSON(ctx, c.plain, path, credentialsWire{Username: username, Password: password}, &pair); err != nil {
		return nil, err
	}

	session := &CachedSession{
		Username:     username,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    accessTokenExpiry(pair.AccessToken),
	}
	if err := c.cache.Save(session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	return pair.User, nil
}

// Refresh redeems the cached refresh token immediately instead of waiting
// for a 401. The rotated pair replaces the cached one.
func (c *AuthClient) Refresh(ctx context.Context) error {
	session, err := c.cache.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load cached session")
	}
	if session == nil || session.RefreshToken == "" {
		return errors.New("no refresh token cached")
	}

	var pair tokenPairWire
	if err := c.postJSON(ctx, c.plain, "/auth/refresh", refreshWireRequest{RefreshToken: session.RefreshToken}, &pair); err != nil {
		return err
	}

	session.AccessToken = pair.AccessToken
	session.RefreshToken = pair.RefreshToken
	session.ExpiresAt = accessTokenExpiry(pair.AccessToken)

	return errors.Wrap(c.cache.Save(session), "failed to persist refreshed session")
}

// Logout revokes the cached session server-side and clears the cache. The
// cache is cleared even when revocation fails so the client always ends up
// logged out locally.
func (c *AuthClient) Logout(ctx context.Context) error {
	session, loadErr := c.cache.Load()
	if loadErr != nil {
		return errors.Wrap(loadErr, "failed to load cached session")
	}
	if session == nil || session.RefreshToken == "" {
		return nil
	}

	revokeErr := c.postJSON(ctx, c.plain, "/auth/logout", refreshWireRequest{RefreshToken: session.RefreshToken}, nil)
	if clearErr := c.cache.Clear(); clearErr != nil {
		return errors.Wrap(clearErr, "failed to clear session cache")
	}

	return revokeErr
}

// Sessions lists the caller's active sessions via the bearer transport.
func (c *AuthClient) Sessions(ctx context.Context) ([]SessionInfo, error) {
	var out struct {
		Sessions []SessionInfo `json:"sessions"`
	}
	if err := c.getJSON(ctx, "/auth/sessions", &out); err != nil {
		return nil, err
	}

	return out.Sessions, nil
}

// Profile fetches the caller's profile via the bearer transport.
func (c *AuthClient) Profile(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.getJSON(ctx, "/user/profile", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *AuthClient) postJSON(ctx context.Context, httpClient *http.Client, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(httpClient, req, out)
}

func (c *AuthClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	return c.do(c.authed, req, out)
}

func (c *AuthClient) do(httpClient *http.Client, req *http.Request, out any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	var envelope wireEnvelope[json.RawMessage]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return errors.Wrapf(err, "failed to decode response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || !envelope.Success {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Code:       envelope.errorCode(),
			Message:    envelope.Message,
		}
		if envelope.Error != nil {
			apiErr.Details = envelope.Error.Details
		}

		return apiErr
	}

	if out == nil || len(envelope.Data) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(envelope.Data, out), "failed to decode response data")
}

// accessTokenExpiry reads the unverified exp claim so the cache can record
// when the token goes stale. Verification belongs to the server; a token the
// client cannot parse simply gets a zero expiry.
func accessTokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}
