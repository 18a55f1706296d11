// Package cms is the HTTP client for the remote CMS API. One Client is
// shared by the whole gateway: it owns the base URL, attaches the bearer
// credential to every outgoing request, and reacts to authorization
// failures by signalling the session layer through a single hook.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pressdeck/admin-gateway/internal/api/metrics"
	"github.com/pressdeck/admin-gateway/internal/core/domain"
	"github.com/pressdeck/admin-gateway/internal/core/ports"
)

type ctxKey string

const ctxKeySessionID ctxKey = "cms_session_id"

// WithSessionID stores the browser session ID in the context so the
// client can attach that session's credential to the request.
func WithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, ctxKeySessionID, sid)
}

// SessionIDFromContext extracts the browser session ID from the context.
func SessionIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeySessionID).(string)
	return v
}

// CredentialSource supplies the stored credential for a session when the
// in-memory one is missing. Implemented by the token store (primary
// backend only).
type CredentialSource interface {
	Credential(ctx context.Context, sid string) (string, bool)
}

// UnauthorizedHook receives the structured "unauthorized" signal emitted
// when the upstream rejects a credential. Only the session service should
// listen; it turns the signal into a logout.
type UnauthorizedHook func(ctx context.Context, sid string)

// Client issues all requests to the remote CMS API.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
	log     zerolog.Logger

	mu             sync.RWMutex
	tokens         map[string]string // per-session default Authorization value
	onUnauthorized UnauthorizedHook
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client for upstream requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a Client for the CMS API rooted at baseURL (including the
// /api prefix). creds may be nil, in which case only in-memory
// credentials are attached.
func New(baseURL string, creds CredentialSource, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		creds:   creds,
		log:     log,
		tokens:  make(map[string]string),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Interface conformance: the Client is every upstream collaborator the
// handlers and session service depend on.
var (
	_ ports.AuthAPI              = (*Client)(nil)
	_ ports.CredentialConfigurer = (*Client)(nil)
	_ ports.UsersAPI             = (*Client)(nil)
	_ ports.PostsAPI             = (*Client)(nil)
	_ ports.CategoriesAPI        = (*Client)(nil)
	_ ports.TagsAPI              = (*Client)(nil)
	_ ports.CommentsAPI          = (*Client)(nil)
	_ ports.BannersAPI           = (*Client)(nil)
	_ ports.PagesAPI             = (*Client)(nil)
)

// OnUnauthorized installs the unauthorized hook. Must be called exactly
// once at wiring time, before the client serves traffic.
func (c *Client) OnUnauthorized(hook UnauthorizedHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = hook
}

// SetCredential sets the default bearer token attached to every
// subsequent request issued for sid.
func (c *Client) SetCredential(sid, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[sid] = token
}

// ClearCredential removes the default bearer token for sid.
func (c *Client) ClearCredential(sid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tokens, sid)
}

// credential resolves the bearer token for a request: the in-memory
// default first, then the stored credential from the primary backend.
func (c *Client) credential(ctx context.Context, sid string) (string, bool) {
	if sid == "" {
		return "", false
	}
	c.mu.RLock()
	token, ok := c.tokens[sid]
	c.mu.RUnlock()
	if ok && token != "" {
		return token, true
	}
	if c.creds == nil {
		return "", false
	}
	return c.creds.Credential(ctx, sid)
}

// do issues one request against the CMS API. body (if non-nil) is sent as
// JSON; a 2xx response is decoded into out (if non-nil). 401 responses
// clear the session's credential, fire the unauthorized hook once, and
// surface domain.ErrUnauthorized. 404 maps to domain.ErrNotFound; every
// other non-2xx becomes a domain.UpstreamError passed through unmodified.
// The client never retries.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cms: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("cms: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	sid := SessionIDFromContext(ctx)
	if token, ok := c.credential(ctx, sid); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("cms: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.UpstreamRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx, sid)
		return fmt.Errorf("cms: %s %s: %w", method, path, domain.ErrUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.upstreamError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cms: decode response: %w", err)
	}
	return nil
}

// handleUnauthorized clears the in-memory credential and emits the
// unauthorized signal exactly once per failing response. Only the hook
// decides what a terminated session means; the HTTP layer never
// navigates or touches session state beyond its own header.
func (c *Client) handleUnauthorized(ctx context.Context, sid string) {
	if sid == "" {
		return
	}
	c.ClearCredential(sid)

	c.mu.RLock()
	hook := c.onUnauthorized
	c.mu.RUnlock()
	if hook != nil {
		hook(ctx, sid)
	}
}

// upstreamError reads the standard {"error": "..."} envelope and wraps
// the response for passthrough.
func (c *Client) upstreamError(resp *http.Response) error {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&envelope)

	msg := envelope.Error
	if msg == "" {
		msg = envelope.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	}
	return &domain.UpstreamError{Status: resp.StatusCode, Message: msg}
}
