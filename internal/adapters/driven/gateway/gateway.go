package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driven"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/logger"
)

var log = logger.Scoped("gateway")

// Default configuration values.
const (
	// DefaultThrottleWindow is the minimum gap between two calls sharing a
	// fingerprint. A UX tuning choice, not a behavioural contract;
	// override with WithThrottleWindow.
	DefaultThrottleWindow = 800 * time.Millisecond

	// LoginPath is where the navigate hook is pointed on an
	// unauthenticated episode.
	LoginPath = "/login"

	DefaultTimeout = 60 * time.Second

	// maxResponseBytes caps response reads. Document downloads are the
	// largest expected payloads.
	maxResponseBytes = 64 << 20
)

// Doer abstracts the underlying HTTP client for testing.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is the gateway's view of a completed call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// JSON unmarshals the response body into v.
func (r *Response) JSON(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// Gateway runs every outbound call through the request-phase and
// response-phase gates. Construct with New; the zero value is not usable.
type Gateway struct {
	baseURL  string
	http     Doer
	session  driven.SessionStore
	tokens   oauth2.TokenSource
	registry *recentRegistry
	limiter  *rateLimiter
	window   time.Duration
	navigate func(path string)
	location func() string
	now      func() time.Time

	mu         sync.Mutex
	redirected bool
}

// Option configures the gateway.
type Option func(*Gateway)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(c Doer) Option {
	return func(g *Gateway) { g.http = c }
}

// WithThrottleWindow overrides the duplicate-suppression window.
func WithThrottleWindow(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.window = d
		}
	}
}

// WithNavigate sets the hook fired once per unauthenticated episode.
// The browser client navigates to the login page here; the CLI installs a
// hook that reports that sign-in is required.
func WithNavigate(fn func(path string)) Option {
	return func(g *Gateway) {
		if fn != nil {
			g.navigate = fn
		}
	}
}

// WithLocation sets the current-location hook used for the
// payment-return-context check. The hook returns the client's current
// path plus query string.
func WithLocation(fn func() string) Option {
	return func(g *Gateway) {
		if fn != nil {
			g.location = fn
		}
	}
}

// WithTokenSource sources the bearer from an externally managed
// oauth2.TokenSource instead of the session store. The gateway never
// clears an external credential; its owner manages the lifecycle.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(g *Gateway) {
		if ts != nil {
			g.tokens = ts
		}
	}
}

// WithRateLimit enables the client-side token bucket.
func WithRateLimit(cfg RateLimitConfig) Option {
	return func(g *Gateway) { g.limiter = newRateLimiter(cfg) }
}

// WithClock overrides the time source for throttle decisions. Tests use
// this to step through the window without sleeping.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) {
		if now != nil {
			g.now = now
		}
	}
}

// New creates a gateway for the API served at origin. The origin is
// normalised (trailing slash stripped, "/api" suffixed) to form the
// effective API root.
func New(origin string, session driven.SessionStore, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL:  NormalizeBaseURL(origin),
		http:     &http.Client{Timeout: DefaultTimeout},
		session:  session,
		window:   DefaultThrottleWindow,
		navigate: func(string) {},
		location: func() string { return "" },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.registry = newRecentRegistry(g.window, g.now)
	return g
}

// NormalizeBaseURL strips a trailing slash from origin and suffixes the
// API root.
func NormalizeBaseURL(origin string) string {
	return strings.TrimRight(origin, "/") + "/api"
}

// BaseURL returns the effective API root.
func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// Reset clears the recent-request registry and the redirect-once flag.
// Intended for test teardown.
func (g *Gateway) Reset() {
	g.registry.reset()
	g.mu.Lock()
	g.redirected = false
	g.mu.Unlock()
}

// Do runs one call through both gates. Cancellations raised by the
// request gate carry *CancelledError and never reach the network.
func (g *Gateway) Do(ctx context.Context, d *domain.RequestDescriptor) (*Response, error) {
	if d == nil || d.URL == "" {
		return nil, domain.ErrInvalidInput
	}

	// Throttle check.
	if name, exempt := throttleExempt(d); exempt {
		log.Debug("%s %s exempt from throttle (%s)", d.Method, d.URL, name)
	} else {
		fp := Fingerprint(d)
		if !g.registry.record(fp) {
			log.Debug("suppressed duplicate %s %s", d.Method, d.URL)
			return nil, &CancelledError{Reason: ReasonThrottled, Fingerprint: fp}
		}
	}

	// Auth attachment. Auth endpoints go out bare: login must work with
	// an expired or absent token.
	var bearer string
	if !isAuthEndpoint(d.URL) {
		b, err := g.bearerFor(d)
		if err != nil {
			return nil, err
		}
		bearer = b
	}

	// Form-data normalisation: the transport must set its own multipart
	// boundary, so any explicit Content-Type has to go.
	if d.Multipart && d.Headers != nil {
		delete(d.Headers, "Content-Type")
		delete(d.Headers, "content-type")
	}

	if g.limiter != nil {
		if err := g.limiter.wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := g.buildRequest(ctx, d, bearer)
	if err != nil {
		return nil, err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return g.responseGate(d, resp, body)
}

// bearerFor resolves the Authorization bearer for d. A stale credential
// on a protected endpoint cancels the call before it reaches the
// network; public payment endpoints proceed unauthenticated instead, so
// an in-flight checkout is never derailed.
func (g *Gateway) bearerFor(d *domain.RequestDescriptor) (string, error) {
	if g.tokens != nil {
		tok, err := g.tokens.Token()
		switch {
		case err == nil:
			return tok.AccessToken, nil
		case errors.Is(err, domain.ErrAuthRequired):
			return "", nil
		case errors.Is(err, domain.ErrAuthExpired):
			if isPublicPaymentEndpoint(d.URL) {
				return "", nil
			}
			log.Debug("stale external credential, short-circuiting %s %s", d.Method, d.URL)
			return "", &CancelledError{Reason: ReasonTokenExpired}
		default:
			return "", fmt.Errorf("token source: %w", err)
		}
	}

	tok := g.session.Token()
	if tok == nil || tok.Token == "" {
		return "", nil
	}
	switch {
	case !tok.IsExpired():
		return tok.Token, nil
	case isPublicPaymentEndpoint(d.URL):
		// Expired token on a public payment endpoint: proceed
		// unauthenticated rather than derail the payment flow.
		return "", nil
	default:
		_ = g.session.Clear()
		log.Debug("expired token, short-circuiting %s %s", d.Method, d.URL)
		return "", &CancelledError{Reason: ReasonTokenExpired}
	}
}

// buildRequest assembles the http.Request from the descriptor.
func (g *Gateway) buildRequest(ctx context.Context, d *domain.RequestDescriptor, bearer string) (*http.Request, error) {
	target := g.baseURL + "/" + strings.TrimPrefix(d.URL, "/")
	if len(d.Params) > 0 {
		q := url.Values{}
		for k, v := range d.Params {
			q.Set(k, v)
		}
		target += "?" + q.Encode()
	}

	var reader io.Reader
	jsonBody := false
	switch {
	case d.RawBody != nil:
		reader = bytes.NewReader(d.RawBody)
	case d.Body != nil:
		raw, err := json.Marshal(d.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
		jsonBody = true
	}

	method := strings.ToUpper(d.Method)
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if jsonBody {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range d.Headers {
		req.Header.Set(k, v)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	return req, nil
}

// responseGate applies the response-phase rules.
func (g *Gateway) responseGate(d *domain.RequestDescriptor, resp *http.Response, body []byte) (*Response, error) {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// A success ends the unauthenticated episode, if any: the next
		// 401 storm may navigate again.
		g.mu.Lock()
		g.redirected = false
		g.mu.Unlock()
		return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode, URL: d.URL, Body: body}

	// Auth endpoints manage their own failures.
	if isAuthEndpoint(d.URL) {
		return nil, statusErr
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		g.handleUnauthorized()
	case http.StatusTooManyRequests:
		if g.limiter != nil {
			retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
			g.limiter.recordRateLimitError(retryAfter)
			log.Warn("rate limited by backend, backing off")
		}
	}

	return nil, statusErr
}

// handleUnauthorized clears the session and fires the navigate hook at
// most once per unauthenticated episode, so a storm of parallel 401s
// produces exactly one navigation.
func (g *Gateway) handleUnauthorized() {
	if paymentReturnContext(g.location()) {
		log.Debug("401 inside payment-return context, leaving session untouched")
		return
	}

	_ = g.session.Clear()

	g.mu.Lock()
	already := g.redirected
	g.redirected = true
	g.mu.Unlock()

	if !already {
		log.Debug("unauthenticated, navigating to %s", LoginPath)
		g.navigate(LoginPath)
	}
}
