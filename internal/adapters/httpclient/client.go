package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/bnema/konnex-agent/internal/retry"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	maxResponseBytes      = 1 << 20
	defaultTimeout        = 60 * time.Second
	defaultMaxAttempts    = 3
	defaultInitialBackoff = 2 * time.Second
	backoffMultiplier     = 1.5
)

var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 Safari/537.36 OPR/124.0.0.0",
}

type Config struct {
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	UserAgents     []string
	Referer        string
	Proxy          string
	// Limiter is shared by every client built from the same config. Nil means unlimited.
	Limiter *rate.Limiter
	Sleep   retry.SleepFunc
}

type Client struct {
	http    *http.Client
	policy  retry.Policy
	limiter *rate.Limiter
	agents  []string
	referer string
	log     *zap.Logger
}

type Request struct {
	Method string
	URL    string
	Body   []byte
	Header http.Header
	// Accept reports whether a status code is a usable response. Nil accepts 2xx.
	Accept func(status int) bool
	// ThirdParty marks requests to hosts other than the loyalty hub. They carry
	// only the user agent and caller headers and skip the shared limiter.
	ThirdParty bool
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Cookies    []*http.Cookie
}

func (r Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// StatusError is returned when the server answers with a status the request does not accept.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return domain.ErrTransport
}

// StatusCode extracts the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

func New(cfg Config, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	backoff := cfg.InitialBackoff
	if backoff <= 0 {
		backoff = defaultInitialBackoff
	}
	agents := cfg.UserAgents
	if len(agents) == 0 {
		agents = DefaultUserAgents
	}

	transport, _ := NewTransport(cfg.Proxy, log)

	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		policy: retry.Policy{
			MaxAttempts:    attempts,
			InitialBackoff: backoff,
			Multiplier:     backoffMultiplier,
			Retryable: func(err error) bool {
				return !errors.Is(err, domain.ErrUsage)
			},
			Sleep: cfg.Sleep,
		},
		limiter: cfg.Limiter,
		agents:  agents,
		referer: cfg.Referer,
		log:     log,
	}
}

// HTTPClient exposes the proxy-aware client for adapters that sign their own requests.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// Get performs a GET against the loyalty hub with the given headers.
func (c *Client) Get(ctx context.Context, url string, header http.Header) (Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, URL: url, Header: header})
}

// Do performs req under the client's retry policy. Only GET and POST are supported.
func (c *Client) Do(ctx context.Context, req Request) (Response, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method != http.MethodGet && method != http.MethodPost {
		return Response{}, fmt.Errorf("%w: method %q not supported", domain.ErrUsage, req.Method)
	}

	policy := c.policy
	policy.OnRetry = func(attempt int, err error, backoff time.Duration) {
		reason := "request error"
		if status := StatusCode(err); status >= http.StatusInternalServerError {
			reason = "server error"
		}
		c.log.Warn("retrying request",
			zap.String("method", method),
			zap.String("url", req.URL),
			zap.String("attempt", fmt.Sprintf("%d/%d", attempt, policy.MaxAttempts)),
			zap.String("reason", reason),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)
	}

	return retry.Do(ctx, policy, func(ctx context.Context) (Response, error) {
		return c.once(ctx, method, req)
	})
}

func (c *Client) once(ctx context.Context, method string, req Request) (Response, error) {
	if c.limiter != nil && !req.ThirdParty {
		if err := c.limiter.Wait(ctx); err != nil {
			return Response{}, fmt.Errorf("%w: rate limit wait: %w", domain.ErrTransport, err)
		}
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return Response{}, fmt.Errorf("%w: create request: %w", domain.ErrUsage, err)
	}
	if req.ThirdParty {
		httpReq.Header.Set("User-Agent", c.userAgent())
	} else {
		c.applyDefaultHeaders(httpReq, req.Body != nil)
	}
	for key, values := range req.Header {
		httpReq.Header.Del(key)
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %s %s: %w", domain.ErrTransport, method, req.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Response{}, fmt.Errorf("%w: read response: %w", domain.ErrTransport, err)
	}

	accept := req.Accept
	if accept == nil {
		accept = Accept2xx
	}
	if !accept(resp.StatusCode) {
		return Response{}, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	return Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
		Cookies:    resp.Cookies(),
	}, nil
}

func (c *Client) applyDefaultHeaders(req *http.Request, hasBody bool) {
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "en-GB,en-US;q=0.9,en;q=0.8")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	req.Header.Set("User-Agent", c.userAgent())
	if c.referer != "" {
		req.Header.Set("Referer", c.referer)
	}
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
}

func (c *Client) userAgent() string {
	return c.agents[rand.IntN(len(c.agents))]
}

func Accept2xx(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func AcceptBelow500(status int) bool {
	return status >= http.StatusOK && status < http.StatusInternalServerError
}
