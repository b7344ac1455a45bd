package obsidian

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client is the main entry point for the Obsidian Local REST API client.
type Client struct {
	baseURL   string
	token     string
	http      *http.Client
	logger    zerolog.Logger
	userAgent string

	// Services
	ActiveFile *ActiveFileService
	Vault      *VaultService
	Periodic   *PeriodicService
	Search     *SearchService
	Commands   *CommandService
	Open       *OpenService
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// NewClient creates a new Obsidian API client.
//
// The Local REST API serves a self-signed certificate on the loopback interface,
// so certificate verification is always disabled.
func NewClient(baseURL, token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{},
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.http = insecureClient(c.http)
	c.initializeServices()

	return c, nil
}

// WithHTTPClient allows providing a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithLogger attaches a logger used to trace requests at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// insecureClient returns a copy of hc that skips certificate verification.
// The caller's client and transport are left untouched.
func insecureClient(hc *http.Client) *http.Client {
	cp := *hc
	switch t := hc.Transport.(type) {
	case nil:
		cp.Transport = skipVerify(http.DefaultTransport.(*http.Transport).Clone())
	case *http.Transport:
		cp.Transport = skipVerify(t.Clone())
	}
	return &cp
}

func skipVerify(tr *http.Transport) *http.Transport {
	if tr.TLSClientConfig == nil {
		tr.TLSClientConfig = &tls.Config{}
	}
	tr.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
	return tr
}

func (c *Client) initializeServices() {
	c.ActiveFile = &ActiveFileService{note: noteResource{client: c, path: "/active/"}}
	c.Vault = &VaultService{client: c}
	c.Periodic = &PeriodicService{client: c}
	c.Search = &SearchService{client: c}
	c.Commands = &CommandService{client: c}
	c.Open = &OpenService{client: c}
}

// BaseURL returns the normalized API endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes a single call against the API. Path is appended to the base
// URL verbatim, so identifiers embedded in it must already be escaped.
type Request struct {
	Method string
	Path   string
	Header map[string]string
	Body   string
}

// Status returns the server status. It is the only endpoint that answers
// without authentication, although the token is still sent.
func (c *Client) Status(ctx context.Context) (*ServerStatus, error) {
	var status ServerStatus
	if err := c.do(ctx, Request{Path: "/"}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Request performs r and returns the decoded JSON value when the response
// declares application/json, or the raw body as a string otherwise.
func (c *Client) Request(ctx context.Context, r Request) (any, error) {
	body, contentType, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}

	if strings.Contains(contentType, "application/json") {
		var v any
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return v, nil
	}
	return string(body), nil
}

// do performs r and stores the result in v. A *string receives the raw body,
// nil discards it and anything else is decoded as JSON.
func (c *Client) do(ctx context.Context, r Request, v any) error {
	body, _, err := c.send(ctx, r)
	if err != nil {
		return err
	}

	switch out := v.(type) {
	case nil:
		return nil
	case *string:
		*out = string(body)
		return nil
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, r Request) ([]byte, string, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	var reqBody io.Reader
	if r.Body != "" {
		reqBody = strings.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+r.Path, reqBody)
	if err != nil {
		return nil, "", err
	}
	for k, v := range r.Header {
		req.Header.Set(k, v)
	}
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", r.Path).Msg("request failed")
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", r.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", newAPIError(resp.StatusCode, body)
	}

	return body, resp.Header.Get("Content-Type"), nil
}
