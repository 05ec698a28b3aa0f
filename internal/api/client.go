package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	ghAPI "github.com/cli/go-gh/v2/pkg/api"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://api.apify.com/v2"

// maxBody caps how much of a response we buffer.
const maxBody = 64 << 20

type ClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	Transport http.RoundTripper
	// HTTPLog receives go-gh's request/response trace when set.
	HTTPLog io.Writer
	Logger  *zap.Logger
}

type Client struct {
	base *url.URL
	http *http.Client
	log  *zap.Logger
}

func NewClient(opts ClientOptions) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", raw)
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	httpClient, err := ghAPI.NewHTTPClient(ghAPI.ClientOptions{
		Host: base.Hostname(),
		// Every request sets its own Authorization header; a non-empty
		// value here keeps go-gh from resolving gh credentials.
		AuthToken:          "unused",
		Transport:          transport,
		Timeout:            opts.Timeout,
		Log:                opts.HTTPLog,
		LogIgnoreEnv:       true,
		SkipDefaultHeaders: true,
		Headers: map[string]string{
			"Accept":     "application/json",
			"User-Agent": "leadfinder",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{base: base, http: httpClient, log: log}, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.base.String()
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(c.base.Path, "/") + path
	u.RawPath = ""
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do sends one request and returns the response body of a 2xx reply.
// 401 maps to *AuthError, any other non-2xx to *RemoteError.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, token string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s body: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, redactURLError(err, token))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", op, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &AuthError{Op: op}
	case resp.StatusCode/100 != 2:
		return nil, newRemoteError(op, resp.StatusCode, data, token)
	}
	return data, nil
}

// redactURLError strips the token from the URL that net/http embeds in
// transport errors.
func redactURLError(err error, token string) error {
	var ue *url.Error
	if token == "" || !errors.As(err, &ue) {
		return err
	}
	cp := *ue
	cp.URL = strings.ReplaceAll(cp.URL, url.QueryEscape(token), "<redacted>")
	cp.URL = strings.ReplaceAll(cp.URL, token, "<redacted>")
	return &cp
}

// actorPath renders an actor id as a single path segment. "user/name" is
// the display form; the API expects "user~name".
func actorPath(actorID string) string {
	return strings.ReplaceAll(strings.TrimSpace(actorID), "/", "~")
}
