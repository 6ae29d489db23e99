package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-jobboard/internal/config"
	"github.com/jrsteele09/go-jobboard/internal/errors"
	"github.com/jrsteele09/go-jobboard/sessions"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const (
	contentTypeJSON = "application/json"
	headerRequestID = "X-Request-ID"
)

// TokenSource supplies the stored session. sessions.Service satisfies it.
type TokenSource interface {
	Current() (sessions.Session, error)
}

// Client is the typed client for the job board REST API.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	sessions   TokenSource
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the configured API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func New(cfg config.APIConfig, sessions TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.GetAPIBaseURL(), "/"),
		timeout:    cfg.GetRequestTimeout(),
		httpClient: http.DefaultClient,
		sessions:   sessions,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request describes one call. fallback is the message used when a failing
// response carries none.
type request struct {
	method   string
	path     string
	query    url.Values
	body     any
	auth     bool
	fallback string
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	hc := c.httpClient
	if req.auth {
		sess, err := c.sessions.Current()
		if err != nil {
			return errors.Wrapf(err, "%s %s", req.method, req.path)
		}
		if sess.AuthToken == "" {
			return errors.Wrapf(errors.ErrMissingSessionField, "%s %s: %s", req.method, req.path, sessions.KeyAuthToken)
		}
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
		hc = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: sess.AuthToken}))
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return errors.Wrapf(err, "encode %s %s", req.method, req.path)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return errors.Wrapf(err, "build %s %s", req.method, req.path)
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", contentTypeJSON)
	}
	httpReq.Header.Set("Accept", contentTypeJSON)
	requestID := uuid.New().String()
	httpReq.Header.Set(headerRequestID, requestID)

	start := time.Now()
	resp, err := hc.Do(httpReq)
	if err != nil {
		log.Debug().Err(err).Str("request_id", requestID).Str("method", req.method).Str("path", req.path).Msg("Request failed")
		return fmt.Errorf("%s %s: %w: %w", req.method, req.path, errors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("request_id", requestID).
		Str("method", req.method).
		Str("path", req.path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Request completed")

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w: %w", req.method, req.path, errors.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg Message
		_ = json.Unmarshal(data, &msg)
		return newAPIError(resp.StatusCode, msg.Message, req.fallback)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decode %s %s", req.method, req.path)
	}
	return nil
}
