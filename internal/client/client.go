// Package client talks to a running textsim daemon over HTTP.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"textsim/internal/api"
	"textsim/internal/services"
)

var ErrAPIUnavailable = errors.New("textsim API unavailable")

type Client struct {
	base *url.URL
	http *http.Client
}

// New builds a client for bind, which may be host:port or a URL. Wildcard
// listen hosts (0.0.0.0, ::, empty) are dialed on loopback.
func New(bind string) (*Client, error) {
	bind = strings.TrimSpace(bind)
	if bind == "" {
		return nil, ErrAPIUnavailable
	}
	if !strings.Contains(bind, "://") {
		host, port, err := net.SplitHostPort(bind)
		if err != nil {
			return nil, fmt.Errorf("parse bind %q: %w", bind, err)
		}
		switch host {
		case "", "0.0.0.0", "::":
			host = "127.0.0.1"
		}
		bind = "http://" + net.JoinHostPort(host, port)
	}
	base, err := url.Parse(bind)
	if err != nil {
		return nil, err
	}
	base.Path = ""
	base.RawQuery = ""
	base.Fragment = ""

	return &Client{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Status fetches /api/status.
func (c *Client) Status(ctx context.Context) (api.StatusResponse, error) {
	var payload api.StatusResponse
	resp, err := c.do(ctx, http.MethodGet, "/api/status", nil)
	if err != nil {
		return payload, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode status: %w", err)
	}
	return payload, nil
}

// Compare scores two texts on the daemon and returns the formatted score.
func (c *Client) Compare(ctx context.Context, text1, text2 string) (string, error) {
	values := url.Values{}
	values.Set("text1", text1)
	values.Set("text2", text2)
	resp, err := c.do(ctx, http.MethodPost, "/text_similarity/api", values)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read score: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values) (*http.Response, error) {
	if c == nil {
		return nil, ErrAPIUnavailable
	}
	endpoint := c.base.ResolveReference(&url.URL{Path: path, RawQuery: query.Encode()})
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	if requestID, ok := services.RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		message := strings.TrimSpace(string(detail))
		if resp.StatusCode == http.StatusUnprocessableEntity {
			return nil, services.Wrap(services.ErrValidation, "client", path, message, nil)
		}
		return nil, fmt.Errorf("%s %s returned status %d: %s", method, path, resp.StatusCode, message)
	}
	return resp, nil
}

// IsAPIUnavailable reports whether err means no daemon answered.
func IsAPIUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	var opErr *net.OpError
	return errors.Is(err, ErrAPIUnavailable) || errors.As(err, &opErr)
}
