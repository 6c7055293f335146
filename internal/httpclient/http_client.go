package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"auction-client/internal/clienterrors"
	"auction-client/internal/models"
	"auction-client/utils"
)

const (
	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRFToken"
	csrfPath       = "/api/csrf/"
)

// Client wraps the standard HTTP client with the marketplace API
// conventions: cookie-carried sessions, a CSRF token header on every
// mutating request, and the uniform success/data/error response envelope.
//
// HTTP-level 4xx/5xx responses are not errors; they surface through the
// envelope's Success=false path. Only transport failures (no response, or
// an undecodable body) return a non-nil error.
type Client struct {
	base *url.URL
	http *http.Client

	// csrfBootstrapped is instance state, not a process-wide flag, and is
	// reset whenever the server rejects the token so the next mutating
	// call re-bootstraps.
	csrfMu           sync.Mutex
	csrfBootstrapped bool
}

// New creates a Client for the API at baseURL. A zero timeout means no
// request deadline beyond the caller's context.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("httpclient: invalid base URL %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: failed to create cookie jar: %w", err)
	}

	return &Client{
		base: base,
		http: &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// BaseURL returns the configured API base URL
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string) (*models.Envelope, error) {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

// PostJSON performs a POST request with a JSON body
func (c *Client) PostJSON(ctx context.Context, path string, body any) (*models.Envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: failed to encode body for %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, payload, "application/json")
}

// PostForm performs a POST request with a multipart form body
func (c *Client) PostForm(ctx context.Context, path string, form *Form) (*models.Envelope, error) {
	payload, contentType, err := form.encode()
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, payload, contentType)
}

// PutJSON performs a PUT request with a JSON body
func (c *Client) PutJSON(ctx context.Context, path string, body any) (*models.Envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: failed to encode body for %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPut, path, payload, "application/json")
}

// PutForm performs a PUT request with a multipart form body
func (c *Client) PutForm(ctx context.Context, path string, form *Form) (*models.Envelope, error) {
	payload, contentType, err := form.encode()
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPut, path, payload, contentType)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string) (*models.Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil, "")
}

// do runs one request/response cycle. Mutating methods first guarantee a
// CSRF token and attach it; a 403 response invalidates the cached token
// and retries the request exactly once with a fresh one.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, contentType string) (*models.Envelope, error) {
	mutating := method != http.MethodGet

	if mutating {
		if err := c.ensureCSRF(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := c.send(ctx, method, path, payload, contentType, mutating)
	if err != nil {
		return nil, err
	}

	if mutating && resp.StatusCode == http.StatusForbidden {
		resp.Body.Close()
		c.invalidateCSRF()
		if err := c.ensureCSRF(ctx); err != nil {
			return nil, err
		}
		resp, err = c.send(ctx, method, path, payload, contentType, mutating)
		if err != nil {
			return nil, err
		}
	}
	defer resp.Body.Close()

	var envelope models.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("httpclient: %s %s: %w: %v", method, path, clienterrors.ErrBadEnvelope, err)
	}

	return &envelope, nil
}

// send builds and executes a single HTTP request
func (c *Client) send(ctx context.Context, method, path string, payload []byte, contentType string, mutating bool) (*http.Response, error) {
	u, err := c.resolve(path)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: failed to build %s %s: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", utils.GenerateID())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if mutating {
		if token := c.csrfToken(); token != "" {
			req.Header.Set(csrfHeaderName, token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		utils.Error("HTTP request failed", map[string]any{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("httpclient: %s %s: %w: %v", method, path, clienterrors.ErrRequestFailed, err)
	}

	utils.Info("HTTP request", map[string]any{
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
		"latency":    time.Since(start).String(),
		"request_id": req.Header.Get("X-Request-ID"),
	})

	return resp, nil
}

// ensureCSRF guarantees a CSRF token cookie is present before a mutating
// request, issuing the one-shot bootstrap call when it is not
func (c *Client) ensureCSRF(ctx context.Context) error {
	c.csrfMu.Lock()
	defer c.csrfMu.Unlock()

	if c.csrfBootstrapped || c.csrfToken() != "" {
		return nil
	}

	u, err := c.resolve(csrfPath)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("httpclient: failed to build CSRF bootstrap request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: CSRF bootstrap: %w: %v", clienterrors.ErrRequestFailed, err)
	}
	resp.Body.Close()

	c.csrfBootstrapped = true
	return nil
}

// invalidateCSRF drops the bootstrap state and evicts the rejected
// csrftoken cookie from the jar so the next mutating call fetches a
// fresh token. The server does not rotate the cookie on a 403, so
// leaving it in place would short-circuit the re-bootstrap.
func (c *Client) invalidateCSRF() {
	c.csrfMu.Lock()
	defer c.csrfMu.Unlock()
	c.csrfBootstrapped = false
	c.http.Jar.SetCookies(c.base, []*http.Cookie{
		{Name: csrfCookieName, Path: "/", MaxAge: -1},
	})
}

// csrfToken returns the CSRF token from cookie storage, or empty when the
// bootstrap has not run yet
func (c *Client) csrfToken() string {
	for _, cookie := range c.http.Jar.Cookies(c.base) {
		if cookie.Name == csrfCookieName {
			return cookie.Value
		}
	}
	return ""
}

// resolve joins a request path (possibly with a query string) onto the
// base URL
func (c *Client) resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("httpclient: invalid request path %q: %w", path, err)
	}
	return c.base.ResolveReference(ref), nil
}
