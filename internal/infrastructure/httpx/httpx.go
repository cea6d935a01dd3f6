package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// StatusError is returned for any non-200 response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string { return fmt.Sprintf("status %d", e.Code) }

// IsNotFound reports whether err is a 404 StatusError.
func IsNotFound(err error) bool {
	se, ok := err.(*StatusError)
	return ok && se.Code == http.StatusNotFound
}

// Client issues a single JSON request per call. Failures are returned to
// the caller as-is; there is no retry.
type Client struct {
	HTTP  *http.Client
	Token string
	// TokenHeader carries Token verbatim; empty means "Authorization: Bearer".
	TokenHeader string
}

func (c *Client) DoJSON(ctx context.Context, req *http.Request, out any) error {
	switch {
	case c.Token == "":
	case c.TokenHeader != "":
		req.Header.Set(c.TokenHeader, c.Token)
	default:
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("Accept", "application/json")
	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}

	resp, err := hc.Do(req.WithContext(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// GetJSON is DoJSON for a plain GET of url.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return c.DoJSON(ctx, req, out)
}
