// Package client talks to the remote menu API. It plays the role a database
// repository would in a backend: list/create/update/delete per entity, with
// transport and status failures normalized at this boundary.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Client carries the shared HTTP plumbing. The base URL is read through a
// getter so the health resolver's fallback decision reaches every request.
type Client struct {
	http *http.Client
	base func() string
}

func New(base func() string) *Client {
	return &Client{
		http: &http.Client{Timeout: 30 * time.Second},
		base: base,
	}
}

// getJSON issues a GET with a cache-busting query parameter and decodes the
// body into out. Any failure is logged and returned; callers that list data
// treat an error as "no data available".
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	url := fmt.Sprintf("%s%s?t=%d", c.base(), path, time.Now().UnixNano())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("GET failed")
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Error().Int("status", res.StatusCode).Str("path", path).Msg("GET failed")
		return fmt.Errorf("api error: %d", res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		log.Error().Err(err).Str("path", path).Msg("malformed response body")
		return err
	}
	return nil
}

// sendJSON issues a POST or PUT with a JSON body. On a non-2xx status the
// upstream response text becomes the error message, so the console can show
// the server's own words to the operator.
func (c *Client) sendJSON(ctx context.Context, method, path string, body any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base()+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		msg := strings.TrimSpace(string(text))
		if msg == "" {
			msg = fmt.Sprintf("api error: %d", res.StatusCode)
		}
		return errors.New(msg)
	}
	return nil
}

// deleteOK issues a DELETE and reports plain success.
func (c *Client) deleteOK(ctx context.Context, path string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.base()+path, nil)
	if err != nil {
		return false
	}
	res, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("DELETE failed")
		return false
	}
	defer res.Body.Close()
	return res.StatusCode >= 200 && res.StatusCode <= 299
}
