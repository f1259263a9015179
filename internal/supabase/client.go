package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/supabase-community/postgrest-go"
)

const maxMessageLen = 200

// Client wraps the PostgREST API that Supabase exposes under /rest/v1.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	rest *postgrest.Client
}

func New(baseURL, apiKey string) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("supabase url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("supabase url: %q is not absolute", baseURL)
	}
	if apiKey == "" {
		return nil, errors.New("supabase: empty api key")
	}

	rest := postgrest.NewClient(u.String()+"/rest/v1", "public", map[string]string{
		"apikey":        apiKey,
		"Authorization": "Bearer " + apiKey,
	})
	if rest.ClientError != nil {
		return nil, fmt.Errorf("supabase: %w", rest.ClientError)
	}

	return &Client{rest: rest}, nil
}

// APIError is an error answer from PostgREST, e.g. "(42P01) relation ... does not exist".
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase: %s (%s)", e.Message, e.Code)
}

// SelectAll reads every row of table, i.e. `select *` with no filters.
// Rows come back in the order the backend returned them.
func (c *Client) SelectAll(ctx context.Context, table string) ([]map[string]any, error) {
	body, _, err := c.rest.From(table).Select("*", "", false).ExecuteWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("supabase select %s: %w", table, mapError(err))
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("supabase select %s: decode: %w", table, err)
	}
	return rows, nil
}

// postgrest-go reports PostgREST errors as "(code) message".
func mapError(err error) error {
	msg := err.Error()
	if !strings.HasPrefix(msg, "(") {
		return err
	}
	code, rest, ok := strings.Cut(msg[1:], ") ")
	if !ok || code == "" || strings.ContainsAny(code, " \n") {
		return err
	}
	return &APIError{Code: code, Message: truncate(rest, maxMessageLen)}
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
