package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxResponseBytes = 4 << 20

// Client talks to the booking backend. One Client is shared by all sessions;
// the caller's bearer token travels in the request context.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

type tokenKey struct{}

// WithToken attaches a bearer token forwarded on every call made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	token = strings.TrimSpace(token)
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey{}).(string)
	return s
}

// do performs one request and returns the raw response body. It never retries.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, &HTTPError{Op: op, Message: "payload tidak valid", Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, &HTTPError{Op: op, Code: CodeNetwork, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := tokenFrom(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, &HTTPError{Op: op, Code: CodeNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &HTTPError{Op: op, Status: resp.StatusCode, Code: CodeNetwork, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			Op:      op,
			Status:  resp.StatusCode,
			Code:    http.StatusText(resp.StatusCode),
			Message: errorMessage(raw),
		}
	}
	return raw, nil
}

// errorMessage extracts {message} or {error} from an error body.
func errorMessage(raw []byte) string {
	var body struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if m := strings.TrimSpace(body.Message); m != "" {
		return m
	}
	var s string
	if err := json.Unmarshal(body.Error, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.Error, &nested); err == nil {
		return strings.TrimSpace(nested.Message)
	}
	return ""
}

// unwrap peels {"data": ...} and the named envelope keys off a response body.
func unwrap(raw []byte, keys ...string) []byte {
	raw = bytes.TrimSpace(raw)
	candidates := append(append([]string{}, keys...), "data")
	for depth := 0; depth < 2; depth++ {
		if len(raw) == 0 || raw[0] != '{' {
			return raw
		}
		var env map[string]json.RawMessage
		if err := json.Unmarshal(raw, &env); err != nil {
			return raw
		}
		next, found := []byte(nil), false
		for _, k := range candidates {
			if v, ok := env[k]; ok && len(bytes.TrimSpace(v)) > 0 && string(bytes.TrimSpace(v)) != "null" {
				next, found = bytes.TrimSpace(v), true
				break
			}
		}
		if !found {
			return raw
		}
		raw = next
	}
	return raw
}

func decodeInto(op string, raw []byte, out any, keys ...string) error {
	body := unwrap(raw, keys...)
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &HTTPError{Op: op, Status: http.StatusOK, Message: "respons server tidak dapat dibaca", Err: err}
	}
	return nil
}
