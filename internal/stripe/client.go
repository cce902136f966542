package stripe

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StatusTransportFailure marks a call that never produced an HTTP response
// (DNS failure, timeout, refused connection). It is outside the range of real
// status codes so callers can tell it apart from anything Stripe returned.
const StatusTransportFailure = 0

// Result is the normalized outcome of one Stripe API call. ErrorMessage is
// non-empty exactly when the call did not succeed.
type Result struct {
	Data         map[string]any
	StatusCode   int
	ErrorMessage string
}

func (r Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Doer performs a single HTTP round trip. Tests substitute a fake.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL   string
	secretKey string
	client    Doer
	log       zerolog.Logger

	// newIdempotencyKey generates the Idempotency-Key value for POST calls
	newIdempotencyKey func() string
}

func NewClient(baseURL, secretKey string, log zerolog.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log:               log,
		newIdempotencyKey: uuid.NewString,
	}
}

// Call performs exactly one request against the Stripe API and normalizes the
// outcome. It never returns a Go error: transport failures come back as a
// Result with StatusTransportFailure and a synthesized message, API failures
// carry Stripe's own error message and status code.
func (c *Client) Call(ctx context.Context, method, endpoint string, form url.Values) Result {
	callURL := c.baseURL + "/" + endpoint

	var body io.Reader
	if method == http.MethodPost {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, callURL, body)
	if err != nil {
		return Result{StatusCode: StatusTransportFailure, ErrorMessage: "request build failed: " + err.Error()}
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Idempotency-Key", c.newIdempotencyKey())
	}

	c.log.Debug().
		Str("method", method).
		Str("url", callURL).
		Str("authorization", maskKey(c.secretKey)).
		Msg("stripe request")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("url", callURL).Msg("stripe request failed")
		return Result{StatusCode: StatusTransportFailure, ErrorMessage: "request failed: " + err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{StatusCode: StatusTransportFailure, ErrorMessage: "reading response failed: " + err.Error()}
	}

	data := make(map[string]any)
	if err := json.Unmarshal(raw, &data); err != nil {
		data = map[string]any{"raw_response": string(raw)}
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Str("url", callURL).
		Msg("stripe response")

	if resp.StatusCode >= 400 {
		return Result{Data: data, StatusCode: resp.StatusCode, ErrorMessage: apiErrorMessage(data)}
	}
	return Result{Data: data, StatusCode: resp.StatusCode}
}

// apiErrorMessage digs the human-readable message out of Stripe's error
// envelope: {"error": {"message": "..."}}.
func apiErrorMessage(data map[string]any) string {
	if e, ok := data["error"].(map[string]any); ok {
		if msg, ok := e["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return "unknown error"
}

func maskKey(key string) string {
	if len(key) <= 12 {
		return "***"
	}
	return key[:8] + "..." + key[len(key)-4:]
}
