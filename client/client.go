package client

import (
	"context"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"risk-analysis/models"
)

// FallbackMessage is shown for any failure the service did not explain.
const FallbackMessage = "An error occurred."

// APIError is the single failure kind of an analyze call. Unreachable
// service, non-2xx status and malformed bodies all collapse into it;
// Message is what the user sees.
type APIError struct {
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Client talks to the external analysis service.
type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	http := resty.New()
	http.SetBaseURL(baseURL)
	http.SetTimeout(timeout)

	return &Client{http: http}
}

// Analyze issues one GET /analyze/{ticker} and parses the result.
// No retries: every failure is terminal for this invocation.
func (c *Client) Analyze(ctx context.Context, ticker string) (*models.Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/analyze/" + url.PathEscape(ticker))
	if err != nil {
		return nil, &APIError{Message: FallbackMessage, Err: err}
	}

	body := resp.Body()

	if resp.IsError() {
		// Non-2xx: use the server's error field when it sent one
		if msg := gjson.GetBytes(body, "error"); msg.Type == gjson.String {
			return nil, &APIError{Message: msg.String()}
		}
		return nil, &APIError{Message: FallbackMessage}
	}

	result, err := models.ParseResult(body)
	if err != nil {
		return nil, &APIError{Message: FallbackMessage, Err: err}
	}

	return result, nil
}
