// Package improve calls the text-improvement proxy.
package improve

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/julianstephens/hurryup/internal/constants"
	apperrors "github.com/julianstephens/hurryup/internal/errors"
	"github.com/julianstephens/hurryup/internal/logger"
)

// Request is the proxy request body.
type Request struct {
	Content string `json:"content"`
}

// Response is the proxy reply. Error and Details are set on failure.
type Response struct {
	Improved string `json:"improved,omitempty"`
	Error    string `json:"error,omitempty"`
	Details  string `json:"details,omitempty"`
}

type Client struct {
	url  string
	http *http.Client
}

// New creates a client for the proxy at url. A zero timeout uses the default.
func New(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = constants.DefaultImproveTimeout
	}
	return &Client{url: url, http: &http.Client{Timeout: timeout}}
}

// Improve sends content to the proxy and returns the rewritten text. Every
// failure is an *errors.ExternalServiceError; the caller's draft is untouched.
func (c *Client) Improve(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", apperrors.Required("content")
	}

	body, err := json.Marshal(Request{Content: content})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", &apperrors.ExternalServiceError{Message: "invalid proxy URL", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("requesting text improvement", "url", c.url, "bytes", len(body))
	resp, err := c.http.Do(req)
	if err != nil {
		return "", &apperrors.ExternalServiceError{Message: "text improvement service unreachable", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &apperrors.ExternalServiceError{Status: resp.StatusCode, Message: "reading response", Err: err}
	}

	var out Response
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := &apperrors.ExternalServiceError{Status: resp.StatusCode, Message: out.Error, Details: out.Details}
		if decodeErr != nil {
			e.Details = strings.TrimSpace(string(raw))
		}
		return "", e
	}
	if decodeErr != nil {
		return "", &apperrors.ExternalServiceError{Status: resp.StatusCode, Message: "invalid response", Err: decodeErr}
	}
	if out.Improved == "" {
		return "", &apperrors.ExternalServiceError{Status: resp.StatusCode, Message: "invalid response", Details: "no improved text"}
	}
	return out.Improved, nil
}
