package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	anthropicVersion = "2023-06-01"
	maxTokens        = 1024
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// upstreamResult is a decoded Messages API reply. Raw is kept for error details.
type upstreamResult struct {
	Status int
	Body   messagesResponse
	Raw    []byte
}

func (s *Server) callUpstream(ctx context.Context, content string) (*upstreamResult, error) {
	payload, err := json.Marshal(messagesRequest{
		Model:     s.opts.Model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: Prompt(content)}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.opts.Upstream, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.opts.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	res := &upstreamResult{Status: resp.StatusCode, Raw: raw}
	if err := json.Unmarshal(raw, &res.Body); err != nil {
		return nil, fmt.Errorf("decoding upstream response: %w", err)
	}
	return res, nil
}

func (r *upstreamResult) ok() bool { return r.Status >= 200 && r.Status <= 299 }

func (r *upstreamResult) errorDetails() string {
	if r.Body.Error != nil && r.Body.Error.Message != "" {
		return r.Body.Error.Message
	}
	return string(bytes.TrimSpace(r.Raw))
}

func (r *upstreamResult) text() string {
	if len(r.Body.Content) == 0 {
		return ""
	}
	return r.Body.Content[0].Text
}
