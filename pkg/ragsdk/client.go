// Package ragsdk is a client for the external retrieval-augmented answer
// engine. The engine owns retrieval and generation; this client only speaks
// its small HTTP contract.
package ragsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates an answer engine client. Generation can be slow, so the
// default timeout is generous.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Source describes one retrieved document fragment backing an answer.
type Source struct {
	Document string `json:"document"`
	Page     int    `json:"page,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
}

// Answer is the engine's response to a query.
type Answer struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
}

type generateRequest struct {
	Query   string `json:"query"`
	Subject string `json:"subject"`
}

// GenerateAnswer asks the engine to answer a query against a subject's corpus.
func (c *Client) GenerateAnswer(ctx context.Context, query, subject string) (Answer, error) {
	body, err := json.Marshal(generateRequest{Query: query, Subject: subject})
	if err != nil {
		return Answer{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return Answer{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Answer{}, fmt.Errorf("answer engine unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Answer{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Answer{}, fmt.Errorf("answer engine returned HTTP %d: %s",
			resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var answer Answer
	if err := json.Unmarshal(raw, &answer); err != nil {
		return Answer{}, fmt.Errorf("decode response: %w", err)
	}

	return answer, nil
}
