package tutorsdk

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

// Client talks to the tutor API. Unauthenticated operations hang off the
// Client; authenticated ones off a Session.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Register creates a user and, on success, returns a Session for the
// auto-issued token. The session is nil when the server created the user but
// could not issue a token.
func (c *Client) Register(ctx context.Context, username, password string) (*AuthResponse, *Session, error) {
	var out AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/register", "",
		CredentialsRequest{Username: username, Password: password}, &out, http.StatusCreated)
	if err != nil {
		return nil, nil, err
	}

	var session *Session
	if out.Token != "" {
		session = &Session{client: c, token: out.Token}
	}
	return &out, session, nil
}

// Login authenticates and returns a Session for the issued token.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, *Session, error) {
	var out AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/login", "",
		CredentialsRequest{Username: username, Password: password}, &out, http.StatusOK)
	if err != nil {
		return nil, nil, err
	}
	return &out, &Session{client: c, token: out.Token}, nil
}

// SessionFromToken builds a Session from a previously issued token.
func (c *Client) SessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Health fetches the liveness payload.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/health", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Session is an authenticated view of the API, bound to one bearer token.
type Session struct {
	client *Client
	token  string
}

// Token returns the bearer token the session was built from.
func (s *Session) Token() string { return s.token }

// Chat asks a question about a subject.
func (s *Session) Chat(ctx context.Context, query, subject string) (*ChatResponse, error) {
	var out ChatResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/api/chat", s.token,
		ChatRequest{Query: query, Subject: subject}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// History fetches the user's chat history, most recent first.
func (s *Session) History(ctx context.Context) (*HistoryResponse, error) {
	var out HistoryResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/history", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Subjects lists the available subjects.
func (s *Session) Subjects(ctx context.Context) (*SubjectsResponse, error) {
	var out SubjectsResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/subjects", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the session's token server-side. The endpoint never
// fails, even for already-invalid tokens.
func (s *Session) Logout(ctx context.Context) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/api/logout", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// doJSON performs one request/response cycle: optional JSON body out, bearer
// token if given, expected status in, JSON body decoded into target.
func (c *Client) doJSON(
	ctx context.Context,
	method, path, token string,
	body, target any,
	expectedStatus int,
) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, raw)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
