// Package tutorsdk holds the tutor API wire types and a typed Go client.
// The server handlers and the client share these types so the two cannot
// drift apart.
package tutorsdk

import "time"

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CredentialsRequest is the body for register and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInfo is the public view of a user. The password hash never appears here.
type UserInfo struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login. Register normally includes a
// token (auto-login); if issuing one fails the user was still created and only
// Message is set, telling the caller to log in separately.
type AuthResponse struct {
	Token   string    `json:"token,omitempty"`
	User    *UserInfo `json:"user,omitempty"`
	Message string    `json:"message,omitempty"`
}

// MessageResponse carries a human-readable confirmation (e.g. logout).
type MessageResponse struct {
	Message string `json:"message"`
}

// ChatRequest is the body for a chat turn.
type ChatRequest struct {
	Query   string `json:"query"`
	Subject string `json:"subject"`
}

// Source describes one document fragment backing an answer.
type Source struct {
	Document string `json:"document"`
	Page     int    `json:"page,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
}

// Video is one suggested video.
type Video struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Channel string `json:"channel,omitempty"`
}

// ChatResponse is a completed chat turn. Sources and Videos are always
// present, possibly empty.
type ChatResponse struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
	Videos  []Video  `json:"videos"`
	Subject string   `json:"subject"`
}

// HistoryEntry is one recorded interaction.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	Subject   string    `json:"subject"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Sources   []Source  `json:"sources"`
	Videos    []Video   `json:"videos"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse lists a user's interactions, most recent first.
type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
}

// SubjectsResponse lists the subjects available to ask about.
type SubjectsResponse struct {
	Subjects []string `json:"subjects"`
}

// HealthChecks reports per-dependency health in readiness probes.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
