package models

// Request and response bodies for the REST API.

// RegisterRequest is the body of POST /api/user/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse is returned by login and session lookups: the
// authenticated identity as seen by the caller.
type SessionResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// MemoryCreateRequest is the body of POST /api/memories.
type MemoryCreateRequest struct {
	Content string `json:"content"`
}

// InterviewRequest is the body of POST /api/memories/interview.
// Tone selects the interviewer register; unknown values fall back to
// "curious".
type InterviewRequest struct {
	Prompt string `json:"prompt"`
	Tone   string `json:"tone"`
}

// InterviewResponse carries the generated interviewer reply together with
// the memory persisted from the exchange.
type InterviewResponse struct {
	Reply  string `json:"reply"`
	Memory Memory `json:"memory"`
}

// AssetCreateRequest is the body of POST /api/assets (manual entries).
type AssetCreateRequest struct {
	Filename    string `json:"filename"`
	Description string `json:"description"`
}
