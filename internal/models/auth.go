package models

// Credentials carries a login form submission. It is transient and is never
// written to durable storage.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Authority is a granted role as reported by the backend.
type Authority struct {
	Authority string `json:"authority"`
}

// LoginResult is the backend's response to POST /auth/login. A present Token
// signals success; on failure Message carries the reason, if the backend
// provided one.
type LoginResult struct {
	Token       string      `json:"token,omitempty"`
	Username    string      `json:"username,omitempty"`
	Authorities []Authority `json:"authorities,omitempty"`
	Message     string      `json:"message,omitempty"`
}
