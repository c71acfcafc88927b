package models

import "time"

// Notification is a loggable action or alert shown on the dashboard.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`  // e.g. "auth.login", "session.expired"
	Level     string    `json:"level"` // e.g. "info", "warn", "error"
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
