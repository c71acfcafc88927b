package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/viettrungIT3/inventory-admin/internal/inventory"
	"github.com/viettrungIT3/inventory-admin/internal/models"
	"github.com/viettrungIT3/inventory-admin/internal/services"
	"github.com/viettrungIT3/inventory-admin/internal/session"
	"github.com/viettrungIT3/inventory-admin/internal/websocket"
)

// Fallback messages for failures the backend gave no reason for.
const (
	msgLoginFailed    = "Login failed. Please check your username and password."
	msgLoginTransport = "Something went wrong while logging in. Please try again."
)

// AuthHandler serves the login flow and the root redirect dispatcher.
type AuthHandler struct {
	sessions      *session.Store
	api           inventory.AuthProvider
	notifications services.NotificationServiceProvider
	hub           *websocket.Hub
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions *session.Store, api inventory.AuthProvider, notifications services.NotificationServiceProvider, hub *websocket.Hub) *AuthHandler {
	return &AuthHandler{sessions: sessions, api: api, notifications: notifications, hub: hub}
}

type loginPage struct {
	User     *models.User
	Active   string
	Username string
	Error    string
}

// Home dispatches the root path: authenticated operators go to the
// dashboard, everyone else to the login page.
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	if h.sessions.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	render(w, loginTmpl, loginPage{})
}

// Login handles a login form submission. The backend call fully resolves
// before the session is touched or a redirect is issued; a rejected or
// failed login leaves the session store unchanged and re-renders the form.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	creds := models.Credentials{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
	if creds.Username == "" || creds.Password == "" {
		render(w, loginTmpl, loginPage{Username: creds.Username, Error: msgLoginFailed})
		return
	}

	result, err := h.api.Login(r.Context(), creds)
	if err != nil {
		log.Error().Err(err).Str("username", creds.Username).Msg("Login request failed")
		render(w, loginTmpl, loginPage{Username: creds.Username, Error: msgLoginTransport})
		return
	}

	if result.Token == "" {
		message := result.Message
		if message == "" {
			message = msgLoginFailed
		}
		log.Warn().Str("username", creds.Username).Msg("Login rejected by backend")
		render(w, loginTmpl, loginPage{Username: creds.Username, Error: message})
		return
	}

	// The login response carries no profile, so the display fields are
	// derived from the username.
	user := models.User{
		Username: result.Username,
		Email:    result.Username + "@admin.com",
		FullName: result.Username,
	}
	h.sessions.Login(user, result.Token)
	h.notify("auth.login", "info", user.Username+" signed in")

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout clears the session and returns to the login page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	username := ""
	if user, ok := h.sessions.User(); ok {
		username = user.Username
	}

	h.sessions.Logout()
	if username != "" {
		h.notify("auth.logout", "info", username+" signed out")
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// notify records a notification and pushes it to connected dashboards.
func (h *AuthHandler) notify(ntype, level, message string) {
	notification, err := h.notifications.CreateNotification(ntype, level, message)
	if err != nil {
		log.Error().Err(err).Str("type", ntype).Msg("Failed to record notification")
		return
	}
	if h.hub != nil {
		h.hub.BroadcastEvent("notification.created", notification)
	}
}
