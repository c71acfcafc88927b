package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/viettrungIT3/inventory-admin/internal/inventory"
	"github.com/viettrungIT3/inventory-admin/internal/services"
	"github.com/viettrungIT3/inventory-admin/internal/session"
	"github.com/viettrungIT3/inventory-admin/internal/websocket"
)

// checkTimeout bounds a single validation round trip.
const checkTimeout = 10 * time.Second

// Validator revalidates the active session token against the backend on a
// cron schedule. The route guard trusts the session store between sweeps, so
// an expired token is detected here rather than on every request.
type Validator struct {
	sessions      *session.Store
	api           inventory.AuthProvider
	notifications services.NotificationServiceProvider
	hub           *websocket.Hub
	schedule      cron.Schedule
	done          chan bool
}

// NewValidator creates a session validator. scheduleExpr is a standard
// five-field cron expression.
func NewValidator(sessions *session.Store, api inventory.AuthProvider, notifications services.NotificationServiceProvider, hub *websocket.Hub, scheduleExpr string) (*Validator, error) {
	schedule, err := cron.ParseStandard(scheduleExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid validation schedule %q: %w", scheduleExpr, err)
	}
	return &Validator{
		sessions:      sessions,
		api:           api,
		notifications: notifications,
		hub:           hub,
		schedule:      schedule,
		done:          make(chan bool),
	}, nil
}

// Run starts the validator's loop. It blocks until Stop is called.
func (v *Validator) Run() {
	log.Info().Msg("Starting background session validator...")
	for {
		timer := time.NewTimer(time.Until(v.schedule.Next(time.Now())))
		select {
		case <-v.done:
			timer.Stop()
			log.Info().Msg("Stopping background session validator.")
			return
		case <-timer.C:
			v.checkSession()
		}
	}
}

// Stop halts the validator.
func (v *Validator) Stop() {
	v.done <- true
}

// checkSession validates the current token, if any, and expires the session
// when the backend no longer accepts it.
func (v *Validator) checkSession() {
	if !v.sessions.IsAuthenticated() {
		return
	}
	token := v.sessions.Token()

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	if v.api.ValidateToken(ctx, token) {
		if exp, ok := session.TokenExpiry(token); ok {
			log.Debug().Time("expires_at", exp).Msg("Session token still valid")
		} else {
			log.Debug().Msg("Session token still valid")
		}
		return
	}

	// Fail-closed validation: transport errors also land here, so the
	// operator is sent back to the login page rather than left with a
	// session the backend will reject anyway.
	log.Warn().Msg("Session token no longer valid; logging out")
	v.sessions.Logout()

	if _, err := v.notifications.CreateNotification("session.expired", "warn", "Your session expired and you were signed out."); err != nil {
		log.Error().Err(err).Msg("Failed to record session expiry notification")
	}
	if v.hub != nil {
		v.hub.BroadcastEvent("session.expired", nil)
	}
}
