package api

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/viettrungIT3/inventory-admin/internal/database"
	"github.com/viettrungIT3/inventory-admin/internal/inventory"
	"github.com/viettrungIT3/inventory-admin/internal/models"
	"github.com/viettrungIT3/inventory-admin/internal/services"
	"github.com/viettrungIT3/inventory-admin/internal/session"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "console.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func TestRequireSessionRedirectsWhenLoggedOut(t *testing.T) {
	sessions := session.NewStore(newTestDB(t))

	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("secret dashboard"))
	})
	guarded := RequireSession(sessions)(protected)

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
	require.NotContains(t, rec.Body.String(), "secret dashboard")
}

func TestRequireSessionPassesThroughWhenLoggedIn(t *testing.T) {
	sessions := session.NewStore(newTestDB(t))
	sessions.Login(models.User{Username: "admin"}, "abc")

	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("secret dashboard"))
	})
	guarded := RequireSession(sessions)(protected)

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("Location"))
	require.Contains(t, rec.Body.String(), "secret dashboard")
}

func TestRouterGuardsDashboardRoutes(t *testing.T) {
	db := newTestDB(t)
	sessions := session.NewStore(db)
	client := inventory.NewClient("http://127.0.0.1:0", time.Second)
	notifications := services.NewNotificationService(db)
	stats := services.NewStatsService(client)

	router := NewRouter(sessions, client, stats, notifications, nil)

	for _, path := range []string{"/dashboard", "/dashboard/products"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusSeeOther, rec.Code, "path %s", path)
		require.Equal(t, "/login", rec.Header().Get("Location"))
	}

	// The login page itself stays reachable.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
