package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/viettrungIT3/inventory-admin/internal/models"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 2*time.Second), srv
}

func TestLoginSuccess(t *testing.T) {
	var gotBody models.Credentials
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(models.LoginResult{Token: "abc", Username: "admin"})
	}))
	defer srv.Close()

	result, err := client.Login(context.Background(), models.Credentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.Equal(t, "abc", result.Token)
	require.Equal(t, "admin", result.Username)
	require.Equal(t, "admin", gotBody.Username)
	require.Equal(t, "admin123", gotBody.Password)
}

func TestLoginRejectedReturnsMessage(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.LoginResult{Message: "bad credentials"})
	}))
	defer srv.Close()

	result, err := client.Login(context.Background(), models.Credentials{Username: "admin", Password: "wrong"})
	require.NoError(t, err)
	require.Empty(t, result.Token)
	require.Equal(t, "bad credentials", result.Message)
}

func TestLoginTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // Closed server forces a connection error.
	client := NewClient(srv.URL, time.Second)

	_, err := client.Login(context.Background(), models.Credentials{Username: "admin", Password: "admin123"})
	require.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/validate", r.URL.Path)
		valid := r.URL.Query().Get("token") == "good"
		json.NewEncoder(w).Encode(valid)
	}))
	defer srv.Close()

	require.True(t, client.ValidateToken(context.Background(), "good"))
	require.False(t, client.ValidateToken(context.Background(), "bad"))
}

func TestValidateTokenFailsClosed(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()
		require.False(t, client.ValidateToken(context.Background(), "abc"))
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := NewClient(srv.URL, time.Second)
		require.False(t, client.ValidateToken(context.Background(), "abc"))
	})

	t.Run("garbage body", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not a boolean"))
		}))
		defer srv.Close()
		require.False(t, client.ValidateToken(context.Background(), "abc"))
	})
}

func TestListProductsDecodesPageEnvelope(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/products", r.URL.Path)
		require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		require.Equal(t, "0", r.URL.Query().Get("page"))
		require.Equal(t, "20", r.URL.Query().Get("size"))
		json.NewEncoder(w).Encode(models.Page[models.Product]{
			Content: []models.Product{
				{ID: 1, Name: "Widget", Price: 9.5, QuantityInStock: 40},
			},
			TotalElements:    156,
			TotalPages:       8,
			Size:             20,
			Number:           0,
			First:            true,
			NumberOfElements: 1,
		})
	}))
	defer srv.Close()

	page, err := client.ListProducts(context.Background(), "abc", 0, 20)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	require.Equal(t, "Widget", page.Content[0].Name)
	require.EqualValues(t, 156, page.TotalElements)
	require.True(t, page.First)
}

func TestListOrdersUnauthorized(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := client.ListOrders(context.Background(), "expired", 0, 20)
	require.Error(t, err)
}
