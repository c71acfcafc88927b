package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/viettrungIT3/inventory-admin/internal/models"
)

// AuthProvider defines the authentication calls against the backend.
type AuthProvider interface {
	Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error)
	ValidateToken(ctx context.Context, token string) bool
}

// ResourceProvider defines the paged resource listings the dashboard renders.
type ResourceProvider interface {
	ListProducts(ctx context.Context, token string, page, size int) (models.Page[models.Product], error)
	ListCustomers(ctx context.Context, token string, page, size int) (models.Page[models.Customer], error)
	ListSuppliers(ctx context.Context, token string, page, size int) (models.Page[models.Supplier], error)
	ListOrders(ctx context.Context, token string, page, size int) (models.Page[models.Order], error)
	ListStockEntries(ctx context.Context, token string, page, size int) (models.Page[models.StockEntry], error)
	ListAdministrators(ctx context.Context, token string, page, size int) (models.Page[models.Administrator], error)
}

// Client talks to the remote inventory backend. It is stateless: session
// state lives in the session store alone, and the client never reads or
// writes it.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Login submits credentials to POST /auth/login and returns the backend's
// raw result. A missing Token in the result means the login was rejected;
// callers surface Result.Message in that case. A non-nil error means the
// request itself failed (network, server, or malformed response).
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return models.LoginResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return models.LoginResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	// The backend answers rejected logins with a message body and a non-2xx
	// status; decode either way and let token presence decide the outcome.
	var result models.LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.LoginResult{}, fmt.Errorf("login response (status %d) could not be decoded: %w", resp.StatusCode, err)
	}
	return result, nil
}

// ValidateToken asks the backend whether a token is still valid. It fails
// closed: any transport, status, or decode error counts as "not valid" and
// is never propagated to the caller.
func (c *Client) ValidateToken(ctx context.Context, token string) bool {
	endpoint := c.baseURL + "/api/v1/auth/validate?token=" + url.QueryEscape(token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("Token validation request failed; treating token as invalid")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var valid bool
	if err := json.NewDecoder(resp.Body).Decode(&valid); err != nil {
		return false
	}
	return valid
}
