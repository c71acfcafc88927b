package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/viettrungIT3/inventory-admin/internal/models"
	"github.com/viettrungIT3/inventory-admin/internal/services"
	"github.com/viettrungIT3/inventory-admin/internal/session"
)

type fakeResources struct {
	products models.Page[models.Product]
	fail     bool
}

func (f *fakeResources) ListProducts(_ context.Context, _ string, _, _ int) (models.Page[models.Product], error) {
	if f.fail {
		return models.Page[models.Product]{}, errors.New("backend unreachable")
	}
	return f.products, nil
}

func (f *fakeResources) ListCustomers(_ context.Context, _ string, _, _ int) (models.Page[models.Customer], error) {
	return models.Page[models.Customer]{}, nil
}

func (f *fakeResources) ListSuppliers(_ context.Context, _ string, _, _ int) (models.Page[models.Supplier], error) {
	return models.Page[models.Supplier]{}, nil
}

func (f *fakeResources) ListOrders(_ context.Context, _ string, _, _ int) (models.Page[models.Order], error) {
	return models.Page[models.Order]{}, nil
}

func (f *fakeResources) ListStockEntries(_ context.Context, _ string, _, _ int) (models.Page[models.StockEntry], error) {
	return models.Page[models.StockEntry]{}, nil
}

func (f *fakeResources) ListAdministrators(_ context.Context, _ string, _, _ int) (models.Page[models.Administrator], error) {
	return models.Page[models.Administrator]{}, nil
}

type fakeStats struct{}

func (fakeStats) GetDashboardStats(_ context.Context, _ string) services.DashboardStats {
	return services.DashboardStats{TotalProducts: 156, TotalCustomers: 89, TotalOrders: 234, StockOnHand: 1234}
}

func (fakeStats) GetRecentOrders(_ context.Context, _ string, _ int) []models.Order {
	return []models.Order{{ID: 1, CustomerID: 7, TotalAmount: 125.5, OrderDate: "2024-01-15"}}
}

func newDashboardHandler(t *testing.T, api *fakeResources) (*DashboardHandler, *session.Store) {
	t.Helper()
	db := newTestDB(t)
	sessions := session.NewStore(db)
	sessions.Login(models.User{Username: "admin", FullName: "admin"}, "abc")
	h := NewDashboardHandler(sessions, api, fakeStats{}, services.NewNotificationService(db))
	return h, sessions
}

func getResource(h *DashboardHandler, name string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/dashboard/"+name, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("resource", name)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	h.Resource(rec, req)
	return rec
}

func TestOverviewRendersStats(t *testing.T) {
	h, _ := newDashboardHandler(t, &fakeResources{})

	rec := httptest.NewRecorder()
	h.Overview(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "156")
	require.Contains(t, body, "Recent orders")
	require.Contains(t, body, "125.50")
	require.Contains(t, body, "Welcome, admin")
}

func TestResourceRendersProductTable(t *testing.T) {
	api := &fakeResources{products: models.Page[models.Product]{
		Content: []models.Product{
			{ID: 1, Name: "Widget", Description: "A widget", Price: 9.5, QuantityInStock: 40},
		},
		TotalElements: 1,
		TotalPages:    1,
		First:         true,
		Last:          true,
	}}
	h, _ := newDashboardHandler(t, api)

	rec := getResource(h, "products")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Widget")
	require.Contains(t, body, "9.50")
	require.Contains(t, body, "Page 1 of 1")
}

func TestResourceBackendFailureShowsError(t *testing.T) {
	h, _ := newDashboardHandler(t, &fakeResources{fail: true})

	rec := getResource(h, "products")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), msgListError)
}

func TestResourceUnknownIs404(t *testing.T) {
	h, _ := newDashboardHandler(t, &fakeResources{})

	rec := getResource(h, "widgets")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
