package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/viettrungIT3/inventory-admin/internal/models"
)

// ListProducts retrieves a page of products.
func (c *Client) ListProducts(ctx context.Context, token string, page, size int) (models.Page[models.Product], error) {
	return listPage[models.Product](ctx, c, token, "products", page, size)
}

// ListCustomers retrieves a page of customers.
func (c *Client) ListCustomers(ctx context.Context, token string, page, size int) (models.Page[models.Customer], error) {
	return listPage[models.Customer](ctx, c, token, "customers", page, size)
}

// ListSuppliers retrieves a page of suppliers.
func (c *Client) ListSuppliers(ctx context.Context, token string, page, size int) (models.Page[models.Supplier], error) {
	return listPage[models.Supplier](ctx, c, token, "suppliers", page, size)
}

// ListOrders retrieves a page of orders.
func (c *Client) ListOrders(ctx context.Context, token string, page, size int) (models.Page[models.Order], error) {
	return listPage[models.Order](ctx, c, token, "orders", page, size)
}

// ListStockEntries retrieves a page of stock entries.
func (c *Client) ListStockEntries(ctx context.Context, token string, page, size int) (models.Page[models.StockEntry], error) {
	return listPage[models.StockEntry](ctx, c, token, "stock-entries", page, size)
}

// ListAdministrators retrieves a page of administrator accounts.
func (c *Client) ListAdministrators(ctx context.Context, token string, page, size int) (models.Page[models.Administrator], error) {
	return listPage[models.Administrator](ctx, c, token, "administrators", page, size)
}

// listPage fetches one page of a versioned collection endpoint. All resource
// listings share the backend's PageResponse envelope, so the decode is generic.
func listPage[T any](ctx context.Context, c *Client, token, resource string, page, size int) (models.Page[T], error) {
	var result models.Page[T]

	endpoint := fmt.Sprintf("%s/api/v1/%s?page=%d&size=%d", c.baseURL, resource, page, size)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return result, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return result, fmt.Errorf("listing %s failed: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("listing %s failed: backend returned status %d", resource, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("listing %s failed: %w", resource, err)
	}
	return result, nil
}
