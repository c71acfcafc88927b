package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/viettrungIT3/inventory-admin/internal/inventory"
	"github.com/viettrungIT3/inventory-admin/internal/models"
	"github.com/viettrungIT3/inventory-admin/internal/services"
	"github.com/viettrungIT3/inventory-admin/internal/session"
)

const (
	recentLimit  = 5
	pageSize     = 20
	msgListError = "Could not load data from the inventory backend. Please try again."
)

// DashboardHandler renders the dashboard overview and the resource tables.
type DashboardHandler struct {
	sessions      *session.Store
	api           inventory.ResourceProvider
	stats         services.StatsServiceProvider
	notifications services.NotificationServiceProvider
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(sessions *session.Store, api inventory.ResourceProvider, stats services.StatsServiceProvider, notifications services.NotificationServiceProvider) *DashboardHandler {
	return &DashboardHandler{sessions: sessions, api: api, stats: stats, notifications: notifications}
}

type dashboardPage struct {
	User          *models.User
	Active        string
	Stats         services.DashboardStats
	RecentOrders  []models.Order
	Notifications []models.Notification
}

type resourcePage struct {
	User          *models.User
	Active        string
	Title         string
	Columns       []string
	Rows          [][]string
	Error         string
	PageNumber    int
	TotalPages    int
	TotalElements int64
	HasPrev       bool
	HasNext       bool
	PrevPage      int
	NextPage      int
}

// Overview renders the dashboard landing page.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.User()
	token := h.sessions.Token()

	notifications, err := h.notifications.GetRecentNotifications(recentLimit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load notifications")
	}

	render(w, dashboardTmpl, dashboardPage{
		User:          &user,
		Active:        "dashboard",
		Stats:         h.stats.GetDashboardStats(r.Context(), token),
		RecentOrders:  h.stats.GetRecentOrders(r.Context(), token, recentLimit),
		Notifications: notifications,
	})
}

// Resource renders a paged table for one of the managed resources. Unknown
// resource names get a 404.
func (h *DashboardHandler) Resource(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "resource")
	user, _ := h.sessions.User()
	token := h.sessions.Token()
	pageNum := queryPage(r)

	page := resourcePage{User: &user, Active: name}

	var (
		totals models.Page[struct{}]
		err    error
	)
	switch name {
	case "products":
		page.Title = "Products"
		page.Columns = []string{"ID", "Name", "Description", "Price", "In stock"}
		var data models.Page[models.Product]
		if data, err = h.api.ListProducts(r.Context(), token, pageNum, pageSize); err == nil {
			for _, p := range data.Content {
				page.Rows = append(page.Rows, []string{
					formatID(p.ID), p.Name, p.Description, formatAmount(p.Price), formatID(p.QuantityInStock),
				})
			}
			totals = pageMeta(data)
		}
	case "customers":
		page.Title = "Customers"
		page.Columns = []string{"ID", "Name", "Contact"}
		var data models.Page[models.Customer]
		if data, err = h.api.ListCustomers(r.Context(), token, pageNum, pageSize); err == nil {
			for _, c := range data.Content {
				page.Rows = append(page.Rows, []string{formatID(c.ID), c.Name, c.ContactInfo})
			}
			totals = pageMeta(data)
		}
	case "suppliers":
		page.Title = "Suppliers"
		page.Columns = []string{"ID", "Name", "Contact"}
		var data models.Page[models.Supplier]
		if data, err = h.api.ListSuppliers(r.Context(), token, pageNum, pageSize); err == nil {
			for _, s := range data.Content {
				page.Rows = append(page.Rows, []string{formatID(s.ID), s.Name, s.ContactInfo})
			}
			totals = pageMeta(data)
		}
	case "orders":
		page.Title = "Orders"
		page.Columns = []string{"ID", "Customer", "Total", "Order date"}
		var data models.Page[models.Order]
		if data, err = h.api.ListOrders(r.Context(), token, pageNum, pageSize); err == nil {
			for _, o := range data.Content {
				customer := "Customer " + formatID(o.CustomerID)
				if o.Customer != nil {
					customer = o.Customer.Name
				}
				page.Rows = append(page.Rows, []string{
					formatID(o.ID), customer, formatAmount(o.TotalAmount), o.OrderDate,
				})
			}
			totals = pageMeta(data)
		}
	case "stock":
		page.Title = "Stock entries"
		page.Columns = []string{"ID", "Product", "Supplier", "Type", "Quantity", "Entry date"}
		var data models.Page[models.StockEntry]
		if data, err = h.api.ListStockEntries(r.Context(), token, pageNum, pageSize); err == nil {
			for _, e := range data.Content {
				product := "Product " + formatID(e.ProductID)
				if e.Product != nil {
					product = e.Product.Name
				}
				supplier := "Supplier " + formatID(e.SupplierID)
				if e.Supplier != nil {
					supplier = e.Supplier.Name
				}
				page.Rows = append(page.Rows, []string{
					formatID(e.ID), product, supplier, e.EntryType, formatID(e.Quantity), e.EntryDate,
				})
			}
			totals = pageMeta(data)
		}
	case "administrators":
		page.Title = "Administrators"
		page.Columns = []string{"ID", "Username", "Email", "Full name"}
		var data models.Page[models.Administrator]
		if data, err = h.api.ListAdministrators(r.Context(), token, pageNum, pageSize); err == nil {
			for _, a := range data.Content {
				page.Rows = append(page.Rows, []string{formatID(a.ID), a.Username, a.Email, a.FullName})
			}
			totals = pageMeta(data)
		}
	default:
		http.NotFound(w, r)
		return
	}

	if err != nil {
		log.Error().Err(err).Str("resource", name).Msg("Failed to list resource")
		page.Error = msgListError
	} else {
		page.PageNumber = totals.Number + 1
		page.TotalPages = totals.TotalPages
		page.TotalElements = totals.TotalElements
		page.HasPrev = !totals.First
		page.HasNext = !totals.Last
		page.PrevPage = totals.Number - 1
		page.NextPage = totals.Number + 1
	}

	render(w, resourceTmpl, page)
}

// pageMeta strips the content from a page so the paging fields can be
// handled uniformly across resource types.
func pageMeta[T any](p models.Page[T]) models.Page[struct{}] {
	return models.Page[struct{}]{
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		Size:             p.Size,
		Number:           p.Number,
		First:            p.First,
		Last:             p.Last,
		NumberOfElements: p.NumberOfElements,
	}
}

func queryPage(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
