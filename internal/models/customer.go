package models

// Customer represents a customer record from the inventory backend.
type Customer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
	Slug        string `json:"slug,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}
