package models

// StockEntry represents a stock movement recorded by the inventory backend.
// EntryType is either "IN" or "OUT".
type StockEntry struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"productId"`
	SupplierID int64     `json:"supplierId"`
	Quantity   int64     `json:"quantity"`
	EntryDate  string    `json:"entryDate"`
	EntryType  string    `json:"entryType"`
	Product    *Product  `json:"product,omitempty"`
	Supplier   *Supplier `json:"supplier,omitempty"`
	CreatedAt  string    `json:"createdAt,omitempty"`
	UpdatedAt  string    `json:"updatedAt,omitempty"`
}
