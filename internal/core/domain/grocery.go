package domain

// GroceryItem is a catalog entry managed by admins.
type GroceryItem struct {
	Record
	Name      string  `json:"name,omitempty"`
	Category  string  `json:"category,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Stock     int     `json:"stock"`
	Available bool    `json:"available,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

// OrderLine is one purchased item inside a grocery order.
type OrderLine struct {
	Name     string  `json:"name,omitempty"`
	Quantity int     `json:"quantity,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Total    float64 `json:"total,omitempty"`
}

// GroceryOrder is a resident checkout. Created by the client, status-mutated
// by staff.
type GroceryOrder struct {
	Record
	RoomNumber string      `json:"roomNumber,omitempty"`
	UserID     string      `json:"userId,omitempty"`
	Items      []OrderLine `json:"items,omitempty"`
	Total      float64     `json:"total,omitempty"`
	Status     string      `json:"status,omitempty"`
	CreatedAt  string      `json:"createdAt,omitempty"`
	UpdatedAt  string      `json:"updatedAt,omitempty"`
}
