package ports

// ListParams are the optional query filters accepted by the list endpoints.
// Zero-value fields are omitted from the request.
type ListParams struct {
	Status     string
	UserID     string
	RoomNumber string
	Category   string
}

// Query renders the params as query-string values, skipping empties.
func (p ListParams) Query() map[string]string {
	q := make(map[string]string, 4)
	if p.Status != "" {
		q["status"] = p.Status
	}
	if p.UserID != "" {
		q["userId"] = p.UserID
	}
	if p.RoomNumber != "" {
		q["roomNumber"] = p.RoomNumber
	}
	if p.Category != "" {
		q["category"] = p.Category
	}
	return q
}

// CreateMaintenanceInput carries a resident's repair submission.
type CreateMaintenanceInput struct {
	RoomNumber  string `json:"roomNumber" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high urgent"`
	UserID      string `json:"userId,omitempty"`
	UserName    string `json:"userName,omitempty"`
}

// CreateGroceryItemInput carries an admin's new catalog entry.
type CreateGroceryItemInput struct {
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"gt=0"`
	Stock    int     `json:"stock" validate:"min=0"`
}

// UpdateGroceryItemInput carries a partial catalog update. Pointer fields
// distinguish "leave unchanged" from an explicit zero.
type UpdateGroceryItemInput struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock    *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
}

// OrderLineInput is one cart line submitted at checkout.
type OrderLineInput struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"gt=0"`
	Price    float64 `json:"price" validate:"min=0"`
	Total    float64 `json:"total" validate:"min=0"`
}

// CreateOrderInput carries a resident checkout.
type CreateOrderInput struct {
	RoomNumber string           `json:"roomNumber" validate:"required"`
	UserID     string           `json:"userId,omitempty"`
	Items      []OrderLineInput `json:"items" validate:"required,min=1,dive"`
	Total      float64          `json:"total" validate:"gt=0"`
}

// PaymentProofInput is the optional evidence attached when marking an
// invoice paid.
type PaymentProofInput struct {
	Image string `json:"image" validate:"required"`
	Notes string `json:"notes,omitempty"`
}
