package validation

// AddItemRequest is the payload for POST /cart/items. Quantity is a pointer
// so an omitted value defaults to 1; an explicit zero or negative value is
// passed through unguarded, matching the cart's permissive behavior.
type AddItemRequest struct {
	ProductID    string  `json:"productId" validate:"required"`
	Quantity     *int    `json:"quantity,omitempty"`
	SelectedSize float64 `json:"selectedSize,omitempty"`
	IsEggless    bool    `json:"isEggless,omitempty"`
}

// UnitQuantity resolves the effective quantity (default 1).
func (r AddItemRequest) UnitQuantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// UpdateQuantityRequest is the payload for PATCH /cart/items/quantity.
// Zero or negative quantities remove the line.
type UpdateQuantityRequest struct {
	ProductID    string  `json:"productId" validate:"required"`
	Quantity     int     `json:"quantity"`
	SelectedSize float64 `json:"selectedSize,omitempty"`
}

// UpdateEgglessRequest is the payload for PATCH /cart/items/eggless.
type UpdateEgglessRequest struct {
	ProductID    string  `json:"productId" validate:"required"`
	IsEggless    bool    `json:"isEggless"`
	SelectedSize float64 `json:"selectedSize,omitempty"`
}

// CustomOrderRequest is the payload for POST /custom-order.
type CustomOrderRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Phone         string `json:"phone" validate:"required,min=10,max=15"`
	Message       string `json:"message" validate:"required,min=10,max=1000"`
	PreferredDate string `json:"preferredDate,omitempty"`
	HasImage      bool   `json:"hasImage,omitempty"`
}

// StatusUpdateRequest is the payload for PATCH /admin/orders/:id/status.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// CustomOrderUpdateRequest is the payload for PATCH /admin/custom-orders/:id.
// Status, note, and quote may be set together in one call.
type CustomOrderUpdateRequest struct {
	Status      string  `json:"status,omitempty"`
	AdminNotes  *string `json:"adminNotes,omitempty"`
	QuotedPrice *int    `json:"quotedPrice,omitempty"`
}
