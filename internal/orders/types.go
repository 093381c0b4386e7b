package orders

import "time"

// Order statuses. The status is a flat field: any value may be assigned
// from any other, there is no transition guard.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusReady      = "ready"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Custom-order statuses. Same flat-field semantics as order statuses.
const (
	CustomStatusNew       = "new"
	CustomStatusContacted = "contacted"
	CustomStatusQuoted    = "quoted"
	CustomStatusConfirmed = "confirmed"
	CustomStatusCompleted = "completed"
	CustomStatusCancelled = "cancelled"
)

// Delivery types
const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
)

// OrderItem is one line of a submitted order.
type OrderItem struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage,omitempty"`
	Quantity     int     `json:"quantity"`
	Size         float64 `json:"size,omitempty"`
	Price        int     `json:"price"`
	Notes        string  `json:"notes,omitempty"`
}

// Order is a submitted storefront order as the admin panel sees it.
type Order struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email,omitempty"`
	Address      string      `json:"address,omitempty"`
	DeliveryType string      `json:"deliveryType"` // delivery | pickup
	DeliveryDate time.Time   `json:"deliveryDate"`
	DeliveryTime string      `json:"deliveryTime,omitempty"`
	Items        []OrderItem `json:"items"`
	Subtotal     int         `json:"subtotal"`
	DeliveryFee  int         `json:"deliveryFee"`
	Total        int         `json:"total"`
	Status       string      `json:"status"`
	Notes        string      `json:"notes,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// CustomOrder is a bespoke cake request.
type CustomOrder struct {
	ID             string     `json:"id"`
	CustomerName   string     `json:"customerName"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email,omitempty"`
	CakeDetails    string     `json:"cakeDetails"`
	PreferredDate  *time.Time `json:"preferredDate,omitempty"`
	ReferenceImage string     `json:"referenceImage,omitempty"`
	Status         string     `json:"status"`
	AdminNotes     string     `json:"adminNotes,omitempty"`
	QuotedPrice    *int       `json:"quotedPrice,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// DashboardStats summarizes the admin collections.
type DashboardStats struct {
	TotalOrders         int `json:"totalOrders"`
	TotalRevenue        int `json:"totalRevenue"`
	PendingOrders       int `json:"pendingOrders"`
	CompletedOrders     int `json:"completedOrders"`
	CustomOrderRequests int `json:"customOrderRequests"`
}
