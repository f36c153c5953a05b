package checkout

// OrderItem is one line of an order-creation request.
type OrderItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Order is an order as the API returns it in the user's history.
type Order struct {
	ID        uint        `json:"id"`
	Status    string      `json:"status"`
	Total     string      `json:"total"`
	SessionID string      `json:"session_id,omitempty"`
	CreatedAt string      `json:"created_at,omitempty"`
	Items     []OrderItem `json:"items,omitempty"`
}
