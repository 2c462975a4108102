package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// OrderStatusProcessing is assigned to every newly placed order.
const OrderStatusProcessing OrderStatus = "Processing"

// Order is a placed order for a single menu item.
//
// Price is copied from the menu at placement time and Total is
// Price multiplied by Quantity.
type Order struct {
	ID           int64       `json:"order_id,omitempty"`
	RestaurantID int64       `json:"restaurant_id"`
	MenuID       int64       `json:"menu_id"`
	Quantity     int64       `json:"quantity"`
	Price        float64     `json:"price"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status,omitempty"`
	CustomerID   int64       `json:"customer_id"`
	CreatedAt    time.Time   `json:"created_at,omitzero"`
}

// OrderSummary aggregates all orders of one customer.
//
// CustomerName is nil when the customer has not ordered anything yet.
type OrderSummary struct {
	CustomerName *string `json:"customer_name"`
	TotalAmount  float64 `json:"total_amount"`
}
