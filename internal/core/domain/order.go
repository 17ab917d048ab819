package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidTotal = errors.New("invalid total amount")

// TotalEpsilon is the maximum accepted difference (in currency units) between
// the client-declared total and the server-side recomputed sum.
const TotalEpsilon = 0.01

// OrderItem is one menu line inside an order. Name and price are captured at
// order time so history survives later menu edits.
type OrderItem struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a placed order belonging to exactly one user.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"-"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	DeliveryAddress string      `json:"deliveryAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Subtotal returns the server-side recomputed sum of all line items.
func (o *Order) Subtotal() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}
