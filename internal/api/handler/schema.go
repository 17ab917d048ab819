package handler

import (
	"github.com/warungkita/food-ordering/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type meResponse struct {
	User *domain.User `json:"user"`
}

// --- Food ---

type orderItemRequest struct {
	ItemID   string  `json:"itemId"   validate:"required"`
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
}

type placeOrderRequest struct {
	Items           []orderItemRequest `json:"items"           validate:"required,min=1,dive"`
	TotalAmount     float64            `json:"totalAmount"     validate:"required,gt=0"`
	DeliveryAddress string             `json:"deliveryAddress" validate:"required"`
	PaymentMethod   string             `json:"paymentMethod"   validate:"required"`
}

// orderSummary is the lightweight confirmation returned on placement.
type orderSummary struct {
	ID     string             `json:"id"`
	Status domain.OrderStatus `json:"status"`
}

type placeOrderResponse struct {
	Message string       `json:"message"`
	Order   orderSummary `json:"order"`
}

type menuResponse struct {
	Menu []domain.FoodItem `json:"menu"`
}

type ordersResponse struct {
	Orders []domain.Order `json:"orders"`
}
