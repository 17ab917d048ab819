package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/warungkita/food-ordering/internal/core/domain"
	"github.com/warungkita/food-ordering/internal/core/ports"
)

// FoodHandler handles menu browsing, checkout, and order history.
type FoodHandler struct {
	menuService  ports.MenuService
	orderService ports.OrderService
}

func NewFoodHandler(menuService ports.MenuService, orderService ports.OrderService) *FoodHandler {
	return &FoodHandler{menuService: menuService, orderService: orderService}
}

// Menu returns the full food menu.
//
// @Summary      Get the menu
// @Tags         food
// @Produce      json
// @Success      200  {object}  menuResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/food/menu [get]
func (h *FoodHandler) Menu(c echo.Context) error {
	items, err := h.menuService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.FoodItem{}
	}
	return c.JSON(http.StatusOK, menuResponse{Menu: items})
}

// PlaceOrder validates and persists a checkout submission for the
// authenticated user.
//
// @Summary      Place an order
// @Tags         food
// @Accept       json
// @Produce      json
// @Param        body  body      placeOrderRequest  true  "Cart contents and declared total"
// @Success      200   {object}  placeOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/food/order [post]
func (h *FoodHandler) PlaceOrder(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.OrderItem{
			ItemID:   it.ItemID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	order, err := h.orderService.PlaceOrder(c.Request().Context(), ports.PlaceOrderInput{
		UserID:          user.ID,
		Items:           items,
		TotalAmount:     req.TotalAmount,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTotal) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid total amount"})
		}
		return err
	}

	return c.JSON(http.StatusOK, placeOrderResponse{
		Message: "Order placed successfully",
		Order:   orderSummary{ID: order.ID, Status: order.Status},
	})
}

// Orders returns the authenticated user's order history, newest first.
//
// @Summary      List order history
// @Tags         food
// @Produce      json
// @Success      200  {object}  ordersResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/food/orders [get]
func (h *FoodHandler) Orders(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.ListOrders(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, ordersResponse{Orders: orders})
}
