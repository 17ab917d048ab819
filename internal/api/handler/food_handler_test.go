package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/warungkita/food-ordering/internal/core/domain"
	"github.com/warungkita/food-ordering/internal/core/ports"
)

type stubMenuService struct {
	listFn func(ctx context.Context) ([]domain.FoodItem, error)
}

func (s *stubMenuService) List(ctx context.Context) ([]domain.FoodItem, error) {
	return s.listFn(ctx)
}

type stubOrderService struct {
	placeFn func(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error)
	listFn  func(ctx context.Context, userID string) ([]domain.Order, error)
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	return s.placeFn(ctx, input)
}

func (s *stubOrderService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.listFn(ctx, userID)
}

const orderBody = `{
	"items": [{"itemId":"1","name":"Nasi Goreng","price":35000,"quantity":2}],
	"totalAmount": 70000,
	"deliveryAddress": "Jl. Sudirman 1",
	"paymentMethod": "cash"
}`

func TestFoodHandler_Menu(t *testing.T) {
	e := newTestEcho()
	menu := &stubMenuService{
		listFn: func(ctx context.Context) ([]domain.FoodItem, error) {
			return domain.DefaultMenu(), nil
		},
	}
	h := NewFoodHandler(menu, &stubOrderService{})

	req := httptest.NewRequest(http.MethodGet, "/api/food/menu", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Menu(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Menu []domain.FoodItem `json:"menu"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Menu) != 5 || resp.Menu[0].Name != "Nasi Goreng" {
		t.Fatalf("unexpected menu: %+v", resp.Menu)
	}
}

func TestFoodHandler_PlaceOrder_Success(t *testing.T) {
	e := newTestEcho()
	orders := &stubOrderService{
		placeFn: func(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
			if input.UserID != "user_1" {
				t.Fatalf("expected order scoped to session user, got %q", input.UserID)
			}
			if len(input.Items) != 1 || input.TotalAmount != 70000 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Order{ID: "order_1", Status: domain.OrderStatusPending}, nil
		},
	}
	h := NewFoodHandler(&stubMenuService{}, orders)

	req := httptest.NewRequest(http.MethodPost, "/api/food/order", strings.NewReader(orderBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{ID: "user_1"})

	if err := h.PlaceOrder(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	order, ok := resp["order"].(map[string]any)
	if !ok || order["id"] != "order_1" || order["status"] != "pending" {
		t.Fatalf("unexpected order payload: %+v", order)
	}
}

func TestFoodHandler_PlaceOrder_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	orders := &stubOrderService{
		placeFn: func(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
			t.Fatalf("no order must be created for unauthenticated requests")
			return nil, nil
		},
	}
	h := NewFoodHandler(&stubMenuService{}, orders)

	req := httptest.NewRequest(http.MethodPost, "/api/food/order", strings.NewReader(orderBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.PlaceOrder(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestFoodHandler_PlaceOrder_TotalMismatch(t *testing.T) {
	e := newTestEcho()
	orders := &stubOrderService{
		placeFn: func(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
			return nil, domain.ErrInvalidTotal
		},
	}
	h := NewFoodHandler(&stubMenuService{}, orders)

	req := httptest.NewRequest(http.MethodPost, "/api/food/order", strings.NewReader(orderBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{ID: "user_1"})

	_ = h.PlaceOrder(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFoodHandler_PlaceOrder_MissingFields(t *testing.T) {
	e := newTestEcho()
	orders := &stubOrderService{
		placeFn: func(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewFoodHandler(&stubMenuService{}, orders)

	body := `{"items": [], "totalAmount": 0, "deliveryAddress": "", "paymentMethod": ""}`
	req := httptest.NewRequest(http.MethodPost, "/api/food/order", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{ID: "user_1"})

	_ = h.PlaceOrder(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFoodHandler_Orders_EmptyHistory(t *testing.T) {
	e := newTestEcho()
	orders := &stubOrderService{
		listFn: func(ctx context.Context, userID string) ([]domain.Order, error) {
			return nil, nil
		},
	}
	h := NewFoodHandler(&stubMenuService{}, orders)

	req := httptest.NewRequest(http.MethodGet, "/api/food/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{ID: "user_1"})

	if err := h.Orders(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"orders":[]`) {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestFoodHandler_Orders_ReturnsHistory(t *testing.T) {
	e := newTestEcho()
	orders := &stubOrderService{
		listFn: func(ctx context.Context, userID string) ([]domain.Order, error) {
			if userID != "user_1" {
				t.Fatalf("expected history scoped to session user, got %q", userID)
			}
			return []domain.Order{
				{ID: "order_2", Status: domain.OrderStatusPending},
				{ID: "order_1", Status: domain.OrderStatusDelivered},
			}, nil
		},
	}
	h := NewFoodHandler(&stubMenuService{}, orders)

	req := httptest.NewRequest(http.MethodGet, "/api/food/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{ID: "user_1"})

	if err := h.Orders(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Orders) != 2 || resp.Orders[0].ID != "order_2" {
		t.Fatalf("unexpected orders: %+v", resp.Orders)
	}
}
