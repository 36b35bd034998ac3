package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/admin"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/auth"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/cart"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/httpx"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/mailer"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/order"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/tasks"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}

//
// ---------- STUBS ----------
//

type stubOrderRepo struct {
	mu        sync.Mutex
	created   *order.Order
	noSuchRow bool
}

func (s *stubOrderRepo) Create(ctx context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *o
	s.created = &cp
	return nil
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.created == nil || s.created.ID != id {
		return nil, order.ErrNotFound
	}
	return s.created, nil
}

func (s *stubOrderRepo) ListByClient(ctx context.Context, clientID string) ([]order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.created != nil && s.created.ClientID == clientID {
		return []order.Order{*s.created}, nil
	}
	return nil, nil
}

func (s *stubOrderRepo) UpdatePayment(ctx context.Context, orderID, clientID string, f order.PaymentFields) error {
	if s.noSuchRow {
		return order.ErrNotFound
	}
	return nil
}

// nopEffects satisfies the order service side-effect interfaces.
type nopEffects struct{}

func (nopEffects) Clear(context.Context, string) error            { return nil }
func (nopEffects) TouchPurchase(context.Context, string) error    { return nil }
func (nopEffects) AdjustStock(context.Context, string, int) error { return nil }
func (nopEffects) Send(context.Context, mailer.Message) error     { return nil }

type stubCartRepo struct {
	items []cart.Item
}

func (s *stubCartRepo) ListByClient(ctx context.Context, clientID string) ([]cart.Item, error) {
	return s.items, nil
}

func (s *stubCartRepo) Add(ctx context.Context, clientID, productID string, quantity int) (bool, error) {
	return true, nil
}

func (s *stubCartRepo) Remove(ctx context.Context, clientID, productID string) (bool, error) {
	return false, nil
}

func (s *stubCartRepo) IncreaseQuantity(ctx context.Context, clientID, productID string) (bool, error) {
	return true, nil
}

func (s *stubCartRepo) DecreaseQuantity(ctx context.Context, clientID, productID string) (bool, error) {
	return false, nil // already at minimum
}

func (s *stubCartRepo) Clear(ctx context.Context, clientID string) error { return nil }

type stubReports struct{}

func (stubReports) Overview(ctx context.Context) (*admin.OverviewReport, error) {
	return &admin.OverviewReport{TotalProducts: 3, ConversionRate: "50.00"}, nil
}

func (stubReports) Sales(ctx context.Context, timeRange string) (*admin.SalesReport, error) {
	if timeRange != "week" && timeRange != "month" && timeRange != "quarter" && timeRange != "year" {
		return nil, errors.New("bad range")
	}
	trend := make([]admin.DayTrend, 7)
	for i := range trend {
		trend[i] = admin.DayTrend{DayOfWeek: i + 1}
	}
	return &admin.SalesReport{DailySalesTrend: trend}, nil
}

func (stubReports) Orders(ctx context.Context) (*admin.OrdersReport, error) {
	return &admin.OrdersReport{TotalOrders: 1}, nil
}

func (stubReports) Products(ctx context.Context) (*admin.ProductsReport, error) {
	return &admin.ProductsReport{LowStock: 2}, nil
}

func newTestService(repo *stubOrderRepo) (*order.Service, *tasks.Queue) {
	queue := tasks.New(1, 16)
	fx := nopEffects{}
	return order.NewService(repo, fx, fx, fx, fx, queue, "shop@example.com"), queue
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

//
// ---------- TESTS ----------
//

func TestRequireAuth_StatusCodes(t *testing.T) {
	t.Parallel()

	issuer := auth.NewTokenIssuer("test-secret")
	r := gin.New()
	r.GET("/guarded", httpx.RequireAuth(issuer, "admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := doJSON(r, http.MethodGet, "/guarded", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status=%d, expected 401", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Token not provided")) {
		t.Errorf("no token: body=%s", w.Body.String())
	}

	expired, _ := issuer.Sign("c1", "A", "B", "admin", -time.Minute)
	w = doJSON(r, http.MethodGet, "/guarded", "", expired)
	if w.Code != http.StatusUnauthorized || !bytes.Contains(w.Body.Bytes(), []byte("Token expired")) {
		t.Errorf("expired: status=%d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/guarded", "", "garbage")
	if w.Code != http.StatusUnauthorized || !bytes.Contains(w.Body.Bytes(), []byte("Invalid token")) {
		t.Errorf("garbage: status=%d body=%s", w.Code, w.Body.String())
	}

	clientToken, _ := issuer.Sign("c1", "A", "B", "client", time.Hour)
	w = doJSON(r, http.MethodGet, "/guarded", "", clientToken)
	if w.Code != http.StatusForbidden || !bytes.Contains(w.Body.Bytes(), []byte("Access denied")) {
		t.Errorf("role mismatch: status=%d body=%s", w.Code, w.Body.String())
	}

	adminToken, _ := issuer.Sign("c1", "A", "B", "admin", time.Hour)
	w = doJSON(r, http.MethodGet, "/guarded", "", adminToken)
	if w.Code != http.StatusOK {
		t.Errorf("admin token: status=%d", w.Code)
	}
}

func TestPlaceOrder_HappyPath(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{}
	svc, queue := newTestService(repo)
	defer queue.Close()

	r := gin.New()
	r.POST("/orders/place-order", placeOrderHandler(svc))

	body := `{
		"clientId": "client-1",
		"email": "buyer@example.com",
		"orderStatus": "Pending",
		"products": [{"product_id":"tea-1","name":"Assam Gold","quantity":2,"price":"250.00"}],
		"orderTotal": "500.00",
		"shippingAddress": {"name":"A","number":"9","street":"s","city":"c","state":"st","pinCode":"781001","type":"Home"},
		"paymentMethod": "COD",
		"amount": "500.00"
	}`
	w := doJSON(r, http.MethodPost, "/orders/place-order", body, "")

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if resp.Message != "Order placed successfully" || resp.OrderID == "" {
		t.Fatalf("resp=%+v", resp)
	}
	if repo.created == nil || repo.created.ID != resp.OrderID {
		t.Fatal("persisted order does not match response id")
	}
	if len(repo.created.ExpectedDelivery) != 4 {
		t.Errorf("schedule milestones=%d, expected 4", len(repo.created.ExpectedDelivery))
	}
}

func TestOrderPayment_NotFound(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{noSuchRow: true}
	svc, queue := newTestService(repo)
	defer queue.Close()

	r := gin.New()
	r.POST("/orders/order-payment", orderPaymentHandler(svc))

	body := `{"orderId":"nope","clientId":"client-1","orderStatus":"Processing","paymentMethod":"UPI","upiId":"x@upi"}`
	w := doJSON(r, http.MethodPost, "/orders/order-payment", body, "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Order not found or already updated")) {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestTrackOrder(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{}
	svc, queue := newTestService(repo)
	defer queue.Close()

	orderID, err := svc.Place(context.Background(), order.CheckoutRequest{
		ClientID: "client-1", Email: "b@example.com", OrderStatus: "Pending",
		ShippingAddress: order.ShippingAddress{Type: "Home"},
		PaymentMethod:   "COD",
	})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	r := gin.New()
	r.GET("/orders/track/:id", trackOrderHandler(repo))

	w := doJSON(r, http.MethodGet, "/orders/track/"+orderID, "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/orders/track/missing", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing order: status=%d", w.Code)
	}
}

func TestDecreaseCart_FloorIs404(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.PATCH("/cart/decrease-quantity/:client_id/:product_id", decreaseCartHandler(&stubCartRepo{}))

	w := doJSON(r, http.MethodPatch, "/cart/decrease-quantity/c1/p1", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestSalesReport_DefaultRangeAndShape(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.POST("/admin/sales", salesReportHandler(stubReports{}))

	// Empty timeRange falls back to month instead of erroring.
	w := doJSON(r, http.MethodPost, "/admin/sales", `{}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var rep admin.SalesReport
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(rep.DailySalesTrend) != 7 {
		t.Fatalf("dailySalesTrend days=%d, expected 7", len(rep.DailySalesTrend))
	}
}
