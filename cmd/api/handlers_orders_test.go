package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/httpx"
	ord "github.com/dheeraj4092/Bhuktafoods-Backend/internal/order"
)

//
// ---------- STUBS & FAKES ----------
//

// stubOrderRepo implements ord.Repository in memory, materializing orders the
// way the create_order database function would.
type stubOrderRepo struct {
	createErr error
	orders    map[string]*ord.Order
	seq       int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: map[string]*ord.Order{}}
}

func (s *stubOrderRepo) Create(ctx context.Context, p ord.CreateParams) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	s.seq++
	id := fmt.Sprintf("ord-%d", s.seq)
	o := &ord.Order{
		ID:              id,
		UserID:          p.UserID,
		Status:          ord.StatusPending,
		TotalAmount:     p.TotalAmount,
		ShippingAddress: p.ShippingAddress,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	for i, it := range p.Items {
		o.Items = append(o.Items, ord.Item{
			ID:           fmt.Sprintf("%s-%d", id, i),
			Quantity:     it.Quantity,
			QuantityUnit: it.QuantityUnit,
			Price:        it.UnitPrice,
			Product:      ord.ItemProduct{ID: it.ProductID, Name: "Murukku"},
		})
	}
	s.orders[id] = o
	return id, nil
}

func (s *stubOrderRepo) GetDetails(ctx context.Context, id string) (*ord.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, ord.ErrNotFound
	}
	return o, nil
}

func (s *stubOrderRepo) ListByUser(ctx context.Context, userID string) ([]ord.Order, error) {
	var out []ord.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id string, status ord.Status) error {
	o, ok := s.orders[id]
	if !ok {
		return ord.ErrNotFound
	}
	o.Status = status
	return nil
}

type noopMailer struct{}

func (noopMailer) OrderConfirmation(context.Context, *ord.Order, string) error { return nil }
func (noopMailer) AdminAlert(context.Context, *ord.Order) error                { return nil }

type inlineJobs struct{}

func (inlineJobs) Enqueue(name string, fn func(context.Context) error) bool {
	_ = fn(context.Background())
	return true
}

func newOrderService(repo ord.Repository) *ord.Service {
	return ord.NewService(repo, noopMailer{}, inlineJobs{}, nil)
}

// orderRouter wires the order routes behind a fake identity, standing in for
// the bearer middleware.
func orderRouter(repo ord.Repository, uid string) *gin.Engine {
	svc := newOrderService(repo)
	r := gin.New()
	r.Use(httpx.SetUser(uid, true))
	r.POST("/api/orders", createOrderHandler(svc, true))
	r.GET("/api/orders", listOrdersHandler(svc, true))
	r.GET("/api/orders/:id", getOrderHandler(svc, true))
	r.PATCH("/api/orders/:id", updateOrderStatusHandler(svc, true))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

//
// ---------- TESTS ----------
//

func TestCreateOrder_HappyPath(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	r := orderRouter(repo, "u1")

	body := `{
		"items":[{"product_id":"p1","quantity":2,"unit_price":5.00}],
		"shipping_address":{"name":"A","email":"a@x.com","address":"1 St","city":"C","zip_code":"00000"}
	}`
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Message string    `json:"message"`
		Order   ord.Order `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if resp.Message != "Order created successfully" {
		t.Fatalf("message=%q", resp.Message)
	}
	if resp.Order.TotalAmount != "10.00" {
		t.Fatalf("total=%s, want 10.00", resp.Order.TotalAmount)
	}
	if len(resp.Order.Items) != 1 || resp.Order.Items[0].Quantity != 2 {
		t.Fatalf("items=%+v", resp.Order.Items)
	}
	if resp.Order.Items[0].QuantityUnit != "250g" {
		t.Fatalf("quantity_unit=%q, want default 250g", resp.Order.Items[0].QuantityUnit)
	}
}

func TestCreateOrder_MissingAddressField(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	r := orderRouter(repo, "u1")

	body := `{
		"items":[{"product_id":"p1","quantity":1,"unit_price":5.00}],
		"shipping_address":{"name":"A","email":"a@x.com","address":"1 St","city":"C"}
	}`
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp httpx.ErrorBody
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error != "shipping_address.zip_code is required" {
		t.Fatalf("error=%q", resp.Error)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("order persisted despite validation failure")
	}
}

func TestCreateOrder_RemoteFailureCarriesCode(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	repo.createErr = &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	r := orderRouter(repo, "u1")

	body := `{
		"items":[{"product_id":"ghost","quantity":1,"unit_price":5.00}],
		"shipping_address":{"name":"A","email":"a@x.com","address":"1 St","city":"C","zip_code":"00000"}
	}`
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp httpx.ErrorBody
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error != "Failed to create order" {
		t.Fatalf("error=%q", resp.Error)
	}
	if resp.Code != "23503" {
		t.Fatalf("code=%q, want 23503", resp.Code)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("partial order visible after failed create")
	}
}

func TestGetOrder_ForbiddenVsNotFound(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	owner := orderRouter(repo, "userA")

	body := `{
		"items":[{"product_id":"p1","quantity":1,"unit_price":5.00}],
		"shipping_address":{"name":"A","email":"a@x.com","address":"1 St","city":"C","zip_code":"00000"}
	}`
	w := doJSON(t, owner, http.MethodPost, "/api/orders", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %s", w.Body.String())
	}
	var created struct {
		Order ord.Order `json:"order"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	stranger := orderRouter(repo, "userB")
	if w := doJSON(t, stranger, http.MethodGet, "/api/orders/"+created.Order.ID, ""); w.Code != http.StatusForbidden {
		t.Fatalf("status=%d, want 403", w.Code)
	}
	if w := doJSON(t, stranger, http.MethodGet, "/api/orders/"+uuid.NewString(), ""); w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
	if w := doJSON(t, owner, http.MethodGet, "/api/orders/"+created.Order.ID, ""); w.Code != http.StatusOK {
		t.Fatalf("owner status=%d, want 200", w.Code)
	}
}

func TestListOrders_EmptyIsAnArray(t *testing.T) {
	t.Parallel()

	r := orderRouter(newStubOrderRepo(), "u1")
	w := doJSON(t, r, http.MethodGet, "/api/orders", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var arr []ord.Order
	if err := json.Unmarshal(w.Body.Bytes(), &arr); err != nil {
		t.Fatalf("want a JSON array, got %s", w.Body.String())
	}
	if len(arr) != 0 {
		t.Fatalf("len=%d, want 0", len(arr))
	}
}

func TestUpdateOrderStatus_InvalidValue(t *testing.T) {
	t.Parallel()

	r := orderRouter(newStubOrderRepo(), "u1")
	w := doJSON(t, r, http.MethodPatch, "/api/orders/"+uuid.NewString(), `{"status":"wtf"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateOrderStatus_OK(t *testing.T) {
	t.Parallel()

	repo := newStubOrderRepo()
	r := orderRouter(repo, "u1")

	body := `{
		"items":[{"product_id":"p1","quantity":1,"unit_price":5.00}],
		"shipping_address":{"name":"A","email":"a@x.com","address":"1 St","city":"C","zip_code":"00000"}
	}`
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	var created struct {
		Order ord.Order `json:"order"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	w = doJSON(t, r, http.MethodPatch, "/api/orders/"+created.Order.ID, `{"status":"shipped"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got ord.Order
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Status != ord.StatusShipped {
		t.Fatalf("status=%s, want shipped", got.Status)
	}
	if len(got.Items) != 1 {
		t.Fatalf("refreshed view lost its items: %+v", got)
	}
}

func TestUpdateOrderStatus_NotFound(t *testing.T) {
	t.Parallel()

	r := orderRouter(newStubOrderRepo(), "u1")
	w := doJSON(t, r, http.MethodPatch, "/api/orders/"+uuid.NewString(), `{"status":"shipped"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}
