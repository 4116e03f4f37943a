package main

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	crt "github.com/dheeraj4092/Bhuktafoods-Backend/internal/cart"
	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/httpx"
)

// stubCartRepo keeps one user's cart lines in memory.
type stubCartRepo struct {
	lines map[string]map[string]*crt.Item // userID -> productID -> line
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{lines: map[string]map[string]*crt.Item{}}
}

func (s *stubCartRepo) List(ctx context.Context, userID string) ([]crt.Item, error) {
	var out []crt.Item
	for _, it := range s.lines[userID] {
		out = append(out, *it)
	}
	return out, nil
}

func (s *stubCartRepo) Add(ctx context.Context, userID, productID string, quantity int, unit string) error {
	if s.lines[userID] == nil {
		s.lines[userID] = map[string]*crt.Item{}
	}
	if cur, ok := s.lines[userID][productID]; ok {
		cur.Quantity += quantity
		cur.QuantityUnit = unit
		return nil
	}
	s.lines[userID][productID] = &crt.Item{
		ProductID:    productID,
		Quantity:     quantity,
		QuantityUnit: unit,
		Name:         "Murukku",
		Price:        "120.00",
		UpdatedAt:    time.Now(),
	}
	return nil
}

func (s *stubCartRepo) SetQuantity(ctx context.Context, userID, productID string, quantity int) error {
	cur, ok := s.lines[userID][productID]
	if !ok {
		return crt.ErrNotFound
	}
	cur.Quantity = quantity
	return nil
}

func (s *stubCartRepo) Remove(ctx context.Context, userID, productID string) (bool, error) {
	if _, ok := s.lines[userID][productID]; !ok {
		return false, nil
	}
	delete(s.lines[userID], productID)
	return true, nil
}

func (s *stubCartRepo) Clear(ctx context.Context, userID string) error {
	delete(s.lines, userID)
	return nil
}

func cartRouter(repo crt.Repository, uid string) *gin.Engine {
	r := gin.New()
	r.Use(httpx.SetUser(uid, false))
	r.GET("/api/cart", getCartHandler(repo))
	r.DELETE("/api/cart", clearCartHandler(repo))
	r.POST("/api/cart/items", addCartItemHandler(repo))
	r.PUT("/api/cart/items/:productId", setCartQuantityHandler(repo))
	r.DELETE("/api/cart/items/:productId", removeCartItemHandler(repo))
	return r
}

func TestCart_AddAccumulatesAndDefaultsUnit(t *testing.T) {
	t.Parallel()

	repo := newStubCartRepo()
	r := cartRouter(repo, "u1")

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", `{"product_id":"p1","quantity":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/api/cart/items", `{"product_id":"p1","quantity":2}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var items []crt.Item
	_ = json.Unmarshal(w.Body.Bytes(), &items)
	if len(items) != 1 || items[0].Quantity != 3 {
		t.Fatalf("items=%+v, want one line of quantity 3", items)
	}
	if items[0].QuantityUnit != "250g" {
		t.Fatalf("quantity_unit=%q, want default 250g", items[0].QuantityUnit)
	}
}

func TestCart_AddRejectsBadPayload(t *testing.T) {
	t.Parallel()

	r := cartRouter(newStubCartRepo(), "u1")

	if w := doJSON(t, r, http.MethodPost, "/api/cart/items", `{"quantity":1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing product_id: status=%d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/cart/items", `{"product_id":"p1","quantity":0}`); w.Code != http.StatusBadRequest {
		t.Fatalf("zero quantity: status=%d", w.Code)
	}
}

func TestCart_SetQuantityAndRemove(t *testing.T) {
	t.Parallel()

	repo := newStubCartRepo()
	r := cartRouter(repo, "u1")

	doJSON(t, r, http.MethodPost, "/api/cart/items", `{"product_id":"p1","quantity":1}`)

	w := doJSON(t, r, http.MethodPut, "/api/cart/items/p1", `{"quantity":5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var items []crt.Item
	_ = json.Unmarshal(w.Body.Bytes(), &items)
	if items[0].Quantity != 5 {
		t.Fatalf("quantity=%d, want 5", items[0].Quantity)
	}

	if w := doJSON(t, r, http.MethodPut, "/api/cart/items/ghost", `{"quantity":5}`); w.Code != http.StatusNotFound {
		t.Fatalf("unknown line: status=%d, want 404", w.Code)
	}

	if w := doJSON(t, r, http.MethodDelete, "/api/cart/items/p1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("remove: status=%d", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, "/api/cart/items/p1", ""); w.Code != http.StatusNotFound {
		t.Fatalf("remove twice: status=%d, want 404", w.Code)
	}
}

func TestCart_ClearAndEmptyList(t *testing.T) {
	t.Parallel()

	repo := newStubCartRepo()
	r := cartRouter(repo, "u1")

	doJSON(t, r, http.MethodPost, "/api/cart/items", `{"product_id":"p1","quantity":1}`)
	if w := doJSON(t, r, http.MethodDelete, "/api/cart", ""); w.Code != http.StatusNoContent {
		t.Fatalf("clear: status=%d", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/cart", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status=%d", w.Code)
	}
	var items []crt.Item
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("want a JSON array, got %s", w.Body.String())
	}
	if len(items) != 0 {
		t.Fatalf("items=%+v, want empty", items)
	}
}
