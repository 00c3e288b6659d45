package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmacy-server/models"
	"pharmacy-server/services"

	"github.com/gin-gonic/gin"
)

type memWishlistStore struct {
	items  map[string]map[int64]bool
	custom map[int64]models.Product
}

func newMemWishlistStore() *memWishlistStore {
	return &memWishlistStore{items: map[string]map[int64]bool{}, custom: map[int64]models.Product{}}
}

func (m *memWishlistStore) Has(clientID string, productID int64) (bool, error) {
	return m.items[clientID][productID], nil
}

func (m *memWishlistStore) Add(clientID string, productID int64) error {
	if m.items[clientID] == nil {
		m.items[clientID] = map[int64]bool{}
	}
	m.items[clientID][productID] = true
	return nil
}

func (m *memWishlistStore) Remove(clientID string, productID int64) error {
	delete(m.items[clientID], productID)
	return nil
}

func (m *memWishlistStore) ProductIDs(clientID string) ([]int64, error) {
	var ids []int64
	for id := range m.items[clientID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *memWishlistStore) HasCustomProduct(productID int64) (bool, error) {
	_, ok := m.custom[productID]
	return ok, nil
}

func (m *memWishlistStore) SaveCustomProduct(p models.Product) error {
	m.custom[p.ID] = p
	return nil
}

func (m *memWishlistStore) GetCustomProduct(productID int64) (*models.Product, error) {
	if p, ok := m.custom[productID]; ok {
		return &p, nil
	}
	return nil, nil
}

func newWishlistRouter(store services.WishlistStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	InitializeHandlers(nil, nil, services.NewSearchEngine(nil), services.NewWishlistService(store), nil)
	router := gin.New()
	router.GET("/api/v1/wishlist/", GetWishlist)
	router.POST("/api/v1/wishlist/toggle", ToggleWishlist)
	return router
}

func toggle(t *testing.T, router *gin.Engine, clientID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-ID", clientID)
	router.ServeHTTP(w, req)
	return w
}

func TestToggleWishlistRoundTrip(t *testing.T) {
	router := newWishlistRouter(newMemWishlistStore())

	w := toggle(t, router, "c1", gin.H{"product_id": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		InWishlist bool `json:"in_wishlist"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.InWishlist {
		t.Error("first toggle must add")
	}

	w = toggle(t, router, "c1", gin.H{"product_id": 1})
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.InWishlist {
		t.Error("second toggle must remove")
	}
}

func TestToggleWishlistClientsAreIsolated(t *testing.T) {
	router := newWishlistRouter(newMemWishlistStore())

	toggle(t, router, "c1", gin.H{"product_id": 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wishlist/", nil)
	req.Header.Set("X-Client-ID", "c2")
	router.ServeHTTP(w, req)

	var body struct {
		Count int `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Count != 0 {
		t.Errorf("client c2 sees %d foreign items", body.Count)
	}
}

func TestToggleWishlistSyntheticNeedsRecord(t *testing.T) {
	router := newWishlistRouter(newMemWishlistStore())

	w := toggle(t, router, "c1", gin.H{"product_id": models.SyntheticIDThreshold + 5})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want failure without a product record", w.Code)
	}

	w = toggle(t, router, "c1", gin.H{
		"product_id": models.SyntheticIDThreshold + 5,
		"product": models.Product{
			ID:   models.SyntheticIDThreshold + 5,
			Name: "Tusq-DX",
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
}

func TestToggleWishlistRejectsBadBody(t *testing.T) {
	router := newWishlistRouter(newMemWishlistStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle", bytes.NewReader([]byte("not json")))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
