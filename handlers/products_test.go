package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmacy-server/catalog"
	"pharmacy-server/models"
	"pharmacy-server/services"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/products/", GetProducts)
	router.GET("/api/v1/products/:id", GetProduct)
	router.GET("/api/v1/search", SearchProducts)
	return router
}

func setupProductHandlers(t *testing.T) {
	t.Helper()
	InitializeHandlers(nil,
		nil,
		services.NewSearchEngine(nil),
		services.NewWishlistService(emptyWishlistStore{}),
		nil,
	)
}

type emptyWishlistStore struct{}

func (emptyWishlistStore) Has(string, int64) (bool, error)                 { return false, nil }
func (emptyWishlistStore) Add(string, int64) error                         { return nil }
func (emptyWishlistStore) Remove(string, int64) error                      { return nil }
func (emptyWishlistStore) ProductIDs(string) ([]int64, error)              { return nil, nil }
func (emptyWishlistStore) HasCustomProduct(int64) (bool, error)            { return false, nil }
func (emptyWishlistStore) SaveCustomProduct(models.Product) error          { return nil }
func (emptyWishlistStore) GetCustomProduct(int64) (*models.Product, error) { return nil, nil }

func TestGetProductsListsCatalog(t *testing.T) {
	setupProductHandlers(t)
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Products []models.Product `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body.Products) != len(catalog.All()) {
		t.Errorf("expected the full catalog, got %d products", len(body.Products))
	}
}

func TestGetProductDeepLink(t *testing.T) {
	setupProductHandlers(t)
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var p models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if p.Name != "Dolo 650" {
		t.Errorf("expected Dolo 650, got %q", p.Name)
	}
}

func TestGetProductNotFound(t *testing.T) {
	setupProductHandlers(t)
	router := newTestRouter()

	for _, path := range []string{"/api/v1/products/4242", "/api/v1/products/100001", "/api/v1/products/abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		if w.Code == http.StatusOK {
			t.Errorf("%s unexpectedly resolved", path)
		}
	}
}

func TestSearchEndpoint(t *testing.T) {
	setupProductHandlers(t)
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=paracetamol", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Products []models.Product `json:"products"`
		Count    int              `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Count == 0 {
		t.Error("expected local matches for paracetamol")
	}
}

func TestSearchEndpointRequiresQuery(t *testing.T) {
	setupProductHandlers(t)
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
