package services

import (
	"testing"

	"pharmacy-server/models"
)

type fakeWishlistStore struct {
	items  map[string]map[int64]bool
	order  map[string][]int64
	custom map[int64]models.Product
	saves  int
}

func newFakeWishlistStore() *fakeWishlistStore {
	return &fakeWishlistStore{
		items:  map[string]map[int64]bool{},
		order:  map[string][]int64{},
		custom: map[int64]models.Product{},
	}
}

func (f *fakeWishlistStore) Has(clientID string, productID int64) (bool, error) {
	return f.items[clientID][productID], nil
}

func (f *fakeWishlistStore) Add(clientID string, productID int64) error {
	if f.items[clientID] == nil {
		f.items[clientID] = map[int64]bool{}
	}
	if !f.items[clientID][productID] {
		f.items[clientID][productID] = true
		f.order[clientID] = append(f.order[clientID], productID)
	}
	return nil
}

func (f *fakeWishlistStore) Remove(clientID string, productID int64) error {
	delete(f.items[clientID], productID)
	ids := f.order[clientID][:0]
	for _, id := range f.order[clientID] {
		if id != productID {
			ids = append(ids, id)
		}
	}
	f.order[clientID] = ids
	return nil
}

func (f *fakeWishlistStore) ProductIDs(clientID string) ([]int64, error) {
	return append([]int64{}, f.order[clientID]...), nil
}

func (f *fakeWishlistStore) HasCustomProduct(productID int64) (bool, error) {
	_, ok := f.custom[productID]
	return ok, nil
}

func (f *fakeWishlistStore) SaveCustomProduct(p models.Product) error {
	f.saves++
	f.custom[p.ID] = p
	return nil
}

func (f *fakeWishlistStore) GetCustomProduct(productID int64) (*models.Product, error) {
	if p, ok := f.custom[productID]; ok {
		return &p, nil
	}
	return nil, nil
}

func TestToggleIsIdempotentUnderDoubleToggle(t *testing.T) {
	store := newFakeWishlistStore()
	svc := NewWishlistService(store)

	added, err := svc.Toggle("c1", 1, nil)
	if err != nil || !added {
		t.Fatalf("first toggle: added=%v err=%v", added, err)
	}
	added, err = svc.Toggle("c1", 1, nil)
	if err != nil || added {
		t.Fatalf("second toggle: added=%v err=%v", added, err)
	}

	ids, _ := svc.ProductIDs("c1")
	if len(ids) != 0 {
		t.Errorf("double toggle must restore the initial state, got %v", ids)
	}
}

func TestCustomProductSideListOnlyGrows(t *testing.T) {
	store := newFakeWishlistStore()
	svc := NewWishlistService(store)

	synthetic := models.Product{
		ID:     models.SyntheticIDThreshold + 42,
		Name:   "Tusq-DX",
		Source: models.ProductSourceAI,
	}

	if _, err := svc.Toggle("c1", synthetic.ID, &synthetic); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("expected one custom-product save, got %d", store.saves)
	}

	// Removal never prunes the side list.
	if _, err := svc.Toggle("c1", synthetic.ID, nil); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if known, _ := store.HasCustomProduct(synthetic.ID); !known {
		t.Error("custom product must survive wishlist removal")
	}

	// Re-adding a known synthetic id needs no record and saves nothing new.
	if _, err := svc.Toggle("c1", synthetic.ID, nil); err != nil {
		t.Fatalf("re-add failed: %v", err)
	}
	if store.saves != 1 {
		t.Errorf("side list must only grow on first sight, got %d saves", store.saves)
	}
}

func TestToggleSyntheticWithoutRecordFails(t *testing.T) {
	svc := NewWishlistService(newFakeWishlistStore())
	if _, err := svc.Toggle("c1", models.SyntheticIDThreshold+1, nil); err == nil {
		t.Fatal("expected error for unknown synthetic id without a record")
	}
}

func TestProductsResolvesCatalogAndCustomIDs(t *testing.T) {
	store := newFakeWishlistStore()
	svc := NewWishlistService(store)

	synthetic := models.Product{ID: models.SyntheticIDThreshold + 9, Name: "Ascoril LS"}
	if _, err := svc.Toggle("c1", 1, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Toggle("c1", synthetic.ID, &synthetic); err != nil {
		t.Fatal(err)
	}

	products, err := svc.Products("c1")
	if err != nil {
		t.Fatalf("products failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 resolved products, got %d", len(products))
	}
	if products[0].Name != "Dolo 650" || products[1].Name != "Ascoril LS" {
		t.Errorf("unexpected resolution: %+v", products)
	}
}
