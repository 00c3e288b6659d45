package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"pharmacy-server/catalog"
	"pharmacy-server/database"
	"pharmacy-server/models"

	"github.com/google/uuid"
)

// WishlistStore persists wishlist membership and the custom-product side
// list needed to render non-catalog entries later.
type WishlistStore interface {
	Has(clientID string, productID int64) (bool, error)
	Add(clientID string, productID int64) error
	Remove(clientID string, productID int64) error
	ProductIDs(clientID string) ([]int64, error)
	HasCustomProduct(productID int64) (bool, error)
	SaveCustomProduct(p models.Product) error
	GetCustomProduct(productID int64) (*models.Product, error)
}

type WishlistService struct {
	store WishlistStore
}

func NewWishlistService(store WishlistStore) *WishlistService {
	return &WishlistService{store: store}
}

// Toggle flips wishlist membership for a product and reports the new state.
// The first time a non-catalog id enters any wishlist its record is copied
// into the side list; removal never prunes that list.
func (s *WishlistService) Toggle(clientID string, productID int64, product *models.Product) (bool, error) {
	present, err := s.store.Has(clientID, productID)
	if err != nil {
		return false, err
	}
	if present {
		if err := s.store.Remove(clientID, productID); err != nil {
			return true, err
		}
		return false, nil
	}

	if productID >= models.SyntheticIDThreshold {
		known, err := s.store.HasCustomProduct(productID)
		if err != nil {
			return false, err
		}
		if !known {
			if product == nil {
				return false, fmt.Errorf("product record required for non-catalog id %d", productID)
			}
			saved := *product
			saved.ID = productID
			saved.Source = models.ProductSourceAI
			if strings.HasPrefix(saved.Image, "data:") {
				if hosted, err := RehostDataURI(saved.Image, "custom-products"); err == nil {
					saved.Image = hosted
				} else {
					fmt.Printf("keeping inline image for product %d: %v\n", productID, err)
				}
			}
			if err := s.store.SaveCustomProduct(saved); err != nil {
				return false, err
			}
		}
	}

	if err := s.store.Add(clientID, productID); err != nil {
		return false, err
	}
	return true, nil
}

// CustomProduct resolves a synthetic product id from the side list.
func (s *WishlistService) CustomProduct(productID int64) (*models.Product, error) {
	return s.store.GetCustomProduct(productID)
}

// ProductIDs returns the raw wishlist membership.
func (s *WishlistService) ProductIDs(clientID string) ([]int64, error) {
	return s.store.ProductIDs(clientID)
}

// Products resolves the wishlist to renderable product records, catalog ids
// from the static catalog and synthetic ids from the side list. Unknown ids
// are skipped, not errors.
func (s *WishlistService) Products(clientID string) ([]models.Product, error) {
	ids, err := s.store.ProductIDs(clientID)
	if err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if id < models.SyntheticIDThreshold {
			if p := catalog.FindByID(id); p != nil {
				products = append(products, *p)
			}
			continue
		}
		p, err := s.store.GetCustomProduct(id)
		if err != nil {
			fmt.Printf("unresolvable wishlist id %d: %v\n", id, err)
			continue
		}
		if p != nil {
			products = append(products, *p)
		}
	}
	return products, nil
}

// SQLWishlistStore is the PostgreSQL store.
type SQLWishlistStore struct{}

func NewSQLWishlistStore() *SQLWishlistStore {
	return &SQLWishlistStore{}
}

func (s *SQLWishlistStore) Has(clientID string, productID int64) (bool, error) {
	var exists bool
	err := database.Database.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM wishlist_items WHERE client_id = $1 AND product_id = $2)`,
		clientID, productID,
	).Scan(&exists)
	return exists, err
}

func (s *SQLWishlistStore) Add(clientID string, productID int64) error {
	_, err := database.Database.Exec(
		`INSERT INTO wishlist_items (id, client_id, product_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		uuid.New().String(), clientID, productID,
	)
	return err
}

func (s *SQLWishlistStore) Remove(clientID string, productID int64) error {
	_, err := database.Database.Exec(
		`DELETE FROM wishlist_items WHERE client_id = $1 AND product_id = $2`,
		clientID, productID,
	)
	return err
}

func (s *SQLWishlistStore) ProductIDs(clientID string) ([]int64, error) {
	rows, err := database.Database.Query(
		`SELECT product_id FROM wishlist_items WHERE client_id = $1 ORDER BY created_at ASC`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *SQLWishlistStore) HasCustomProduct(productID int64) (bool, error) {
	var exists bool
	err := database.Database.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM custom_products WHERE product_id = $1)`,
		productID,
	).Scan(&exists)
	return exists, err
}

func (s *SQLWishlistStore) SaveCustomProduct(p models.Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal custom product: %w", err)
	}
	_, err = database.Database.Exec(
		`INSERT INTO custom_products (product_id, product) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		p.ID, string(data),
	)
	return err
}

func (s *SQLWishlistStore) GetCustomProduct(productID int64) (*models.Product, error) {
	var data []byte
	err := database.Database.QueryRow(
		`SELECT product FROM custom_products WHERE product_id = $1`,
		productID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p models.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("corrupt custom product %d: %w", productID, err)
	}
	return &p, nil
}
