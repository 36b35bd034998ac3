package cart

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("cart item not found")

// Item is a cart row joined with the product snapshot the storefront
// renders next to it.
type Item struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	BrandName string `json:"brandName"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Price     string `json:"price"`
	Category  string `json:"category"`
	Size      string `json:"size,omitempty"`
	Featured  bool   `json:"featured"`
	Slug      string `json:"slug,omitempty"`
	Desc      string `json:"desc,omitempty"`
}

type Repository interface {
	ListByClient(ctx context.Context, clientID string) ([]Item, error)
	// Add inserts the product or bumps its quantity when already present.
	Add(ctx context.Context, clientID, productID string, quantity int) (created bool, err error)
	Remove(ctx context.Context, clientID, productID string) (bool, error)
	IncreaseQuantity(ctx context.Context, clientID, productID string) (bool, error)
	// DecreaseQuantity decrements only while quantity > 1.
	DecreaseQuantity(ctx context.Context, clientID, productID string) (bool, error)
	Clear(ctx context.Context, clientID string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) ListByClient(ctx context.Context, clientID string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT c.product_id, c.quantity, p.brand_name, p.name, COALESCE(p.image,''),
		       p.price::text, p.category, COALESCE(p.size,''), p.featured,
		       COALESCE(p.slug,''), COALESCE(p."desc",'')
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.client_id = $1
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.Quantity, &it.BrandName, &it.Name, &it.Image,
			&it.Price, &it.Category, &it.Size, &it.Featured, &it.Slug, &it.Desc); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PGRepo) Add(ctx context.Context, clientID, productID string, quantity int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE cart_items SET quantity = quantity + $3
		WHERE client_id=$1 AND product_id=$2
	`, clientID, productID, quantity)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO cart_items (client_id, product_id, quantity)
		VALUES ($1,$2,$3)
	`, clientID, productID, quantity)
	return true, err
}

func (r *PGRepo) Remove(ctx context.Context, clientID, productID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM cart_items WHERE client_id=$1 AND product_id=$2
	`, clientID, productID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGRepo) IncreaseQuantity(ctx context.Context, clientID, productID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE cart_items SET quantity = quantity + 1
		WHERE client_id=$1 AND product_id=$2
	`, clientID, productID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGRepo) DecreaseQuantity(ctx context.Context, clientID, productID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE cart_items SET quantity = quantity - 1
		WHERE client_id=$1 AND product_id=$2 AND quantity > 1
	`, clientID, productID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGRepo) Clear(ctx context.Context, clientID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE client_id=$1`, clientID)
	return err
}
