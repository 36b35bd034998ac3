package wishlist

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound      = errors.New("wishlist item not found")
	ErrAlreadyExists = errors.New("product already in wishlist")
)

type Item struct {
	ProductID string `json:"product_id"`
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
	Add(ctx context.Context, clientID, productID string) error
	Remove(ctx context.Context, clientID, productID string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) ListByClient(ctx context.Context, clientID string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT w.product_id, p.brand_name, p.name, COALESCE(p.image,''),
		       p.price::text, p.category, COALESCE(p.size,''), p.featured,
		       COALESCE(p.slug,''), COALESCE(p."desc",'')
		FROM wishlist_items w
		JOIN products p ON p.id = w.product_id
		WHERE w.client_id = $1
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.BrandName, &it.Name, &it.Image,
			&it.Price, &it.Category, &it.Size, &it.Featured, &it.Slug, &it.Desc); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PGRepo) Add(ctx context.Context, clientID, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		INSERT INTO wishlist_items (client_id, product_id)
		VALUES ($1,$2)
		ON CONFLICT (client_id, product_id) DO NOTHING
	`, clientID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyExists
	}
	return nil
}

func (r *PGRepo) Remove(ctx context.Context, clientID, productID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM wishlist_items WHERE client_id=$1 AND product_id=$2
	`, clientID, productID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
