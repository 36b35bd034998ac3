package product

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	List(ctx context.Context, gift bool) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p *Product, initialStock int) error
	ListWithStock(ctx context.Context) ([]StockedProduct, error)
	// AdjustStock applies the commutative inventory adjustment of one
	// order line: stock -= qty, sales += qty, stamped with now.
	AdjustStock(ctx context.Context, productID string, qty int) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const productCols = `id, name, brand_name, price::text, category,
	COALESCE(size,''), COALESCE(image,''), featured, COALESCE(slug,''), COALESCE("desc",''), gift`

func scanProduct(row interface{ Scan(...any) error }) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.BrandName, &p.Price, &p.Category,
		&p.Size, &p.Image, &p.Featured, &p.Slug, &p.Desc, &p.Gift)
	return p, err
}

func (r *PGRepo) List(ctx context.Context, gift bool) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+productCols+` FROM products WHERE gift=$1 ORDER BY name
	`, gift)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRow(ctx, `
		SELECT `+productCols+` FROM products WHERE id=$1
	`, id))
	if err != nil {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Create inserts the catalog row together with its zeroed inventory record.
func (r *PGRepo) Create(ctx context.Context, p *Product, initialStock int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO products (id, name, brand_name, price, category, size, image, featured, slug, "desc", gift)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`, p.ID, p.Name, p.BrandName, p.Price, p.Category, p.Size, p.Image, p.Featured, p.Slug, p.Desc, p.Gift); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO stock_and_sales (product_id, stock, sales, last_update_date)
		VALUES ($1,$2,0,NOW())
	`, p.ID, initialStock); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) ListWithStock(ctx context.Context) ([]StockedProduct, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.name, p.price::text, p.category,
		       COALESCE(s.stock, 0), COALESCE(s.sales, 0)
		FROM products p
		LEFT JOIN stock_and_sales s ON s.product_id = p.id
		ORDER BY p.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StockedProduct
	for rows.Next() {
		var sp StockedProduct
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Price, &sp.Category, &sp.Stock, &sp.Sales); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (r *PGRepo) AdjustStock(ctx context.Context, productID string, qty int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		UPDATE stock_and_sales
		SET stock = stock - $2,
		    sales = sales + $2,
		    last_update_date = NOW()
		WHERE product_id = $1
	`, productID, qty)
	return err
}
