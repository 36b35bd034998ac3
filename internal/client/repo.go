package client

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("client not found")

type Repository interface {
	GetByID(ctx context.Context, id string) (*Client, error)
	GetByEmail(ctx context.Context, email string) (*Client, error)
	Create(ctx context.Context, c *Client) error
	ListAll(ctx context.Context) ([]Client, error)
	AddAddress(ctx context.Context, clientID string, a *DeliveryAddress) error
	UpdateAddress(ctx context.Context, clientID string, a *DeliveryAddress) (bool, error)
	TouchLogin(ctx context.Context, clientID string) error
	TouchPurchase(ctx context.Context, clientID string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Client
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, first_name, last_name,
		       COALESCE(gender,''), COALESCE(mobile_number,''), created_at
		FROM clients WHERE id=$1
	`, id).Scan(&c.ID, &c.Email, &c.PasswordHash, &c.Role, &c.FirstName, &c.LastName,
		&c.Gender, &c.MobileNumber, &c.CreatedAt)
	if err != nil {
		return nil, ErrNotFound
	}

	addrs, err := r.addresses(ctx, id)
	if err != nil {
		return nil, err
	}
	c.DeliveryAddresses = addrs
	return &c, nil
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Client
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, first_name, last_name,
		       COALESCE(gender,''), COALESCE(mobile_number,''), created_at
		FROM clients WHERE email=$1
	`, email).Scan(&c.ID, &c.Email, &c.PasswordHash, &c.Role, &c.FirstName, &c.LastName,
		&c.Gender, &c.MobileNumber, &c.CreatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *PGRepo) Create(ctx context.Context, c *Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO clients (id, email, password_hash, role, first_name, last_name, gender, mobile_number, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW())
	`, c.ID, c.Email, c.PasswordHash, c.Role, c.FirstName, c.LastName, c.Gender, c.MobileNumber)
	if err != nil {
		return err
	}

	for i := range c.DeliveryAddresses {
		if err := r.AddAddress(ctx, c.ID, &c.DeliveryAddresses[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *PGRepo) ListAll(ctx context.Context) ([]Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, email, password_hash, role, first_name, last_name,
		       COALESCE(gender,''), COALESCE(mobile_number,''), created_at
		FROM clients ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Client
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Email, &c.PasswordHash, &c.Role, &c.FirstName, &c.LastName,
			&c.Gender, &c.MobileNumber, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PGRepo) AddAddress(ctx context.Context, clientID string, a *DeliveryAddress) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO client_addresses (id, client_id, name, number, street, city, state, pin_code, locality, type)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`, a.ID, clientID, a.Name, a.Number, a.Street, a.City, a.State, a.PinCode, a.Locality, a.Type)
	return err
}

func (r *PGRepo) UpdateAddress(ctx context.Context, clientID string, a *DeliveryAddress) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE client_addresses
		SET name=$3, number=$4, street=$5, city=$6, state=$7, pin_code=$8, locality=$9, type=$10
		WHERE id=$1 AND client_id=$2
	`, a.ID, clientID, a.Name, a.Number, a.Street, a.City, a.State, a.PinCode, a.Locality, a.Type)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// TouchLogin upserts the activity row stamping last_login, seeding the
// other timestamps on first sight of the client.
func (r *PGRepo) TouchLogin(ctx context.Context, clientID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO users_activity (client_id, last_login, last_purchase, last_activity)
		VALUES ($1, NOW(), NOW(), NOW())
		ON CONFLICT (client_id) DO UPDATE SET last_login = NOW(), last_activity = NOW()
	`, clientID)
	return err
}

func (r *PGRepo) TouchPurchase(ctx context.Context, clientID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO users_activity (client_id, last_login, last_purchase, last_activity)
		VALUES ($1, NOW(), NOW(), NOW())
		ON CONFLICT (client_id) DO UPDATE SET last_purchase = NOW(), last_activity = NOW()
	`, clientID)
	return err
}

func (r *PGRepo) addresses(ctx context.Context, clientID string) ([]DeliveryAddress, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, number, street, city, state, pin_code, locality, type
		FROM client_addresses WHERE client_id=$1
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DeliveryAddress
	for rows.Next() {
		var a DeliveryAddress
		if err := rows.Scan(&a.ID, &a.Name, &a.Number, &a.Street, &a.City, &a.State, &a.PinCode, &a.Locality, &a.Type); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
