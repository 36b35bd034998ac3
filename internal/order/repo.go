package order

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("order not found")

// PaymentFields is the mutable payment slice of an order, replaced as a
// whole by the payment-confirmation step.
type PaymentFields struct {
	OrderStatus    string
	PaymentMethod  string
	UPIID          string
	CardNumber     string
	CardExpiryDate string
	CardCVV        string
}

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByClient(ctx context.Context, clientID string) ([]Order, error)
	// UpdatePayment replaces the payment fields of the order matched by
	// BOTH order id and client id; ErrNotFound when no row matches.
	UpdatePayment(ctx context.Context, orderID, clientID string, f PaymentFields) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	schedule, err := json.Marshal(o.ExpectedDelivery)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO orders (
			id, client_id, email, order_date, order_status, order_total,
			ship_name, ship_number, ship_street, ship_city, ship_state,
			ship_pin_code, ship_locality, ship_type,
			shipping_method, tracking_number, shipping_status, delivery_schedule,
			payment_method, amount, transaction_id,
			upi_id, card_number, card_expiry_date, card_cvv
		) VALUES (
			$1,$2,$3,$4,$5,$6,
			$7,$8,$9,$10,$11,$12,$13,$14,
			$15,$16,$17,$18,
			$19,$20,$21,
			NULLIF($22,''),NULLIF($23,''),NULLIF($24,''),NULLIF($25,'')
		)
	`, o.ID, o.ClientID, o.Email, o.OrderDate, o.OrderStatus, o.OrderTotal,
		o.ShippingAddress.Name, o.ShippingAddress.Number, o.ShippingAddress.Street,
		o.ShippingAddress.City, o.ShippingAddress.State, o.ShippingAddress.PinCode,
		o.ShippingAddress.Locality, o.ShippingAddress.Type,
		o.ShippingMethod, o.TrackingNumber, o.ShippingStatus, schedule,
		o.PaymentMethod, o.Amount, o.TransactionID,
		o.UPIID, o.CardNumber, o.CardExpiryDate, o.CardCVV); err != nil {
		return err
	}

	for _, it := range o.Products {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, name, quantity, price)
			VALUES ($1,$2,$3,$4,$5)
		`, o.ID, it.ProductID, it.Name, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

const orderCols = `id, client_id, email, order_date, order_status, order_total::text,
	ship_name, ship_number, ship_street, ship_city, ship_state,
	ship_pin_code, ship_locality, ship_type,
	shipping_method, tracking_number, shipping_status, delivery_schedule,
	payment_method, amount::text, transaction_id,
	COALESCE(upi_id,''), COALESCE(card_number,''), COALESCE(card_expiry_date,''), COALESCE(card_cvv,'')`

func scanOrder(row interface{ Scan(...any) error }) (Order, error) {
	var (
		o        Order
		schedule []byte
	)
	err := row.Scan(&o.ID, &o.ClientID, &o.Email, &o.OrderDate, &o.OrderStatus, &o.OrderTotal,
		&o.ShippingAddress.Name, &o.ShippingAddress.Number, &o.ShippingAddress.Street,
		&o.ShippingAddress.City, &o.ShippingAddress.State, &o.ShippingAddress.PinCode,
		&o.ShippingAddress.Locality, &o.ShippingAddress.Type,
		&o.ShippingMethod, &o.TrackingNumber, &o.ShippingStatus, &schedule,
		&o.PaymentMethod, &o.Amount, &o.TransactionID,
		&o.UPIID, &o.CardNumber, &o.CardExpiryDate, &o.CardCVV)
	if err != nil {
		return o, err
	}
	if err := json.Unmarshal(schedule, &o.ExpectedDelivery); err != nil {
		return o, err
	}
	return o, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, ErrNotFound
	}

	items, err := r.items(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Products = items
	return &o, nil
}

func (r *PGRepo) ListByClient(ctx context.Context, clientID string) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+orderCols+` FROM orders WHERE client_id=$1 ORDER BY order_date DESC
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := r.items(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Products = items
	}
	return out, nil
}

func (r *PGRepo) UpdatePayment(ctx context.Context, orderID, clientID string, f PaymentFields) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET order_status = $3,
		    payment_method = $4,
		    upi_id = NULLIF($5,''),
		    card_number = NULLIF($6,''),
		    card_expiry_date = NULLIF($7,''),
		    card_cvv = NULLIF($8,'')
		WHERE id = $1 AND client_id = $2
	`, orderID, clientID, f.OrderStatus, f.PaymentMethod,
		f.UPIID, f.CardNumber, f.CardExpiryDate, f.CardCVV)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) items(ctx context.Context, orderID string) ([]LineItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT product_id, name, quantity, price::text
		FROM order_items WHERE order_id=$1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LineItem
	for rows.Next() {
		var it LineItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
