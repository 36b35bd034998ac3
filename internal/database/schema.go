// Package database owns the relational schema. Tables are created on
// startup with IF NOT EXISTS so a fresh environment needs no separate
// migration step.
package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS clients (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'client',
    first_name    TEXT NOT NULL,
    last_name     TEXT NOT NULL,
    gender        TEXT,
    mobile_number TEXT,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS client_addresses (
    id        TEXT PRIMARY KEY,
    client_id TEXT NOT NULL REFERENCES clients(id),
    name      TEXT NOT NULL,
    number    TEXT NOT NULL,
    street    TEXT NOT NULL,
    city      TEXT NOT NULL,
    state     TEXT NOT NULL,
    pin_code  TEXT NOT NULL,
    locality  TEXT NOT NULL DEFAULT '',
    type      TEXT NOT NULL DEFAULT 'Home'
);

CREATE TABLE IF NOT EXISTS users_activity (
    client_id     TEXT PRIMARY KEY REFERENCES clients(id),
    last_login    TIMESTAMPTZ NOT NULL,
    last_purchase TIMESTAMPTZ NOT NULL,
    last_activity TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    brand_name TEXT NOT NULL,
    price      NUMERIC(12,2) NOT NULL,
    category   TEXT NOT NULL,
    size       TEXT,
    image      TEXT,
    featured   BOOLEAN NOT NULL DEFAULT FALSE,
    slug       TEXT,
    "desc"     TEXT,
    gift       BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS stock_and_sales (
    product_id       TEXT PRIMARY KEY REFERENCES products(id),
    stock            INTEGER NOT NULL DEFAULT 0,
    sales            INTEGER NOT NULL DEFAULT 0,
    last_update_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS cart_items (
    client_id  TEXT NOT NULL REFERENCES clients(id),
    product_id TEXT NOT NULL REFERENCES products(id),
    quantity   INTEGER NOT NULL CHECK (quantity > 0),
    PRIMARY KEY (client_id, product_id)
);

CREATE TABLE IF NOT EXISTS wishlist_items (
    client_id  TEXT NOT NULL REFERENCES clients(id),
    product_id TEXT NOT NULL REFERENCES products(id),
    PRIMARY KEY (client_id, product_id)
);

CREATE TABLE IF NOT EXISTS orders (
    id                TEXT PRIMARY KEY,
    client_id         TEXT NOT NULL REFERENCES clients(id),
    email             TEXT NOT NULL,
    order_date        TIMESTAMPTZ NOT NULL,
    order_status      TEXT NOT NULL,
    order_total       NUMERIC(12,2) NOT NULL,
    ship_name         TEXT NOT NULL,
    ship_number       TEXT NOT NULL,
    ship_street       TEXT NOT NULL,
    ship_city         TEXT NOT NULL,
    ship_state        TEXT NOT NULL,
    ship_pin_code     TEXT NOT NULL,
    ship_locality     TEXT NOT NULL DEFAULT '',
    ship_type         TEXT NOT NULL DEFAULT 'Home',
    shipping_method   TEXT NOT NULL DEFAULT '',
    tracking_number   TEXT NOT NULL DEFAULT '',
    shipping_status   TEXT NOT NULL DEFAULT '',
    delivery_schedule JSONB NOT NULL,
    payment_method    TEXT NOT NULL,
    amount            NUMERIC(12,2) NOT NULL,
    transaction_id    TEXT NOT NULL DEFAULT '',
    upi_id            TEXT,
    card_number       TEXT,
    card_expiry_date  TEXT,
    card_cvv          TEXT
);

CREATE TABLE IF NOT EXISTS order_items (
    order_id   TEXT NOT NULL REFERENCES orders(id),
    product_id TEXT NOT NULL,
    name       TEXT NOT NULL,
    quantity   INTEGER NOT NULL,
    price      NUMERIC(12,2) NOT NULL,
    PRIMARY KEY (order_id, product_id)
);

CREATE INDEX IF NOT EXISTS idx_orders_client ON orders (client_id, order_date DESC);
CREATE INDEX IF NOT EXISTS idx_orders_date ON orders (order_date);
`

// Migrate applies the schema. Safe to run on every startup.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, schema)
	return err
}
