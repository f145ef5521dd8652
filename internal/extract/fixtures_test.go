// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package extract

import (
	"context"
	"database/sql"
	"testing"
)

// sakilaFixture is a miniature Sakila schema: two customers, two films in two
// categories across two stores, three rentals and three payments of
// $5, $10 and $15. Statements run unchanged on DuckDB and MySQL.
var sakilaFixture = []string{
	`CREATE TABLE category (category_id INTEGER PRIMARY KEY, name VARCHAR(25) NOT NULL)`,
	`CREATE TABLE film (film_id INTEGER PRIMARY KEY, title VARCHAR(128) NOT NULL)`,
	`CREATE TABLE film_category (film_id INTEGER NOT NULL, category_id INTEGER NOT NULL)`,
	`CREATE TABLE store (store_id INTEGER PRIMARY KEY)`,
	`CREATE TABLE inventory (inventory_id INTEGER PRIMARY KEY, film_id INTEGER NOT NULL, store_id INTEGER NOT NULL)`,
	`CREATE TABLE customer (customer_id INTEGER PRIMARY KEY, first_name VARCHAR(45) NOT NULL, last_name VARCHAR(45) NOT NULL)`,
	`CREATE TABLE rental (rental_id INTEGER PRIMARY KEY, rental_date TIMESTAMP NOT NULL, inventory_id INTEGER NOT NULL, customer_id INTEGER NOT NULL)`,
	`CREATE TABLE payment (payment_id INTEGER PRIMARY KEY, customer_id INTEGER NOT NULL, rental_id INTEGER, amount DOUBLE NOT NULL)`,

	`INSERT INTO category VALUES (1, 'Action'), (2, 'Comedy')`,
	`INSERT INTO film VALUES (1, 'ACADEMY DINOSAUR'), (2, 'BRIDE INTRIGUE')`,
	`INSERT INTO film_category VALUES (1, 1), (2, 2)`,
	`INSERT INTO store VALUES (1), (2)`,
	`INSERT INTO inventory VALUES (1, 1, 1), (2, 2, 2), (3, 1, 2)`,
	`INSERT INTO customer VALUES (1, 'MARY', 'SMITH'), (2, 'PATRICIA', 'JOHNSON')`,
	`INSERT INTO rental VALUES
		(1, '2005-05-24 22:53:30', 1, 1),
		(2, '2005-05-25 10:00:00', 2, 2),
		(3, '2005-06-01 15:30:00', 3, 1)`,
	`INSERT INTO payment VALUES (1, 1, 1, 5.0), (2, 2, 2, 10.0), (3, 1, 3, 15.0)`,
}

// seedSakila creates and fills the fixture tables.
func seedSakila(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()
	for _, stmt := range sakilaFixture {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("seed statement failed: %v\n%s", err, stmt)
		}
	}
}

// setupDuckDBSource opens an in-memory DuckDB seeded with the fixture.
func setupDuckDBSource(t *testing.T) *Source {
	t.Helper()

	db, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("Failed to open duckdb: %v", err)
	}
	src := NewSource(db, DialectDuckDB)
	t.Cleanup(func() { src.Close() })

	seedSakila(t, db)
	return src
}
