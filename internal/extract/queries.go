// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package extract

import "fmt"

// Dialect selects the SQL flavour of the source database.
type Dialect string

const (
	DialectMySQL  Dialect = "mysql"
	DialectDuckDB Dialect = "duckdb"
)

// monthExpr buckets a timestamp column into a YYYY-MM string.
func (d Dialect) monthExpr(col string) string {
	if d == DialectDuckDB {
		return fmt.Sprintf("strftime(%s, '%%Y-%%m')", col)
	}
	return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m')", col)
}

// Query is one report export: the CSV file name and the SQL producing it.
type Query struct {
	File string
	SQL  string
}

// Output files, in export order.
const (
	FileRentalDetail     = "detalle_alquileres.csv"
	FileMonthlyCategory  = "alquileres_por_mes_categoria.csv"
	FileStoreCategory    = "ingresos_por_tienda_categoria.csv"
	FileTopFilms         = "peliculas_mas_rentables.csv"
	FileFrequentCustomer = "clientes_mas_frecuentes.csv"
)

// Queries returns the report queries in export order.
// Every ORDER BY ends on the grouping key so reruns produce identical files.
func Queries(d Dialect) []Query {
	return []Query{
		{
			File: FileRentalDetail,
			SQL: `SELECT r.rental_id,
       CONCAT(c.first_name, ' ', c.last_name) AS cliente,
       f.title AS pelicula,
       cat.name AS categoria,
       r.rental_date
FROM rental r
JOIN customer c ON r.customer_id = c.customer_id
JOIN inventory i ON r.inventory_id = i.inventory_id
JOIN film f ON i.film_id = f.film_id
JOIN film_category fc ON f.film_id = fc.film_id
JOIN category cat ON fc.category_id = cat.category_id
ORDER BY r.rental_id`,
		},
		{
			File: FileMonthlyCategory,
			SQL: `SELECT ` + d.monthExpr("r.rental_date") + ` AS mes,
       cat.name AS categoria,
       COUNT(*) AS total_alquileres
FROM rental r
JOIN inventory i ON r.inventory_id = i.inventory_id
JOIN film f ON i.film_id = f.film_id
JOIN film_category fc ON f.film_id = fc.film_id
JOIN category cat ON fc.category_id = cat.category_id
GROUP BY mes, categoria
ORDER BY mes, total_alquileres DESC, categoria`,
		},
		{
			File: FileStoreCategory,
			SQL: `SELECT st.store_id,
       cat.name AS categoria,
       SUM(p.amount) AS ingresos
FROM payment p
JOIN rental r ON p.rental_id = r.rental_id
JOIN inventory i ON r.inventory_id = i.inventory_id
JOIN film f ON i.film_id = f.film_id
JOIN film_category fc ON f.film_id = fc.film_id
JOIN category cat ON fc.category_id = cat.category_id
JOIN store st ON i.store_id = st.store_id
GROUP BY st.store_id, cat.name
ORDER BY ingresos DESC, st.store_id, categoria`,
		},
		{
			File: FileTopFilms,
			SQL: `SELECT f.title AS pelicula,
       COUNT(p.payment_id) AS total_alquileres,
       SUM(p.amount) AS total_ingresos
FROM payment p
JOIN rental r ON p.rental_id = r.rental_id
JOIN inventory i ON r.inventory_id = i.inventory_id
JOIN film f ON i.film_id = f.film_id
GROUP BY f.title
ORDER BY total_ingresos DESC, pelicula`,
		},
		{
			File: FileFrequentCustomer,
			SQL: `SELECT c.customer_id,
       CONCAT(c.first_name, ' ', c.last_name) AS cliente,
       COUNT(p.payment_id) AS total_transacciones,
       SUM(p.amount) AS total_gastado
FROM customer c
JOIN payment p ON c.customer_id = p.customer_id
GROUP BY c.customer_id, c.first_name, c.last_name
ORDER BY total_gastado DESC, c.customer_id`,
		},
	}
}
