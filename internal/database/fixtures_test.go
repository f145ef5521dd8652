// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/rentalytics/internal/config"
)

// testDBSemaphore limits concurrent DuckDB instances in tests.
var testDBSemaphore = make(chan struct{}, 1)

// fixtureFiles holds small cleaned datasets with hand-checked aggregates.
var fixtureFiles = map[Dataset]string{
	Rentals: `rental_id,cliente,pelicula,categoria,rental_date,weekday,hour,genero_estimado
1,MARY SMITH,ACADEMY DINOSAUR,Action,2005-05-24 22:53:30,Tuesday,22,Femenino
2,PATRICIA JOHNSON,BRIDE INTRIGUE,Comedy,2005-05-25 10:00:00,Wednesday,10,Femenino
3,JOHN DOE,ACADEMY DINOSAUR,Action,2005-05-25 11:00:00,Wednesday,11,Masculino
4,LINDA WILLIAMS,ZORRO ARK,Comedy,2005-06-01 15:30:00,Wednesday,15,
5,JOHN DOE,BRIDE INTRIGUE,Comedy,2005-05-24 09:00:00,Tuesday,9,Masculino
`,
	MonthlyCategory: `mes,categoria,total_alquileres,total_global_mes,nombre_mes,num_mes
2005-05,Action,10,25,May,5
2005-05,Comedy,15,25,May,5
2005-06,Action,20,30,June,6
2005-06,Drama,10,30,June,6
2005-07,Comedy,5,5,July,7
`,
	StoreRevenue: `store_id,categoria,ingresos,pct_ingreso_tienda
1,Action,60.5,60.5
1,Comedy,39.5,39.5
2,Action,30,25
2,Drama,90,75
`,
	TopFilms: `pelicula,total_alquileres,total_ingresos
A,10,50
B,2,40
C,3,45
D,8,20
E,1,60
`,
	TopCustomers: `customer_id,cliente,total_transacciones,total_gastado
1,MARY SMITH,30,150.5
2,PATRICIA JOHNSON,25,120
3,LINDA WILLIAMS,20,150.5
4,MARY SMITH,10,90
5,BARBARA JONES,5,
`,
}

// writeDatasets writes the fixture files into dir. overrides replaces the
// content of single datasets; an empty override skips the file.
func writeDatasets(t *testing.T, dir string, overrides map[Dataset]string) {
	t.Helper()
	for _, ds := range Datasets {
		content := fixtureFiles[ds]
		if o, ok := overrides[ds]; ok {
			content = o
		}
		if content == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, ds.FileName()), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", ds.FileName(), err)
		}
	}
}

// setupTestDB opens an in-memory database over a fresh fixture directory
// without loading it.
func setupTestDB(t *testing.T, overrides map[Dataset]string) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}

	dir := t.TempDir()
	writeDatasets(t, dir, overrides)

	cfg := &config.DatasetConfig{
		Dir:       dir,
		MaxMemory: "256MB",
		Threads:   2,
	}

	db, err := New(cfg)
	if err != nil {
		<-testDBSemaphore
		t.Fatalf("Failed to create database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close database: %v", err)
		}
		<-testDBSemaphore
	})
	return db
}

// setupLoadedDB is setupTestDB followed by a successful Load.
func setupLoadedDB(t *testing.T) *DB {
	t.Helper()
	db := setupTestDB(t, nil)
	if err := db.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return db
}
