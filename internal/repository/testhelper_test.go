package repository

import (
	"database/sql"
	"testing"

	"github.com/dropshipai/branding-api/internal/database/migrations"
	_ "github.com/tursodatabase/go-libsql"
)

// setupTestDB creates an in-memory SQLite database, runs migrations, and
// registers cleanup with the test.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("libsql", ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := migrations.Run(db, nil); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// setupDriftedTestDB creates a database whose projects table predates the
// brand_tone column, simulating a deployment that missed that migration.
func setupDriftedTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("libsql", ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	schema := []string{
		`CREATE TABLE projects (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			product_name TEXT NOT NULL,
			product_description TEXT,
			target_persona TEXT,
			locality TEXT,
			created_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to create drifted schema: %v", err)
		}
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// insertTestProject inserts a project row directly.
func insertTestProject(t *testing.T, db *sql.DB, id, userID, productName string) {
	t.Helper()
	query := `
		INSERT INTO projects (id, user_id, product_name, product_description, target_persona, locality, brand_tone, created_at)
		VALUES (?, ?, ?, 'A test product', 'testers', 'Australia', 'playful', datetime('now'))
	`
	if _, err := db.Exec(query, id, userID, productName); err != nil {
		t.Fatalf("failed to insert test project: %v", err)
	}
}
