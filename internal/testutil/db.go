package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/quoteboard/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema, closed
// on cleanup
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
