package repository

import (
	"testing"

	"backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database and migrates the catalog
// tables.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening test DB: %v", err)
	}
	err = db.AutoMigrate(
		&model.TipoCompensacao{},
		&model.Norma{},
		&model.Modalidade{},
		&model.NormaTipoCompensacao{},
	)
	if err != nil {
		t.Fatalf("migrating test models: %v", err)
	}
	return db
}
