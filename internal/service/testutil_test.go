package service

import (
	"sync"
	"testing"

	"backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

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

// recordingNotifier captures change notifications for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) NotifyChange(recurso, acao string, id uint) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, recurso+"/"+acao)
}

func (n *recordingNotifier) Events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.events...)
}
