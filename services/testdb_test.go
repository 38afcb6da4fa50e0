package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vasandree/hits-docker-practice/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{},
		&entity.Address{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
