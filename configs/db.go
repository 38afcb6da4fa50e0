package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vasandree/hits-docker-practice/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

// SetupDatabase migrates the persisted schema. Carts stay in memory and
// are deliberately absent here.
func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Address{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
	)
}
