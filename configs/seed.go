package configs

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/vasandree/hits-docker-practice/entity"
)

// SeedAdmin creates the operator account on first boot.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FullName:  "Administrator",
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedMenu inserts a starter menu so a fresh install has something to order.
func SeedMenu() error {
	db := DB()

	items := []entity.MenuItem{
		{Name: "Latte", Price: decimal.NewFromFloat(4.5), Category: entity.CategoryDrink, IsVegan: false},
		{Name: "Green Tea", Price: decimal.NewFromFloat(3), Category: entity.CategoryDrink, IsVegan: true},
		{Name: "Margherita", Price: decimal.NewFromFloat(12.5), Category: entity.CategoryDish, IsVegan: false},
		{Name: "Falafel Bowl", Price: decimal.NewFromFloat(10), Category: entity.CategoryDish, IsVegan: true},
		{Name: "Cheesecake", Price: decimal.NewFromFloat(6), Category: entity.CategoryDessert, IsVegan: false},
	}
	for _, item := range items {
		var count int64
		db.Model(&entity.MenuItem{}).Where("name = ?", item.Name).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}
