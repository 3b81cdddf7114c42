package database

import (
	"cafeteria_manager/constants"
	"cafeteria_manager/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "changeme123"
	}
	users := []model.User{
		{Username: "administrator", Email: "admin@cafeteria.local", Password: hashPassword, Role: constants.ROLE_ADMIN, Status: constants.USER_STATUS_ACTIVE},
		{Username: "counter-staff", Email: "staff@cafeteria.local", Password: hashPassword, Role: constants.ROLE_STAFF, Status: constants.USER_STATUS_ACTIVE},
	}

	for _, user := range users {
		if err := db.Where(model.User{Username: user.Username}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed data for user:", user.Username, "error:", err)
		}
	}

	menuItems := []model.MenuItem{
		{Name: "Coffee", Slug: "coffee", Description: "Freshly brewed drip coffee", Price: 2.50, Category: "beverages", Quantity: 200, Threshold: 20},
		{Name: "Green Tea", Slug: "green-tea", Description: "Hot green tea", Price: 2.00, Category: "beverages", Quantity: 150, Threshold: 15},
		{Name: "Club Sandwich", Slug: "club-sandwich", Description: "Triple-decker with chicken and bacon", Price: 6.50, Category: "food", Quantity: 60, Threshold: 10},
		{Name: "Veggie Wrap", Slug: "veggie-wrap", Description: "Grilled vegetables in a tortilla wrap", Price: 5.00, Category: "food", Quantity: 40, Threshold: 10},
		{Name: "Cheesecake Slice", Slug: "cheesecake-slice", Description: "New York style cheesecake", Price: 4.00, Category: "desserts", Quantity: 30, Threshold: 5},
		{Name: "Potato Chips", Slug: "potato-chips", Description: "Salted potato chips", Price: 1.50, Category: "snacks", Quantity: 100, Threshold: 20},
	}

	for _, item := range menuItems {
		if err := db.Where(model.MenuItem{Slug: item.Slug}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed data for menu item:", item.Name, "error:", err)
		}
	}
}
