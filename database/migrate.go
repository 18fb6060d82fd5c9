package database

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/danupratama/portfolio-backend/auth"
	"github.com/danupratama/portfolio-backend/models"
)

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Project{},
		&models.Skill{},
		&models.Experience{},
		&models.Article{},
		&models.Comment{},
		&models.Contact{},
	)
}

// defaultCategories are created on first boot so the frontend's category
// picker is never empty.
var defaultCategories = []models.Category{
	{Name: "Web Development", Icon: "🌐"},
	{Name: "Mobile App", Icon: "📱"},
	{Name: "Machine Learning", Icon: "🤖"},
	{Name: "DevOps", Icon: "⚙️"},
	{Name: "Design", Icon: "🎨"},
	{Name: "Other", Icon: "📦"},
}

// Seed inserts the default admin account and starter categories when they are
// missing. The seeded admin password is a first-boot convenience; deployments
// are expected to change it.
func Seed(db *gorm.DB, adminPassword string) error {
	var admin models.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, hashErr := auth.HashPassword(adminPassword)
		if hashErr != nil {
			return hashErr
		}
		admin = models.User{
			Username:     "admin",
			Email:        "admin@portfolio.com",
			PasswordHash: hash,
			IsAdmin:      true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Info().Msg("Seeded default admin user")
	} else if err != nil {
		return err
	}

	for _, category := range defaultCategories {
		var existing models.Category
		err := db.Where("name = ?", category.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&category).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	return nil
}
