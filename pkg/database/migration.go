package database

import (
	"github.com/almaspay/backend/internal/model"
	applogger "github.com/almaspay/backend/pkg/logger"
	"gorm.io/gorm"
)

// RunMigrations runs all database migrations
func RunMigrations(db *gorm.DB) error {
	applogger.GetLogger().Info("Running database migrations")

	err := db.AutoMigrate(
		&model.User{},
		&model.ServiceCategory{},
		&model.Service{},
		&model.TeamMember{},
		&model.FormField{},
		&model.CaseStudy{},
		&model.Testimonial{},
		&model.HomepageSection{},
		&model.Logo{},
		&model.ContactSubmission{},
	)
	if err != nil {
		return err
	}

	applogger.GetLogger().Info("Database migrations completed")
	return nil
}
