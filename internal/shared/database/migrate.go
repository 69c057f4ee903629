package database

import (
	"bookceleb/internal/admins"
	"bookceleb/internal/bookings"
	"bookceleb/internal/celebrities"
	"bookceleb/internal/contact"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&admins.Profile{},
		&celebrities.Celebrity{},
		&bookings.Booking{},
		&contact.Message{},
	)
}
