package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table the repositories own.
// cmd binaries and the test suites call it; production schemas are
// expected to be managed the same way for now.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&cityModel{},
		&companyModel{},
		&customerModel{},
		&expeditionModel{},
		&seatModel{},
		&ticketModel{},
		&paymentModel{},
		&cardModel{},
		&sessionModel{},
	)
}
