package postgres

import (
	"shipping/internal/adapters/out/postgres/requestrepo"
	"shipping/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or extends the shipping_requests and users tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&requestrepo.ShippingRequestDTO{}, &userrepo.UserDTO{})
}
