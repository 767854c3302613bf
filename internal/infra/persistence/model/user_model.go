package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminUserModel mirrors the 'admin_users' table. The partial unique index on
// PickupLocationID is the authoritative guard for the one-location-per-user
// invariant; the workflow's check-then-act lookup only produces the friendly
// error message.
type AdminUserModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FirstName        string     `gorm:"type:varchar(100);not null"`
	LastName         string     `gorm:"type:varchar(100);not null"`
	Email            string     `gorm:"type:varchar(255);unique;not null"`
	Phone            string     `gorm:"type:varchar(32)"`
	Role             string     `gorm:"type:varchar(32);not null"`
	PickupLocationID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uniq_admin_users_pickup_location,where:pickup_location_id IS NOT NULL"`
	EmailVerified    bool       `gorm:"not null;default:false"`
	IsActive         bool       `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminUserModel) TableName() string {
	return "admin_users"
}
