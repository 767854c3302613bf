package model

import (
	"time"

	"github.com/google/uuid"
)

// PickupLocationModel mirrors the 'pickup_locations' table.
type PickupLocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	Address   string    `gorm:"type:text;not null"`
	Location  GeoPoint  `gorm:"not null"`
	RegionID  uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PickupLocationModel) TableName() string {
	return "pickup_locations"
}

// RegionModel mirrors the 'regions' table. Regions are maintained by the
// region service; this service only reads them for name resolution.
type RegionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(100);not null;unique"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string {
	return "regions"
}
