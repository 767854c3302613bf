package model

import (
	"time"

	"github.com/google/uuid"
)

// OneTimeLoginCodeModel mirrors the 'one_time_login_codes' table. Codes are
// stored bcrypt-hashed; UsedAt doubles as the invalidation marker.
type OneTimeLoginCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email     string    `gorm:"type:varchar(255);not null;index:idx_login_codes_email_purpose"`
	CodeHash  string    `gorm:"type:varchar(255);not null"`
	Purpose   string    `gorm:"type:varchar(32);not null;index:idx_login_codes_email_purpose"`
	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OneTimeLoginCodeModel) TableName() string {
	return "one_time_login_codes"
}
