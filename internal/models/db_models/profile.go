package db_models

import "github.com/google/uuid"

// Profile is the free-text personal description a user maintains alongside
// their plans. One row per user.
type Profile struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Information string    `gorm:"type:text"`
	Target      string    `gorm:"type:text"`
}
