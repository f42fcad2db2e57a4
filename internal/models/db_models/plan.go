package db_models

import "github.com/google/uuid"

// Plan is one weekly recurring activity owned by a single user.
// StartTime/EndTime hold a time-of-day; callers always see them as "HH:MM".
type Plan struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text"`
	DayOfWeek   int       `gorm:"type:smallint;not null"` // 1 = Monday .. 7 = Sunday
	StartTime   string    `gorm:"type:time;not null"`
	EndTime     string    `gorm:"type:time;not null"`
	IsCompleted bool      `gorm:"default:false"`
}
