package models

import "time"

// UsageLimit tracks one user's daily swipe and message counters.
// One row per (user, day); the day is a plain date string so the same
// row shape works on postgres and the sqlite test databases.
type UsageLimit struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        int       `json:"user_id" gorm:"not null;uniqueIndex:idx_usage_user_day"`
	Day           string    `json:"day" gorm:"type:varchar(10);not null;uniqueIndex:idx_usage_user_day"`
	SwipesToday   int       `json:"swipes_today" gorm:"not null;default:0"`
	MessagesToday int       `json:"messages_today" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (UsageLimit) TableName() string {
	return "usage_limits"
}
