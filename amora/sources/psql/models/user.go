package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID        int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Handle    string         `json:"handle" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string         `json:"name" gorm:"type:varchar(255);default:''"`
	Age       int            `json:"age" gorm:"default:0"`
	Gender    string         `json:"gender" gorm:"type:varchar(16);default:''"`
	Bio       string         `json:"bio" gorm:"type:text;default:''"`
	Vibes     datatypes.JSON `json:"vibes" gorm:"type:json"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
