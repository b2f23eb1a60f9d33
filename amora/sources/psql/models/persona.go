package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Persona is the read-only character sheet behind one dating profile.
// Name, age, bio and vibes are interpolated verbatim into the character
// instruction sent to the generation service.
type Persona struct {
	ID       uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name     string         `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Age      int            `json:"age" gorm:"not null"`
	Gender   string         `json:"gender" gorm:"type:varchar(16);default:''"`
	Bio      string         `json:"bio" gorm:"type:text;not null"`
	Location string         `json:"location" gorm:"type:varchar(255);default:''"`
	Vibes    datatypes.JSON `json:"vibes" gorm:"type:json"`
	// Object key of the profile photo in media storage; resolved to a
	// presigned URL when the feed is served.
	PhotoKey string `json:"-" gorm:"type:varchar(512);default:''"`
	// Extra character direction appended to the instruction, optional.
	PromptNotes string    `json:"-" gorm:"type:text;default:''"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Persona) TableName() string {
	return "personas"
}

func (p *Persona) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
