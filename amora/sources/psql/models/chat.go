package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chat is the unique conversation between one user and one persona,
// created lazily on the first match. The composite unique index makes
// concurrent match attempts converge on a single row.
type Chat struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    int       `json:"user_id" gorm:"not null;uniqueIndex:idx_chat_user_persona"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	PersonaID uuid.UUID `json:"persona_id" gorm:"type:uuid;not null;uniqueIndex:idx_chat_user_persona"`
	Persona   Persona   `json:"persona" gorm:"foreignKey:PersonaID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Chat) TableName() string {
	return "chats"
}

func (c *Chat) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
