package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SenderUser    = "user"
	SenderPersona = "persona"
)

type Message struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ChatID     uuid.UUID `json:"chat_id" gorm:"type:uuid;not null;index:idx_message_chat_created"`
	Chat       Chat      `json:"-" gorm:"foreignKey:ChatID;references:ID;constraint:OnDelete:CASCADE"`
	SenderType string    `json:"sender_type" gorm:"type:varchar(16);not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_message_chat_created"`
}

func (Message) TableName() string {
	return "messages"
}

func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
