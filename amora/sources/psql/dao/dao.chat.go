package dao

import (
	"amora/amora/sources/psql/models"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatDAO struct {
	DB *gorm.DB
}

func NewChatDAO(db *gorm.DB) *ChatDAO {
	return &ChatDAO{DB: db}
}

// UpsertChat returns the chat for (user, persona), creating it if needed.
// Keyed on the composite unique index, so a retried or concurrent match
// always converges on the same chat id.
func (dao *ChatDAO) UpsertChat(ctx context.Context, db *gorm.DB, userID int, personaID uuid.UUID) (*models.Chat, error) {
	chat := models.Chat{UserID: userID, PersonaID: personaID}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "persona_id"}},
			DoNothing: true,
		}).
		Create(&chat).Error
	if err != nil {
		return nil, err
	}
	// Re-read so a conflicting insert still yields the canonical row.
	var existing models.Chat
	err = db.WithContext(ctx).
		Where("user_id = ? AND persona_id = ?", userID, personaID).
		First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (dao *ChatDAO) GetChat(ctx context.Context, chatID uuid.UUID) (*models.Chat, error) {
	var chat models.Chat
	err := dao.DB.WithContext(ctx).First(&chat, "id = ?", chatID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

// ListChats returns the user's chats with persona and newest message
// preloaded, most recently created first.
func (dao *ChatDAO) ListChats(ctx context.Context, userID int) ([]models.Chat, error) {
	var chats []models.Chat
	err := dao.DB.WithContext(ctx).
		Preload("Persona").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

func (dao *ChatDAO) SaveMessage(ctx context.Context, db *gorm.DB, chatID uuid.UUID, senderType, content string) (*models.Message, error) {
	msg := models.Message{
		ChatID:     chatID,
		SenderType: senderType,
		Content:    content,
	}
	if err := db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// RecentMessages returns at most limit messages for the chat in
// chronological order. Fetched newest-first so the window always holds
// the latest turns, then reversed.
func (dao *ChatDAO) RecentMessages(ctx context.Context, chatID uuid.UUID, limit int) ([]models.Message, error) {
	var msgs []models.Message
	err := dao.DB.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// AllMessages returns the full chronological history for the chat.
func (dao *ChatDAO) AllMessages(ctx context.Context, chatID uuid.UUID) ([]models.Message, error) {
	var msgs []models.Message
	err := dao.DB.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// LastMessage returns the newest message in the chat, or nil when empty.
func (dao *ChatDAO) LastMessage(ctx context.Context, chatID uuid.UUID) (*models.Message, error) {
	var msg models.Message
	err := dao.DB.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		First(&msg).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
