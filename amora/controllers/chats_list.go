package controllers

import (
	"amora/amora/sources/psql/models"
	"context"
	"time"

	"github.com/google/uuid"
)

// ChatView is one entry of the user's match list.
type ChatView struct {
	ID              string      `json:"id"`
	Persona         PersonaView `json:"persona"`
	LastMessage     string      `json:"lastMessage"`
	LastMessageTime *time.Time  `json:"lastMessageTime"`
}

// ListChats returns the user's matched chats, each with its persona and
// newest message.
func (c *ChatController) ListChats(ctx context.Context, userID int, personaCtrl *PersonaController) ([]ChatView, error) {
	chats, err := c.chatDAO.ListChats(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]ChatView, 0, len(chats))
	for i := range chats {
		view := ChatView{
			ID:      chats[i].ID.String(),
			Persona: personaCtrl.view(ctx, &chats[i].Persona),
		}
		last, err := c.chatDAO.LastMessage(ctx, chats[i].ID)
		if err != nil {
			return nil, err
		}
		if last != nil {
			view.LastMessage = last.Content
			view.LastMessageTime = &last.CreatedAt
		}
		views = append(views, view)
	}
	return views, nil
}

// GetMessages returns the full chronological history of one of the
// caller's chats.
func (c *ChatController) GetMessages(ctx context.Context, userID int, chatID uuid.UUID) ([]models.Message, error) {
	chat, err := c.chatDAO.GetChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil || chat.UserID != userID {
		return nil, ErrNotFound
	}
	return c.chatDAO.AllMessages(ctx, chatID)
}
