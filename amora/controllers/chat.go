package controllers

import (
	"amora/amora/services/llm"
	"amora/amora/services/safety"
	"amora/amora/sources/psql/dao"
	"amora/amora/sources/psql/models"
	"amora/amora/types"
	"amora/amora/utils/logging"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Canned lines substituted when generation fails or gets filtered. Kept
// in the persona's casual register so a broken backend never reads as
// broken to the user.
var replyFallbacks = []string{
	"Sorry, thoda busy ho gayi thi 😅",
	"Can you repeat that? Thoda miss ho gaya",
	"Haha ek second, distraction ho gaya 🙈",
}

// Canned declines for the soft limit path.
var limitDeclines = []string{
	"Aaj kaafi baat ho gayi 😊 kal continue karein?",
	"Thoda break lete hain, baad mein baat karte hain 💛",
}

func randomFrom(lines []string) string {
	return lines[rand.IntN(len(lines))]
}

type ChatController struct {
	db           *gorm.DB
	chatDAO      *dao.ChatDAO
	personaDAO   *dao.PersonaDAO
	usageDAO     *dao.UsageDAO
	generator    llm.Generator
	filter       *safety.Filter
	messageLimit int
	window       int
	hardLimit    bool
}

func NewChatController(db *gorm.DB, chatDAO *dao.ChatDAO, personaDAO *dao.PersonaDAO, usageDAO *dao.UsageDAO, generator llm.Generator, filter *safety.Filter, messageLimit, window int, onLimitReached string) *ChatController {
	return &ChatController{
		db:           db,
		chatDAO:      chatDAO,
		personaDAO:   personaDAO,
		usageDAO:     usageDAO,
		generator:    generator,
		filter:       filter,
		messageLimit: messageLimit,
		window:       window,
		hardLimit:    onLimitReached == "hard",
	}
}

// GenerateReply runs one persona chat turn: limit check, context
// assembly, generation, safety filtering, then message persistence and
// quota consumption as one transaction.
func (c *ChatController) GenerateReply(ctx context.Context, userID int, req types.ChatReplyRequest) (*types.ChatReplyResponse, error) {
	chatID, err := uuid.Parse(req.ChatID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad chat id", ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: empty message", ErrInvalidRequest)
	}

	chat, err := c.chatDAO.GetChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil || chat.UserID != userID {
		return nil, ErrNotFound
	}

	// Quick pre-check so an exhausted user never triggers a generation
	// call. The authoritative guard is the conditional consume inside
	// the persistence transaction below.
	usage, err := c.usageDAO.Peek(ctx, userID)
	if err != nil {
		return nil, err
	}
	if usage.MessagesToday >= c.messageLimit {
		return c.limitReply()
	}

	persona, err := c.personaDAO.GetPersonaByID(ctx, chat.PersonaID)
	if err != nil {
		return nil, err
	}
	if persona == nil {
		return nil, fmt.Errorf("persona %s missing for chat %s", chat.PersonaID, chat.ID)
	}

	history, err := c.chatDAO.RecentMessages(ctx, chatID, c.window)
	if err != nil {
		return nil, err
	}

	turns := make([]llm.Turn, 0, len(history)+1)
	for _, m := range history {
		role := "user"
		if m.SenderType == models.SenderPersona {
			role = "model"
		}
		turns = append(turns, llm.Turn{Role: role, Text: m.Content})
	}
	turns = append(turns, llm.Turn{Role: "user", Text: req.Message})

	content := c.generate(ctx, characterInstruction(persona), turns)

	err = c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		allowed, err := c.usageDAO.CheckAndConsumeIn(ctx, tx, userID, types.UsageMessage, c.messageLimit)
		if err != nil {
			return err
		}
		if !allowed {
			return ErrLimitReached
		}
		if _, err := c.chatDAO.SaveMessage(ctx, tx, chatID, models.SenderUser, req.Message); err != nil {
			return err
		}
		if _, err := c.chatDAO.SaveMessage(ctx, tx, chatID, models.SenderPersona, content); err != nil {
			return err
		}
		return nil
	})
	if err == ErrLimitReached {
		// Raced to the ceiling between the pre-check and the consume.
		return c.limitReply()
	}
	if err != nil {
		logging.ErrorLogger.Error("chat reply persistence failed",
			zap.Int("user_id", userID),
			zap.String("chat_id", req.ChatID),
			zap.Error(err),
		)
		return nil, err
	}

	return &types.ChatReplyResponse{Content: content}, nil
}

// generate calls the model and screens the output. Every failure mode
// collapses into a canned in-character line; the user never sees a raw
// error mid-conversation.
func (c *ChatController) generate(ctx context.Context, system string, turns []llm.Turn) string {
	if c.generator == nil {
		logging.ErrorLogger.Error("no generator configured, using fallback reply")
		return randomFrom(replyFallbacks)
	}
	text, err := c.generator.Generate(ctx, system, turns)
	if err != nil {
		logging.ErrorLogger.Error("generation failed", zap.Error(err))
		return randomFrom(replyFallbacks)
	}
	if reason, rejected := c.filter.Evaluate(text); rejected {
		logging.AppLogger.Warn("generated reply rejected", zap.String("reason", reason))
		return randomFrom(replyFallbacks)
	}
	return text
}

func (c *ChatController) limitReply() (*types.ChatReplyResponse, error) {
	if c.hardLimit {
		return nil, ErrLimitReached
	}
	return &types.ChatReplyResponse{
		Content:      randomFrom(limitDeclines),
		LimitReached: true,
	}, nil
}

// characterInstruction renders the persona's character sheet into the
// system instruction for the generation call.
func characterInstruction(p *models.Persona) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, %d, chatting on a dating app.\n", p.Name, p.Age)
	if p.Bio != "" {
		fmt.Fprintf(&b, "About you: %s\n", p.Bio)
	}
	if vibes := vibeList(p.Vibes); len(vibes) > 0 {
		fmt.Fprintf(&b, "Your vibe: %s\n", strings.Join(vibes, ", "))
	}
	b.WriteString(`Rules:
- English + Hinglish only
- Casual, imperfect, human
- NEVER mention being an AI
- NEVER share phone numbers or socials
- If things get sexual, slow it down`)
	if p.PromptNotes != "" {
		b.WriteString("\n")
		b.WriteString(p.PromptNotes)
	}
	return b.String()
}

func vibeList(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var vibes []string
	if err := json.Unmarshal(raw, &vibes); err != nil {
		return nil
	}
	return vibes
}
