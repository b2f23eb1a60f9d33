package controllers

import (
	"amora/amora/sources/psql/dao"
	"amora/amora/types"
	"amora/amora/utils/logging"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SwipeController struct {
	db         *gorm.DB
	usageDAO   *dao.UsageDAO
	chatDAO    *dao.ChatDAO
	personaDAO *dao.PersonaDAO
	policy     MatchPolicy
	swipeLimit int
}

func NewSwipeController(db *gorm.DB, usageDAO *dao.UsageDAO, chatDAO *dao.ChatDAO, personaDAO *dao.PersonaDAO, policy MatchPolicy, swipeLimit int) *SwipeController {
	return &SwipeController{
		db:         db,
		usageDAO:   usageDAO,
		chatDAO:    chatDAO,
		personaDAO: personaDAO,
		policy:     policy,
		swipeLimit: swipeLimit,
	}
}

// DecideSwipe handles one swipe. Left swipes are free: no quota touch, no
// match. Right swipes consume one quota unit and may create the chat for
// (user, persona); quota consumption and chat creation commit together.
func (c *SwipeController) DecideSwipe(ctx context.Context, userID int, req types.SwipeRequest) (*types.SwipeResponse, error) {
	if req.Direction != "left" && req.Direction != "right" {
		return nil, fmt.Errorf("%w: direction must be left or right", ErrInvalidRequest)
	}
	personaID, err := uuid.Parse(req.PersonaID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad persona id", ErrInvalidRequest)
	}

	if req.Direction == "left" {
		return &types.SwipeResponse{IsMatch: false, ChatID: nil}, nil
	}

	persona, err := c.personaDAO.GetPersonaByID(ctx, personaID)
	if err != nil {
		return nil, err
	}
	if persona == nil {
		return nil, fmt.Errorf("%w: unknown persona", ErrInvalidRequest)
	}

	resp := &types.SwipeResponse{}
	err = c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		allowed, err := c.usageDAO.CheckAndConsumeIn(ctx, tx, userID, types.UsageSwipe, c.swipeLimit)
		if err != nil {
			return err
		}
		if !allowed {
			return ErrLimitReached
		}
		if !c.policy.IsMatch(userID, personaID) {
			return nil
		}
		chat, err := c.chatDAO.UpsertChat(ctx, tx, userID, personaID)
		if err != nil {
			return err
		}
		id := chat.ID.String()
		resp.IsMatch = true
		resp.ChatID = &id
		return nil
	})
	if err != nil {
		if err != ErrLimitReached {
			logging.ErrorLogger.Error("swipe decision failed",
				zap.Int("user_id", userID),
				zap.String("persona_id", req.PersonaID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	logging.AppLogger.Info("swipe decided",
		zap.Int("user_id", userID),
		zap.String("persona_id", req.PersonaID),
		zap.Bool("is_match", resp.IsMatch),
	)
	return resp, nil
}
