package controllers

import (
	"amora/amora/sources/psql/dao"
	"amora/amora/types"
	"context"
)

type UsageController struct {
	usageDAO     *dao.UsageDAO
	swipeLimit   int
	messageLimit int
}

func NewUsageController(usageDAO *dao.UsageDAO, swipeLimit, messageLimit int) *UsageController {
	return &UsageController{
		usageDAO:     usageDAO,
		swipeLimit:   swipeLimit,
		messageLimit: messageLimit,
	}
}

// GetUsage returns today's counters and ceilings for the plan page.
func (c *UsageController) GetUsage(ctx context.Context, userID int) (*types.UsageResponse, error) {
	row, err := c.usageDAO.Peek(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &types.UsageResponse{
		SwipesUsed:    row.SwipesToday,
		SwipesLimit:   c.swipeLimit,
		MessagesUsed:  row.MessagesToday,
		MessagesLimit: c.messageLimit,
	}, nil
}
