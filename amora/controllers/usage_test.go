package controllers

import (
	"context"
	"testing"

	"amora/amora/sources/psql/dao"

	"github.com/stretchr/testify/require"
)

func TestGetUsageFreshUser(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	ctrl := NewUsageController(dao.NewUsageDAO(db), 20, 30)

	usage, err := ctrl.GetUsage(context.Background(), user.ID)
	require.NoError(t, err)
	require.Zero(t, usage.SwipesUsed)
	require.Zero(t, usage.MessagesUsed)
	require.Equal(t, 20, usage.SwipesLimit)
	require.Equal(t, 30, usage.MessagesLimit)
}

func TestGetUsageReflectsCounters(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")
	setUsage(t, db, user.ID, 7, 12)
	ctrl := NewUsageController(dao.NewUsageDAO(db), 20, 30)

	usage, err := ctrl.GetUsage(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, 7, usage.SwipesUsed)
	require.Equal(t, 12, usage.MessagesUsed)
}
