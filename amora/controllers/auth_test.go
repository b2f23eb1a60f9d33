package controllers

import (
	"context"
	"errors"
	"testing"

	"amora/amora/config"
	"amora/amora/sources/psql/dao"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesVerifiableToken(t *testing.T) {
	db := setupTestDB(t)
	cfg := config.Config{JWTSecret: "test-secret"}
	ctrl := NewAuthController(dao.NewUserDAO(db), cfg)
	ctx := context.Background()

	tokenStr, err := ctrl.Login(ctx, "alice")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	require.Contains(t, claims, "user_id")
	require.Contains(t, claims, "exp")
}

func TestLoginReusesExistingUser(t *testing.T) {
	db := setupTestDB(t)
	cfg := config.Config{JWTSecret: "test-secret"}
	userDAO := dao.NewUserDAO(db)
	ctrl := NewAuthController(userDAO, cfg)
	ctx := context.Background()

	_, err := ctrl.Login(ctx, "alice")
	require.NoError(t, err)
	_, err = ctrl.Login(ctx, "alice")
	require.NoError(t, err)

	user, err := userDAO.GetUserByHandle(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestLoginRejectsEmptyHandle(t *testing.T) {
	db := setupTestDB(t)
	ctrl := NewAuthController(dao.NewUserDAO(db), config.Config{JWTSecret: "s"})

	_, err := ctrl.Login(context.Background(), "   ")
	require.True(t, errors.Is(err, ErrInvalidRequest))
}
