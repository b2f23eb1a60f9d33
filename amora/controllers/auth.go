package controllers

import (
	"amora/amora/config"
	"amora/amora/sources/psql/dao"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type AuthController struct {
	userDAO *dao.UserDAO
	cfg     config.Config
}

func NewAuthController(userDAO *dao.UserDAO, cfg config.Config) *AuthController {
	return &AuthController{
		userDAO: userDAO,
		cfg:     cfg,
	}
}

// Login exchanges a handle for a signed bearer token, creating the user
// on first sight.
func (c *AuthController) Login(ctx context.Context, handle string) (string, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return "", fmt.Errorf("%w: empty handle", ErrInvalidRequest)
	}
	user, err := c.userDAO.GetUserByHandle(ctx, handle)
	if err != nil {
		return "", err
	}
	if user == nil {
		user, err = c.userDAO.CreateUser(ctx, handle)
		if err != nil {
			return "", err
		}
	}
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.cfg.JWTSecret))
}
