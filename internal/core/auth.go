package core

import (
	"context"
	"errors"
	"fmt"

	"proptoken/internal/repository"
	tokenIssuer "proptoken/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrOperatorNotFound error = errors.New("operator not found")

// Auth authenticates operators for the protected role-management endpoints.
type Auth struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
}

func NewAuth(logger *zap.SugaredLogger, repo Repository, jwtIssuer JWTIssuer) *Auth {
	return &Auth{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwtIssuer,
	}
}

func (a *Auth) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := a.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrOperatorNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := a.jwtIssuer.Generate(tokenInfo)
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	a.logs.Infow("operator authenticated", "username", user.Username)
	return signed, nil
}

func (a *Auth) ValidateToken(token string) error {
	if _, err := a.jwtIssuer.Validate(token); err != nil {
		return fmt.Errorf("validate jwt token: %w", err)
	}
	return nil
}
