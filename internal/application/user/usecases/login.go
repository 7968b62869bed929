package usecases

import (
	"context"
	"strings"

	"nexus/internal/domain/user"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	uc.logger.Infow("executing login use case", "email", email)

	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	// Same error for unknown email and wrong password.
	if u == nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed", "email", email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	pair, err := uc.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		UserID:       u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		Role:         u.Role().String(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
