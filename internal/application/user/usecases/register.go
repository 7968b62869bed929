package usecases

import (
	"context"
	"strings"

	"nexus/internal/domain/user"
	"nexus/internal/infrastructure/auth"
	"nexus/internal/shared/authorization"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

// PasswordHasher abstracts the password hashing scheme.
// Satisfied by infrastructure/auth.BcryptPasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs token pairs for authenticated users.
// Satisfied by infrastructure/auth.JWTService.
type TokenIssuer interface {
	Generate(userID uint, role authorization.UserRole) (*auth.TokenPair, error)
}

type RegisterCommand struct {
	Email       string
	Name        string
	Password    string
	Designation string
}

type RegisterResult struct {
	UserID uint
	Email  string
	Role   string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	uc.logger.Infow("executing register use case", "email", email)

	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	u, err := user.NewUser(email, cmd.Name, hash, authorization.RoleMember)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Designation != "" {
		u.SetDesignation(cmd.Designation)
	}

	// Save maps the unique-email violation to a conflict, covering the race
	// between the existence check and the insert.
	if err := uc.userRepo.Save(ctx, u); err != nil {
		uc.logger.Errorw("failed to save user", "email", email, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "email", email)

	return &RegisterResult{
		UserID: u.ID(),
		Email:  u.Email(),
		Role:   u.Role().String(),
	}, nil
}
