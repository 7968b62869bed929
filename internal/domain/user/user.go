package user

import (
	"fmt"
	"strings"
	"time"

	"nexus/internal/shared/authorization"
)

// User is an account in the workspace. Designation is a free-text job title
// ("Senior Backend Engineer") consumed by the sprint planner's role matcher.
type User struct {
	id           uint
	email        string
	name         string
	passwordHash string
	role         authorization.UserRole
	designation  string
	githubToken  string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email, name, passwordHash string, role authorization.UserRole) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}

	now := time.Now()
	return &User{
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	email, name, passwordHash string,
	role authorization.UserRole,
	designation, githubToken string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		role = authorization.RoleMember
	}

	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		designation:  designation,
		githubToken:  githubToken,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                         { return u.id }
func (u *User) Email() string                    { return u.email }
func (u *User) Name() string                     { return u.name }
func (u *User) PasswordHash() string             { return u.passwordHash }
func (u *User) Role() authorization.UserRole     { return u.role }
func (u *User) Designation() string              { return u.designation }
func (u *User) GithubToken() string              { return u.githubToken }
func (u *User) CreatedAt() time.Time             { return u.createdAt }
func (u *User) UpdatedAt() time.Time             { return u.updatedAt }

func (u *User) IsAdmin() bool { return u.role.IsAdmin() }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetDesignation(designation string) {
	u.designation = designation
	u.updatedAt = time.Now()
}

func (u *User) SetGithubToken(token string) {
	u.githubToken = token
	u.updatedAt = time.Now()
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}
