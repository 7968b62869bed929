package project

import (
	"fmt"
	"strings"
	"time"
)

// Project belongs to one vertical and carries an optional linked GitHub
// repository used for ticket/issue sync.
type Project struct {
	id          uint
	verticalID  uint
	name        string
	description string
	githubOwner string
	githubRepo  string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProject(verticalID uint, name, description string) (*Project, error) {
	if verticalID == 0 {
		return nil, fmt.Errorf("vertical ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}

	now := time.Now()
	return &Project{
		verticalID:  verticalID,
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id, verticalID uint,
	name, description string,
	githubOwner, githubRepo string,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if verticalID == 0 {
		return nil, fmt.Errorf("vertical ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	return &Project{
		id:          id,
		verticalID:  verticalID,
		name:        name,
		description: description,
		githubOwner: githubOwner,
		githubRepo:  githubRepo,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Project) ID() uint             { return p.id }
func (p *Project) VerticalID() uint     { return p.verticalID }
func (p *Project) Name() string         { return p.name }
func (p *Project) Description() string  { return p.description }
func (p *Project) GithubOwner() string  { return p.githubOwner }
func (p *Project) GithubRepo() string   { return p.githubRepo }
func (p *Project) CreatedAt() time.Time { return p.createdAt }
func (p *Project) UpdatedAt() time.Time { return p.updatedAt }

// HasGithubRepo reports whether a repository is linked for issue sync.
func (p *Project) HasGithubRepo() bool {
	return p.githubOwner != "" && p.githubRepo != ""
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Project) Rename(name, description string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	p.name = name
	p.description = description
	p.updatedAt = time.Now()
	return nil
}

// LinkGithubRepo accepts "owner/repo" style coordinates.
func (p *Project) LinkGithubRepo(owner, repo string) error {
	owner = strings.TrimSpace(owner)
	repo = strings.TrimSpace(repo)
	if owner == "" || repo == "" {
		return fmt.Errorf("both repository owner and name are required")
	}
	p.githubOwner = owner
	p.githubRepo = repo
	p.updatedAt = time.Now()
	return nil
}

func (p *Project) UnlinkGithubRepo() {
	p.githubOwner = ""
	p.githubRepo = ""
	p.updatedAt = time.Now()
}
