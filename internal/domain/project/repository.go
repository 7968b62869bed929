package project

import "context"

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Project, error)
	ListByVertical(ctx context.Context, verticalID uint) ([]*Project, error)

	AddMember(ctx context.Context, projectID, userID uint) error
	RemoveMember(ctx context.Context, projectID, userID uint) error
	ListMemberIDs(ctx context.Context, projectID uint) ([]uint, error)
	IsMember(ctx context.Context, projectID, userID uint) (bool, error)
}
