package sprint

import "context"

type Repository interface {
	Save(ctx context.Context, s *Sprint) error
	Update(ctx context.Context, s *Sprint) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Sprint, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Sprint, error)
	// FindActiveByProject returns the project's active sprint, or nil when
	// none is active. Called inside the activation transaction to enforce the
	// single-active-sprint invariant.
	FindActiveByProject(ctx context.Context, projectID uint) (*Sprint, error)
}
