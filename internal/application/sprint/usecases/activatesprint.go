package usecases

import (
	"context"

	"nexus/internal/domain/sprint"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

// Transactor runs a function inside a database transaction carried on the
// context. Satisfied by shared/db.TransactionManager.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ActivateSprintCommand struct {
	SprintID uint
}

type ActivateSprintResult struct {
	SprintID uint
	Status   string
}

// ActivateSprintUseCase starts a sprint. A project may have at most one
// active sprint; the check runs inside the activating transaction so two
// concurrent activations cannot both pass it.
type ActivateSprintUseCase struct {
	sprintRepo sprint.Repository
	txManager  Transactor
	logger     logger.Interface
}

func NewActivateSprintUseCase(
	sprintRepo sprint.Repository,
	txManager Transactor,
	logger logger.Interface,
) *ActivateSprintUseCase {
	return &ActivateSprintUseCase{
		sprintRepo: sprintRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *ActivateSprintUseCase) Execute(ctx context.Context, cmd ActivateSprintCommand) (*ActivateSprintResult, error) {
	uc.logger.Infow("executing activate sprint use case", "sprint_id", cmd.SprintID)

	var result *ActivateSprintResult
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		s, err := uc.sprintRepo.FindByID(txCtx, cmd.SprintID)
		if err != nil {
			return err
		}
		if s == nil {
			return errors.NewNotFoundError("sprint not found")
		}

		active, err := uc.sprintRepo.FindActiveByProject(txCtx, s.ProjectID())
		if err != nil {
			return err
		}
		if active != nil && active.ID() != s.ID() {
			return errors.NewConflictError("project already has an active sprint")
		}

		if err := s.Activate(); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.sprintRepo.Update(txCtx, s); err != nil {
			return err
		}

		result = &ActivateSprintResult{SprintID: s.ID(), Status: s.Status().String()}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to activate sprint", "sprint_id", cmd.SprintID, "error", err)
		return nil, err
	}

	uc.logger.Infow("sprint activated", "sprint_id", cmd.SprintID)

	return result, nil
}
