package usecases

import (
	"context"

	"nexus/internal/shared/authorization"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type DiscardPlanCommand struct {
	PlanID   string
	UserRole string
}

type DiscardPlanUseCase struct {
	planStore PlanStore
	logger    logger.Interface
}

func NewDiscardPlanUseCase(planStore PlanStore, logger logger.Interface) *DiscardPlanUseCase {
	return &DiscardPlanUseCase{planStore: planStore, logger: logger}
}

func (uc *DiscardPlanUseCase) Execute(ctx context.Context, cmd DiscardPlanCommand) error {
	if !authorization.ParseUserRole(cmd.UserRole).IsAdmin() {
		return errors.NewForbiddenError("only admins can discard sprint plans")
	}
	if cmd.PlanID == "" {
		return errors.NewValidationError("plan ID is required")
	}

	if err := uc.planStore.Discard(ctx, cmd.PlanID); err != nil {
		uc.logger.Errorw("failed to discard plan", "plan_id", cmd.PlanID, "error", err)
		return err
	}

	uc.logger.Infow("plan discarded", "plan_id", cmd.PlanID)
	return nil
}
