package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/feature"
	"nexus/internal/domain/project"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type CreateFeatureCommand struct {
	ProjectID   uint
	Name        string
	Description string
}

type CreateFeatureResult struct {
	FeatureID uint
	Status    string
	CreatedAt time.Time
}

type CreateFeatureUseCase struct {
	featureRepo feature.Repository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewCreateFeatureUseCase(
	featureRepo feature.Repository,
	projectRepo project.Repository,
	logger logger.Interface,
) *CreateFeatureUseCase {
	return &CreateFeatureUseCase{
		featureRepo: featureRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *CreateFeatureUseCase) Execute(ctx context.Context, cmd CreateFeatureCommand) (*CreateFeatureResult, error) {
	uc.logger.Infow("executing create feature use case", "project_id", cmd.ProjectID, "name", cmd.Name)

	p, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	f, err := feature.NewFeature(cmd.ProjectID, cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.featureRepo.Save(ctx, f); err != nil {
		uc.logger.Errorw("failed to save feature", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("feature created", "feature_id", f.ID(), "name", f.Name())

	return &CreateFeatureResult{
		FeatureID: f.ID(),
		Status:    f.Status().String(),
		CreatedAt: f.CreatedAt(),
	}, nil
}

type ChangeFeatureStatusCommand struct {
	FeatureID uint
	Status    string
}

type ChangeFeatureStatusResult struct {
	FeatureID uint
	Status    string
}

type ChangeFeatureStatusUseCase struct {
	featureRepo feature.Repository
	logger      logger.Interface
}

func NewChangeFeatureStatusUseCase(featureRepo feature.Repository, logger logger.Interface) *ChangeFeatureStatusUseCase {
	return &ChangeFeatureStatusUseCase{featureRepo: featureRepo, logger: logger}
}

func (uc *ChangeFeatureStatusUseCase) Execute(ctx context.Context, cmd ChangeFeatureStatusCommand) (*ChangeFeatureStatusResult, error) {
	uc.logger.Infow("executing change feature status use case", "feature_id", cmd.FeatureID, "status", cmd.Status)

	f, err := uc.featureRepo.FindByID(ctx, cmd.FeatureID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, errors.NewNotFoundError("feature not found")
	}

	if err := f.ChangeStatus(feature.FeatureStatus(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.featureRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to update feature", "feature_id", f.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("feature status changed", "feature_id", f.ID(), "status", cmd.Status)

	return &ChangeFeatureStatusResult{FeatureID: f.ID(), Status: f.Status().String()}, nil
}

type ListFeaturesQuery struct {
	ProjectID uint
}

type FeatureDTO struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListFeaturesResult struct {
	Features []FeatureDTO
}

type ListFeaturesUseCase struct {
	featureRepo feature.Repository
	logger      logger.Interface
}

func NewListFeaturesUseCase(featureRepo feature.Repository, logger logger.Interface) *ListFeaturesUseCase {
	return &ListFeaturesUseCase{featureRepo: featureRepo, logger: logger}
}

func (uc *ListFeaturesUseCase) Execute(ctx context.Context, query ListFeaturesQuery) (*ListFeaturesResult, error) {
	features, err := uc.featureRepo.ListByProject(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list features", "project_id", query.ProjectID, "error", err)
		return nil, err
	}

	dtos := make([]FeatureDTO, len(features))
	for i, f := range features {
		dtos[i] = FeatureDTO{
			ID:          f.ID(),
			ProjectID:   f.ProjectID(),
			Name:        f.Name(),
			Description: f.Description(),
			Status:      f.Status().String(),
			CreatedAt:   f.CreatedAt(),
			UpdatedAt:   f.UpdatedAt(),
		}
	}

	return &ListFeaturesResult{Features: dtos}, nil
}
