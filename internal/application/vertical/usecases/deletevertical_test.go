package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus/internal/domain/vertical"
	apperrors "nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type mockVerticalRepository struct {
	SaveFunc          func(ctx context.Context, v *vertical.Vertical) error
	UpdateFunc        func(ctx context.Context, v *vertical.Vertical) error
	DeleteFunc        func(ctx context.Context, id uint) error
	FindByIDFunc      func(ctx context.Context, id uint) (*vertical.Vertical, error)
	ListFunc          func(ctx context.Context) ([]*vertical.Vertical, error)
	CountProjectsFunc func(ctx context.Context, id uint) (int64, error)
}

func (m *mockVerticalRepository) Save(ctx context.Context, v *vertical.Vertical) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, v)
	}
	return nil
}

func (m *mockVerticalRepository) Update(ctx context.Context, v *vertical.Vertical) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, v)
	}
	return nil
}

func (m *mockVerticalRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockVerticalRepository) FindByID(ctx context.Context, id uint) (*vertical.Vertical, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockVerticalRepository) List(ctx context.Context) ([]*vertical.Vertical, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockVerticalRepository) CountProjects(ctx context.Context, id uint) (int64, error) {
	if m.CountProjectsFunc != nil {
		return m.CountProjectsFunc(ctx, id)
	}
	return 0, nil
}

func makeVertical(id uint) *vertical.Vertical {
	created := time.Now().Add(-time.Hour)
	v, err := vertical.ReconstructVertical(id, "fintech", "", created, created)
	if err != nil {
		panic(err)
	}
	return v
}

func TestDeleteVertical_Success(t *testing.T) {
	deleted := uint(0)
	repo := &mockVerticalRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*vertical.Vertical, error) {
			return makeVertical(id), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}

	uc := NewDeleteVerticalUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), DeleteVerticalCommand{VerticalID: 3})
	require.NoError(t, err)
	assert.Equal(t, uint(3), result.VerticalID)
	assert.Equal(t, uint(3), deleted)
}

func TestDeleteVertical_BlockedWhileProjectsExist(t *testing.T) {
	deleteCalls := 0
	repo := &mockVerticalRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*vertical.Vertical, error) {
			return makeVertical(id), nil
		},
		CountProjectsFunc: func(ctx context.Context, id uint) (int64, error) {
			return 2, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleteCalls++
			return nil
		},
	}

	uc := NewDeleteVerticalUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), DeleteVerticalCommand{VerticalID: 3})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Zero(t, deleteCalls)
}

func TestDeleteVertical_NotFound(t *testing.T) {
	repo := &mockVerticalRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*vertical.Vertical, error) {
			return nil, nil
		},
	}

	uc := NewDeleteVerticalUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), DeleteVerticalCommand{VerticalID: 404})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
