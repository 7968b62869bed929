package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus/internal/domain/task"
	apperrors "nexus/internal/shared/errors"
)

func makeComment(t *testing.T, id, taskID, userID uint) *task.Comment {
	t.Helper()
	now := time.Now().UTC()
	c, err := task.ReconstructComment(id, taskID, userID, "a note", now, now)
	require.NoError(t, err)
	return c
}

func TestDeleteComment_OwnershipMatrix(t *testing.T) {
	tests := []struct {
		name      string
		userID    uint
		userRole  string
		wantErr   bool
		wantType  apperrors.ErrorType
	}{
		{name: "author may delete", userID: 2, userRole: "member"},
		{name: "admin may delete another user's comment", userID: 9, userRole: "admin"},
		{name: "other member is forbidden", userID: 7, userRole: "member", wantErr: true, wantType: apperrors.ErrorTypeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var deleted bool
			repo := &mockCommentRepository{
				FindByIDFunc: func(ctx context.Context, commentID uint) (*task.Comment, error) {
					return makeComment(t, 3, 1, 2), nil
				},
				DeleteFunc: func(ctx context.Context, commentID uint) error {
					deleted = true
					return nil
				},
			}

			uc := NewDeleteCommentUseCase(repo, testLogger())

			result, err := uc.Execute(context.Background(), DeleteCommentCommand{
				CommentID: 3,
				UserID:    tt.userID,
				UserRole:  tt.userRole,
			})

			if tt.wantErr {
				require.Error(t, err)
				appErr := apperrors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, tt.wantType, appErr.Type)
				assert.False(t, deleted)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(3), result.CommentID)
			assert.True(t, deleted)
		})
	}
}

func TestDeleteComment_NotFound(t *testing.T) {
	repo := &mockCommentRepository{
		FindByIDFunc: func(ctx context.Context, commentID uint) (*task.Comment, error) {
			return nil, nil
		},
	}

	uc := NewDeleteCommentUseCase(repo, testLogger())

	_, err := uc.Execute(context.Background(), DeleteCommentCommand{CommentID: 99, UserID: 1, UserRole: "member"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
