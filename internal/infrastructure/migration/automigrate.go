package migration

import (
	"nexus/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.VerticalModel{},
		&models.ProjectModel{},
		&models.ProjectMemberModel{},
		&models.SprintModel{},
		&models.FeatureModel{},
		&models.TaskModel{},
		&models.TaskCommentModel{},
		&models.TaskAttachmentModel{},
	}
}
