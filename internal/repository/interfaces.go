// Package repository provides data access layers for the application.
package repository

import (
	"context"

	"github.com/dropshipai/branding-api/internal/models"
)

// ProjectRepository manages branding projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, userID, id string) (*models.Project, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.Project, error)
	Delete(ctx context.Context, userID, id string) error
}

// OutputRepository manages generated branding outputs.
type OutputRepository interface {
	Create(ctx context.Context, output *models.Output) error
	ListByProjectID(ctx context.Context, userID, projectID string) ([]*models.Output, error)
	GetLatestByProjectID(ctx context.Context, userID, projectID string) (*models.Output, error)
}
