package handlers

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dropshipai/branding-api/internal/models"
	"github.com/dropshipai/branding-api/internal/service"
)

// ProjectsHandler handles project listing endpoints.
type ProjectsHandler struct {
	brandingSvc *service.BrandingService
	logger      *slog.Logger
}

// NewProjectsHandler creates a new projects handler.
func NewProjectsHandler(brandingSvc *service.BrandingService, logger *slog.Logger) *ProjectsHandler {
	return &ProjectsHandler{brandingSvc: brandingSvc, logger: logger}
}

// ListProjectsOutput represents the project list response.
type ListProjectsOutput struct {
	Body struct {
		Projects []*service.ProjectSummary `json:"projects"`
	}
}

// ListProjects returns the caller's projects with their latest outputs,
// newest first.
func (h *ProjectsHandler) ListProjects(ctx context.Context, input *struct{}) (*ListProjectsOutput, error) {
	userID := getUserID(ctx)
	if userID == "" {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	projects, err := h.brandingSvc.ListProjects(ctx, userID)
	if err != nil {
		return nil, mapServiceError(err, h.logger)
	}
	if projects == nil {
		projects = []*service.ProjectSummary{}
	}

	out := &ListProjectsOutput{}
	out.Body.Projects = projects
	return out, nil
}

// DeleteProjectInput represents the project delete request.
type DeleteProjectInput struct {
	ProjectID string `path:"projectId" doc:"Project to delete"`
}

// DeleteProject removes a project and its outputs.
func (h *ProjectsHandler) DeleteProject(ctx context.Context, input *DeleteProjectInput) (*struct{}, error) {
	userID := getUserID(ctx)
	if userID == "" {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	if err := h.brandingSvc.DeleteProject(ctx, userID, input.ProjectID); err != nil {
		return nil, mapServiceError(err, h.logger)
	}
	return &struct{}{}, nil
}

// ListOutputsInput represents the output list request.
type ListOutputsInput struct {
	ProjectID string `path:"projectId" doc:"Project to list outputs for"`
}

// ListOutputsOutput represents the output list response.
type ListOutputsOutput struct {
	Body struct {
		Outputs []*models.Output `json:"outputs"`
	}
}

// ListOutputs returns a project's branding outputs, newest first.
func (h *ProjectsHandler) ListOutputs(ctx context.Context, input *ListOutputsInput) (*ListOutputsOutput, error) {
	userID := getUserID(ctx)
	if userID == "" {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	outputs, err := h.brandingSvc.ListOutputs(ctx, userID, input.ProjectID)
	if err != nil {
		return nil, mapServiceError(err, h.logger)
	}
	if outputs == nil {
		outputs = []*models.Output{}
	}

	out := &ListOutputsOutput{}
	out.Body.Outputs = outputs
	return out, nil
}
