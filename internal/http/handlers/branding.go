package handlers

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dropshipai/branding-api/internal/models"
	"github.com/dropshipai/branding-api/internal/service"
)

// BrandingHandler handles branding generation endpoints.
type BrandingHandler struct {
	brandingSvc *service.BrandingService
	logger      *slog.Logger
}

// NewBrandingHandler creates a new branding handler.
func NewBrandingHandler(brandingSvc *service.BrandingService, logger *slog.Logger) *BrandingHandler {
	return &BrandingHandler{brandingSvc: brandingSvc, logger: logger}
}

// GenerateBrandingInput represents a branding generation request.
type GenerateBrandingInput struct {
	Body struct {
		Product  string `json:"product" minLength:"1" doc:"Product being sold"`
		Persona  string `json:"persona" minLength:"1" doc:"Target Helix persona segment"`
		Tone     string `json:"tone" minLength:"1" doc:"Desired brand tone"`
		Location string `json:"location" minLength:"1" doc:"Where the business is based"`
	}
}

// GenerateBrandingOutput represents a branding generation response.
type GenerateBrandingOutput struct {
	Body struct {
		Success  bool                   `json:"success"`
		Project  *models.Project        `json:"project"`
		Output   *models.Output         `json:"output"`
		Branding *models.BrandingResult `json:"branding"`
	}
}

// GenerateBranding creates a project and its first branding package.
func (h *BrandingHandler) GenerateBranding(ctx context.Context, input *GenerateBrandingInput) (*GenerateBrandingOutput, error) {
	userID := getUserID(ctx)
	if userID == "" {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	result, err := h.brandingSvc.Generate(ctx, userID, models.BrandingInput{
		Product:  input.Body.Product,
		Persona:  input.Body.Persona,
		Tone:     input.Body.Tone,
		Location: input.Body.Location,
	})
	if err != nil {
		return nil, mapServiceError(err, h.logger)
	}

	out := &GenerateBrandingOutput{}
	out.Body.Success = true
	out.Body.Project = result.Project
	out.Body.Output = result.Output
	out.Body.Branding = result.Branding
	return out, nil
}

// RegenerateBrandingInput represents a regeneration request.
type RegenerateBrandingInput struct {
	Body struct {
		ProjectID string `json:"projectId" minLength:"1" doc:"Project to regenerate branding for"`
	}
}

// RegenerateBrandingOutput represents a regeneration response.
type RegenerateBrandingOutput struct {
	Body struct {
		Success  bool                   `json:"success"`
		Output   *models.Output         `json:"output"`
		Branding *models.BrandingResult `json:"branding"`
	}
}

// RegenerateBranding appends a fresh branding package to an existing project.
func (h *BrandingHandler) RegenerateBranding(ctx context.Context, input *RegenerateBrandingInput) (*RegenerateBrandingOutput, error) {
	userID := getUserID(ctx)
	if userID == "" {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	result, err := h.brandingSvc.Regenerate(ctx, userID, input.Body.ProjectID)
	if err != nil {
		return nil, mapServiceError(err, h.logger)
	}

	out := &RegenerateBrandingOutput{}
	out.Body.Success = true
	out.Body.Output = result.Output
	out.Body.Branding = result.Branding
	return out, nil
}
