package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dropshipai/branding-api/internal/models"
	"github.com/dropshipai/branding-api/internal/segments"
)

// SegmentsHandler serves the Helix segment catalog.
type SegmentsHandler struct {
	catalog *segments.Catalog
}

// NewSegmentsHandler creates a new segments handler.
func NewSegmentsHandler(catalog *segments.Catalog) *SegmentsHandler {
	return &SegmentsHandler{catalog: catalog}
}

// ListSegmentsOutput represents the segment catalog response.
type ListSegmentsOutput struct {
	Body struct {
		Segments []models.HelixSegment `json:"segments"`
	}
}

// ListSegments returns the current Helix segment catalog.
func (h *SegmentsHandler) ListSegments(ctx context.Context, input *struct{}) (*ListSegmentsOutput, error) {
	userID := getUserID(ctx)
	if userID == "" {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	h.catalog.Refresh(ctx)

	out := &ListSegmentsOutput{}
	out.Body.Segments = h.catalog.Segments()
	return out, nil
}
