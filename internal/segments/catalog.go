// Package segments manages the Helix persona segment catalog. A built-in
// list ships with the binary; deployments can override it with a JSON
// document in object storage that is re-checked on a TTL.
package segments

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/dropshipai/branding-api/internal/config"
	"github.com/dropshipai/branding-api/internal/models"
	"github.com/dropshipai/branding-api/internal/prompts"
)

// Catalog serves the current segment list, preferring the object-storage
// document over the built-in defaults.
type Catalog struct {
	loader *config.S3Loader
	logger *slog.Logger

	mu       sync.RWMutex
	segments []models.HelixSegment
}

// NewCatalog creates a catalog seeded with the built-in segment list.
// loader may be nil when object storage is not configured.
func NewCatalog(loader *config.S3Loader, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Catalog{loader: loader, logger: logger}
	c.segments = defaultSegments()
	return c
}

func defaultSegments() []models.HelixSegment {
	out := make([]models.HelixSegment, 0, len(prompts.DefaultHelixSegments))
	for _, label := range prompts.DefaultHelixSegments {
		out = append(out, models.HelixSegment{Label: label})
	}
	return out
}

// Refresh re-reads the catalog document from object storage when the
// loader's TTL has expired. Fetch failures keep the current list.
func (c *Catalog) Refresh(ctx context.Context) {
	if c.loader == nil || !c.loader.IsEnabled() || !c.loader.NeedsRefresh() {
		return
	}

	result, err := c.loader.Fetch(ctx)
	if err != nil || result == nil || result.NotChanged {
		return
	}

	var doc struct {
		Segments []models.HelixSegment `json:"segments"`
	}
	if err := json.Unmarshal(result.Data, &doc); err != nil {
		c.logger.Error("segment catalog document is invalid, keeping current list", "error", err)
		return
	}
	if len(doc.Segments) == 0 {
		c.logger.Warn("segment catalog document is empty, keeping current list")
		return
	}

	c.mu.Lock()
	c.segments = doc.Segments
	c.mu.Unlock()

	c.logger.Info("segment catalog updated", "segments", len(doc.Segments), "etag", result.Etag)
}

// Segments returns the current segment list.
func (c *Catalog) Segments() []models.HelixSegment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.HelixSegment, len(c.segments))
	copy(out, c.segments)
	return out
}

// Labels returns the current segment labels, in catalog order.
func (c *Catalog) Labels() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.segments))
	for _, s := range c.segments {
		out = append(out, s.Label)
	}
	return out
}
