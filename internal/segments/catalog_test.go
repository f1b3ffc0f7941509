package segments

import (
	"testing"

	"github.com/dropshipai/branding-api/internal/prompts"
)

func TestCatalogDefaults(t *testing.T) {
	c := NewCatalog(nil, nil)

	labels := c.Labels()
	if len(labels) != len(prompts.DefaultHelixSegments) {
		t.Fatalf("Labels() has %d entries, want %d", len(labels), len(prompts.DefaultHelixSegments))
	}
	for i, want := range prompts.DefaultHelixSegments {
		if labels[i] != want {
			t.Errorf("Labels()[%d] = %q, want %q", i, labels[i], want)
		}
	}
}

func TestCatalogSegmentsCopies(t *testing.T) {
	c := NewCatalog(nil, nil)

	got := c.Segments()
	got[0].Label = "mutated"

	if c.Labels()[0] == "mutated" {
		t.Error("Segments() returned internal slice, mutation leaked")
	}
}
