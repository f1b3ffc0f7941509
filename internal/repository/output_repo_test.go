package repository

import (
	"context"
	"testing"
	"time"

	"github.com/dropshipai/branding-api/internal/models"
)

func TestOutputCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteOutputRepository(db)
	ctx := context.Background()

	insertTestProject(t, db, "proj_1", "user_1", "Gadget")

	output := &models.Output{
		ProjectID:       "proj_1",
		BrandName:       "PosturePro",
		Tagline:         "Stand tall",
		LandingPageCopy: "Feel the difference in a week.",
		AdHeadlines:     []string{"Fix your posture", "Sit better today"},
		TiktokScripts:   []string{"Hook: do you slouch?"},
		AdPlatforms:     []string{"TikTok", "Meta"},
		BudgetStrategy:  "Start with $20/day on TikTok.",
	}

	if err := repo.Create(ctx, output); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if output.ID == "" {
		t.Fatal("Create() did not assign an ID")
	}

	outputs, err := repo.ListByProjectID(ctx, "user_1", "proj_1")
	if err != nil {
		t.Fatalf("ListByProjectID() error: %v", err)
	}
	if len(outputs) != 1 {
		t.Fatalf("ListByProjectID() returned %d outputs, want 1", len(outputs))
	}

	got := outputs[0]
	if got.BrandName != "PosturePro" {
		t.Errorf("BrandName = %q, want %q", got.BrandName, "PosturePro")
	}
	if len(got.AdHeadlines) != 2 || got.AdHeadlines[0] != "Fix your posture" {
		t.Errorf("AdHeadlines = %v, want round-tripped list", got.AdHeadlines)
	}
	if len(got.AdPlatforms) != 2 {
		t.Errorf("AdPlatforms = %v, want 2 entries", got.AdPlatforms)
	}
}

func TestOutputListScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteOutputRepository(db)
	ctx := context.Background()

	insertTestProject(t, db, "proj_1", "user_1", "Gadget")

	output := &models.Output{ProjectID: "proj_1", BrandName: "PosturePro"}
	if err := repo.Create(ctx, output); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	outputs, err := repo.ListByProjectID(ctx, "user_2", "proj_1")
	if err != nil {
		t.Fatalf("ListByProjectID() error: %v", err)
	}
	if len(outputs) != 0 {
		t.Errorf("ListByProjectID() returned %d outputs for non-owner, want 0", len(outputs))
	}
}

func TestOutputGetLatest(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteOutputRepository(db)
	ctx := context.Background()

	insertTestProject(t, db, "proj_1", "user_1", "Gadget")

	first := &models.Output{ProjectID: "proj_1", BrandName: "First"}
	second := &models.Output{ProjectID: "proj_1", BrandName: "Second"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	// ULIDs embed millisecond timestamps; make sure the tiebreaker orders them
	time.Sleep(2 * time.Millisecond)
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := repo.GetLatestByProjectID(ctx, "user_1", "proj_1")
	if err != nil {
		t.Fatalf("GetLatestByProjectID() error: %v", err)
	}
	if got == nil {
		t.Fatal("GetLatestByProjectID() returned nil")
	}
	if got.BrandName != "Second" {
		t.Errorf("latest BrandName = %q, want %q", got.BrandName, "Second")
	}
}

func TestOutputGetLatestEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteOutputRepository(db)
	ctx := context.Background()

	insertTestProject(t, db, "proj_1", "user_1", "Gadget")

	got, err := repo.GetLatestByProjectID(ctx, "user_1", "proj_1")
	if err != nil {
		t.Fatalf("GetLatestByProjectID() error: %v", err)
	}
	if got != nil {
		t.Errorf("GetLatestByProjectID() = %+v, want nil for project with no outputs", got)
	}
}
