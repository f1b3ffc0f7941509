package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dropshipai/branding-api/internal/database/migrations"
	"github.com/dropshipai/branding-api/internal/llm"
	"github.com/dropshipai/branding-api/internal/repository"
	_ "github.com/tursodatabase/go-libsql"
)

// setupTestRepos creates repositories over an in-memory database.
func setupTestRepos(t *testing.T) (*repository.Repositories, *sql.DB) {
	t.Helper()

	db, err := sql.Open("libsql", ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if err := migrations.Run(db, nil); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return repository.NewRepositories(db), db
}

// completionCall records one Complete invocation.
type completionCall struct {
	System string
	User   string
	Opts   llm.Options
}

// stubCompleter returns canned completions in order, repeating the last.
type stubCompleter struct {
	responses []string
	errs      []error
	calls     []completionCall
}

func (s *stubCompleter) Complete(_ context.Context, system, user string, opts llm.Options) (string, error) {
	s.calls = append(s.calls, completionCall{System: system, User: user, Opts: opts})
	idx := len(s.calls) - 1
	if idx < len(s.errs) && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx], nil
}

func (s *stubCompleter) Model() string {
	return "stub-model"
}

const validBrandingJSON = `{
	"brandName": "PosturePro",
	"tagline": "Stand tall",
	"landingPageCopy": "Feel the difference in a week.",
	"adHeadlines": ["Fix your posture", "Sit better today"],
	"tiktokScripts": ["Hook: do you slouch?"],
	"adPlatforms": ["TikTok", "Meta"],
	"budgetStrategy": "Start with $20/day on TikTok."
}`
