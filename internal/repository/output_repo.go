package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dropshipai/branding-api/internal/models"
)

// SQLiteOutputRepository implements OutputRepository for SQLite/libsql.
// String-list fields are stored as JSON arrays in TEXT columns.
type SQLiteOutputRepository struct {
	db *sql.DB
}

// NewSQLiteOutputRepository creates a new SQLite output repository.
func NewSQLiteOutputRepository(db *sql.DB) *SQLiteOutputRepository {
	return &SQLiteOutputRepository{db: db}
}

// Create inserts a new output row.
func (r *SQLiteOutputRepository) Create(ctx context.Context, output *models.Output) error {
	now := time.Now()
	if output.ID == "" {
		output.ID = ulid.Make().String()
	}
	output.CreatedAt = now

	headlinesJSON, _ := json.Marshal(output.AdHeadlines)
	scriptsJSON, _ := json.Marshal(output.TiktokScripts)
	platformsJSON, _ := json.Marshal(output.AdPlatforms)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO outputs (
			id, project_id, brand_name, tagline, landing_page_copy,
			ad_headlines, tiktok_scripts, ad_platforms, budget_strategy,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		output.ID,
		output.ProjectID,
		output.BrandName,
		output.Tagline,
		output.LandingPageCopy,
		string(headlinesJSON),
		string(scriptsJSON),
		string(platformsJSON),
		output.BudgetStrategy,
		now.Format(time.RFC3339),
	)

	return err
}

// ListByProjectID returns a project's outputs, newest first. Ownership is
// enforced by joining against the projects table; other users' projects
// yield an empty list.
func (r *SQLiteOutputRepository) ListByProjectID(ctx context.Context, userID, projectID string) ([]*models.Output, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.project_id, o.brand_name, o.tagline, o.landing_page_copy,
			   o.ad_headlines, o.tiktok_scripts, o.ad_platforms, o.budget_strategy,
			   o.created_at
		FROM outputs o
		JOIN projects p ON p.id = o.project_id
		WHERE o.project_id = ? AND p.user_id = ?
		ORDER BY o.created_at DESC
	`, projectID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outputs []*models.Output
	for rows.Next() {
		output, err := scanOutput(rows)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}

	return outputs, rows.Err()
}

// GetLatestByProjectID returns the most recent output for a project, or
// (nil, nil) when the project has none or belongs to another user.
func (r *SQLiteOutputRepository) GetLatestByProjectID(ctx context.Context, userID, projectID string) (*models.Output, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT o.id, o.project_id, o.brand_name, o.tagline, o.landing_page_copy,
			   o.ad_headlines, o.tiktok_scripts, o.ad_platforms, o.budget_strategy,
			   o.created_at
		FROM outputs o
		JOIN projects p ON p.id = o.project_id
		WHERE o.project_id = ? AND p.user_id = ?
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT 1
	`, projectID, userID)

	return scanOutput(row)
}

func scanOutput(row scanner) (*models.Output, error) {
	var output models.Output
	var tagline, copyText, budget sql.NullString
	var headlinesJSON, scriptsJSON, platformsJSON sql.NullString
	var createdAt string

	err := row.Scan(
		&output.ID,
		&output.ProjectID,
		&output.BrandName,
		&tagline,
		&copyText,
		&headlinesJSON,
		&scriptsJSON,
		&platformsJSON,
		&budget,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	output.Tagline = tagline.String
	output.LandingPageCopy = copyText.String
	output.BudgetStrategy = budget.String

	if headlinesJSON.Valid && headlinesJSON.String != "" {
		_ = json.Unmarshal([]byte(headlinesJSON.String), &output.AdHeadlines)
	}
	if scriptsJSON.Valid && scriptsJSON.String != "" {
		_ = json.Unmarshal([]byte(scriptsJSON.String), &output.TiktokScripts)
	}
	if platformsJSON.Valid && platformsJSON.String != "" {
		_ = json.Unmarshal([]byte(platformsJSON.String), &output.AdPlatforms)
	}

	output.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return &output, nil
}
