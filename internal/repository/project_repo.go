package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dropshipai/branding-api/internal/models"
)

// SQLiteProjectRepository implements ProjectRepository for SQLite/libsql.
type SQLiteProjectRepository struct {
	db *sql.DB
}

// NewSQLiteProjectRepository creates a new SQLite project repository.
func NewSQLiteProjectRepository(db *sql.DB) *SQLiteProjectRepository {
	return &SQLiteProjectRepository{db: db}
}

// Create inserts a new project. Databases migrated before the brand_tone
// column existed reject the full insert; in that case the insert is retried
// once without the column so generation is not blocked by schema drift.
func (r *SQLiteProjectRepository) Create(ctx context.Context, project *models.Project) error {
	now := time.Now()
	if project.ID == "" {
		project.ID = ulid.Make().String()
	}
	project.CreatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (
			id, user_id, product_name, product_description,
			target_persona, locality, brand_tone, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		project.ID,
		project.UserID,
		project.ProductName,
		project.ProductDescription,
		project.TargetPersona,
		project.Locality,
		project.BrandTone,
		now.Format(time.RFC3339),
	)
	if err == nil {
		return nil
	}
	if !isMissingBrandToneColumn(err) {
		return err
	}

	slog.Warn("projects table missing brand_tone column, retrying insert without it",
		"project_id", project.ID)

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO projects (
			id, user_id, product_name, product_description,
			target_persona, locality, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		project.ID,
		project.UserID,
		project.ProductName,
		project.ProductDescription,
		project.TargetPersona,
		project.Locality,
		now.Format(time.RFC3339),
	)
	return err
}

// GetByID retrieves a project scoped to its owner. Returns (nil, nil) when
// no matching row exists, including rows owned by other users.
func (r *SQLiteProjectRepository) GetByID(ctx context.Context, userID, id string) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, product_name, product_description,
			   target_persona, locality, brand_tone, created_at
		FROM projects
		WHERE id = ? AND user_id = ?
	`, id, userID)

	return scanProject(row)
}

// ListByUserID returns the user's projects, newest first.
func (r *SQLiteProjectRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, product_name, product_description,
			   target_persona, locality, brand_tone, created_at
		FROM projects
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// Delete removes a project owned by the user. Outputs cascade.
func (r *SQLiteProjectRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ? AND user_id = ?`, id, userID)
	return err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (*models.Project, error) {
	var project models.Project
	var description, persona, locality, tone sql.NullString
	var createdAt string

	err := row.Scan(
		&project.ID,
		&project.UserID,
		&project.ProductName,
		&description,
		&persona,
		&locality,
		&tone,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	project.ProductDescription = description.String
	project.TargetPersona = persona.String
	project.Locality = locality.String
	project.BrandTone = tone.String
	project.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return &project, nil
}

// isMissingBrandToneColumn detects the schema-drift error from a database
// that predates the brand_tone migration.
func isMissingBrandToneColumn(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "brand_tone") &&
		(strings.Contains(msg, "no column") || strings.Contains(msg, "has no column named"))
}
