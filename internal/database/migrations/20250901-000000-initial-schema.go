package migrations

func init() {
	Register(Migration{
		Timestamp:   "20250901-000000",
		Description: "Initial schema",
		Up: []string{
			// Projects - one per branding generation request.
			// user_id is the identity provider's subject ID (no FK; users
			// are not stored locally).
			`CREATE TABLE IF NOT EXISTS projects (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL,
				product_name TEXT NOT NULL,
				product_description TEXT,
				target_persona TEXT,
				locality TEXT,
				created_at TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_projects_user_id ON projects(user_id)`,
			`CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects(created_at)`,

			// Outputs - generated branding packages, one or more per project
			`CREATE TABLE IF NOT EXISTS outputs (
				id TEXT PRIMARY KEY,
				project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
				brand_name TEXT NOT NULL,
				tagline TEXT,
				landing_page_copy TEXT,
				ad_headlines TEXT,
				tiktok_scripts TEXT,
				ad_platforms TEXT,
				budget_strategy TEXT,
				created_at TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_outputs_project_id ON outputs(project_id)`,
		},
	})
}
