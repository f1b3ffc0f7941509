package migrations

func init() {
	Register(Migration{
		Timestamp:   "20250915-000000",
		Description: "Add brand_tone to projects",
		Up: []string{
			// Deployments created before this migration lack the column;
			// the repository falls back to inserting without it.
			`ALTER TABLE projects ADD COLUMN brand_tone TEXT`,
		},
	})
}
