package repository

import "database/sql"

// Repositories aggregates all repository implementations.
type Repositories struct {
	Projects ProjectRepository
	Outputs  OutputRepository
}

// NewRepositories creates all repositories backed by the given database.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Projects: NewSQLiteProjectRepository(db),
		Outputs:  NewSQLiteOutputRepository(db),
	}
}
