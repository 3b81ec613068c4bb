package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the store instances
type Repositories struct {
	StudentStore StudentStore
}

// NewRepositories initializes the Postgres-backed stores
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentStore: NewPostgresStudentStore(db),
	}
}

// NewMemoryRepositories initializes the in-memory stores
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		StudentStore: NewMemoryStudentStore(),
	}
}
