package migrations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ersoy/studentms/internal/db"
	"github.com/ersoy/studentms/internal/pkg/logger"
)

// Migrator applies SQL migration files, tracking applied versions in a
// schema_migrations table so each file runs at most once.
type Migrator struct {
	database *db.PostgresDB
}

// NewMigrator creates a migrator bound to the given database.
func NewMigrator(database *db.PostgresDB) *Migrator {
	return &Migrator{database: database}
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	_, err := m.database.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	return nil
}

func (m *Migrator) isApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	err := m.database.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// ApplyFile runs a single migration file. The statements and the version
// record commit in one transaction, so a failed migration leaves no trace.
func (m *Migrator) ApplyFile(ctx context.Context, filePath string) error {
	if err := m.ensureVersionTable(ctx); err != nil {
		return err
	}

	// "001_create_students.sql" has version "001"
	filename := filepath.Base(filePath)
	version := strings.SplitN(filename, "_", 2)[0]

	applied, err := m.isApplied(ctx, version)
	if err != nil {
		return err
	}
	if applied {
		logger.Debug().Str("file", filename).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", filename, err)
	}

	err = m.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("migration %s failed: %w", filename, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
			version, time.Now()); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", filename, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Str("file", filename).Msg("Migration applied")
	return nil
}

// ApplyDirectory runs every .sql file in a directory in lexical order.
func (m *Migrator) ApplyDirectory(ctx context.Context, dirPath string) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migration directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		if err := m.ApplyFile(ctx, filepath.Join(dirPath, file)); err != nil {
			return err
		}
	}
	return nil
}
