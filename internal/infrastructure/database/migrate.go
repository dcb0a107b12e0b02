package database

import (
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const dialect = "postgres"

// Direction selects which way migrations are applied
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection accepts "up" or "down"
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("unknown migration direction %q, want up or down", s)
	}
}

// MigrationSource returns the embedded schema migrations
func MigrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
}

// Migrate applies every pending migration going up, or rolls back the latest one going down.
// It returns how many migrations ran.
func Migrate(db *gorm.DB, dir Direction) (int, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate %s: %w", dir, err)
	}

	var n int
	switch dir {
	case Up:
		n, err = migrate.Exec(sqlDB, dialect, MigrationSource(), migrate.Up)
	case Down:
		n, err = migrate.ExecMax(sqlDB, dialect, MigrationSource(), migrate.Down, 1)
	default:
		return 0, fmt.Errorf("unknown migration direction %q", dir)
	}
	if err != nil {
		return n, fmt.Errorf("failed to apply migrations %s: %w", dir, err)
	}
	return n, nil
}
