package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// registers the postgres:// database driver
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	// registers the file:// migration source
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies migrations from dir to the database at dsn. A positive
// steps applies that many; a negative steps rolls back that many; zero
// migrates all the way up, or all the way down when down is set.
//
// Postcondition: Returns the resulting schema version, or a non-nil error.
// An already-current schema is not an error.
func Migrate(dsn, dir string, steps int, down bool) (uint, error) {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return 0, fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	switch {
	case steps != 0:
		err = m.Steps(steps)
	case down:
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migrating: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}
	return version, nil
}
