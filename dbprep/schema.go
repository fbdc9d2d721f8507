package dbprep

import (
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// figure out the migration parameters
func getMigrateParams() (url string, path string) {
	url = os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/sudoku?sslmode=disable"
	}
	path = os.Getenv("DBPREP_PATH")
	if path == "" {
		if fi, err := os.Stat("dbprep/migrations"); err == nil && fi.IsDir() {
			// running from root directory
			path = "dbprep/migrations"
		} else {
			path = "migrations"
		}
	}
	return
}

func newMigrate() (*migrate.Migrate, error) {
	url, path := getMigrateParams()
	m, err := migrate.New("file://"+path, url)
	if err != nil {
		return nil, fmt.Errorf("Couldn't open migrations at %q for %q: %v", path, url, err)
	}
	return m, nil
}

// SchemaUp creates the database with the right schema.  Running
// against an up-to-date database is a no-op.
func SchemaUp() error {
	m, err := newMigrate()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("Table creation had errors: %v", err)
	}
	return nil
}

// SchemaDown tears down the database.
func SchemaDown() error {
	m, err := newMigrate()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("Table deletion had errors: %v", err)
	}
	return nil
}

// SchemaVersion returns the version of the database, 0 when no
// migrations have been applied.
func SchemaVersion() (uint, error) {
	m, err := newMigrate()
	if err != nil {
		return 0, err
	}
	defer m.Close()
	version, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("Couldn't read schema version: %v", err)
	}
	if dirty {
		return version, fmt.Errorf("Schema version %d is dirty; repair it before continuing", version)
	}
	return version, nil
}
