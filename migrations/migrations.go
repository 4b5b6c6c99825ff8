// Package migrations holds the versioned schema for every supported SQL dialect
// and runs it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed mysql/*.sql postgres/*.sql sqlite/*.sql
var files embed.FS

// goose keeps dialect and filesystem in package globals
var gooseMu sync.Mutex

func gooseDialect(driver string) (string, error) {
	switch driver {
	case "mysql":
		return "mysql", nil
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("no migrations for driver %q", driver)
	}
}

func prepare(driver string, logger goose.Logger) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}
	if logger == nil {
		logger = goose.NopLogger()
	}
	goose.SetLogger(logger)
	goose.SetBaseFS(files)
	return goose.SetDialect(dialect)
}

// Up applies every pending migration for driver.
func Up(db *sql.DB, driver string, logger goose.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	if err := prepare(driver, logger); err != nil {
		return err
	}
	if err := goose.Up(db, driver); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration for driver.
func Down(db *sql.DB, driver string, logger goose.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	if err := prepare(driver, logger); err != nil {
		return err
	}
	if err := goose.Down(db, driver); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Status logs the applied state of every migration through logger.
func Status(db *sql.DB, driver string, logger goose.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	if err := prepare(driver, logger); err != nil {
		return err
	}
	return goose.Status(db, driver)
}

// Version returns the current schema version recorded by goose.
func Version(db *sql.DB, driver string) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	if err := prepare(driver, nil); err != nil {
		return 0, err
	}
	return goose.GetDBVersion(db)
}
