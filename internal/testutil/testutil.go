// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/client-registry/internal/config"
	dbpkg "github.com/BruksfildServices01/client-registry/internal/db"
	"github.com/BruksfildServices01/client-registry/internal/infra/repository"
)

// SQLiteConfig points at a fresh SQLite file under t.TempDir with foreign
// keys enforced.
func SQLiteConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		DBDriver:       config.DriverSQLite,
		DBUrl:          filepath.Join(t.TempDir(), "clients.db") + "?_foreign_keys=on",
		DBMaxOpenConns: 4,
		DBMaxIdleConns: 2,
		LogLevel:       "error",
	}
}

// OpenDB opens the SQLite database from SQLiteConfig and closes it when the
// test ends.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := dbpkg.NewDB(SQLiteConfig(t))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = dbpkg.Close(gdb) })
	return gdb
}

// NewRepo returns a repository over a fresh database with the schema in
// place.
func NewRepo(t *testing.T) *repository.ClientGormRepository {
	t.Helper()

	repo := repository.NewClientGormRepository(OpenDB(t))
	if err := repo.InitializeSchema(context.Background()); err != nil {
		t.Fatalf("initialize schema: %v", err)
	}
	return repo
}
