package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/client-registry/internal/config"
)

func TestNewDB_SQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:       config.DriverSQLite,
		DBUrl:          filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on",
		DBMaxOpenConns: 2,
		DBMaxIdleConns: 1,
	}

	gdb, err := NewDB(cfg)
	require.NoError(t, err)
	defer Close(gdb)

	var one int
	require.NoError(t, gdb.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	var fk int
	require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	assert.Equal(t, 2, sqlDB.Stats().MaxOpenConnections)
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(&config.Config{DBDriver: "oracle", DBUrl: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported db driver")
}

func TestNewDB_SQLiteUnicodeLower(t *testing.T) {
	gdb, err := NewDB(&config.Config{
		DBDriver: config.DriverSQLite,
		DBUrl:    filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on",
	})
	require.NoError(t, err)
	defer Close(gdb)

	var got string
	require.NoError(t, gdb.Raw("SELECT LOWER(?)", "ИВАН Ivan").Scan(&got).Error)
	assert.Equal(t, "иван ivan", got)

	var isNull bool
	require.NoError(t, gdb.Raw("SELECT LOWER(NULL) IS NULL").Scan(&isNull).Error)
	assert.True(t, isNull)
}

func TestUnicodeLower(t *testing.T) {
	assert.Equal(t, "пётр", unicodeLower("ПЁТР"))
	assert.Equal(t, "abc", unicodeLower([]byte("ABC")))
	assert.Nil(t, unicodeLower([]byte(nil)))
	assert.Equal(t, int64(5), unicodeLower(int64(5)))
}
