package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestConfigurePool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	configurePool(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}

func TestGetReadDB_DefaultsToNil(t *testing.T) {
	SetReadDB(nil)
	assert.Nil(t, GetReadDB())
}

func TestSetReadDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	SetReadDB(db)
	defer SetReadDB(nil)
	assert.Equal(t, db, GetReadDB())
}
