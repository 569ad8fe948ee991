package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/druglens/druglens/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "medicines.db")
	require.NoError(t, InitDB(dbPath))
	t.Cleanup(func() { _ = CloseDB() })
	return dbPath
}

func TestInitDBCreatesSchema(t *testing.T) {
	setupDB(t)

	m := GetDB().Migrator()
	assert.True(t, m.HasTable("users"))
	assert.True(t, m.HasTable("medicines"))
	assert.True(t, m.HasTable("history"))
	assert.True(t, m.HasColumn(&model.Medicine{}, "side_effects"))
	assert.True(t, m.HasColumn(&model.History{}, "search_date"))
}

func TestInitDBIsIdempotent(t *testing.T) {
	dbPath := setupDB(t)
	require.NoError(t, GetDB().Create(&model.Medicine{Name: "Paracetamol", Barcode: "QR0001"}).Error)
	require.NoError(t, CloseDB())

	require.NoError(t, InitDB(dbPath))
	var count int64
	require.NoError(t, GetDB().Model(&model.Medicine{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUniqueEmail(t *testing.T) {
	setupDB(t)
	require.NoError(t, GetDB().Create(&model.User{Email: "a@example.com", Password: "x"}).Error)

	err := GetDB().Create(&model.User{Email: "a@example.com", Password: "y"}).Error
	assert.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsNotFound(t *testing.T) {
	setupDB(t)
	err := GetDB().First(&model.Medicine{}, 42).Error
	assert.True(t, IsNotFound(err))
}

func TestIsSQLiteDB(t *testing.T) {
	dbPath := setupDB(t)
	require.NoError(t, Checkpoint())

	f, err := os.Open(dbPath)
	require.NoError(t, err)
	defer f.Close()
	ok, err := IsSQLiteDB(f)
	require.NoError(t, err)
	assert.True(t, ok)

	other := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("this is definitely not sqlite"), 0o600))
	g, err := os.Open(other)
	require.NoError(t, err)
	defer g.Close()
	ok, err = IsSQLiteDB(g)
	require.NoError(t, err)
	assert.False(t, ok)
}
