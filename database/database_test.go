// database_test.go - Tests for connection setup and error translation

package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mini-crm/config"
	"mini-crm/models"
)

func TestConnectTranslatesDuplicateKey(t *testing.T) {
	cfg := &config.Config{DatabaseURL: filepath.Join(t.TempDir(), "test.db")}
	db, err := Connect(cfg)
	require.NoError(t, err)

	first := models.User{Name: "First", Email: "dup@example.com", Password: "hash"}
	require.NoError(t, db.Create(&first).Error)

	// A second row with the same email violates the unique index and must
	// surface as gorm.ErrDuplicatedKey, not a raw driver error.
	second := models.User{Name: "Second", Email: "dup@example.com", Password: "hash"}
	err = db.Create(&second).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}
