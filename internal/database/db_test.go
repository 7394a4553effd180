package database

import (
	"testing"

	"shiptrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}

func TestSeedUserIsIdempotent(t *testing.T) {
	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)

	require.NoError(t, SeedUser(db, "admin", "admin123", models.RoleAdmin))
	// second run must neither fail nor duplicate
	require.NoError(t, SeedUser(db, "admin", "different-password", models.RoleAdmin))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// original password survived the re-run
	var user models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&user).Error)
	assert.Equal(t, models.RoleAdmin, user.Role)
}
