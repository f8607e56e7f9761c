package database

import (
	"fmt"
	"testing"

	"tripmate/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedUsers(db))
	require.NoError(t, SeedTrips(db))

	var users, trips int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Trip{}).Count(&trips).Error)
	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(6), trips)

	// повторный прогон не создаёт дублей
	require.NoError(t, SeedUsers(db))
	require.NoError(t, SeedTrips(db))
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Trip{}).Count(&trips).Error)
	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(6), trips)
}

func TestSeededTripsArePublic(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedUsers(db))
	require.NoError(t, SeedTrips(db))

	var hidden int64
	require.NoError(t, db.Model(&models.Trip{}).Where("is_public = ?", false).Count(&hidden).Error)
	assert.Zero(t, hidden)
}
