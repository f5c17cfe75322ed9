package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"perpusku_backend/internals/constants"
	userModel "perpusku_backend/internals/features/users/user/model"
)

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}))
	return db
}

func TestSyncGoogleName_FillsEmptyName(t *testing.T) {
	db := newAuthTestDB(t)
	u := userModel.UserModel{Name: "", Email: "budi@example.com", RoleNum: constants.RoleSerialMember}
	require.NoError(t, db.Create(&u).Error)

	syncGoogleName(db, &u, "Budi Santoso")

	var reloaded userModel.UserModel
	require.NoError(t, db.First(&reloaded, "id = ?", u.ID).Error)
	assert.Equal(t, "Budi Santoso", reloaded.Name)
}

func TestSyncGoogleName_KeepsExistingName(t *testing.T) {
	db := newAuthTestDB(t)
	u := userModel.UserModel{Name: "Budi", Email: "budi@example.com", RoleNum: constants.RoleSerialMember}
	require.NoError(t, db.Create(&u).Error)

	syncGoogleName(db, &u, "Somebody Else")

	var reloaded userModel.UserModel
	require.NoError(t, db.First(&reloaded, "id = ?", u.ID).Error)
	assert.Equal(t, "Budi", reloaded.Name)
}

func TestSyncGoogleName_IgnoresEmptyProfileName(t *testing.T) {
	db := newAuthTestDB(t)
	u := userModel.UserModel{Name: "", Email: "budi@example.com", RoleNum: constants.RoleSerialMember}
	require.NoError(t, db.Create(&u).Error)

	syncGoogleName(db, &u, "")

	var reloaded userModel.UserModel
	require.NoError(t, db.First(&reloaded, "id = ?", u.ID).Error)
	assert.Equal(t, "", reloaded.Name)
}
