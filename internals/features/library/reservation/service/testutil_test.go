package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"perpusku_backend/internals/constants"
	categoryModel "perpusku_backend/internals/features/library/book_category/model"
	bookModel "perpusku_backend/internals/features/library/book_info/model"
	resvModel "perpusku_backend/internals/features/library/reservation/model"
	userModel "perpusku_backend/internals/features/users/user/model"
	helper "perpusku_backend/internals/helpers"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.AddressModel{},
		&categoryModel.BookCategoryModel{},
		&bookModel.BookInfoModel{},
		&resvModel.BookReservationModel{},
		&resvModel.ReservationDetailModel{},
	))
	return db
}

func adminActor() helper.AuthUser {
	return helper.AuthUser{
		ID:      uuid.New(),
		Name:    "Admin",
		Email:   "admin@perpusku.test",
		RoleNum: constants.RoleSerialAdmin,
	}
}

func seedBook(t *testing.T, db *gorm.DB, title string, stock int) bookModel.BookInfoModel {
	t.Helper()
	cat := categoryModel.BookCategoryModel{Name: "Fiction", AccessLevel: constants.AccessLevelPublic}
	require.NoError(t, db.Create(&cat).Error)
	book := bookModel.BookInfoModel{
		Title:          title,
		Author:         "Anonymous",
		Stock:          stock,
		AccessLevel:    constants.AccessLevelPublic,
		BookCategoryID: cat.ID,
	}
	require.NoError(t, db.Create(&book).Error)
	return book
}

func seedReservation(t *testing.T, db *gorm.DB, userID, bookID uuid.UUID, qty, statusNum int) resvModel.BookReservationModel {
	t.Helper()
	resv := resvModel.BookReservationModel{
		ReservationRef:       helper.GenerateReferenceNumber("TST"),
		ReservationDate:      time.Now(),
		ReservationStatusNum: statusNum,
		AccessLevel:          constants.AccessLevelPublic,
		UserID:               userID,
		Details: []resvModel.ReservationDetailModel{
			{BookInfoID: bookID, Quantity: qty},
		},
	}
	require.NoError(t, db.Create(&resv).Error)
	return resv
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		Name:    name,
		Email:   email,
		RoleNum: constants.RoleSerialMember,
		Addresses: []userModel.AddressModel{{
			AddressType: constants.AddressTypeHome,
			Street:      "1 Old Street",
			City:        "Jakarta",
			Country:     "Indonesia",
		}},
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
