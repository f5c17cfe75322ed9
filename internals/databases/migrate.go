package database

import (
	"log"

	"gorm.io/gorm"

	"perpusku_backend/internals/constants"
	bookCategoryModel "perpusku_backend/internals/features/library/book_category/model"
	bookInfoModel "perpusku_backend/internals/features/library/book_info/model"
	reservationModel "perpusku_backend/internals/features/library/reservation/model"
	reservationStatusModel "perpusku_backend/internals/features/library/reservation_status/model"
	userModel "perpusku_backend/internals/features/users/user/model"
)

// MigrateAll creates/updates the schema for every feature model.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserRoleModel{},
		&userModel.UserModel{},
		&userModel.AddressModel{},
		&bookCategoryModel.BookCategoryModel{},
		&bookInfoModel.BookInfoModel{},
		&reservationStatusModel.ReservationStatusModel{},
		&reservationModel.BookReservationModel{},
		&reservationModel.ReservationDetailModel{},
	)
}

// SeedDefaults inserts the role and status rows the app assumes exist.
// Safe to run on every boot, existing rows are left alone.
func SeedDefaults(db *gorm.DB) {
	roles := []userModel.UserRoleModel{
		{RoleSerial: constants.RoleSerialAdmin, RoleName: "Admin"},
		{RoleSerial: constants.RoleSerialLibrarian, RoleName: "Librarian"},
		{RoleSerial: constants.RoleSerialMember, RoleName: "Member"},
	}
	for _, r := range roles {
		var count int64
		db.Model(&userModel.UserRoleModel{}).Where("role_serial = ?", r.RoleSerial).Count(&count)
		if count == 0 {
			if err := db.Create(&r).Error; err != nil {
				log.Printf("seed role %q err: %v", r.RoleName, err)
			}
		}
	}

	statuses := []reservationStatusModel.ReservationStatusModel{
		{StatusCode: constants.ReservationStatusActive, Name: "Active"},
		{StatusCode: constants.ReservationStatusFulfilled, Name: "Fulfilled"},
		{StatusCode: constants.ReservationStatusCancelled, Name: "Cancelled"},
	}
	for _, s := range statuses {
		var count int64
		db.Model(&reservationStatusModel.ReservationStatusModel{}).Where("status_code = ?", s.StatusCode).Count(&count)
		if count == 0 {
			if err := db.Create(&s).Error; err != nil {
				log.Printf("seed status %q err: %v", s.Name, err)
			}
		}
	}
}
