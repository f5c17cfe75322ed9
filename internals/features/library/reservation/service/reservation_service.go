package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"perpusku_backend/internals/constants"
	resvDTO "perpusku_backend/internals/features/library/reservation/dto"
	resvModel "perpusku_backend/internals/features/library/reservation/model"
	userModel "perpusku_backend/internals/features/users/user/model"
	helper "perpusku_backend/internals/helpers"
)

// ReservationService owns the reservation lifecycle: create, update and
// delete always run as one transaction so no half-applied graph survives a
// failure. The caller identity is threaded in explicitly.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

var reservationPreloads = []string{
	"User", "User.Addresses",
	"Details", "Details.BookInfo", "Details.BookInfo.BookCategory",
}

func (s *ReservationService) loadGraph(db *gorm.DB, id uuid.UUID) (*resvModel.BookReservationModel, error) {
	q := db
	for _, p := range reservationPreloads {
		q = q.Preload(p)
	}
	var out resvModel.BookReservationModel
	if err := q.First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

/* =========================================================
   CREATE
   Resolve-or-create the user (plus its Home address), then
   create the header with nested details. One transaction:
   either the whole graph commits or none of it does.
   ========================================================= */

func (s *ReservationService) Create(actor helper.AuthUser, req *resvDTO.CreateBookReservationRequest) (*resvModel.BookReservationModel, error) {
	if len(req.ReservationDetails) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "At least one reservation detail is required")
	}

	var createdID uuid.UUID
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		userID, err := resolveUserByEmail(tx, req.User, req.Address)
		if err != nil {
			return err
		}

		header := req.BookReservation
		ref := header.ReservationRef
		if ref == "" {
			ref = helper.GenerateReferenceNumber("REF")
		}

		resv := resvModel.BookReservationModel{
			ReservationRef:       ref,
			ReservationDate:      header.ReservationDate,
			ReservationStatusNum: constants.ReservationStatusActive,
			ReservationComment:   header.ReservationComment,
			AccessLevel:          constants.AccessLevelPublic,
			UserID:               userID,
		}
		if header.ReservationStatusNum != nil {
			resv.ReservationStatusNum = *header.ReservationStatusNum
		}
		if header.AccessLevel != nil {
			resv.AccessLevel = *header.AccessLevel
		}
		for _, d := range req.ReservationDetails {
			resv.Details = append(resv.Details, resvModel.ReservationDetailModel{
				BookInfoID: d.BookInfoID,
				Quantity:   d.Quantity,
				Note:       d.Note,
			})
		}

		if err := tx.Create(&resv).Error; err != nil {
			return helper.DBErrToFiber(err, "Reservation not found", "Reservation reference already exists")
		}
		createdID = resv.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	out, err := s.loadGraph(s.DB, createdID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load created reservation")
	}
	return out, nil
}

// resolveUserByEmail reuses an existing user row by email, refreshing its
// name and upserting its Home address in place, or creates a new user with a
// nested Home address. Runs inside the caller's transaction so a later
// failure rolls the user back too.
func resolveUserByEmail(tx *gorm.DB, u resvDTO.ReservationUserPayload, a resvDTO.ReservationAddressPayload) (uuid.UUID, error) {
	var existing userModel.UserModel
	err := tx.Where("email = ?", u.Email).First(&existing).Error
	switch {
	case err == nil:
		existing.Name = u.Name
		existing.Email = u.Email
		if err := tx.Save(&existing).Error; err != nil {
			return uuid.Nil, helper.DBErrToFiber(err, "User not found", "Email already in use")
		}
		if err := upsertHomeAddress(tx, existing.ID, a); err != nil {
			return uuid.Nil, err
		}
		return existing.ID, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		created := userModel.UserModel{
			Name:    u.Name,
			Email:   u.Email,
			Phone:   u.Phone,
			RoleNum: constants.RoleSerialMember,
			Addresses: []userModel.AddressModel{{
				AddressType: constants.AddressTypeHome,
				Street:      a.Street,
				City:        a.City,
				State:       a.State,
				Country:     a.Country,
				PostalCode:  a.PostalCode,
			}},
		}
		if err := tx.Create(&created).Error; err != nil {
			return uuid.Nil, helper.DBErrToFiber(err, "User not found", "Email already in use")
		}
		return created.ID, nil

	default:
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

func upsertHomeAddress(tx *gorm.DB, userID uuid.UUID, a resvDTO.ReservationAddressPayload) error {
	var addr userModel.AddressModel
	err := tx.Where("user_id = ? AND address_type = ?", userID, constants.AddressTypeHome).First(&addr).Error
	switch {
	case err == nil:
		addr.Street = a.Street
		addr.City = a.City
		addr.State = a.State
		addr.Country = a.Country
		addr.PostalCode = a.PostalCode
		if err := tx.Save(&addr).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		addr = userModel.AddressModel{
			UserID:      userID,
			AddressType: constants.AddressTypeHome,
			Street:      a.Street,
			City:        a.City,
			State:       a.State,
			Country:     a.Country,
			PostalCode:  a.PostalCode,
		}
		if err := tx.Create(&addr).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return nil
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

/* =========================================================
   UPDATE
   Header, existing detail rows, user and address revisions
   commit as one unit. Detail rows are addressed by their own
   id; rows without a matching id are ignored, never created.
   ========================================================= */

func (s *ReservationService) Update(actor helper.AuthUser, id uuid.UUID, req *resvDTO.UpdateBookReservationRequest) (*resvModel.BookReservationModel, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var resv resvModel.BookReservationModel
		if err := tx.First(&resv, "id = ?", id).Error; err != nil {
			return helper.DBErrToFiber(err, "Reservation not found", "")
		}

		header := req.BookReservation
		resv.ReservationRef = header.ReservationRef
		resv.ReservationDate = header.ReservationDate
		resv.ReservationStatusNum = constants.ReservationStatusActive
		if header.ReservationStatusNum != nil {
			resv.ReservationStatusNum = *header.ReservationStatusNum
		}
		resv.AccessLevel = constants.AccessLevelPublic
		if header.AccessLevel != nil {
			resv.AccessLevel = *header.AccessLevel
		}
		resv.ReservationComment = header.ReservationComment
		if header.UserID != nil {
			resv.UserID = *header.UserID
		}
		if err := tx.Save(&resv).Error; err != nil {
			return helper.DBErrToFiber(err, "Reservation not found", "Reservation reference already exists")
		}

		// bulk field-update of existing detail rows only
		for _, d := range req.ReservationDetails {
			if d.ID == nil {
				continue
			}
			err := tx.Model(&resvModel.ReservationDetailModel{}).
				Where("id = ? AND book_reservation_id = ?", *d.ID, resv.ID).
				Updates(map[string]any{
					"book_info_id": d.BookInfoID,
					"quantity":     d.Quantity,
					"note":         d.Note,
				}).Error
			if err != nil {
				return helper.DBErrToFiber(err, "Reservation detail not found", "")
			}
		}

		if req.User != nil {
			if req.User.ID == nil {
				return fiber.NewError(fiber.StatusBadRequest, "User id is required on update")
			}
			var u userModel.UserModel
			if err := tx.First(&u, "id = ?", *req.User.ID).Error; err != nil {
				return helper.DBErrToFiber(err, "User not found", "")
			}
			u.Name = req.User.Name
			u.Email = req.User.Email
			u.Phone = req.User.Phone
			if err := tx.Save(&u).Error; err != nil {
				return helper.DBErrToFiber(err, "User not found", "Email already in use")
			}

			if req.Address != nil {
				if err := upsertAddressByID(tx, u.ID, *req.Address); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out, err := s.loadGraph(s.DB, id)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load updated reservation")
	}
	return out, nil
}

// upsertAddressByID updates the address when the id matches a row of that
// user, otherwise creates a fresh Home address.
func upsertAddressByID(tx *gorm.DB, userID uuid.UUID, a resvDTO.ReservationAddressPayload) error {
	if a.ID != nil {
		res := tx.Model(&userModel.AddressModel{}).
			Where("id = ? AND user_id = ?", *a.ID, userID).
			Updates(map[string]any{
				"street":      a.Street,
				"city":        a.City,
				"state":       a.State,
				"country":     a.Country,
				"postal_code": a.PostalCode,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
		}
		if res.RowsAffected > 0 {
			return nil
		}
	}
	addr := userModel.AddressModel{
		UserID:      userID,
		AddressType: constants.AddressTypeHome,
		Street:      a.Street,
		City:        a.City,
		State:       a.State,
		Country:     a.Country,
		PostalCode:  a.PostalCode,
	}
	if err := tx.Create(&addr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return nil
}

/* =========================================================
   DELETE — single or batch.
   Per-user reservation counts are taken before the delete;
   users left with zero reservations go with them, in the
   same transaction.
   ========================================================= */

type DeleteResult struct {
	DeletedReservations int64 `json:"deleted_reservations"`
	DeletedUsers        int64 `json:"deleted_users"`
}

func (s *ReservationService) Delete(actor helper.AuthUser, ids []uuid.UUID) (*DeleteResult, error) {
	if len(ids) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "At least one reservation id is required")
	}

	var out DeleteResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var targets []resvModel.BookReservationModel
		if err := tx.Where("id IN ?", ids).Find(&targets).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if len(targets) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Reservation not found")
		}

		// reservations being removed per user
		removing := map[uuid.UUID]int64{}
		targetIDs := make([]uuid.UUID, 0, len(targets))
		for _, r := range targets {
			removing[r.UserID]++
			targetIDs = append(targetIDs, r.ID)
		}

		// total reservations per user, counted before the delete
		type userCount struct {
			UserID uuid.UUID
			Total  int64
		}
		var counts []userCount
		if err := tx.Model(&resvModel.BookReservationModel{}).
			Select("user_id, COUNT(*) AS total").
			Group("user_id").
			Find(&counts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		totals := map[uuid.UUID]int64{}
		for _, c := range counts {
			totals[c.UserID] = c.Total
		}

		orphanUserIDs := make([]uuid.UUID, 0, len(removing))
		for userID, n := range removing {
			if totals[userID]-n <= 0 {
				orphanUserIDs = append(orphanUserIDs, userID)
			}
		}

		res := tx.Where("book_reservation_id IN ?", targetIDs).Delete(&resvModel.ReservationDetailModel{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
		}
		res = tx.Where("id IN ?", targetIDs).Delete(&resvModel.BookReservationModel{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
		}
		out.DeletedReservations = res.RowsAffected

		if len(orphanUserIDs) > 0 {
			if err := tx.Where("user_id IN ?", orphanUserIDs).Delete(&userModel.AddressModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			res = tx.Where("id IN ?", orphanUserIDs).Delete(&userModel.UserModel{})
			if res.Error != nil {
				return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
			}
			out.DeletedUsers = res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
