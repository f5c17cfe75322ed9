package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perpusku_backend/internals/constants"
	resvDTO "perpusku_backend/internals/features/library/reservation/dto"
	resvModel "perpusku_backend/internals/features/library/reservation/model"
	userModel "perpusku_backend/internals/features/users/user/model"
)

func createReq(email string, details ...resvDTO.ReservationDetailPayload) *resvDTO.CreateBookReservationRequest {
	return &resvDTO.CreateBookReservationRequest{
		BookReservation: resvDTO.ReservationHeaderPayload{
			ReservationDate: time.Now(),
		},
		ReservationDetails: details,
		User: resvDTO.ReservationUserPayload{
			Name:  "Budi Santoso",
			Email: email,
		},
		Address: resvDTO.ReservationAddressPayload{
			Street:  "7 New Street",
			City:    "Bandung",
			Country: "Indonesia",
		},
	}
}

func TestCreateReservation_NewUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	book := seedBook(t, db, "Laskar Pelangi", 5)

	out, err := svc.Create(adminActor(), createReq("budi@example.com",
		resvDTO.ReservationDetailPayload{BookInfoID: book.ID, Quantity: 2},
	))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ReservationRef)
	assert.Equal(t, constants.ReservationStatusActive, out.ReservationStatusNum)
	require.Len(t, out.Details, 1)
	assert.Equal(t, 2, out.Details[0].Quantity)

	require.NotNil(t, out.User)
	assert.Equal(t, "budi@example.com", out.User.Email)
	assert.Equal(t, constants.RoleSerialMember, out.User.RoleNum)
	require.Len(t, out.User.Addresses, 1)
	assert.Equal(t, constants.AddressTypeHome, out.User.Addresses[0].AddressType)
	assert.Equal(t, "7 New Street", out.User.Addresses[0].Street)

	assert.EqualValues(t, 1, count(t, db, &userModel.UserModel{}))
	assert.EqualValues(t, 1, count(t, db, &userModel.AddressModel{}))
}

func TestCreateReservation_ExistingEmailReusesUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	book := seedBook(t, db, "Bumi Manusia", 5)
	existing := seedUser(t, db, "Old Name", "budi@example.com")

	out, err := svc.Create(adminActor(), createReq("budi@example.com",
		resvDTO.ReservationDetailPayload{BookInfoID: book.ID, Quantity: 1},
	))
	require.NoError(t, err)

	// same row, refreshed name, Home address overwritten in place
	assert.Equal(t, existing.ID, out.UserID)
	assert.EqualValues(t, 1, count(t, db, &userModel.UserModel{}))
	assert.EqualValues(t, 1, count(t, db, &userModel.AddressModel{}))

	var u userModel.UserModel
	require.NoError(t, db.Preload("Addresses").First(&u, "id = ?", existing.ID).Error)
	assert.Equal(t, "Budi Santoso", u.Name)
	require.Len(t, u.Addresses, 1)
	assert.Equal(t, "7 New Street", u.Addresses[0].Street)
}

func TestCreateReservation_NoDetails(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	_, err := svc.Create(adminActor(), createReq("budi@example.com"))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.EqualValues(t, 0, count(t, db, &userModel.UserModel{}))
}

func TestCreateReservation_AtomicRollbackOnDetailFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	book := seedBook(t, db, "Laskar Pelangi", 5)

	// quantity 0 violates the detail check constraint, so the insert fails
	// after the user row was already created inside the same transaction
	_, err := svc.Create(adminActor(), createReq("budi@example.com",
		resvDTO.ReservationDetailPayload{BookInfoID: book.ID, Quantity: 0},
	))
	require.Error(t, err)

	// the whole graph rolls back: no stray user or address survives
	assert.EqualValues(t, 0, count(t, db, &userModel.UserModel{}))
	assert.EqualValues(t, 0, count(t, db, &userModel.AddressModel{}))
	assert.EqualValues(t, 0, count(t, db, &resvModel.BookReservationModel{}))
	assert.EqualValues(t, 0, count(t, db, &resvModel.ReservationDetailModel{}))
}

func TestUpdateReservation_HeaderAndDetails(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	book := seedBook(t, db, "Pulang", 5)
	other := seedBook(t, db, "Pergi", 5)
	u := seedUser(t, db, "Budi", "budi@example.com")
	resv := seedReservation(t, db, u.ID, book.ID, 2, constants.ReservationStatusActive)

	status := constants.ReservationStatusFulfilled
	detailID := resv.Details[0].ID
	out, err := svc.Update(adminActor(), resv.ID, &resvDTO.UpdateBookReservationRequest{
		BookReservation: resvDTO.ReservationHeaderPayload{
			ReservationRef:       resv.ReservationRef,
			ReservationDate:      resv.ReservationDate,
			ReservationStatusNum: &status,
		},
		ReservationDetails: []resvDTO.ReservationDetailPayload{
			{ID: &detailID, BookInfoID: other.ID, Quantity: 4},
			{BookInfoID: other.ID, Quantity: 99}, // no id, must be ignored
		},
	})
	require.NoError(t, err)

	assert.Equal(t, constants.ReservationStatusFulfilled, out.ReservationStatusNum)
	require.Len(t, out.Details, 1)
	assert.Equal(t, other.ID, out.Details[0].BookInfoID)
	assert.Equal(t, 4, out.Details[0].Quantity)
}

func TestUpdateReservation_NilStatusResetsToActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	book := seedBook(t, db, "Pulang", 5)
	u := seedUser(t, db, "Budi", "budi@example.com")
	resv := seedReservation(t, db, u.ID, book.ID, 1, constants.ReservationStatusCancelled)

	out, err := svc.Update(adminActor(), resv.ID, &resvDTO.UpdateBookReservationRequest{
		BookReservation: resvDTO.ReservationHeaderPayload{
			ReservationRef:  resv.ReservationRef,
			ReservationDate: resv.ReservationDate,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, constants.ReservationStatusActive, out.ReservationStatusNum)
	assert.Equal(t, constants.AccessLevelPublic, out.AccessLevel)
}

func TestUpdateReservation_AtomicRollbackOnUserFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	book := seedBook(t, db, "Pulang", 5)
	u := seedUser(t, db, "Budi", "budi@example.com")
	resv := seedReservation(t, db, u.ID, book.ID, 2, constants.ReservationStatusActive)

	missing := uuid.New()
	status := constants.ReservationStatusFulfilled
	_, err := svc.Update(adminActor(), resv.ID, &resvDTO.UpdateBookReservationRequest{
		BookReservation: resvDTO.ReservationHeaderPayload{
			ReservationRef:       "CHANGED-REF",
			ReservationDate:      resv.ReservationDate,
			ReservationStatusNum: &status,
		},
		User: &resvDTO.ReservationUserPayload{
			ID:    &missing,
			Name:  "Nobody",
			Email: "nobody@example.com",
		},
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	// header revision must have rolled back with the failed user revision
	var reloaded resvModel.BookReservationModel
	require.NoError(t, db.First(&reloaded, "id = ?", resv.ID).Error)
	assert.Equal(t, resv.ReservationRef, reloaded.ReservationRef)
	assert.Equal(t, constants.ReservationStatusActive, reloaded.ReservationStatusNum)
}

func TestUpdateReservation_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	_, err := svc.Update(adminActor(), uuid.New(), &resvDTO.UpdateBookReservationRequest{
		BookReservation: resvDTO.ReservationHeaderPayload{
			ReservationRef:  "X",
			ReservationDate: time.Now(),
		},
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestDeleteReservation_RemovesOrphanUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	book := seedBook(t, db, "Pulang", 5)
	u := seedUser(t, db, "Budi", "budi@example.com")
	resv := seedReservation(t, db, u.ID, book.ID, 2, constants.ReservationStatusActive)

	out, err := svc.Delete(adminActor(), []uuid.UUID{resv.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, out.DeletedReservations)
	assert.EqualValues(t, 1, out.DeletedUsers)

	assert.EqualValues(t, 0, count(t, db, &resvModel.BookReservationModel{}))
	assert.EqualValues(t, 0, count(t, db, &resvModel.ReservationDetailModel{}))
	assert.EqualValues(t, 0, count(t, db, &userModel.UserModel{}))
	assert.EqualValues(t, 0, count(t, db, &userModel.AddressModel{}))

	// catalog rows are never touched by reservation cleanup
	var remaining int64
	require.NoError(t, db.Table("book_infos").Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)
}

func TestDeleteReservation_KeepsUserWithRemaining(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	book := seedBook(t, db, "Pulang", 5)
	u := seedUser(t, db, "Budi", "budi@example.com")
	first := seedReservation(t, db, u.ID, book.ID, 1, constants.ReservationStatusActive)
	seedReservation(t, db, u.ID, book.ID, 1, constants.ReservationStatusActive)

	out, err := svc.Delete(adminActor(), []uuid.UUID{first.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, out.DeletedReservations)
	assert.EqualValues(t, 0, out.DeletedUsers)
	assert.EqualValues(t, 1, count(t, db, &userModel.UserModel{}))
	assert.EqualValues(t, 1, count(t, db, &resvModel.BookReservationModel{}))
}

func TestDeleteReservation_BatchRemovesUserWhenAllGone(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	book := seedBook(t, db, "Pulang", 5)
	u := seedUser(t, db, "Budi", "budi@example.com")
	first := seedReservation(t, db, u.ID, book.ID, 1, constants.ReservationStatusActive)
	second := seedReservation(t, db, u.ID, book.ID, 1, constants.ReservationStatusActive)

	out, err := svc.Delete(adminActor(), []uuid.UUID{first.ID, second.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, out.DeletedReservations)
	assert.EqualValues(t, 1, out.DeletedUsers)
	assert.EqualValues(t, 0, count(t, db, &userModel.UserModel{}))
}

func TestDeleteReservation_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	_, err := svc.Delete(adminActor(), []uuid.UUID{uuid.New()})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
