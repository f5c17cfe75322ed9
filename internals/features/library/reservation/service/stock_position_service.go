package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"perpusku_backend/internals/constants"
	bookModel "perpusku_backend/internals/features/library/book_info/model"
	resvModel "perpusku_backend/internals/features/library/reservation/model"
	helper "perpusku_backend/internals/helpers"
)

/* =========================================================
   STOCK POSITION
   available = stock - sum(quantity) over detail rows whose
   reservation header is still active (status code 1).
   Detail rows on cancelled/fulfilled reservations stay in
   storage but stop counting.
   ========================================================= */

type StockPositionBook struct {
	bookModel.BookInfoModel
	Available int `json:"available"`
}

type StockPosition struct {
	AvailableBooks   []StockPositionBook `json:"available_books"`
	UnavailableBooks []StockPositionBook `json:"unavailable_books"`
}

// StockPosition aggregates outstanding demand per title over the whole
// catalog. Read only, no pagination or search at this layer.
func (s *ReservationService) StockPosition(actor helper.AuthUser) (*StockPosition, error) {
	type reservedRow struct {
		BookInfoID uuid.UUID
		Reserved   int
	}
	var rows []reservedRow
	err := s.DB.Model(&resvModel.ReservationDetailModel{}).
		Select("reservation_details.book_info_id, SUM(reservation_details.quantity) AS reserved").
		Joins("JOIN book_reservations ON book_reservations.id = reservation_details.book_reservation_id").
		Where("book_reservations.reservation_status_num = ?", constants.ReservationStatusActive).
		Group("reservation_details.book_info_id").
		Find(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	reserved := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		reserved[r.BookInfoID] = r.Reserved
	}

	var books []bookModel.BookInfoModel
	if err := s.DB.Preload("BookCategory").Find(&books).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	pos := ComputeStockPosition(books, reserved)
	return &pos, nil
}

// ComputeStockPosition is the pure partition step: a book with no reserved
// quantity keeps available == stock; available > 0 sorts it into
// AvailableBooks, everything else into UnavailableBooks.
func ComputeStockPosition(books []bookModel.BookInfoModel, reserved map[uuid.UUID]int) StockPosition {
	pos := StockPosition{
		AvailableBooks:   []StockPositionBook{},
		UnavailableBooks: []StockPositionBook{},
	}
	for _, b := range books {
		entry := StockPositionBook{
			BookInfoModel: b,
			Available:     b.Stock - reserved[b.ID],
		}
		if entry.Available > 0 {
			pos.AvailableBooks = append(pos.AvailableBooks, entry)
		} else {
			pos.UnavailableBooks = append(pos.UnavailableBooks, entry)
		}
	}
	return pos
}
