package constants

// Role serials (user_roles.role_serial). Lower number = higher clearance:
// an admin (1) sees everything, a member (3) only public rows.
const (
	RoleSerialAdmin     = 1
	RoleSerialLibrarian = 2
	RoleSerialMember    = 3
)

// Reservation status codes (reservation_statuses.status_code). The code is a
// stable enum value referenced by book_reservations.reservation_status_num,
// distinct from the row's own id.
const (
	ReservationStatusActive    = 1
	ReservationStatusFulfilled = 2
	ReservationStatusCancelled = 3
)

// Access level given to rows visible to everyone. Access levels are compared
// against the caller's role serial, see helper.HasClearance.
const AccessLevelPublic = 10

// Name of the fallback category assigned to books created without one.
const UndefinedCategoryName = "Undefined"

// Address type used for the address nested under a reservation's user payload.
const AddressTypeHome = "Home"
