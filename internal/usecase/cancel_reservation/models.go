package cancel_reservation

// Request запрос на отмену бронирования
type Request struct {
	ReservationID int64
	UserID        int64
	IsAdmin       bool
}

// Response результат отмены бронирования
type Response struct {
	ReservationID int64
	Status        string
	// PromotedReservationID - id бронирования, поднятого из листа ожидания
	// на освободившийся слот (0, если никто не продвинут)
	PromotedReservationID int64
	PromotedUserID        int64
}
