package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidBookingTime возвращается, когда время вне рабочей сессии даты
	ErrInvalidBookingTime = errors.New("create_reservation: time outside operating hours")

	// ErrOutsideBookingWindow возвращается, когда дата за пределами окна
	// бронирования (сегодня + 14 дней). Ожидаемый отказ, не ошибка системы
	ErrOutsideBookingWindow = errors.New("create_reservation: date outside booking window")

	// ErrInPast возвращается, когда запрошенный слот уже прошел
	ErrInPast = errors.New("create_reservation: slot is in the past")

	// ErrPartySizeLimit возвращается, когда маленькая компания в баре
	// запрашивает больше двух часов
	ErrPartySizeLimit = errors.New("create_reservation: duration exceeds small party limit")

	// ErrConcurrencyConflict возвращается, когда параллельный запрос занял
	// слот, а однократный повтор тоже не удался
	ErrConcurrencyConflict = errors.New("create_reservation: concurrent booking conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
