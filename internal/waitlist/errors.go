package waitlist

import "errors"

var (
	// ErrNotOnWaitlist возвращается при запросе позиции бронирования,
	// которого нет в листе ожидания ключа
	ErrNotOnWaitlist = errors.New("waitlist: reservation is not on the waitlist")

	// ErrInternal возвращается при внутренних ошибках менеджера
	ErrInternal = errors.New("waitlist: internal error")
)
