package cancel_reservation

import "errors"

var (
	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("cancel_reservation: invalid input")
	// ErrNotFound - бронирование не найдено
	ErrNotFound = errors.New("cancel_reservation: reservation not found")
	// ErrPermissionDenied - бронирование принадлежит другому пользователю
	ErrPermissionDenied = errors.New("cancel_reservation: permission denied")
	// ErrAlreadyCancelled - бронирование уже отменено
	ErrAlreadyCancelled = errors.New("cancel_reservation: reservation already cancelled")
	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("cancel_reservation: internal error")
)
