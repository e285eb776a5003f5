package get_available_slots

import "errors"

var (
	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("get_available_slots: invalid input")
	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("get_available_slots: internal error")
)
