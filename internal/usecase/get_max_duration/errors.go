package get_max_duration

import "errors"

var (
	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("get_max_duration: invalid input")
	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("get_max_duration: internal error")
)
