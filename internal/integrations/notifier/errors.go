package notifier

import "errors"

var (
	// ErrPublish возвращается при любой ошибке публикации в очередь
	// Уведомления best-effort: вызывающий логирует ошибку и продолжает,
	// отмена или продвижение никогда не откатываются из-за уведомления
	ErrPublish = errors.New("notifier: failed to publish notification")
)
