package schedule

import "time"

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// ZonedTimeProvider провайдер времени, привязанный к фиксированному
// операционному часовому поясу заведения
type ZonedTimeProvider struct {
	loc *time.Location
}

// NewZonedTimeProvider создает провайдер для указанного часового пояса
func NewZonedTimeProvider(loc *time.Location) *ZonedTimeProvider {
	return &ZonedTimeProvider{loc: loc}
}

// Now возвращает текущее время в операционном часовом поясе
func (p *ZonedTimeProvider) Now() time.Time {
	return time.Now().In(p.loc)
}

// Location возвращает операционный часовой пояс
func (p *ZonedTimeProvider) Location() *time.Location {
	return p.loc
}
