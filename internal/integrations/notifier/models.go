package notifier

// EventType тип события уведомления
type EventType string

const (
	EventReservationCancelled EventType = "reservation_cancelled"
	EventWaitlistPromoted     EventType = "waitlist_promoted"
)

// Notification сообщение для очереди SMS-уведомлений
// Внешний consumer читает очередь и отправляет реальные SMS;
// этот сервис только публикует события
type Notification struct {
	Event     EventType `json:"event"`
	UserID    int64     `json:"userId"`
	RoomType  string    `json:"roomType"`
	Date      string    `json:"date"`      // "2025-10-15"
	StartTime string    `json:"startTime"` // "20:30"
	EndTime   string    `json:"endTime"`
	SentAt    string    `json:"sentAt"` // ISO 8601
}
