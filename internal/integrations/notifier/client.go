package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jadelounge/JL-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client публикует события уведомлений в очередь RabbitMQ
// Очередь durable, сообщения persistent - события переживают
// перезапуск брокера и ждут внешнего SMS-отправителя
type Client struct {
	url     string
	queue   string
	timeout time.Duration
	log     Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(url, queue string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:     url,
		queue:   queue,
		timeout: timeout,
		log:     log,
	}
}

// NotifyCancelled публикует событие отмены бронирования
func (c *Client) NotifyCancelled(ctx context.Context, res *domain.Reservation) error {
	return c.publish(ctx, c.buildNotification(EventReservationCancelled, res))
}

// NotifyPromoted публикует событие продвижения из листа ожидания
func (c *Client) NotifyPromoted(ctx context.Context, res *domain.Reservation) error {
	return c.publish(ctx, c.buildNotification(EventWaitlistPromoted, res))
}

func (c *Client) buildNotification(event EventType, res *domain.Reservation) Notification {
	return Notification{
		Event:     event,
		UserID:    res.UserID,
		RoomType:  string(res.RoomType),
		Date:      res.ReservationDate.Format(domain.DateFormat),
		StartTime: res.StartTime.String(),
		EndTime:   res.EndTime.String(),
		SentAt:    time.Now().UTC().Format(time.RFC3339),
	}
}

// publish отправляет одно сообщение, открывая соединение на публикацию
// Ошибка логируется и возвращается, но вызывающий её игнорирует -
// доставка уведомлений никогда не блокирует бизнес-операцию
func (c *Client) publish(ctx context.Context, n Notification) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := amqp.Dial(c.url)
	if err != nil {
		c.log.Error("Notifier: failed to dial broker: %v", err)
		return fmt.Errorf("%w: dial: %v", ErrPublish, err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		c.log.Error("Notifier: failed to open channel: %v", err)
		return fmt.Errorf("%w: channel: %v", ErrPublish, err)
	}
	defer ch.Close()

	// Идемпотентное объявление очереди: durable, без auto-delete
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		c.log.Error("Notifier: failed to declare queue %s: %v", c.queue, err)
		return fmt.Errorf("%w: queue declare: %v", ErrPublish, err)
	}

	body, err := json.Marshal(n)
	if err != nil {
		c.log.Error("Notifier: failed to marshal notification: %v", err)
		return fmt.Errorf("%w: marshal: %v", ErrPublish, err)
	}

	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		c.queue, // routing key = имя очереди
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		c.log.Error("Notifier: failed to publish %s for user=%d: %v", n.Event, n.UserID, err)
		return fmt.Errorf("%w: publish: %v", ErrPublish, err)
	}

	c.log.Info("Notifier: published %s for user=%d, room=%s, date=%s, time=%s",
		n.Event, n.UserID, n.RoomType, n.Date, n.StartTime)
	return nil
}
