package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/studyspot/seat-booking/internal/model"
)

// whatsAppQueueName holds outbound messages until the consumer
// delivers them to the WhatsApp Cloud API.
const whatsAppQueueName = "notify.whatsapp"

// Publisher queues WhatsApp events on RabbitMQ. It dials per
// publish so a dead broker costs one failed call instead of a
// poisoned long-lived connection; errors are logged and returned
// for the caller to ignore.
type Publisher struct {
	url string
}

// NewPublisher constructs a Publisher for the given AMQP URL.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// BookingConfirmed queues the confirmation template message for a
// freshly approved booking.
func (p *Publisher) BookingConfirmed(ctx context.Context, b *model.Booking) error {
	return p.publish(ctx, WhatsAppEvent{
		Kind:         KindBookingConfirmation,
		Phone:        b.CustomerPhone,
		CustomerName: b.CustomerName,
		BookingID:    b.ID,
		StartDate:    b.StartDate.Format("2006-01-02"),
		Amount:       fmt.Sprintf("%d", b.Amount),
		QueuedAt:     time.Now().UTC().Format(time.RFC3339),
	})
}

// Broadcast queues a free-form alert for one phone number.
func (p *Publisher) Broadcast(ctx context.Context, phone, message string) error {
	return p.publish(ctx, WhatsAppEvent{
		Kind:     KindCustomAlert,
		Phone:    phone,
		Message:  message,
		QueuedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (p *Publisher) publish(ctx context.Context, ev WhatsAppEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(whatsAppQueueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", whatsAppQueueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
