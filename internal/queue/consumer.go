package queue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// maxDialBackoff caps the reconnect delay after broker failures.
const maxDialBackoff = 30 * time.Second

// WhatsAppSender delivers queued events to the WhatsApp Cloud API.
// Template messages go out under the business account identified by
// PhoneNumberID. An empty AccessToken puts the sender in dry-run
// mode where deliveries are logged but not sent, which keeps local
// development working without Meta credentials.
type WhatsAppSender struct {
	AccessToken   string
	PhoneNumberID string
	APIBase       string // defaults to the Graph API
	Client        *http.Client
}

// NewWhatsAppSender builds a sender with a 10 second request
// timeout.
func NewWhatsAppSender(token, phoneNumberID string) *WhatsAppSender {
	return &WhatsAppSender{
		AccessToken:   token,
		PhoneNumberID: phoneNumberID,
		APIBase:       "https://graph.facebook.com/v17.0",
		Client:        &http.Client{Timeout: 10 * time.Second},
	}
}

// StartConsumer connects to RabbitMQ and consumes notify.whatsapp
// forever, reconnecting with capped exponential backoff. Messages
// that cannot be delivered are rejected without requeue so one
// broken payload cannot wedge the queue.
func StartConsumer(url string, sender *WhatsAppSender) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("whatsapp-consumer: dial failed: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < maxDialBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn, sender); err != nil {
			log.Printf("whatsapp-consumer: consume loop ended: %v; reconnecting", err)
			_ = conn.Close()
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, sender *WhatsAppSender) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(20, 0, false); err != nil {
		log.Printf("whatsapp-consumer: set QoS failed: %v", err)
	}
	if _, err := ch.QueueDeclare(whatsAppQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(whatsAppQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body, sender); err != nil {
			log.Printf("whatsapp-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte, sender *WhatsAppSender) error {
	var ev WhatsAppEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.Phone == "" {
		return errors.New("event has no phone")
	}

	var params []string
	var template string
	switch ev.Kind {
	case KindBookingConfirmation:
		template = "booking_confirmation"
		params = []string{ev.CustomerName, ev.BookingID, ev.StartDate, ev.Amount}
	case KindCustomAlert:
		template = "custom_alert"
		params = []string{ev.Message}
	default:
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}
	return sender.SendTemplate(ev.Phone, template, params)
}

// SendTemplate posts one template message to the Cloud API.
func (s *WhatsAppSender) SendTemplate(phone, template string, params []string) error {
	if s.AccessToken == "" || s.PhoneNumberID == "" {
		log.Printf("whatsapp: dry run, would send %s to %s", template, phone)
		return nil
	}

	type textParam struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	bodyParams := make([]textParam, 0, len(params))
	for _, p := range params {
		bodyParams = append(bodyParams, textParam{Type: "text", Text: p})
	}
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                phone,
		"type":              "template",
		"template": map[string]any{
			"name":     template,
			"language": map[string]string{"code": "en_US"},
			"components": []map[string]any{
				{"type": "body", "parameters": bodyParams},
			},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", s.APIBase, s.PhoneNumberID)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("cloud api request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("cloud api status %d: %s", resp.StatusCode, detail)
	}
	return nil
}
