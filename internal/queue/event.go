// Package queue carries outbound WhatsApp messages through RabbitMQ
// so a broker or upstream API outage never blocks a booking action.
package queue

// Message kinds on the notify.whatsapp queue.
const (
	KindBookingConfirmation = "booking_confirmation"
	KindCustomAlert         = "custom_alert"
)

// WhatsAppEvent is one queued outbound message. Confirmation
// messages fill the template fields; broadcasts fill Message.
type WhatsAppEvent struct {
	Kind  string `json:"kind"`
	Phone string `json:"phone"`

	// booking_confirmation template parameters
	CustomerName string `json:"customer_name,omitempty"`
	BookingID    string `json:"booking_id,omitempty"`
	StartDate    string `json:"start_date,omitempty"` // YYYY-MM-DD
	Amount       string `json:"amount,omitempty"`

	// custom_alert template parameter
	Message string `json:"message,omitempty"`

	QueuedAt string `json:"queued_at"`
}
