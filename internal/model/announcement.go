package model

import "time"

// Announcement target groups. Targets select which customers'
// phone numbers a bulk message is fanned out to.
const (
	TargetAll     = "all"     // every distinct customer phone
	TargetActive  = "active"  // confirmed bookings still running
	TargetPending = "pending" // bookings awaiting approval
	TargetPast    = "past"    // confirmed bookings already ended
)

// Announcement records one bulk WhatsApp broadcast. The message
// rows are persisted before dispatch; RecipientCount is written
// back once the fan-out has been queued.
type Announcement struct {
	ID             uint64    // announcements.id
	Message        string    // announcements.message
	Targets        []string  // announcements.targets (comma separated)
	RecipientCount int       // announcements.recipient_count
	CreatedAt      time.Time // announcements.created_at
}
