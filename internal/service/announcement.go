package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/studyspot/seat-booking/internal/model"
)

// minPhoneDigits filters out placeholder or truncated numbers
// before a broadcast.
const minPhoneDigits = 10

// AnnouncementService sends WhatsApp broadcasts to customer groups
// and records each send. Groups resolve through booking history:
// all, active, pending, or past customers.
type AnnouncementService struct {
	announcements AnnouncementStore
	bookings      BookingStore
	notifier      Notifier
	now           func() time.Time
}

func NewAnnouncementService(announcements AnnouncementStore, bookings BookingStore, notifier Notifier) *AnnouncementService {
	if announcements == nil || bookings == nil {
		panic("nil dependency passed to NewAnnouncementService")
	}
	return &AnnouncementService{
		announcements: announcements,
		bookings:      bookings,
		notifier:      notifier,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func validTargets(targets []string) error {
	if len(targets) == 0 {
		return fmt.Errorf("%w: at least one target group is required", ErrValidation)
	}
	for _, t := range targets {
		switch t {
		case model.TargetAll, model.TargetActive, model.TargetPending, model.TargetPast:
		default:
			return fmt.Errorf("%w: unknown target group %q", ErrValidation, t)
		}
	}
	return nil
}

// Send records the announcement, resolves the recipient set across
// all requested groups with duplicates removed, and queues one
// message per phone. Per-recipient publish failures are logged and
// skipped; the stored recipient count reflects successful queues.
func (s *AnnouncementService) Send(ctx context.Context, message string, targets []string) (*model.Announcement, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}
	if err := validTargets(targets); err != nil {
		return nil, err
	}

	a := &model.Announcement{Message: message, Targets: targets}
	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}

	today := dateOnly(s.now())
	seen := make(map[string]struct{})
	var phones []string
	for _, t := range targets {
		ps, err := s.bookings.DistinctPhones(ctx, t, today)
		if err != nil {
			return nil, err
		}
		for _, p := range ps {
			p = strings.TrimSpace(p)
			if len(p) < minPhoneDigits {
				continue
			}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			phones = append(phones, p)
		}
	}

	sent := 0
	if s.notifier != nil {
		for _, p := range phones {
			if err := s.notifier.Broadcast(ctx, p, message); err != nil {
				log.Printf("announcement %d: queue for %s failed: %v", a.ID, p, err)
				continue
			}
			sent++
		}
	}
	if err := s.announcements.UpdateRecipientCount(ctx, a.ID, sent); err != nil {
		log.Printf("announcement %d: recipient count update failed: %v", a.ID, err)
	}
	a.RecipientCount = sent
	return a, nil
}

// History lists past announcements, newest first.
func (s *AnnouncementService) History(ctx context.Context) ([]model.Announcement, error) {
	return s.announcements.List(ctx)
}
