package service

import (
	"context"
	"fmt"
	"time"

	"github.com/studyspot/seat-booking/internal/model"
)

// defaultDailyRate applies when neither the room nor a branch
// pricing rule carries a rate.
const defaultDailyRate int64 = 50

// Quote is a priced booking window.
type Quote struct {
	SlotID    *string
	StartDate time.Time
	EndDate   time.Time
	Amount    int64
}

// PricingService computes booking amounts. A slot fixes the
// duration (end = start + duration days) and the amount is the
// daily rate times the slot's day count; an explicit range charges
// per inclusive calendar day. The daily rate resolves through the
// room's own rate, then the branch rule for the room's AC class,
// then the slot's listed price, then the default.
type PricingService struct {
	slots SlotStore
	rules PricingStore
}

func NewPricingService(slots SlotStore, rules PricingStore) *PricingService {
	if slots == nil || rules == nil {
		panic("nil dependency passed to NewPricingService")
	}
	return &PricingService{slots: slots, rules: rules}
}

// Quote prices a window on the given room. When slotID is set the
// end date is derived from the slot and the passed end is ignored.
func (s *PricingService) Quote(ctx context.Context, branchID uint64, room *model.Room, slotID string, start, end time.Time) (*Quote, error) {
	start = dateOnly(start)
	if slotID != "" {
		slot, err := s.slots.GetByID(ctx, slotID)
		if err != nil {
			return nil, err
		}
		rate, err := s.resolveRate(ctx, branchID, room, slot.Price)
		if err != nil {
			return nil, err
		}
		id := slot.ID
		return &Quote{
			SlotID:    &id,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, slot.DurationDays),
			Amount:    int64(slot.DurationDays) * rate,
		}, nil
	}

	end = dateOnly(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", ErrValidation)
	}
	rate, err := s.resolveRate(ctx, branchID, room, 0)
	if err != nil {
		return nil, err
	}
	return &Quote{
		StartDate: start,
		EndDate:   end,
		Amount:    int64(daysInclusive(start, end)) * rate,
	}, nil
}

// ListActiveSlots returns the bookable slot tiers.
func (s *PricingService) ListActiveSlots(ctx context.Context) ([]model.Slot, error) {
	return s.slots.ListActive(ctx)
}

// resolveRate walks the fallback chain: room rate, branch rule for
// the room's AC class, slot price, default.
func (s *PricingService) resolveRate(ctx context.Context, branchID uint64, room *model.Room, slotPrice int64) (int64, error) {
	if room.PriceDaily > 0 {
		return room.PriceDaily, nil
	}
	rule, err := s.rules.Get(ctx, branchID, room.IsAC)
	if err != nil {
		return 0, err
	}
	if rule != nil && rule.DailyRate > 0 {
		return rule.DailyRate, nil
	}
	if slotPrice > 0 {
		return slotPrice, nil
	}
	return defaultDailyRate, nil
}

// daysInclusive counts calendar days from start to end, both ends
// included. Inputs must already be date-truncated.
func daysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
