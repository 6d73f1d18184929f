package service

import (
	"context"
	"fmt"
	"time"

	"github.com/studyspot/seat-booking/internal/model"
)

// HolidayService maintains the advisory holiday calendar shown to
// customers during date selection.
type HolidayService struct {
	holidays HolidayStore
	branches BranchStore
}

func NewHolidayService(holidays HolidayStore, branches BranchStore) *HolidayService {
	if holidays == nil || branches == nil {
		panic("nil dependency passed to NewHolidayService")
	}
	return &HolidayService{holidays: holidays, branches: branches}
}

// List returns all holidays ordered by date.
func (s *HolidayService) List(ctx context.Context) ([]model.Holiday, error) {
	return s.holidays.List(ctx)
}

// Create adds a holiday. A nil branchID applies it to every branch;
// a set one is verified to exist.
func (s *HolidayService) Create(ctx context.Context, date time.Time, branchID *uint64, reason string) (*model.Holiday, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if branchID != nil {
		if _, err := s.branches.GetByID(ctx, *branchID); err != nil {
			return nil, err
		}
	}
	h := &model.Holiday{Date: dateOnly(date), BranchID: branchID, Reason: reason}
	if err := s.holidays.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Delete removes a holiday by ID.
func (s *HolidayService) Delete(ctx context.Context, id uint64) error {
	return s.holidays.Delete(ctx, id)
}
