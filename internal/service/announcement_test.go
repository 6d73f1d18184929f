package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/studyspot/seat-booking/internal/model"
)

func newAnnouncementFixture() (*AnnouncementService, *mockAnnouncementStore, *mockBookingStore, *mockNotifier) {
	announcements := &mockAnnouncementStore{}
	bookings := &mockBookingStore{}
	notifier := &mockNotifier{}
	svc := NewAnnouncementService(announcements, bookings, notifier)
	return svc, announcements, bookings, notifier
}

func TestSendDeduplicatesAcrossTargets(t *testing.T) {
	svc, announcements, bookings, notifier := newAnnouncementFixture()

	announcements.On("Create", mock.Anything, mock.AnythingOfType("*model.Announcement")).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Announcement).ID = 7 }).
		Return(nil)
	bookings.On("DistinctPhones", mock.Anything, model.TargetActive, mock.Anything).
		Return([]string{"9876543210", "9123456789"}, nil)
	bookings.On("DistinctPhones", mock.Anything, model.TargetPending, mock.Anything).
		Return([]string{"9123456789", "9000000001"}, nil)
	notifier.On("Broadcast", mock.Anything, mock.Anything, "open late today").Return(nil)
	announcements.On("UpdateRecipientCount", mock.Anything, uint64(7), 3).Return(nil)

	a, err := svc.Send(context.Background(), "open late today", []string{model.TargetActive, model.TargetPending})
	require.NoError(t, err)
	assert.Equal(t, 3, a.RecipientCount)
	notifier.AssertNumberOfCalls(t, "Broadcast", 3)
}

func TestSendFiltersShortPhones(t *testing.T) {
	svc, announcements, bookings, notifier := newAnnouncementFixture()

	announcements.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Announcement).ID = 8 }).
		Return(nil)
	bookings.On("DistinctPhones", mock.Anything, model.TargetAll, mock.Anything).
		Return([]string{"9876543210", "12345", ""}, nil)
	notifier.On("Broadcast", mock.Anything, "9876543210", "hi").Return(nil)
	announcements.On("UpdateRecipientCount", mock.Anything, uint64(8), 1).Return(nil)

	a, err := svc.Send(context.Background(), "hi", []string{model.TargetAll})
	require.NoError(t, err)
	assert.Equal(t, 1, a.RecipientCount)
	notifier.AssertNumberOfCalls(t, "Broadcast", 1)
}

func TestSendCountsOnlySuccessfulQueues(t *testing.T) {
	svc, announcements, bookings, notifier := newAnnouncementFixture()

	announcements.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Announcement).ID = 9 }).
		Return(nil)
	bookings.On("DistinctPhones", mock.Anything, model.TargetAll, mock.Anything).
		Return([]string{"9876543210", "9123456789"}, nil)
	notifier.On("Broadcast", mock.Anything, "9876543210", "hi").Return(nil)
	notifier.On("Broadcast", mock.Anything, "9123456789", "hi").
		Return(errors.New("broker down"))
	announcements.On("UpdateRecipientCount", mock.Anything, uint64(9), 1).Return(nil)

	a, err := svc.Send(context.Background(), "hi", []string{model.TargetAll})
	require.NoError(t, err)
	assert.Equal(t, 1, a.RecipientCount)
}

func TestSendRejectsUnknownTarget(t *testing.T) {
	svc, announcements, _, _ := newAnnouncementFixture()

	_, err := svc.Send(context.Background(), "hi", []string{"everyone"})
	assert.ErrorIs(t, err, ErrValidation)
	announcements.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendRequiresMessage(t *testing.T) {
	svc, _, _, _ := newAnnouncementFixture()
	_, err := svc.Send(context.Background(), "   ", []string{model.TargetAll})
	assert.ErrorIs(t, err, ErrValidation)
}
