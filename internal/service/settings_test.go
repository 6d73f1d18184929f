package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/studyspot/seat-booking/internal/model"
	"github.com/studyspot/seat-booking/internal/repository"
)

func TestSettingsGetCachesWithinTTL(t *testing.T) {
	store := &mockSettingStore{}
	svc := NewSettingsService(store, nil)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	store.On("Get", mock.Anything, model.SettingUPIID).Return("biz@upi", nil).Once()

	v, err := svc.Get(context.Background(), model.SettingUPIID)
	require.NoError(t, err)
	assert.Equal(t, "biz@upi", v)

	// Second read inside the TTL never touches the store.
	v, err = svc.Get(context.Background(), model.SettingUPIID)
	require.NoError(t, err)
	assert.Equal(t, "biz@upi", v)
	store.AssertNumberOfCalls(t, "Get", 1)
}

func TestSettingsGetRefetchesAfterTTL(t *testing.T) {
	store := &mockSettingStore{}
	svc := NewSettingsService(store, nil)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	store.On("Get", mock.Anything, model.SettingUPIID).Return("old@upi", nil).Once()
	_, err := svc.Get(context.Background(), model.SettingUPIID)
	require.NoError(t, err)

	now = now.Add(settingTTL + time.Second)
	store.On("Get", mock.Anything, model.SettingUPIID).Return("new@upi", nil).Once()

	v, err := svc.Get(context.Background(), model.SettingUPIID)
	require.NoError(t, err)
	assert.Equal(t, "new@upi", v)
	store.AssertNumberOfCalls(t, "Get", 2)
}

func TestSettingsSetInvalidatesCache(t *testing.T) {
	store := &mockSettingStore{}
	svc := NewSettingsService(store, nil)

	store.On("Get", mock.Anything, "upi_id").Return("old@upi", nil).Once()
	_, err := svc.Get(context.Background(), "upi_id")
	require.NoError(t, err)

	store.On("Upsert", mock.Anything, "upi_id", "new@upi").Return(nil)
	require.NoError(t, svc.Set(context.Background(), "upi_id", "new@upi"))

	store.On("Get", mock.Anything, "upi_id").Return("new@upi", nil).Once()
	v, err := svc.Get(context.Background(), "upi_id")
	require.NoError(t, err)
	assert.Equal(t, "new@upi", v)
}

func TestMaintenanceModeDefaultsToOpen(t *testing.T) {
	store := &mockSettingStore{}
	svc := NewSettingsService(store, nil)

	store.On("Get", mock.Anything, model.SettingMaintenanceMode).
		Return("", repository.ErrSettingNotFound).Once()
	assert.False(t, svc.MaintenanceMode(context.Background()))

	store.On("Get", mock.Anything, model.SettingMaintenanceMode).
		Return("", errors.New("db down")).Once()
	assert.False(t, svc.MaintenanceMode(context.Background()))
}

func TestMaintenanceModeOnWhenTrue(t *testing.T) {
	store := &mockSettingStore{}
	svc := NewSettingsService(store, nil)

	store.On("Get", mock.Anything, model.SettingMaintenanceMode).Return("true", nil)
	assert.True(t, svc.MaintenanceMode(context.Background()))
}
