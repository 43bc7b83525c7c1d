package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-OutreachService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-OutreachService/internal/service/settings/models"
	"github.com/m04kA/SMC-OutreachService/pkg/logger"
	"github.com/m04kA/SMC-OutreachService/pkg/ptr"
)

type fakeRepo struct {
	stored    map[string]*domain.OutreachSettings
	getErr    error
	upsertErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stored: map[string]*domain.OutreachSettings{}}
}

func (r *fakeRepo) GetByUserID(_ context.Context, userID string) (*domain.OutreachSettings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	s, ok := r.stored[userID]
	if !ok {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) Upsert(_ context.Context, s *domain.OutreachSettings) (*domain.OutreachSettings, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	now := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	cp := *s
	r.stored[s.UserID] = &cp
	return s, nil
}

func (r *fakeRepo) Delete(_ context.Context, userID string) error {
	if _, ok := r.stored[userID]; !ok {
		return settingsRepo.ErrSettingsNotFound
	}
	delete(r.stored, userID)
	return nil
}

func TestService_Get_DefaultsWhenMissing(t *testing.T) {
	svc := NewService(newFakeRepo(), logger.Nop())

	resp, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	assert.True(t, resp.ExcludeHolidays)
	assert.Equal(t, domain.DefaultBusinessHours(), resp.BusinessHours)
	assert.Empty(t, resp.CustomHolidays)
	assert.Nil(t, resp.CreatedAt)
}

func TestService_Get_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("connection refused")
	svc := NewService(repo, logger.Nop())

	_, err := svc.Get(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Update_PartialAndNormalized(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, logger.Nop())

	holidays := []string{"2024-12-25", "2024-01-01", "2024-12-25"}
	resp, err := svc.Update(context.Background(), "user-1", &models.UpdateSettingsRequest{
		CustomHolidays: &holidays,
		StrictHolidays: ptr.Ptr(true),
	})
	require.NoError(t, err)

	assert.False(t, resp.IsDefault)
	assert.True(t, resp.StrictHolidays)
	assert.True(t, resp.ExcludeHolidays, "untouched fields keep defaults")
	assert.Equal(t, []string{"2024-01-01", "2024-12-25"}, resp.CustomHolidays)
	assert.Equal(t, domain.DefaultBusinessHours(), repo.stored["user-1"].BusinessHours)
}

func TestService_Update_InvalidInput(t *testing.T) {
	broken := domain.DefaultBusinessHours()
	broken[time.Monday] = domain.DayWindow{Enabled: true, Start: "17:00", End: "09:00"}
	badDates := []string{"2024/12/25"}

	tests := map[string]*models.UpdateSettingsRequest{
		"start after end":  {BusinessHours: &broken},
		"bad holiday date": {CustomHolidays: &badDates},
	}

	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewService(repo, logger.Nop())

			_, err := svc.Update(context.Background(), "user-1", req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.stored)
		})
	}
}

func TestService_Update_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.upsertErr = errors.New("deadlock")
	svc := NewService(repo, logger.Nop())

	_, err := svc.Update(context.Background(), "user-1", &models.UpdateSettingsRequest{ExcludeHolidays: ptr.Ptr(false)})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Reset(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, logger.Nop())

	assert.ErrorIs(t, svc.Reset(context.Background(), "user-1"), ErrSettingsNotFound)

	_, err := svc.Update(context.Background(), "user-1", &models.UpdateSettingsRequest{ExcludeHolidays: ptr.Ptr(false)})
	require.NoError(t, err)

	require.NoError(t, svc.Reset(context.Background(), "user-1"))
	assert.Empty(t, repo.stored)
}
