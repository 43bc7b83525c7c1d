package auto_schedule

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-OutreachService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-OutreachService/internal/service/calendar"
	"github.com/m04kA/SMC-OutreachService/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubRepo struct {
	settings *domain.OutreachSettings
	err      error
}

func (r *stubRepo) GetByUserID(_ context.Context, _ string) (*domain.OutreachSettings, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.settings == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return r.settings, nil
}

type recorder struct {
	scheduled map[string]int
	fallbacks int
}

func (r *recorder) AddScheduledLeads(priority string, count int) {
	if r.scheduled == nil {
		r.scheduled = map[string]int{}
	}
	r.scheduled[priority] += count
}

func (r *recorder) IncSlotFallback() { r.fallbacks++ }

// март 2024: 1 - пятница, 3 - воскресенье, 4 - понедельник
func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.March, day, hour, minute, 0, 0, time.UTC)
}

func leads(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("lead-%d", i)
	}
	return ids
}

func newUseCase(repo SettingsRepository, now time.Time) (*UseCase, *recorder) {
	rec := &recorder{}
	uc := NewUseCase(repo, 2*time.Minute, time.UTC, rec, logger.Nop())
	uc.timeProvider = fixedTime{now: now}
	return uc, rec
}

func newCalendar(t *testing.T, settings *domain.OutreachSettings) *calendar.Provider {
	t.Helper()
	cal, err := calendar.NewProvider(settings, time.UTC)
	require.NoError(t, err)
	return cal
}

func TestExecute_ImmediateSharesOneInstant(t *testing.T) {
	uc, rec := newUseCase(&stubRepo{}, at(4, 10, 0))

	resp, err := uc.Execute(context.Background(), &Request{UserID: "u", LeadIDs: leads(25), Priority: domain.PriorityImmediate})
	require.NoError(t, err)

	times := resp.Times()
	require.Len(t, times, 25)
	for _, ts := range times {
		assert.Equal(t, times[0], ts)
	}
	assert.Equal(t, at(4, 10, 0), times[0])
	assert.Equal(t, 25, rec.scheduled["immediate"])
}

func TestExecute_NormalSpacesLeads(t *testing.T) {
	uc, _ := newUseCase(&stubRepo{}, at(4, 10, 0))

	resp, err := uc.Execute(context.Background(), &Request{UserID: "u", LeadIDs: leads(4), Priority: domain.PriorityNormal})
	require.NoError(t, err)

	assert.Equal(t, []time.Time{at(4, 10, 0), at(4, 10, 2), at(4, 10, 4), at(4, 10, 6)}, resp.Times())
	for i, slot := range resp.Slots {
		assert.Equal(t, fmt.Sprintf("lead-%d", i), slot.LeadID)
	}
	assert.False(t, resp.FallbackUsed)
}

func TestExecute_FridayStartsOnSunday(t *testing.T) {
	uc, _ := newUseCase(&stubRepo{}, at(1, 10, 0))

	resp, err := uc.Execute(context.Background(), &Request{UserID: "u", LeadIDs: leads(2), Priority: domain.PriorityHigh})
	require.NoError(t, err)

	assert.Equal(t, []time.Time{at(3, 9, 0), at(3, 9, 2)}, resp.Times())
}

func TestExecute_NonDecreasingAcrossDays(t *testing.T) {
	// четверг 16:00, пакет переходит через выходные
	uc, _ := newUseCase(&stubRepo{}, at(7, 16, 0))

	resp, err := uc.Execute(context.Background(), &Request{UserID: "u", LeadIDs: leads(400), Priority: domain.PriorityLow})
	require.NoError(t, err)

	times := resp.Times()
	require.Len(t, times, 400)

	cal := newCalendar(t, domain.DefaultOutreachSettings("u"))
	for i, ts := range times {
		assert.True(t, cal.IsWithinBusinessHours(ts).Allowed, "slot %d at %s", i, ts)
		if i == 0 {
			continue
		}
		prev := times[i-1]
		assert.False(t, ts.Before(prev), "slot %d goes backwards", i)
		if prev.YearDay() == ts.YearDay() {
			assert.GreaterOrEqual(t, ts.Sub(prev), 2*time.Minute)
		}
	}
	// 16:00-17:00 четверга вмещает 31 лид, следующий переходит на воскресенье
	assert.Equal(t, at(7, 17, 0), times[30])
	assert.Equal(t, at(10, 9, 0), times[31])
}

func TestExecute_EmptyBatch(t *testing.T) {
	uc, rec := newUseCase(&stubRepo{}, at(4, 10, 0))

	resp, err := uc.Execute(context.Background(), &Request{UserID: "u", Priority: domain.PriorityNormal})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, 0, rec.scheduled["normal"])
}

func TestExecute_FullyClosedWeekUsesFallback(t *testing.T) {
	closed := domain.DefaultOutreachSettings("u")
	closed.BusinessHours = domain.BusinessHours{}
	uc, rec := newUseCase(&stubRepo{settings: closed}, at(4, 10, 0))

	resp, err := uc.Execute(context.Background(), &Request{UserID: "u", LeadIDs: leads(3), Priority: domain.PriorityNormal})
	require.NoError(t, err)

	assert.True(t, resp.FallbackUsed)
	assert.Equal(t, 1, rec.fallbacks)
	assert.Equal(t, []time.Time{at(5, 9, 0), at(6, 9, 0), at(7, 9, 0)}, resp.Times())
}

func TestExecute_Errors(t *testing.T) {
	malformed := domain.DefaultOutreachSettings("u")
	malformed.BusinessHours[time.Sunday] = domain.DayWindow{Enabled: true, End: "17:00"}

	tests := map[string]struct {
		repo    *stubRepo
		req     *Request
		wantErr error
	}{
		"unknown priority": {
			repo:    &stubRepo{},
			req:     &Request{UserID: "u", LeadIDs: leads(1), Priority: "urgent"},
			wantErr: ErrInvalidInput,
		},
		"empty lead id": {
			repo:    &stubRepo{},
			req:     &Request{UserID: "u", LeadIDs: []string{"a", ""}, Priority: domain.PriorityNormal},
			wantErr: ErrInvalidInput,
		},
		"repository failure": {
			repo:    &stubRepo{err: errors.New("timeout")},
			req:     &Request{UserID: "u", LeadIDs: leads(1), Priority: domain.PriorityNormal},
			wantErr: ErrInternal,
		},
		"malformed settings": {
			repo:    &stubRepo{settings: malformed},
			req:     &Request{UserID: "u", LeadIDs: leads(1), Priority: domain.PriorityNormal},
			wantErr: ErrInvalidSettings,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			uc, _ := newUseCase(tc.repo, at(4, 10, 0))

			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAssignSlots_RollsForwardPastClosing(t *testing.T) {
	cal := newCalendar(t, domain.DefaultOutreachSettings("u"))
	seed := calendar.SlotSearch{At: at(4, 16, 59)}

	slots, fallback := assignSlots(cal, seed, leads(3), domain.PriorityNormal, 2*time.Minute)

	require.Len(t, slots, 3)
	assert.False(t, fallback)
	assert.Equal(t, at(4, 16, 59), slots[0].ScheduledFor)
	assert.Equal(t, at(5, 9, 0), slots[1].ScheduledFor, "17:01 must roll to tuesday opening, not clamp to 17:00")
	assert.Equal(t, at(5, 9, 2), slots[2].ScheduledFor)
}

func TestAssignSlots_HolidayCheckedOnlyOnSearch(t *testing.T) {
	settings := domain.DefaultOutreachSettings("u")
	settings.CustomHolidays = []string{"2024-03-04", "2024-03-05"}
	seed := calendar.SlotSearch{At: at(4, 10, 0)}

	slots, _ := assignSlots(newCalendar(t, settings), seed, leads(2), domain.PriorityNormal, 2*time.Minute)
	assert.Equal(t, at(4, 10, 2), slots[1].ScheduledFor, "increment within the day is not holiday-checked")

	settings.StrictHolidays = true
	slots, _ = assignSlots(newCalendar(t, settings), seed, leads(2), domain.PriorityNormal, 2*time.Minute)
	assert.Equal(t, at(6, 9, 0), slots[1].ScheduledFor, "strict mode searches past both holidays")
}

func TestAssignSlots_ImmediateIgnoresWindow(t *testing.T) {
	cal := newCalendar(t, domain.DefaultOutreachSettings("u"))
	seed := calendar.SlotSearch{At: at(4, 16, 59)}

	slots, _ := assignSlots(cal, seed, leads(10), domain.PriorityImmediate, 2*time.Minute)

	for _, s := range slots {
		assert.Equal(t, at(4, 16, 59), s.ScheduledFor)
	}
}
