package auto_schedule

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OutreachService/internal/api/middleware"
	"github.com/m04kA/SMC-OutreachService/internal/domain"
	autoSchedule "github.com/m04kA/SMC-OutreachService/internal/usecase/auto_schedule"
	"github.com/m04kA/SMC-OutreachService/pkg/logger"
)

type fakeUseCase struct {
	got  *autoSchedule.Request
	resp *autoSchedule.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *autoSchedule.Request) (*autoSchedule.Response, error) {
	f.got = req
	return f.resp, f.err
}

func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/outreach/schedule", strings.NewReader(body))
	return req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
}

func TestHandle_ReturnsSlots(t *testing.T) {
	at := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &autoSchedule.Response{
		Slots: []autoSchedule.Slot{
			{LeadID: "a", ScheduledFor: at},
			{LeadID: "b", ScheduledFor: at.Add(2 * time.Minute)},
		},
	}}
	h := NewHandler(uc, logger.Nop())
	rec := httptest.NewRecorder()

	h.Handle(rec, newRequest(`{"leadIds":["a","b"]}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PriorityNormal, uc.got.Priority)
	assert.Equal(t, "user-1", uc.got.UserID)
	assert.JSONEq(t, `{
		"slots": [
			{"leadId": "a", "scheduledFor": "2024-03-04T09:00:00Z"},
			{"leadId": "b", "scheduledFor": "2024-03-04T09:02:00Z"}
		],
		"fallbackUsed": false
	}`, rec.Body.String())
}

func TestHandle_EmptyBatchEncodesEmptyArray(t *testing.T) {
	uc := &fakeUseCase{resp: &autoSchedule.Response{}}
	h := NewHandler(uc, logger.Nop())
	rec := httptest.NewRecorder()

	h.Handle(rec, newRequest(`{"leadIds":[],"priority":"immediate"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"slots":[],"fallbackUsed":false}`, rec.Body.String())
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := map[string]struct {
		err        error
		wantStatus int
	}{
		"invalid input":    {err: fmt.Errorf("%w: leadIds[0] is empty", autoSchedule.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		"invalid settings": {err: fmt.Errorf("%w: start after end", autoSchedule.ErrInvalidSettings), wantStatus: http.StatusUnprocessableEntity},
		"internal":         {err: fmt.Errorf("%w: db down", autoSchedule.ErrInternal), wantStatus: http.StatusInternalServerError},
		"unexpected":       {err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tc.err}, logger.Nop())
			rec := httptest.NewRecorder()

			h.Handle(rec, newRequest(`{"leadIds":["a"]}`))

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHandle_RejectsBeforeUseCase(t *testing.T) {
	for name, body := range map[string]string{
		"malformed json":   `[`,
		"unknown priority": `{"leadIds":["a"],"priority":"asap"}`,
	} {
		t.Run(name, func(t *testing.T) {
			uc := &fakeUseCase{}
			h := NewHandler(uc, logger.Nop())
			rec := httptest.NewRecorder()

			h.Handle(rec, newRequest(body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}
