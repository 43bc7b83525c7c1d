package list_holidays

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	"github.com/m04kA/SMC-OutreachService/pkg/logger"
)

func list(t *testing.T, query string) (int, []domain.Holiday) {
	t.Helper()
	h := NewHandler(domain.BuiltinHolidays, logger.Nop())
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/holidays"+query, nil))

	var holidays []domain.Holiday
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &holidays))
	}
	return rec.Code, holidays
}

func TestHandle_All(t *testing.T) {
	status, holidays := list(t, "")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.BuiltinHolidays, holidays)
}

func TestHandle_FilterByType(t *testing.T) {
	status, holidays := list(t, "?type=national")

	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, holidays)
	for _, h := range holidays {
		assert.Equal(t, domain.HolidayNational, h.Type)
	}
	assert.Contains(t, holidays, domain.Holiday{Date: "2024-05-14", Name: "Independence Day", Type: domain.HolidayNational})
}

func TestHandle_InvalidType(t *testing.T) {
	status, _ := list(t, "?type=custom")
	assert.Equal(t, http.StatusBadRequest, status)
}
