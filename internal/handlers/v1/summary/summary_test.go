package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sznajderm/budget-manager-sub002/internal/auth"
	"github.com/sznajderm/budget-manager-sub002/internal/service"
)

type mockSummaryService struct {
	mock.Mock
}

func (m *mockSummaryService) Summarize(ctx context.Context, userID uuid.UUID, txType service.TransactionType, start, end time.Time) (service.Summary, error) {
	args := m.Called(ctx, userID, txType, start, end)
	return args.Get(0).(service.Summary), args.Error(1)
}

func newAuthedAPI(t *testing.T, userID uuid.UUID, svc summarizer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithUserID(ctx.Context(), userID)))
	})
	NewSummaryHandler(svc).Register(api)
	return api
}

func TestHTTP_Summary_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30).Add(24*time.Hour - time.Nanosecond)

	mockSvc := new(mockSummaryService)
	mockSvc.On("Summarize", mock.Anything, userID, service.TypeExpense, start, end).
		Return(service.Summary{
			TotalCents:  175050,
			Count:       12,
			PeriodStart: start,
			PeriodEnd:   end,
		}, nil)

	api := newAuthedAPI(t, userID, mockSvc)

	resp := api.Get("/v1/summary?transaction_type=expense&start_date=2025-01-01&end_date=2025-01-31")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(175050), body.TotalCents)
	assert.Equal(t, 12, body.TransactionCount)
	assert.Equal(t, "2025-01-01", body.PeriodStart)
	assert.Equal(t, "2025-01-31", body.PeriodEnd)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Summary_InvalidDateFormat(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockSummaryService)

	api := newAuthedAPI(t, userID, mockSvc)

	resp := api.Get("/v1/summary?transaction_type=expense&start_date=01/01/2025&end_date=2025-01-31")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Summarize")
}

func TestHTTP_Summary_StartAfterEnd(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockSummaryService)

	api := newAuthedAPI(t, userID, mockSvc)

	resp := api.Get("/v1/summary?transaction_type=income&start_date=2025-02-01&end_date=2025-01-01")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Summarize")
}

func TestHTTP_Summary_InvalidType(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockSummaryService)

	api := newAuthedAPI(t, userID, mockSvc)

	// Huma's enum validation rejects the value before the handler runs.
	resp := api.Get("/v1/summary?transaction_type=transfer&start_date=2025-01-01&end_date=2025-01-31")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Summarize")
}

func TestHTTP_Summary_ServiceError(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockSummaryService)
	mockSvc.On("Summarize", mock.Anything, userID, mock.Anything, mock.Anything, mock.Anything).
		Return(service.Summary{}, errors.New("database unavailable"))

	api := newAuthedAPI(t, userID, mockSvc)

	resp := api.Get("/v1/summary?transaction_type=expense&start_date=2025-01-01&end_date=2025-01-31")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Summary_Unauthenticated(t *testing.T) {
	mockSvc := new(mockSummaryService)

	_, api := humatest.New(t)
	NewSummaryHandler(mockSvc).Register(api)

	resp := api.Get("/v1/summary?transaction_type=expense&start_date=2025-01-01&end_date=2025-01-31")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "Summarize")
}
