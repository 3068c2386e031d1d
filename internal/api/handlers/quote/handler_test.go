package quote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
	quoteUC "github.com/vitrineapp/VA-BookingService/internal/usecase/quote"
)

type fakeUseCase struct {
	resp *quoteUC.Response
	err  error

	gotReq *quoteUC.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *quoteUC.Request) (*quoteUC.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_ReturnsBreakdown(t *testing.T) {
	uc := &fakeUseCase{
		resp: &quoteUC.Response{
			ServiceID: "lavage",
			SlotID:    "lavage/2026-09-05/10:00",
			Breakdown: domain.PricingBreakdown{Base: 5000, Addons: 0, Multiplier: 1.1, Total: 5500},
		},
	}
	handler := NewHandler(uc, nopLogger{})

	body := `{
		"serviceId": "lavage",
		"slotId": "lavage/2026-09-05/10:00",
		"vehicleDetails": {"brand": "Renault", "model": "Clio"},
		"activeConditions": ["weekend"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5500), resp.PricingBreakdown.Total)
	assert.InDelta(t, 1.1, resp.PricingBreakdown.Multipliers, 1e-9)

	// The detail payload made it into the use case request.
	require.NotNil(t, uc.gotReq)
	require.NotNil(t, uc.gotReq.Detail)
	assert.Equal(t, domain.DetailVehicle, uc.gotReq.Detail.Kind)
	assert.Equal(t, []string{"weekend"}, uc.gotReq.ActiveConditions)
}

func TestHandle_MapsUseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot conflict", quoteUC.ErrSlotUnavailable, http.StatusConflict},
		{"unknown service", quoteUC.ErrServiceNotFound, http.StatusNotFound},
		{"unknown slot", quoteUC.ErrUnknownSlot, http.StatusNotFound},
		{"no booking flow", quoteUC.ErrBookingNotSupported, http.StatusBadRequest},
		{"detail mismatch", quoteUC.ErrDetailMismatch, http.StatusBadRequest},
		{"internal", quoteUC.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			body := `{"serviceId": "lavage", "slotId": "lavage/2026-09-05/10:00"}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_RejectsMalformedBody(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"unknown field", `{"serviceId": "lavage", "surprise": true}`},
		{"both details", `{
			"serviceId": "restaurant",
			"slotId": "restaurant/2026-09-05/12:00",
			"vehicleDetails": {"brand": "Renault"},
			"tablePreferences": {"capacity": 4}
		}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
