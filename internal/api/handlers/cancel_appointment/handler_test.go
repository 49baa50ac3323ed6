package cancel_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type fakeService struct {
	err    error
	gotID  int64
	gotReq *models.CancelAppointmentRequest
}

func (f *fakeService) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	f.gotID = id
	f.gotReq = req
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, payload string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/appointments/{appointmentId}/cancel", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	var req *http.Request
	if payload == "" {
		req = httptest.NewRequest(http.MethodPatch, "/appointments/15/cancel", nil)
	} else {
		req = httptest.NewRequest(http.MethodPatch, "/appointments/15/cancel", strings.NewReader(payload))
	}
	req.Header.Set(middleware.UserIDHeader, "42")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_WithReason(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, `{"cancellationReason":"sick"}`)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(15), svc.gotID)
	assert.Equal(t, int64(42), svc.gotReq.UserID)
	require.NotNil(t, svc.gotReq.CancellationReason)
	assert.Equal(t, "sick", *svc.gotReq.CancellationReason)
}

func TestHandler_EmptyBody(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, svc.gotReq.CancellationReason)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: appointments.ErrAppointmentNotFound, wantStatus: http.StatusNotFound},
		{name: "forbidden", err: appointments.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "already cancelled", err: appointments.ErrCannotCancel, wantStatus: http.StatusBadRequest},
		{name: "reason too long", err: appointments.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: appointments.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
