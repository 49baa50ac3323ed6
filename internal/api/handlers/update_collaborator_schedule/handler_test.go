package update_collaborator_schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

type fakeService struct {
	err error
	got *models.UpdateScheduleRequest
}

func (f *fakeService) UpdateCollaboratorSchedule(ctx context.Context, collaboratorID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ScheduleResponse{CollaboratorID: collaboratorID, Days: []models.ScheduleDayDTO{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{"days":[{"dayOfWeek":"monday","enabled":true,"startTime":"09:00","endTime":"18:00"}]}`

func serve(svc *fakeService, payload string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/collaborators/{collaboratorId}/schedule", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/collaborators/7/schedule", strings.NewReader(payload))
	req.Header.Set(middleware.UserIDHeader, "100")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(100), svc.got.UserID)
	require.Len(t, svc.got.Days, 1)
	assert.Equal(t, "monday", svc.got.Days[0].DayOfWeek)
}

func TestHandler_ValidationMessageIsReturned(t *testing.T) {
	svc := &fakeService{err: &schedule.ValidationError{Message: "monday: start time must be before end time"}}

	rec := serve(svc, body)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "monday: start time must be before end time", resp.Error)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		err        error
		wantStatus int
	}{
		{name: "unknown field", payload: `{"days":[],"userId":5}`, wantStatus: http.StatusBadRequest},
		{name: "forbidden", payload: body, err: schedule.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "not found", payload: body, err: schedule.ErrCollaboratorNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid input", payload: body, err: schedule.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", payload: body, err: schedule.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.payload)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
