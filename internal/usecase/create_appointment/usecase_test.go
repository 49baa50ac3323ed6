package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	collaboratorRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/collaborator"
	"github.com/m04kA/SMC-SalonService/internal/integrations/clientservice"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeStore struct {
	collaborator *domain.Collaborator
	week         []domain.CollaboratorScheduleDay
	appointments []*domain.Appointment
	created      *domain.Appointment
	createErr    error
	txCalls      int
}

func (f *fakeStore) GetByID(ctx context.Context, id int64) (*domain.Collaborator, error) {
	if f.collaborator == nil || f.collaborator.ID != id {
		return nil, collaboratorRepo.ErrCollaboratorNotFound
	}
	return f.collaborator, nil
}

func (f *fakeStore) GetSchedule(ctx context.Context, id int64) ([]domain.CollaboratorScheduleDay, error) {
	return f.week, nil
}

func (f *fakeStore) GetByCollaboratorAndDate(ctx context.Context, id int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeStore) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *a
	created.ID = 100
	f.created = &created
	return &created, nil
}

func (f *fakeStore) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.txCalls++
	return fn(ctx)
}

type fakeClients struct {
	client *clientservice.Client
	err    error
}

func (f *fakeClients) GetClientWithGracefulDegradation(ctx context.Context, id int64) (*clientservice.Client, error) {
	return f.client, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// monday 2024-01-15
var monday = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func tsPtr(s string) *types.TimeString {
	t := types.TimeString(s)
	return &t
}

func newStore() *fakeStore {
	return &fakeStore{
		collaborator: &domain.Collaborator{ID: 7, BusinessID: 3, Name: "Anna", Active: true},
		week: []domain.CollaboratorScheduleDay{
			{CollaboratorID: 7, DayOfWeek: domain.Monday, Enabled: true, StartTime: tsPtr("09:00"), EndTime: tsPtr("18:00")},
		},
		appointments: []*domain.Appointment{
			{ID: 1, CollaboratorID: 7, AppointmentTime: "10:00", DurationMinutes: 60, Status: domain.StatusScheduled},
			{ID: 2, CollaboratorID: 7, AppointmentTime: "14:00", DurationMinutes: 60, Status: domain.StatusCancelledByClient},
		},
	}
}

func newUseCase(store *fakeStore, clients *fakeClients, now time.Time, cfg Config) *UseCase {
	uc := NewUseCase(store, store, clients, store, cfg, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		ClientID:       42,
		CollaboratorID: 7,
		ServiceName:    "Haircut",
		Date:           monday,
		Time:           "11:00",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	store := newStore()
	clients := &fakeClients{client: &clientservice.Client{ID: 42, Name: "Ivan"}}
	uc := newUseCase(store, clients, monday.AddDate(0, 0, -1), Config{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(3), resp.BusinessID)
	assert.Equal(t, types.TimeString("11:00"), resp.AppointmentTime)
	assert.Equal(t, domain.DefaultAppointmentDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	require.NotNil(t, resp.ClientName)
	assert.Equal(t, "Ivan", *resp.ClientName)
	assert.Equal(t, 1, store.txCalls)
}

func TestUseCase_Execute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	store := newStore()
	uc := newUseCase(store, &fakeClients{client: &clientservice.Client{ID: 42, Name: "Ivan"}}, monday.AddDate(0, 0, -1), Config{})

	req := validRequest()
	req.Time = "14:00"
	req.DurationMinutes = 30

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestUseCase_Execute_DegradedClientService(t *testing.T) {
	store := newStore()
	clients := &fakeClients{err: fmt.Errorf("%w: timeout", clientservice.ErrServiceDegraded)}
	uc := newUseCase(store, clients, monday.AddDate(0, 0, -1), Config{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Nil(t, resp.ClientName)
	require.NotNil(t, store.created)
}

func TestUseCase_Execute_Unavailable(t *testing.T) {
	store := newStore()
	uc := newUseCase(store, &fakeClients{client: &clientservice.Client{ID: 42}}, monday.AddDate(0, 0, -1), Config{})

	req := validRequest()
	req.Date = monday.AddDate(0, 0, 1)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrCollaboratorUnavailable)

	var unavailable *UnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, availability.ReasonDayOff, unavailable.Reason)
	assert.Nil(t, store.created)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	longName := make([]byte, domain.MaxServiceNameLength+1)
	for i := range longName {
		longName[i] = 'a'
	}

	tests := []struct {
		name    string
		mutate  func(req *Request, store *fakeStore, clients *fakeClients)
		now     time.Time
		cfg     Config
		wantErr error
	}{
		{
			name:    "missing service name",
			mutate:  func(req *Request, _ *fakeStore, _ *fakeClients) { req.ServiceName = " " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "service name too long",
			mutate:  func(req *Request, _ *fakeStore, _ *fakeClients) { req.ServiceName = string(longName) },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed time",
			mutate:  func(req *Request, _ *fakeStore, _ *fakeClients) { req.Time = "25:00" },
			wantErr: ErrInvalidInput,
		},
		{
			name: "duration too long",
			mutate: func(req *Request, _ *fakeStore, _ *fakeClients) {
				req.DurationMinutes = domain.MaxServiceDurationMinutes + 1
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "past date",
			mutate:  func(req *Request, _ *fakeStore, _ *fakeClients) { req.Date = monday.AddDate(0, 0, -2) },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "beyond horizon",
			mutate:  func(req *Request, _ *fakeStore, _ *fakeClients) { req.Date = monday.AddDate(0, 0, 7) },
			cfg:     Config{AdvanceBookingDays: 3},
			wantErr: ErrDateTooFarInFuture,
		},
		{
			name:    "too late today",
			mutate:  func(req *Request, _ *fakeStore, _ *fakeClients) {},
			now:     monday.Add(10*time.Hour + 45*time.Minute),
			cfg:     Config{MinNoticeMinutes: 30},
			wantErr: ErrTooLateToBook,
		},
		{
			name:    "client not found",
			mutate:  func(_ *Request, _ *fakeStore, c *fakeClients) { c.err = clientservice.ErrClientNotFound },
			wantErr: ErrClientNotFound,
		},
		{
			name:    "unknown collaborator",
			mutate:  func(req *Request, _ *fakeStore, _ *fakeClients) { req.CollaboratorID = 8 },
			wantErr: ErrCollaboratorNotFound,
		},
		{
			name:    "inactive collaborator",
			mutate:  func(_ *Request, s *fakeStore, _ *fakeClients) { s.collaborator.Active = false },
			wantErr: ErrCollaboratorUnavailable,
		},
		{
			name:    "overlaps existing appointment",
			mutate:  func(req *Request, _ *fakeStore, _ *fakeClients) { req.Time = "09:30" },
			wantErr: ErrSlotNotAvailable,
		},
		{
			name:    "insert failure",
			mutate:  func(_ *Request, s *fakeStore, _ *fakeClients) { s.createErr = errors.New("db down") },
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			clients := &fakeClients{client: &clientservice.Client{ID: 42, Name: "Ivan"}}
			req := validRequest()
			tt.mutate(req, store, clients)

			now := tt.now
			if now.IsZero() {
				now = monday.AddDate(0, 0, -1)
			}

			_, err := newUseCase(store, clients, now, tt.cfg).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, store.created)
		})
	}
}

func TestUseCase_Execute_TransactionFailure(t *testing.T) {
	store := newStore()
	uc := NewUseCase(store, store, &fakeClients{client: &clientservice.Client{ID: 42}}, failingTx{}, Config{}, nopLogger{})
	uc.timeProvider = fixedTime{now: monday.AddDate(0, 0, -1)}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

type failingTx struct{}

func (failingTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return errors.New("could not serialize access")
}
