package appointment

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var appointmentDate = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func appointmentRows() *sqlmock.Rows {
	return sqlmock.NewRows(appointmentColumns)
}

func addAppointment(rows *sqlmock.Rows, id int64, at string, status string) *sqlmock.Rows {
	now := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	return rows.AddRow(id, int64(1), int64(7), int64(42), "Haircut", appointmentDate, at, int64(60), status,
		"Ivan", nil, nil, nil, now, now)
}

func TestRepository_GetByCollaboratorAndDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM appointments WHERE collaborator_id = $1 AND appointment_date = $2 AND status <> ALL($3) ORDER BY appointment_time ASC",
	)).
		WithArgs(int64(7), "2024-01-15", sqlmock.AnyArg()).
		WillReturnRows(addAppointment(addAppointment(appointmentRows(), 1, "09:00:00", "scheduled"), 2, "11:30:00", "confirmed"))

	repo := NewRepository(db)
	got, err := repo.GetByCollaboratorAndDate(context.Background(), 7, appointmentDate, false)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, types.TimeString("09:00"), got[0].AppointmentTime)
	assert.Equal(t, types.TimeString("11:30"), got[1].AppointmentTime)
	assert.Equal(t, domain.StatusConfirmed, got[1].Status)
	assert.Equal(t, "Ivan", ptr.Deref(got[0].ClientName, ""))
	assert.Nil(t, got[0].Notes)
	assert.Nil(t, got[0].CancelledAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCollaboratorAndDate_LocksInsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY appointment_time ASC FOR UPDATE")).
		WillReturnRows(appointmentRows())
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)
	got, err := NewRepository(db).GetByCollaboratorAndDate(ctx, 7, appointmentDate, false)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCollaboratorAndDate_IncludeInactive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM appointments WHERE collaborator_id = $1 AND appointment_date = $2 ORDER BY appointment_time ASC",
	)).
		WithArgs(int64(7), "2024-01-15").
		WillReturnRows(addAppointment(appointmentRows(), 3, "10:00:00", "cancelled_by_client"))

	got, err := NewRepository(db).GetByCollaboratorAndDate(context.Background(), 7, appointmentDate, true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].IsActive())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(appointmentRows())

	_, err = NewRepository(db).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WithArgs(int64(1), int64(7), int64(42), "Haircut", "2024-01-15", "10:00", 60, "scheduled", "Ivan", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(15), created, created))

	appointment := &domain.Appointment{
		BusinessID:      1,
		CollaboratorID:  7,
		ClientID:        42,
		ServiceName:     "Haircut",
		AppointmentDate: appointmentDate,
		AppointmentTime: "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusScheduled,
		ClientName:      ptr.Ptr("Ivan"),
	}

	got, err := NewRepository(db).Create(context.Background(), appointment)
	require.NoError(t, err)
	assert.Equal(t, int64(15), got.ID)
	assert.Equal(t, created, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := regexp.QuoteMeta(
		"UPDATE appointments SET status = $1, cancellation_reason = $2, cancelled_at = NOW(), updated_at = NOW() WHERE id = $3",
	)
	mock.ExpectExec(query).
		WithArgs("cancelled_by_client", "sick", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).
		WithArgs("cancelled_by_business", nil, int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db)
	require.NoError(t, repo.Cancel(context.Background(), 5, domain.StatusCancelledByClient, ptr.Ptr("sick")))

	err = repo.Cancel(context.Background(), 6, domain.StatusCancelledByBusiness, nil)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
