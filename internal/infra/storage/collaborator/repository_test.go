package collaborator

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT id, business_id, name, active, created_at, updated_at FROM collaborators WHERE id = $1")
	mock.ExpectQuery(query).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "business_id", "name", "active", "created_at", "updated_at"}).
			AddRow(int64(7), int64(1), "Anna", true, created, nil))
	mock.ExpectQuery(query).WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "business_id", "name", "active", "created_at", "updated_at"}))

	repo := NewRepository(db)

	got, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &domain.Collaborator{ID: 7, BusinessID: 1, Name: "Anna", Active: true, CreatedAt: created}, got)

	_, err = repo.GetByID(context.Background(), 8)
	assert.ErrorIs(t, err, ErrCollaboratorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM collaborator_schedules WHERE collaborator_id = $1 ORDER BY day_of_week ASC",
	)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"collaborator_id", "day_of_week", "enabled", "start_time", "end_time"}).
			AddRow(int64(7), int64(0), false, nil, nil).
			AddRow(int64(7), int64(1), true, "09:00:00", "18:00:00"))

	week, err := NewRepository(db).GetSchedule(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, week, 2)

	assert.False(t, week[0].Enabled)
	assert.Nil(t, week[0].StartTime)
	assert.Equal(t, domain.Monday, week[1].DayOfWeek)
	assert.Equal(t, types.TimeString("09:00"), *week[1].StartTime)
	assert.Equal(t, types.TimeString("18:00"), *week[1].EndTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplaceSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start, end := types.TimeString("10:00"), types.TimeString("19:00")

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM collaborator_schedules WHERE collaborator_id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO collaborator_schedules (collaborator_id,day_of_week,enabled,start_time,end_time) VALUES ($1,$2,$3,$4,$5)",
	)).
		WithArgs(int64(7), int64(2), true, "10:00", "19:00").
		WillReturnResult(sqlmock.NewResult(0, 1))

	week := []domain.CollaboratorScheduleDay{
		{DayOfWeek: domain.Tuesday, Enabled: true, StartTime: &start, EndTime: &end},
	}
	require.NoError(t, NewRepository(db).ReplaceSchedule(context.Background(), 7, week))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplaceSchedule_EmptyWeekOnlyDeletes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM collaborator_schedules").WillReturnResult(sqlmock.NewResult(0, 7))

	require.NoError(t, NewRepository(db).ReplaceSchedule(context.Background(), 7, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}
