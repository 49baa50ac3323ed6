package collaborator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий сотрудников и их расписаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Collaborator, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"name",
		"active",
		"created_at",
		"updated_at",
	).
		From("collaborators").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var collaborator domain.Collaborator
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&collaborator.ID,
		&collaborator.BusinessID,
		&collaborator.Name,
		&collaborator.Active,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCollaboratorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan collaborator: %v", ErrScanRow, err)
	}

	collaborator.CreatedAt = createdAt.Time
	collaborator.UpdatedAt = updatedAt.Time

	return &collaborator, nil
}

// GetSchedule возвращает недельное расписание сотрудника (воскресенье первым)
func (r *Repository) GetSchedule(ctx context.Context, collaboratorID int64) ([]domain.CollaboratorScheduleDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"collaborator_id",
		"day_of_week",
		"enabled",
		"start_time",
		"end_time",
	).
		From("collaborator_schedules").
		Where(squirrel.Eq{"collaborator_id": collaboratorID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	week := make([]domain.CollaboratorScheduleDay, 0, len(domain.AllWeekdays))
	for rows.Next() {
		var day domain.CollaboratorScheduleDay

		err := rows.Scan(
			&day.CollaboratorID,
			&day.DayOfWeek,
			&day.Enabled,
			&day.StartTime,
			&day.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetSchedule - scan row: %v", ErrScanRow, err)
		}

		week = append(week, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - rows error: %v", ErrScanRow, err)
	}

	return week, nil
}

// ReplaceSchedule заменяет недельное расписание сотрудника целиком
// Должен вызываться внутри транзакции
func (r *Repository) ReplaceSchedule(ctx context.Context, collaboratorID int64, week []domain.CollaboratorScheduleDay) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("collaborator_schedules").
		Where(squirrel.Eq{"collaborator_id": collaboratorID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - execute delete: %v", ErrExecQuery, err)
	}

	if len(week) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("collaborator_schedules").
		Columns(
			"collaborator_id",
			"day_of_week",
			"enabled",
			"start_time",
			"end_time",
		)

	for _, day := range week {
		insertBuilder = insertBuilder.Values(
			collaboratorID,
			day.DayOfWeek.Index(),
			day.Enabled,
			day.StartTime,
			day.EndTime,
		)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
