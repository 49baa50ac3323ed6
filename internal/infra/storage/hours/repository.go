package hours

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

// Repository репозиторий часов работы салонов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория часов работы
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusiness возвращает часы работы салона по дням недели (воскресенье первым)
// Дни без записи в таблице в результат не попадают
func (r *Repository) GetByBusiness(ctx context.Context, businessID int64) ([]domain.OperatingHoursDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"business_id",
		"day_of_week",
		"is_open",
		"start_time",
		"end_time",
		"breaks",
	).
		From("operating_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	week := make([]domain.OperatingHoursDay, 0, len(domain.AllWeekdays))
	for rows.Next() {
		var day domain.OperatingHoursDay
		var breaks breaksColumn

		err := rows.Scan(
			&day.BusinessID,
			&day.DayOfWeek,
			&day.IsOpen,
			&day.StartTime,
			&day.EndTime,
			&breaks,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBusiness - scan row: %v", ErrScanRow, err)
		}

		day.Breaks = []domain.Break(breaks)
		week = append(week, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - rows error: %v", ErrScanRow, err)
	}

	return week, nil
}

// ReplaceWeek заменяет часы работы салона целиком
// Должен вызываться внутри транзакции: удаление и вставка выполняются отдельными запросами
func (r *Repository) ReplaceWeek(ctx context.Context, businessID int64, week []domain.OperatingHoursDay) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("operating_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute delete: %v", ErrExecQuery, err)
	}

	if len(week) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("operating_hours").
		Columns(
			"business_id",
			"day_of_week",
			"is_open",
			"start_time",
			"end_time",
			"breaks",
		)

	for _, day := range week {
		insertBuilder = insertBuilder.Values(
			businessID,
			day.DayOfWeek.Index(),
			day.IsOpen,
			day.StartTime,
			day.EndTime,
			breaksColumn(day.Breaks),
		)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetBusinessOwner возвращает ID владельца салона
func (r *Repository) GetBusinessOwner(ctx context.Context, businessID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("owner_id").
		From("businesses").
		Where(squirrel.Eq{"id": businessID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetBusinessOwner - build select query: %v", ErrBuildQuery, err)
	}

	var ownerID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrBusinessNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetBusinessOwner - scan owner_id: %v", ErrScanRow, err)
	}

	return ownerID, nil
}
