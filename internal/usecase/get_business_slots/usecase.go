package get_business_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/hours"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// UseCase use case получения слотов по часам работы салона
type UseCase struct {
	hours        HoursReader
	businessRepo BusinessRepository
	config       Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(hours HoursReader, businessRepo BusinessRepository, config Config, logger Logger) *UseCase {
	return &UseCase{
		hours:        hours,
		businessRepo: businessRepo,
		config:       config,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов салона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBusinessSlots: business=%d, date=%s, duration=%d",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.ServiceDurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBusinessSlots: validation failed: %v", err)
		return nil, err
	}

	duration := req.ServiceDurationMinutes
	if duration == 0 {
		duration = domain.DefaultBusinessServiceDurationMinutes
	}

	// 2. Проверка даты
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetBusinessSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем существование салона
	if _, err := uc.businessRepo.GetBusinessOwner(ctx, req.BusinessID); err != nil {
		if errors.Is(err, hoursRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetBusinessSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetBusinessSlots: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 4. Часы работы на день недели
	week, err := uc.hours.GetByBusiness(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetBusinessSlots: failed to get hours for business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}

	weekday := domain.WeekdayOf(req.Date)
	resp := &Response{
		BusinessID:             req.BusinessID,
		Date:                   req.Date,
		DayOfWeek:              weekday,
		ServiceDurationMinutes: duration,
	}

	day, ok := domain.FindOperatingHours(week, weekday)
	if !ok || !day.HasHours() {
		uc.logger.Info("GetBusinessSlots: business=%d is closed on %s", req.BusinessID, weekday)
		resp.Slots = []types.TimeString{}
		return resp, nil
	}
	resp.IsOpen = true

	// 5. Генерация слотов
	slots, err := availability.BusinessSlots(day, duration)
	if err != nil {
		uc.logger.Error("GetBusinessSlots: stored hours for business=%d are malformed: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	resp.Slots = dropTooSoon(slots, req.Date, now, uc.config.MinNoticeMinutes)

	uc.logger.Info("GetBusinessSlots: generated %d slots for business=%d, date=%s",
		len(resp.Slots), req.BusinessID, req.Date.Format(domain.DateFormat))

	return resp, nil
}
