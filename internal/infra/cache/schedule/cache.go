package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	kindHours    = "operating_hours"
	kindSchedule = "collaborator_schedule"

	keyPrefix = "salon"
)

// Cache read-through кэш недельных расписаний поверх репозиториев
//
// Ошибки Redis не возвращаются вызывающему: они логируются и чтение идёт в репозиторий.
// При client == nil кэш выключен и все вызовы уходят напрямую в репозитории.
type Cache struct {
	client        redis.UniversalClient
	ttl           time.Duration
	hours         HoursRepository
	collaborators ScheduleRepository
	metrics       MetricsRecorder
	logger        Logger
}

// NewCache создает кэш расписаний
func NewCache(
	client redis.UniversalClient,
	ttl time.Duration,
	hours HoursRepository,
	collaborators ScheduleRepository,
	metrics MetricsRecorder,
	logger Logger,
) *Cache {
	return &Cache{
		client:        client,
		ttl:           ttl,
		hours:         hours,
		collaborators: collaborators,
		metrics:       metrics,
		logger:        logger,
	}
}

// GetByBusiness возвращает часы работы салона
func (c *Cache) GetByBusiness(ctx context.Context, businessID int64) ([]domain.OperatingHoursDay, error) {
	key := hoursKey(businessID)

	var week []domain.OperatingHoursDay
	if c.load(ctx, kindHours, key, &week) {
		return week, nil
	}

	week, err := c.hours.GetByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, week)
	return week, nil
}

// GetSchedule возвращает недельное расписание сотрудника
func (c *Cache) GetSchedule(ctx context.Context, collaboratorID int64) ([]domain.CollaboratorScheduleDay, error) {
	key := scheduleKey(collaboratorID)

	var week []domain.CollaboratorScheduleDay
	if c.load(ctx, kindSchedule, key, &week) {
		return week, nil
	}

	week, err := c.collaborators.GetSchedule(ctx, collaboratorID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, week)
	return week, nil
}

// InvalidateBusiness сбрасывает часы работы салона
func (c *Cache) InvalidateBusiness(ctx context.Context, businessID int64) {
	c.invalidate(ctx, hoursKey(businessID))
}

// InvalidateCollaborator сбрасывает расписание сотрудника
func (c *Cache) InvalidateCollaborator(ctx context.Context, collaboratorID int64) {
	c.invalidate(ctx, scheduleKey(collaboratorID))
}

func (c *Cache) load(ctx context.Context, kind, key string, dest interface{}) bool {
	if c.client == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.observe(kind, false)
		return false
	}
	if err != nil {
		c.logger.Warn("schedule cache: get %s: %v", key, err)
		c.observe(kind, false)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("schedule cache: decode %s: %v", key, err)
		c.invalidate(ctx, key)
		c.observe(kind, false)
		return false
	}

	c.observe(kind, true)
	return true
}

func (c *Cache) store(ctx context.Context, key string, value interface{}) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Error("schedule cache: encode %s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("schedule cache: set %s: %v", key, err)
	}
}

func (c *Cache) invalidate(ctx context.Context, key string) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("schedule cache: delete %s: %v", key, err)
	}
}

func (c *Cache) observe(kind string, hit bool) {
	if c.metrics != nil {
		c.metrics.ObserveCache(kind, hit)
	}
}

func hoursKey(businessID int64) string {
	return fmt.Sprintf("%s:hours:%d", keyPrefix, businessID)
}

func scheduleKey(collaboratorID int64) string {
	return fmt.Sprintf("%s:schedule:%d", keyPrefix, collaboratorID)
}
