package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeRepo struct {
	hoursCalls    int
	scheduleCalls int
	hours         []domain.OperatingHoursDay
	schedule      []domain.CollaboratorScheduleDay
	err           error
}

func (f *fakeRepo) GetByBusiness(ctx context.Context, businessID int64) ([]domain.OperatingHoursDay, error) {
	f.hoursCalls++
	return f.hours, f.err
}

func (f *fakeRepo) GetSchedule(ctx context.Context, collaboratorID int64) ([]domain.CollaboratorScheduleDay, error) {
	f.scheduleCalls++
	return f.schedule, f.err
}

type fakeMetrics struct {
	hits   map[string]int
	misses map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{hits: map[string]int{}, misses: map[string]int{}}
}

func (m *fakeMetrics) ObserveCache(kind string, hit bool) {
	if hit {
		m.hits[kind]++
		return
	}
	m.misses[kind]++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func tsPtr(s string) *types.TimeString {
	t := types.TimeString(s)
	return &t
}

func newRepo() *fakeRepo {
	return &fakeRepo{
		hours: []domain.OperatingHoursDay{
			{
				BusinessID: 1,
				DayOfWeek:  domain.Monday,
				IsOpen:     true,
				StartTime:  tsPtr("08:00"),
				EndTime:    tsPtr("18:00"),
				Breaks:     []domain.Break{{Start: "12:00", End: "13:00"}},
			},
			{BusinessID: 1, DayOfWeek: domain.Sunday},
		},
		schedule: []domain.CollaboratorScheduleDay{
			{CollaboratorID: 7, DayOfWeek: domain.Monday, Enabled: true, StartTime: tsPtr("09:00"), EndTime: tsPtr("18:00")},
		},
	}
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestCache_ReadThrough(t *testing.T) {
	server, client := newRedis(t)
	repo := newRepo()
	metrics := newFakeMetrics()
	cache := NewCache(client, 5*time.Minute, repo, repo, metrics, nopLogger{})
	ctx := context.Background()

	first, err := cache.GetByBusiness(ctx, 1)
	require.NoError(t, err)
	second, err := cache.GetByBusiness(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, repo.hours, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.hoursCalls)
	assert.Equal(t, 1, metrics.hits[kindHours])
	assert.Equal(t, 1, metrics.misses[kindHours])

	assert.True(t, server.Exists("salon:hours:1"))
	assert.Equal(t, 5*time.Minute, server.TTL("salon:hours:1"))
}

func TestCache_Schedule(t *testing.T) {
	_, client := newRedis(t)
	repo := newRepo()
	cache := NewCache(client, time.Minute, repo, repo, nil, nopLogger{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		week, err := cache.GetSchedule(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, repo.schedule, week)
	}
	assert.Equal(t, 1, repo.scheduleCalls)
}

func TestCache_Invalidate(t *testing.T) {
	server, client := newRedis(t)
	repo := newRepo()
	cache := NewCache(client, time.Minute, repo, repo, nil, nopLogger{})
	ctx := context.Background()

	_, err := cache.GetByBusiness(ctx, 1)
	require.NoError(t, err)
	_, err = cache.GetSchedule(ctx, 7)
	require.NoError(t, err)

	cache.InvalidateBusiness(ctx, 1)
	cache.InvalidateCollaborator(ctx, 7)
	assert.False(t, server.Exists("salon:hours:1"))
	assert.False(t, server.Exists("salon:schedule:7"))

	_, err = cache.GetByBusiness(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.hoursCalls)
}

func TestCache_CorruptedEntryFallsBackToRepository(t *testing.T) {
	server, client := newRedis(t)
	repo := newRepo()
	cache := NewCache(client, time.Minute, repo, repo, nil, nopLogger{})

	require.NoError(t, server.Set("salon:hours:1", "{not json"))

	week, err := cache.GetByBusiness(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, repo.hours, week)
	assert.Equal(t, 1, repo.hoursCalls)
}

func TestCache_RedisUnavailable(t *testing.T) {
	server, client := newRedis(t)
	repo := newRepo()
	cache := NewCache(client, time.Minute, repo, repo, nil, nopLogger{})
	server.Close()

	week, err := cache.GetByBusiness(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, repo.hours, week)

	cache.InvalidateBusiness(context.Background(), 1)
}

func TestCache_Disabled(t *testing.T) {
	repo := newRepo()
	cache := NewCache(nil, time.Minute, repo, repo, nil, nopLogger{})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := cache.GetSchedule(ctx, 7)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, repo.scheduleCalls)
	cache.InvalidateCollaborator(ctx, 7)
}

func TestCache_RepositoryErrorNotCached(t *testing.T) {
	server, client := newRedis(t)
	repo := newRepo()
	repo.err = errors.New("db down")
	cache := NewCache(client, time.Minute, repo, repo, nil, nopLogger{})

	_, err := cache.GetByBusiness(context.Background(), 1)
	assert.ErrorIs(t, err, repo.err)
	assert.False(t, server.Exists("salon:hours:1"))
}
