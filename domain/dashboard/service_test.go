package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/akeren/church-admin-api/internal/log"
	"github.com/akeren/church-admin-api/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeCache struct {
	store  map[string]string
	getErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.store[key], nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.sets++
	f.store[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeCache) Ping(context.Context) error { return nil }
func (f *fakeCache) Close() error               { return nil }

func expectFullAggregation(mockRepo *MockDashboardRepository) {
	mockRepo.EXPECT().MemberTotals(gomock.Any()).Return(MemberTotals{Total: 10, Active: 8, Inactive: 1, Deceased: 1}, nil)
	mockRepo.EXPECT().MembersByStatus(gomock.Any()).Return([]StatusCount{{Status: models.MembershipStatusFull, Count: 8}}, nil)
	mockRepo.EXPECT().MembersBySector(gomock.Any()).Return([]SectorCount{{SectorID: 1, SectorName: "Sektor 1", Count: 8}}, nil)
	mockRepo.EXPECT().ActiveFamilyCount(gomock.Any()).Return(int64(4), nil)
	mockRepo.EXPECT().BirthdayCandidates(gomock.Any()).Return([]BirthdayCandidate{}, nil)
	mockRepo.EXPECT().RecentTransfers(gomock.Any(), recentTransferLimit).Return([]*models.SectorHistory{}, nil)
	mockRepo.EXPECT().RecentAttendance(gomock.Any(), recentEventLimit).Return(AttendanceSnapshot{Present: 6, Total: 8}, nil)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := log.NewLoggerWithJSONOutput()

	fixedNow := time.Date(2025, 8, 3, 9, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixedNow }
	defer func() { timeNow = time.Now }()

	t.Run("aggregates without a cache", func(t *testing.T) {
		mockRepo := NewMockDashboardRepository(ctrl)
		expectFullAggregation(mockRepo)
		service := NewDashboardService(logger, mockRepo, nil)

		result, err := service.GetDashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(10), result.Members.Total)
		assert.Equal(t, int64(4), result.ActiveFamilies)
		assert.InDelta(t, 0.75, result.AttendanceRate, 0.0001)
	})

	t.Run("writes through the cache on a miss", func(t *testing.T) {
		mockRepo := NewMockDashboardRepository(ctrl)
		expectFullAggregation(mockRepo)
		cache := newFakeCache()
		service := NewDashboardService(logger, mockRepo, cache)

		_, err := service.GetDashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, cache.sets)
		assert.NotEmpty(t, cache.store[cacheKey])
	})

	t.Run("serves a fresh cache entry without touching the database", func(t *testing.T) {
		mockRepo := NewMockDashboardRepository(ctrl)
		cache := newFakeCache()
		payload, _ := json.Marshal(&DashboardResponse{ActiveFamilies: 9})
		cache.store[cacheKey] = string(payload)
		service := NewDashboardService(logger, mockRepo, cache)

		result, err := service.GetDashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(9), result.ActiveFamilies)
	})

	t.Run("falls back to the database when the cache errors", func(t *testing.T) {
		mockRepo := NewMockDashboardRepository(ctrl)
		expectFullAggregation(mockRepo)
		cache := newFakeCache()
		cache.getErr = errors.New("connection refused")
		service := NewDashboardService(logger, mockRepo, cache)

		result, err := service.GetDashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(10), result.Members.Total)
	})
}

func TestUpcomingBirthdays(t *testing.T) {
	today := time.Date(2025, 8, 3, 12, 0, 0, 0, time.UTC)

	candidates := []BirthdayCandidate{
		{MemberID: "NIJ-2025-00001", FullName: "Ana", DateOfBirth: time.Date(1990, 8, 10, 0, 0, 0, 0, time.UTC)},
		{MemberID: "NIJ-2025-00002", FullName: "Budi", DateOfBirth: time.Date(1985, 10, 1, 0, 0, 0, 0, time.UTC)},
		{MemberID: "NIJ-2025-00003", FullName: "Citra", DateOfBirth: time.Date(2000, 8, 3, 0, 0, 0, 0, time.UTC)},
	}

	upcoming := upcomingBirthdays(candidates, today, 30)

	assert.Len(t, upcoming, 2)
	assert.Equal(t, "Citra", upcoming[0].FullName)
	assert.Equal(t, "2025-08-03", upcoming[0].Birthday)
	assert.Equal(t, 25, upcoming[0].TurnsAge)
	assert.Equal(t, "Ana", upcoming[1].FullName)
	assert.Equal(t, 35, upcoming[1].TurnsAge)
}

func TestUpcomingBirthdays_YearRollover(t *testing.T) {
	today := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)

	candidates := []BirthdayCandidate{
		{MemberID: "NIJ-2025-00004", FullName: "Dewi", DateOfBirth: time.Date(1995, 1, 5, 0, 0, 0, 0, time.UTC)},
	}

	upcoming := upcomingBirthdays(candidates, today, 30)

	assert.Len(t, upcoming, 1)
	assert.Equal(t, "2026-01-05", upcoming[0].Birthday)
	assert.Equal(t, 31, upcoming[0].TurnsAge)
}
