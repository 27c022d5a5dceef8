package dashboard

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/akeren/church-admin-api/config"
	"github.com/akeren/church-admin-api/internal/log"
	"github.com/akeren/church-admin-api/pkg/circuitbreaker"
	"github.com/akeren/church-admin-api/pkg/constants"
)

const (
	cacheKey = "dashboard:stats"
	cacheTTL = 60 * time.Second

	birthdayWindowDays  = 30
	recentTransferLimit = 5
	recentEventLimit    = 5
)

var timeNow = time.Now

type DashboardService interface {
	// GetDashboard returns the aggregated overview, served from cache when
	// a fresh copy exists.
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}

type dashboardService struct {
	logger     *log.Logger
	repository DashboardRepository
	cache      config.Cache
	breaker    circuitbreaker.CircuitBreaker
}

// NewDashboardService accepts a nil cache; aggregation then always hits
// the database. The breaker keeps a flapping Redis from slowing every
// dashboard load down to its timeout.
func NewDashboardService(logger *log.Logger, repository DashboardRepository, cache config.Cache) DashboardService {
	return &dashboardService{
		logger:     logger,
		repository: repository,
		cache:      cache,
		breaker:    circuitbreaker.NewCircuitBreaker(nil),
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (*DashboardResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if cached := s.readCache(ctx, logger); cached != nil {
		return cached, nil
	}

	response, err := s.aggregate(ctx)
	if err != nil {
		logger.Error("Failed to aggregate dashboard", "error", err)
		return nil, err
	}

	s.writeCache(ctx, logger, response)

	return response, nil
}

func (s *dashboardService) aggregate(ctx context.Context) (*DashboardResponse, error) {
	now := timeNow()

	totals, err := s.repository.MemberTotals(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.repository.MembersByStatus(ctx)
	if err != nil {
		return nil, err
	}

	bySector, err := s.repository.MembersBySector(ctx)
	if err != nil {
		return nil, err
	}

	activeFamilies, err := s.repository.ActiveFamilyCount(ctx)
	if err != nil {
		return nil, err
	}

	candidates, err := s.repository.BirthdayCandidates(ctx)
	if err != nil {
		return nil, err
	}

	transfers, err := s.repository.RecentTransfers(ctx, recentTransferLimit)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.repository.RecentAttendance(ctx, recentEventLimit)
	if err != nil {
		return nil, err
	}

	response := &DashboardResponse{
		Members:           totals,
		MembersByStatus:   byStatus,
		MembersBySector:   bySector,
		ActiveFamilies:    activeFamilies,
		UpcomingBirthdays: upcomingBirthdays(candidates, now, birthdayWindowDays),
		RecentTransfers:   make([]RecentTransfer, 0, len(transfers)),
		GeneratedAt:       now.Format(constants.RFC3339DateTimeFormat),
	}

	for _, transfer := range transfers {
		item := RecentTransfer{
			MemberName:   transfer.Member.FullName,
			ToSector:     transfer.ToSector.Name,
			TransferDate: transfer.TransferDate.Format(constants.DateOnlyFormat),
		}
		if transfer.FromSector != nil {
			item.FromSector = transfer.FromSector.Name
		}
		response.RecentTransfers = append(response.RecentTransfers, item)
	}

	if snapshot.Total > 0 {
		response.AttendanceRate = float64(snapshot.Present) / float64(snapshot.Total)
	}

	return response, nil
}

// upcomingBirthdays projects each birth date onto the current or next year
// and keeps those landing inside the window, soonest first.
func upcomingBirthdays(candidates []BirthdayCandidate, now time.Time, windowDays int) []UpcomingBirthday {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := today.AddDate(0, 0, windowDays)

	upcoming := make([]UpcomingBirthday, 0)
	for _, candidate := range candidates {
		birthday := nextBirthday(candidate.DateOfBirth, today)
		if birthday.After(windowEnd) {
			continue
		}
		upcoming = append(upcoming, UpcomingBirthday{
			MemberID: candidate.MemberID,
			FullName: candidate.FullName,
			Birthday: birthday.Format(constants.DateOnlyFormat),
			TurnsAge: birthday.Year() - candidate.DateOfBirth.Year(),
		})
	}

	sort.Slice(upcoming, func(i, j int) bool {
		if upcoming[i].Birthday != upcoming[j].Birthday {
			return upcoming[i].Birthday < upcoming[j].Birthday
		}
		return upcoming[i].FullName < upcoming[j].FullName
	})

	return upcoming
}

func nextBirthday(dateOfBirth, today time.Time) time.Time {
	birthday := time.Date(today.Year(), dateOfBirth.Month(), dateOfBirth.Day(), 0, 0, 0, 0, time.UTC)
	if birthday.Before(today) {
		birthday = birthday.AddDate(1, 0, 0)
	}
	return birthday
}

func (s *dashboardService) readCache(ctx context.Context, logger *log.Logger) *DashboardResponse {
	if s.cache == nil {
		return nil
	}

	var payload string
	err := s.breaker.Call(func() error {
		var getErr error
		payload, getErr = s.cache.Get(ctx, cacheKey)
		return getErr
	})
	if err != nil {
		logger.Error("Dashboard cache read failed", "error", err)
		return nil
	}
	if payload == "" {
		return nil
	}

	var response DashboardResponse
	if err := json.Unmarshal([]byte(payload), &response); err != nil {
		logger.Error("Dashboard cache entry is malformed", "error", err)
		return nil
	}

	return &response
}

func (s *dashboardService) writeCache(ctx context.Context, logger *log.Logger, response *DashboardResponse) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(response)
	if err != nil {
		logger.Error("Failed to marshal dashboard for cache", "error", err)
		return
	}

	err = s.breaker.Call(func() error {
		return s.cache.Set(ctx, cacheKey, string(payload), cacheTTL)
	})
	if err != nil {
		logger.Error("Dashboard cache write failed", "error", err)
	}
}
