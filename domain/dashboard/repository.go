package dashboard

import (
	"context"
	"time"

	"github.com/akeren/church-admin-api/internal/models"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
	"gorm.io/gorm"
)

// BirthdayCandidate is the slim member projection used to compute upcoming
// birthdays in Go, keeping the query portable across dialects.
type BirthdayCandidate struct {
	MemberID    string
	FullName    string
	DateOfBirth time.Time
}

// AttendanceSnapshot aggregates the records of the most recent events.
type AttendanceSnapshot struct {
	Present int64
	Total   int64
}

type DashboardRepository interface {
	// MemberTotals counts members overall, active, inactive and deceased.
	MemberTotals(ctx context.Context) (MemberTotals, error)
	// MembersByStatus counts living members per membership status.
	MembersByStatus(ctx context.Context) ([]StatusCount, error)
	// MembersBySector counts active living members per sector.
	MembersBySector(ctx context.Context) ([]SectorCount, error)
	// ActiveFamilyCount counts families with status ACTIVE.
	ActiveFamilyCount(ctx context.Context) (int64, error)
	// BirthdayCandidates returns active living members with their birth dates.
	BirthdayCandidates(ctx context.Context) ([]BirthdayCandidate, error)
	// RecentTransfers returns the newest sector moves with names preloaded.
	RecentTransfers(ctx context.Context, limit int) ([]*models.SectorHistory, error)
	// RecentAttendance aggregates records over the latest events.
	RecentAttendance(ctx context.Context, eventLimit int) (AttendanceSnapshot, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (dr *dashboardRepository) MemberTotals(ctx context.Context) (MemberTotals, error) {
	var totals MemberTotals

	base := dr.db.WithContext(ctx).Model(&models.Member{})

	if err := base.Session(&gorm.Session{}).Count(&totals.Total).Error; err != nil {
		return MemberTotals{}, apperrors.NewDatabaseError("failed to count members", err)
	}
	if err := base.Session(&gorm.Session{}).
		Where("is_active = ? AND is_deceased = ?", true, false).
		Count(&totals.Active).Error; err != nil {
		return MemberTotals{}, apperrors.NewDatabaseError("failed to count active members", err)
	}
	if err := base.Session(&gorm.Session{}).
		Where("is_active = ? AND is_deceased = ?", false, false).
		Count(&totals.Inactive).Error; err != nil {
		return MemberTotals{}, apperrors.NewDatabaseError("failed to count inactive members", err)
	}
	if err := base.Session(&gorm.Session{}).
		Where("is_deceased = ?", true).
		Count(&totals.Deceased).Error; err != nil {
		return MemberTotals{}, apperrors.NewDatabaseError("failed to count deceased members", err)
	}

	return totals, nil
}

func (dr *dashboardRepository) MembersByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount

	err := dr.db.WithContext(ctx).
		Model(&models.Member{}).
		Select("membership_status AS status, COUNT(*) AS count").
		Where("is_deceased = ?", false).
		Group("membership_status").
		Order("membership_status ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to count members by status", err)
	}

	return rows, nil
}

func (dr *dashboardRepository) MembersBySector(ctx context.Context) ([]SectorCount, error) {
	var rows []SectorCount

	err := dr.db.WithContext(ctx).
		Model(&models.Member{}).
		Select("members.current_sector_id AS sector_id, sectors.name AS sector_name, COUNT(*) AS count").
		Joins("JOIN sectors ON sectors.id = members.current_sector_id").
		Where("members.is_active = ? AND members.is_deceased = ?", true, false).
		Group("members.current_sector_id, sectors.name").
		Order("sectors.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to count members by sector", err)
	}

	return rows, nil
}

func (dr *dashboardRepository) ActiveFamilyCount(ctx context.Context) (int64, error) {
	var count int64

	err := dr.db.WithContext(ctx).
		Model(&models.Family{}).
		Where("family_status = ?", models.FamilyStatusActive).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.NewDatabaseError("failed to count active families", err)
	}

	return count, nil
}

func (dr *dashboardRepository) BirthdayCandidates(ctx context.Context) ([]BirthdayCandidate, error) {
	var rows []BirthdayCandidate

	err := dr.db.WithContext(ctx).
		Model(&models.Member{}).
		Select("member_id, full_name, date_of_birth").
		Where("is_active = ? AND is_deceased = ?", true, false).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to fetch birthday candidates", err)
	}

	return rows, nil
}

func (dr *dashboardRepository) RecentTransfers(ctx context.Context, limit int) ([]*models.SectorHistory, error) {
	var transfers []*models.SectorHistory

	err := dr.db.WithContext(ctx).
		Preload("Member").
		Preload("FromSector").
		Preload("ToSector").
		Order("transfer_date DESC, id DESC").
		Limit(limit).
		Find(&transfers).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to fetch recent transfers", err)
	}

	return transfers, nil
}

func (dr *dashboardRepository) RecentAttendance(ctx context.Context, eventLimit int) (AttendanceSnapshot, error) {
	var eventIDs []uint

	err := dr.db.WithContext(ctx).
		Model(&models.Event{}).
		Order("event_date DESC, id DESC").
		Limit(eventLimit).
		Pluck("id", &eventIDs).Error
	if err != nil {
		return AttendanceSnapshot{}, apperrors.NewDatabaseError("failed to fetch recent events", err)
	}

	if len(eventIDs) == 0 {
		return AttendanceSnapshot{}, nil
	}

	var snapshot AttendanceSnapshot

	base := dr.db.WithContext(ctx).
		Model(&models.AttendanceRecord{}).
		Where("event_id IN ?", eventIDs)

	if err := base.Session(&gorm.Session{}).Count(&snapshot.Total).Error; err != nil {
		return AttendanceSnapshot{}, apperrors.NewDatabaseError("failed to count attendance records", err)
	}
	if err := base.Session(&gorm.Session{}).
		Where("status = ?", models.AttendanceStatusPresent).
		Count(&snapshot.Present).Error; err != nil {
		return AttendanceSnapshot{}, apperrors.NewDatabaseError("failed to count present records", err)
	}

	return snapshot, nil
}
