package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/akeren/church-admin-api/internal/models"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
	"gorm.io/gorm"
)

// EventFilter narrows the event list. Zero values mean "no filter"; From/To
// bound the event date inclusively.
type EventFilter struct {
	From      *time.Time
	To        *time.Time
	EventType string
	SectorID  uint
	Limit     int
	Offset    int
}

type AttendanceRepository interface {
	// CreateEvent persists a new event.
	CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	// FindEventByID retrieves one event with its sector.
	FindEventByID(ctx context.Context, id uint) (*models.Event, error)
	// ListEvents returns the filtered page of events plus the total count
	// before pagination, newest event first.
	ListEvents(ctx context.Context, filter EventFilter) ([]*models.Event, int64, error)
	// CreateRecord writes one attendance record; duplicate (event, member)
	// pairs are a conflict.
	CreateRecord(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error)
	// CreateRecords writes a batch of records in one all-or-nothing
	// transaction.
	CreateRecords(ctx context.Context, records []models.AttendanceRecord) error
	// SummarizeEvent aggregates an event's records by status.
	SummarizeEvent(ctx context.Context, eventID uint) (AttendanceSummary, error)
	// MemberRecords returns a member's attendance records with their events,
	// newest event first.
	MemberRecords(ctx context.Context, memberID uint, limit int) ([]*models.AttendanceRecord, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (ar *attendanceRepository) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := ar.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to create event", err)
	}
	return event, nil
}

func (ar *attendanceRepository) FindEventByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := ar.db.WithContext(ctx).Preload("Sector").First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("event not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch event", err)
	}
	return &event, nil
}

func (ar *attendanceRepository) ListEvents(ctx context.Context, filter EventFilter) ([]*models.Event, int64, error) {
	query := ar.db.WithContext(ctx).Model(&models.Event{})

	if filter.From != nil {
		query = query.Where("event_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("event_date <= ?", *filter.To)
	}
	if filter.EventType != "" {
		query = query.Where("event_type = ?", filter.EventType)
	}
	if filter.SectorID != 0 {
		query = query.Where("sector_id = ?", filter.SectorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError("failed to count events", err)
	}

	var events []*models.Event
	err := query.
		Preload("Sector").
		Order("event_date DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&events).Error
	if err != nil {
		return nil, 0, apperrors.NewDatabaseError("unable to fetch events", err)
	}

	return events, total, nil
}

func (ar *attendanceRepository) CreateRecord(ctx context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	if err := ar.db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.NewConflictError("member is already recorded for this event", err)
		}
		return nil, apperrors.NewDatabaseError("unable to create attendance record", err)
	}
	return record, nil
}

func (ar *attendanceRepository) CreateRecords(ctx context.Context, records []models.AttendanceRecord) error {
	return ar.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := tx.Create(&records[i]).Error; err != nil {
				if isDuplicateKey(err) {
					return apperrors.NewConflictError("a member in the batch is already recorded for this event", err)
				}
				return apperrors.NewDatabaseError("unable to create attendance record", err)
			}
		}
		return nil
	})
}

func (ar *attendanceRepository) SummarizeEvent(ctx context.Context, eventID uint) (AttendanceSummary, error) {
	type row struct {
		Status string
		Total  int64
	}

	var rows []row
	err := ar.db.WithContext(ctx).
		Model(&models.AttendanceRecord{}).
		Select("status, COUNT(*) as total").
		Where("event_id = ?", eventID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return AttendanceSummary{}, apperrors.NewDatabaseError("failed to summarize event", err)
	}

	var summary AttendanceSummary
	for _, r := range rows {
		switch r.Status {
		case models.AttendanceStatusPresent:
			summary.Present = r.Total
		case models.AttendanceStatusAbsent:
			summary.Absent = r.Total
		case models.AttendanceStatusExcused:
			summary.Excused = r.Total
		}
		summary.Total += r.Total
	}
	if summary.Total > 0 {
		summary.AttendanceRate = float64(summary.Present) / float64(summary.Total)
	}

	return summary, nil
}

func (ar *attendanceRepository) MemberRecords(ctx context.Context, memberID uint, limit int) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord

	err := ar.db.WithContext(ctx).
		Preload("Event").
		Joins("JOIN events ON events.id = attendance_records.event_id").
		Where("attendance_records.member_id = ?", memberID).
		Order("events.event_date DESC, attendance_records.id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch member attendance", err)
	}

	return records, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
