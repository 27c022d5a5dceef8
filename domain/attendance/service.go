package attendance

import (
	"context"
	"strings"
	"time"

	"github.com/akeren/church-admin-api/internal/log"
	"github.com/akeren/church-admin-api/internal/models"
	"github.com/akeren/church-admin-api/pkg/constants"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
)

const (
	defaultPageSize    = 20
	maxPageSize        = 100
	memberHistoryLimit = 50
	maxBulkRecords     = 500
)

// timeNow is swapped in tests that pin check-in timestamps.
var timeNow = time.Now

type AttendanceService interface {
	// CreateEvent registers a gathering attendance can be taken for.
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*EventResponse, error)

	// FindEventByID retrieves an event with its attendance summary.
	FindEventByID(ctx context.Context, id uint) (*EventDetailResponse, error)

	// ListEvents retrieves a filtered page of events, newest first.
	ListEvents(ctx context.Context, query *ListEventsQuery) (*EventListResponse, error)

	// CheckIn records one member's attendance at an event.
	CheckIn(ctx context.Context, eventID uint, req *CheckInRequest, recordedBy string) (*RecordResponse, error)

	// RecordBatch records a batch of members all-or-nothing.
	RecordBatch(ctx context.Context, eventID uint, req *BulkRecordRequest, recordedBy string) error

	// SummarizeEvent aggregates an event's records by status.
	SummarizeEvent(ctx context.Context, eventID uint) (*AttendanceSummary, error)

	// MemberHistory returns a member's attendance records with their rate.
	MemberHistory(ctx context.Context, memberID uint) (*MemberAttendanceResponse, error)
}

type attendanceService struct {
	logger     *log.Logger
	repository AttendanceRepository
}

func NewAttendanceService(logger *log.Logger, repository AttendanceRepository) AttendanceService {
	return &attendanceService{logger: logger, repository: repository}
}

func (s *attendanceService) CreateEvent(ctx context.Context, req *CreateEventRequest) (*EventResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("CreateEvent received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	eventDate, err := time.Parse(constants.DateOnlyFormat, req.EventDate)
	if err != nil {
		return nil, apperrors.NewInvalidRequestError("invalid event date", err)
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperrors.NewInvalidRequestError("event name cannot be blank", nil)
	}

	event, err := s.repository.CreateEvent(ctx, ToEventModel(req, eventDate))
	if err != nil {
		logger.Error("Failed to create event", "name", req.Name, "error", err)
		return nil, err
	}

	response := ToEventResponse(event)
	return &response, nil
}

func (s *attendanceService) FindEventByID(ctx context.Context, id uint) (*EventDetailResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("FindEventByID received invalid ID")
		return nil, apperrors.NewInvalidRequestError("invalid event ID", nil)
	}

	event, err := s.repository.FindEventByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find event", "id", id, "error", err)
		return nil, err
	}

	summary, err := s.repository.SummarizeEvent(ctx, id)
	if err != nil {
		logger.Error("Failed to summarize event", "id", id, "error", err)
		return nil, err
	}

	return &EventDetailResponse{
		EventResponse: ToEventResponse(event),
		Summary:       summary,
	}, nil
}

func (s *attendanceService) ListEvents(ctx context.Context, query *ListEventsQuery) (*EventListResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if query == nil {
		query = &ListEventsQuery{}
	}

	limit, offset := normalizePage(query.Limit, query.Offset)

	filter := EventFilter{
		EventType: query.EventType,
		SectorID:  query.SectorID,
		Limit:     limit,
		Offset:    offset,
	}
	if query.From != "" {
		from, err := time.Parse(constants.DateOnlyFormat, query.From)
		if err != nil {
			return nil, apperrors.NewInvalidRequestError("invalid from date", err)
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := time.Parse(constants.DateOnlyFormat, query.To)
		if err != nil {
			return nil, apperrors.NewInvalidRequestError("invalid to date", err)
		}
		filter.To = &to
	}

	events, total, err := s.repository.ListEvents(ctx, filter)
	if err != nil {
		logger.Error("Failed to list events", "error", err)
		return nil, err
	}

	items := make([]EventResponse, 0, len(events))
	for _, event := range events {
		items = append(items, ToEventResponse(event))
	}

	return &EventListResponse{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *attendanceService) CheckIn(ctx context.Context, eventID uint, req *CheckInRequest, recordedBy string) (*RecordResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if eventID == 0 {
		return nil, apperrors.NewInvalidRequestError("invalid event ID", nil)
	}
	if req == nil || req.MemberID == 0 {
		logger.Error("CheckIn received invalid member")
		return nil, apperrors.NewInvalidRequestError("member is required", nil)
	}

	if _, err := s.repository.FindEventByID(ctx, eventID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.AttendanceStatusPresent
	}

	record, err := s.repository.CreateRecord(ctx, &models.AttendanceRecord{
		EventID:     eventID,
		MemberID:    req.MemberID,
		Status:      status,
		CheckedInAt: timeNow(),
		RecordedBy:  recordedBy,
	})
	if err != nil {
		logger.Error("Failed to check member in", "event_id", eventID, "member_id", req.MemberID, "error", err)
		return nil, err
	}

	response := ToRecordResponse(record)
	return &response, nil
}

func (s *attendanceService) RecordBatch(ctx context.Context, eventID uint, req *BulkRecordRequest, recordedBy string) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if eventID == 0 {
		return apperrors.NewInvalidRequestError("invalid event ID", nil)
	}
	if req == nil || len(req.Records) == 0 {
		logger.Error("RecordBatch received empty batch")
		return apperrors.NewInvalidRequestError("record batch cannot be empty", nil)
	}
	if len(req.Records) > maxBulkRecords {
		return apperrors.NewInvalidRequestError("record batch exceeds the row limit", nil)
	}

	if _, err := s.repository.FindEventByID(ctx, eventID); err != nil {
		return err
	}

	seen := make(map[uint]bool, len(req.Records))
	now := timeNow()
	records := make([]models.AttendanceRecord, 0, len(req.Records))
	for _, entry := range req.Records {
		if entry.MemberID == 0 {
			return apperrors.NewInvalidRequestError("every record needs a member", nil)
		}
		if seen[entry.MemberID] {
			return apperrors.NewInvalidRequestError("batch contains the same member twice", nil)
		}
		seen[entry.MemberID] = true

		status := entry.Status
		if status == "" {
			status = models.AttendanceStatusPresent
		}
		records = append(records, models.AttendanceRecord{
			EventID:     eventID,
			MemberID:    entry.MemberID,
			Status:      status,
			CheckedInAt: now,
			RecordedBy:  recordedBy,
		})
	}

	if err := s.repository.CreateRecords(ctx, records); err != nil {
		logger.Error("Failed to record attendance batch", "event_id", eventID, "size", len(records), "error", err)
		return err
	}

	logger.Info("Attendance batch recorded", "event_id", eventID, "size", len(records))
	return nil
}

func (s *attendanceService) SummarizeEvent(ctx context.Context, eventID uint) (*AttendanceSummary, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if eventID == 0 {
		return nil, apperrors.NewInvalidRequestError("invalid event ID", nil)
	}

	if _, err := s.repository.FindEventByID(ctx, eventID); err != nil {
		return nil, err
	}

	summary, err := s.repository.SummarizeEvent(ctx, eventID)
	if err != nil {
		logger.Error("Failed to summarize event", "id", eventID, "error", err)
		return nil, err
	}

	return &summary, nil
}

func (s *attendanceService) MemberHistory(ctx context.Context, memberID uint) (*MemberAttendanceResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if memberID == 0 {
		return nil, apperrors.NewInvalidRequestError("invalid member ID", nil)
	}

	records, err := s.repository.MemberRecords(ctx, memberID, memberHistoryLimit)
	if err != nil {
		logger.Error("Failed to fetch member attendance", "member_id", memberID, "error", err)
		return nil, err
	}

	response := &MemberAttendanceResponse{
		MemberID: memberID,
		Records:  make([]MemberAttendanceEntry, 0, len(records)),
	}

	var present int
	for _, record := range records {
		if record.Status == models.AttendanceStatusPresent {
			present++
		}
		response.Records = append(response.Records, MemberAttendanceEntry{
			EventID:   record.EventID,
			EventName: record.Event.Name,
			EventDate: record.Event.EventDate.Format(constants.DateOnlyFormat),
			Status:    record.Status,
		})
	}
	if len(records) > 0 {
		response.AttendanceRate = float64(present) / float64(len(records))
	}

	return response, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
