package attendance

import (
	"time"

	"github.com/akeren/church-admin-api/internal/models"
	"github.com/akeren/church-admin-api/pkg/constants"
)

type CreateEventRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	EventType string `json:"event_type" binding:"required,oneof=SERVICE PRAYER_MEETING BIBLE_STUDY SPECIAL"`
	EventDate string `json:"event_date" binding:"required,datetime=2006-01-02"`
	SectorID  *uint  `json:"sector_id" binding:"omitempty"`
	Notes     string `json:"notes" binding:"omitempty,max=1000"`
}

type ListEventsQuery struct {
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	EventType string `form:"event_type" binding:"omitempty,oneof=SERVICE PRAYER_MEETING BIBLE_STUDY SPECIAL"`
	SectorID  uint   `form:"sector_id"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

type CheckInRequest struct {
	MemberID uint   `json:"member_id" binding:"required"`
	Status   string `json:"status" binding:"omitempty,oneof=PRESENT ABSENT EXCUSED"`
}

type BulkRecordRequest struct {
	Records []CheckInRequest `json:"records" binding:"required,min=1,dive"`
}

type EventResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	EventType  string `json:"event_type"`
	EventDate  string `json:"event_date"`
	SectorID   *uint  `json:"sector_id"`
	SectorName string `json:"sector_name,omitempty"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type EventListResponse struct {
	Items  []EventResponse `json:"items"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type EventDetailResponse struct {
	EventResponse
	Summary AttendanceSummary `json:"summary"`
}

// AttendanceSummary aggregates one event's records. Rate is the fraction of
// recorded members marked PRESENT, 0 when nothing is recorded yet.
type AttendanceSummary struct {
	Present        int64   `json:"present"`
	Absent         int64   `json:"absent"`
	Excused        int64   `json:"excused"`
	Total          int64   `json:"total"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type RecordResponse struct {
	ID          uint   `json:"id"`
	EventID     uint   `json:"event_id"`
	MemberID    uint   `json:"member_id"`
	MemberName  string `json:"member_name,omitempty"`
	Status      string `json:"status"`
	CheckedInAt string `json:"checked_in_at"`
	RecordedBy  string `json:"recorded_by"`
}

type MemberAttendanceResponse struct {
	MemberID       uint                    `json:"member_id"`
	Records        []MemberAttendanceEntry `json:"records"`
	AttendanceRate float64                 `json:"attendance_rate"`
}

type MemberAttendanceEntry struct {
	EventID   uint   `json:"event_id"`
	EventName string `json:"event_name"`
	EventDate string `json:"event_date"`
	Status    string `json:"status"`
}

// ========================================
// Mappers
// ========================================

func ToEventModel(req *CreateEventRequest, eventDate time.Time) *models.Event {
	if req == nil {
		return nil
	}
	return &models.Event{
		Name:      req.Name,
		EventType: req.EventType,
		EventDate: eventDate,
		SectorID:  req.SectorID,
		Notes:     req.Notes,
	}
}

func ToEventResponse(event *models.Event) EventResponse {
	if event == nil {
		return EventResponse{}
	}
	resp := EventResponse{
		ID:        event.ID,
		Name:      event.Name,
		EventType: event.EventType,
		EventDate: event.EventDate.Format(constants.DateOnlyFormat),
		SectorID:  event.SectorID,
		Notes:     event.Notes,
		CreatedAt: event.CreatedAt.Format(constants.RFC3339DateTimeFormat),
	}
	if event.Sector != nil {
		resp.SectorName = event.Sector.Name
	}
	return resp
}

func ToRecordResponse(record *models.AttendanceRecord) RecordResponse {
	resp := RecordResponse{
		ID:          record.ID,
		EventID:     record.EventID,
		MemberID:    record.MemberID,
		Status:      record.Status,
		CheckedInAt: record.CheckedInAt.Format(constants.RFC3339DateTimeFormat),
		RecordedBy:  record.RecordedBy,
	}
	if record.Member.FullName != "" {
		resp.MemberName = record.Member.FullName
	}
	return resp
}
