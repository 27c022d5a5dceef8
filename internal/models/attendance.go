package models

import (
	"time"

	"gorm.io/gorm"
)

// Event types
const (
	EventTypeService       = "SERVICE"
	EventTypePrayerMeeting = "PRAYER_MEETING"
	EventTypeBibleStudy    = "BIBLE_STUDY"
	EventTypeSpecial       = "SPECIAL"
)

// Attendance statuses
const (
	AttendanceStatusPresent = "PRESENT"
	AttendanceStatusAbsent  = "ABSENT"
	AttendanceStatusExcused = "EXCUSED"
)

// Event is a gathering attendance is taken for. SectorID nil means the event
// is church-wide.
type Event struct {
	gorm.Model
	Name      string    `gorm:"not null" json:"name"`
	EventType string    `gorm:"not null;index" json:"event_type"`
	EventDate time.Time `gorm:"not null;index" json:"event_date"`
	SectorID  *uint     `gorm:"index" json:"sector_id"`
	Notes     string    `json:"notes"`

	Sector  *Sector            `gorm:"foreignKey:SectorID" json:"sector,omitempty"`
	Records []AttendanceRecord `gorm:"foreignKey:EventID" json:"records,omitempty"`
}

// AttendanceRecord is one member's attendance at one event. The (event,
// member) pair is unique; checking the same member in twice is a conflict.
type AttendanceRecord struct {
	gorm.Model
	EventID     uint      `gorm:"not null;uniqueIndex:idx_attendance_event_member" json:"event_id"`
	MemberID    uint      `gorm:"not null;uniqueIndex:idx_attendance_event_member" json:"member_id"`
	Status      string    `gorm:"not null;default:PRESENT" json:"status"`
	CheckedInAt time.Time `gorm:"not null" json:"checked_in_at"`
	RecordedBy  string    `gorm:"not null;default:system" json:"recorded_by"`

	Event  Event  `gorm:"foreignKey:EventID" json:"-"`
	Member Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func ValidEventType(t string) bool {
	switch t {
	case EventTypeService, EventTypePrayerMeeting, EventTypeBibleStudy, EventTypeSpecial:
		return true
	}
	return false
}

func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusExcused:
		return true
	}
	return false
}
