package integration

import (
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AttendanceAPITestSuite struct {
	suite.Suite
	db        *gorm.DB
	server    *httptest.Server
	baseURL   string
	sectorID  uint
	memberIDs []float64
}

func (s *AttendanceAPITestSuite) SetupSuite() {
	s.db, s.server = newTestServer(&s.Suite, "attendance_api")
	s.baseURL = s.server.URL

	sector := postJSON(&s.Suite, s.baseURL+"/v1/sectors", map[string]any{"name": "Sektor 1"})
	s.Require().Equal(float64(201), sector["code"])
	s.sectorID = uint(sector["data"].(map[string]any)["id"].(float64))

	family := postJSON(&s.Suite, s.baseURL+"/v1/families", map[string]any{
		"sector_id":   s.sectorID,
		"family_name": "Nababan",
	})
	familyID := uint(family["data"].(map[string]any)["id"].(float64))

	for i, name := range []string{"Sahat Nababan", "Ruth Nababan", "Daniel Nababan"} {
		role := "OTHER"
		gender := "M"
		if i == 1 {
			gender = "F"
		}
		member := postJSON(&s.Suite, s.baseURL+"/v1/members", map[string]any{
			"family_id":         familyID,
			"current_sector_id": s.sectorID,
			"full_name":         name,
			"gender":            gender,
			"family_role":       role,
			"date_of_birth":     "1990-01-01",
		})
		s.Require().Equal(float64(201), member["code"])
		s.memberIDs = append(s.memberIDs, member["data"].(map[string]any)["id"].(float64))
	}
}

func (s *AttendanceAPITestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.db != nil {
		sqlDB, _ := s.db.DB()
		sqlDB.Close()
	}
}

func (s *AttendanceAPITestSuite) SetupTest() {
	s.db.Exec("DELETE FROM attendance_records")
	s.db.Exec("DELETE FROM events")
}

func (s *AttendanceAPITestSuite) createEvent(name string) float64 {
	response := postJSON(&s.Suite, s.baseURL+"/v1/attendance/events", map[string]any{
		"name":       name,
		"event_type": "SERVICE",
		"event_date": "2025-08-03",
	})
	s.Require().Equal(float64(201), response["code"])
	return response["data"].(map[string]any)["id"].(float64)
}

func (s *AttendanceAPITestSuite) TestCreateAndListEvents() {
	s.createEvent("Sunday Service")

	response := getJSON(&s.Suite, s.baseURL+"/v1/attendance/events?from=2025-08-01&to=2025-08-31")
	s.Equal(float64(200), response["code"])

	data := response["data"].(map[string]any)
	s.Equal(float64(1), data["total"])

	empty := getJSON(&s.Suite, s.baseURL+"/v1/attendance/events?from=2025-09-01")
	s.Equal(float64(0), empty["data"].(map[string]any)["total"])
}

func (s *AttendanceAPITestSuite) TestCheckIn() {
	eventID := s.createEvent("Sunday Service")

	response := postJSON(&s.Suite, fmt.Sprintf("%s/v1/attendance/events/%.0f/checkin", s.baseURL, eventID), map[string]any{
		"member_id": s.memberIDs[0],
	})

	s.Equal(float64(201), response["code"])
	data := response["data"].(map[string]any)
	s.Equal("PRESENT", data["status"])
	s.NotEmpty(data["checked_in_at"])
}

func (s *AttendanceAPITestSuite) TestDuplicateCheckInRejected() {
	eventID := s.createEvent("Sunday Service")
	url := fmt.Sprintf("%s/v1/attendance/events/%.0f/checkin", s.baseURL, eventID)

	first := postJSON(&s.Suite, url, map[string]any{"member_id": s.memberIDs[0]})
	s.Equal(float64(201), first["code"])

	second := postJSON(&s.Suite, url, map[string]any{"member_id": s.memberIDs[0]})
	s.Equal(float64(409), second["code"])
}

func (s *AttendanceAPITestSuite) TestBatchRecordingAndSummary() {
	eventID := s.createEvent("Bible Study")

	batch := postJSON(&s.Suite, fmt.Sprintf("%s/v1/attendance/events/%.0f/records", s.baseURL, eventID), map[string]any{
		"records": []map[string]any{
			{"member_id": s.memberIDs[0]},
			{"member_id": s.memberIDs[1], "status": "EXCUSED"},
			{"member_id": s.memberIDs[2], "status": "ABSENT"},
		},
	})
	s.Equal(float64(201), batch["code"])

	summary := getJSON(&s.Suite, fmt.Sprintf("%s/v1/attendance/events/%.0f/summary", s.baseURL, eventID))
	s.Equal(float64(200), summary["code"])

	data := summary["data"].(map[string]any)
	s.Equal(float64(1), data["present"])
	s.Equal(float64(1), data["excused"])
	s.Equal(float64(1), data["absent"])
	s.Equal(float64(3), data["total"])
}

func (s *AttendanceAPITestSuite) TestBatchWithDuplicateMemberRejected() {
	eventID := s.createEvent("Prayer Meeting")

	batch := postJSON(&s.Suite, fmt.Sprintf("%s/v1/attendance/events/%.0f/records", s.baseURL, eventID), map[string]any{
		"records": []map[string]any{
			{"member_id": s.memberIDs[0]},
			{"member_id": s.memberIDs[0]},
		},
	})

	s.Equal(float64(400), batch["code"])

	summary := getJSON(&s.Suite, fmt.Sprintf("%s/v1/attendance/events/%.0f/summary", s.baseURL, eventID))
	s.Equal(float64(0), summary["data"].(map[string]any)["total"])
}

func (s *AttendanceAPITestSuite) TestMemberHistory() {
	first := s.createEvent("Service A")
	second := s.createEvent("Service B")

	postJSON(&s.Suite, fmt.Sprintf("%s/v1/attendance/events/%.0f/checkin", s.baseURL, first), map[string]any{
		"member_id": s.memberIDs[0],
	})
	postJSON(&s.Suite, fmt.Sprintf("%s/v1/attendance/events/%.0f/checkin", s.baseURL, second), map[string]any{
		"member_id": s.memberIDs[0],
		"status":    "ABSENT",
	})

	response := getJSON(&s.Suite, fmt.Sprintf("%s/v1/attendance/members/%.0f", s.baseURL, s.memberIDs[0]))
	s.Equal(float64(200), response["code"])

	data := response["data"].(map[string]any)
	s.Len(data["records"].([]any), 2)
	s.InDelta(0.5, data["attendance_rate"].(float64), 0.0001)
}

func TestAttendanceAPISuite(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration tests. Set RUN_INTEGRATION_TESTS=true to run them")
	}

	suite.Run(t, new(AttendanceAPITestSuite))
}
