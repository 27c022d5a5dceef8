package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MemberAPITestSuite struct {
	suite.Suite
	db       *gorm.DB
	server   *httptest.Server
	baseURL  string
	sectorA  uint
	sectorB  uint
	familyID uint
}

func (s *MemberAPITestSuite) SetupSuite() {
	s.db, s.server = newTestServer(&s.Suite, "members_api")
	s.baseURL = s.server.URL

	sectorA := postJSON(&s.Suite, s.baseURL+"/v1/sectors", map[string]any{"name": "Sektor 1"})
	s.Require().Equal(float64(201), sectorA["code"])
	s.sectorA = uint(sectorA["data"].(map[string]any)["id"].(float64))

	sectorB := postJSON(&s.Suite, s.baseURL+"/v1/sectors", map[string]any{"name": "Sektor 2"})
	s.sectorB = uint(sectorB["data"].(map[string]any)["id"].(float64))
}

func (s *MemberAPITestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.db != nil {
		sqlDB, _ := s.db.DB()
		sqlDB.Close()
	}
}

func (s *MemberAPITestSuite) SetupTest() {
	s.db.Exec("DELETE FROM sector_histories")
	s.db.Exec("DELETE FROM members")
	s.db.Exec("DELETE FROM families")

	family := postJSON(&s.Suite, s.baseURL+"/v1/families", map[string]any{
		"sector_id":   s.sectorA,
		"family_name": "Hutagalung",
		"city":        "Jakarta",
	})
	s.Require().Equal(float64(201), family["code"])
	s.familyID = uint(family["data"].(map[string]any)["id"].(float64))
}

func (s *MemberAPITestSuite) registerMember(fullName, role string, extra map[string]any) map[string]any {
	payload := map[string]any{
		"family_id":         s.familyID,
		"current_sector_id": s.sectorA,
		"full_name":         fullName,
		"gender":            "M",
		"family_role":       role,
		"date_of_birth":     "1985-04-12",
	}
	for k, v := range extra {
		payload[k] = v
	}
	return postJSON(&s.Suite, s.baseURL+"/v1/members", payload)
}

func (s *MemberAPITestSuite) TestRegisterMember() {
	response := s.registerMember("Binsar Hutagalung", "HUSBAND", nil)

	s.Equal(float64(201), response["code"])
	data := response["data"].(map[string]any)
	s.Regexp(regexp.MustCompile(`^NIJ-\d{4}-00001$`), data["member_id"])
	s.Equal("Binsar Hutagalung", data["full_name"])
	s.Equal(true, data["is_active"])

	second := s.registerMember("Lamria Hutagalung", "WIFE", map[string]any{"gender": "F"})
	s.Regexp(regexp.MustCompile(`^NIJ-\d{4}-00002$`), second["data"].(map[string]any)["member_id"])
}

func (s *MemberAPITestSuite) TestRegistrationWritesInitialHistory() {
	response := s.registerMember("Binsar Hutagalung", "HUSBAND", nil)
	id := response["data"].(map[string]any)["id"].(float64)

	history := getJSON(&s.Suite, fmt.Sprintf("%s/v1/members/%.0f/history", s.baseURL, id))
	s.Equal(float64(200), history["code"])

	entries := history["data"].([]any)
	s.Require().Len(entries, 1)
	entry := entries[0].(map[string]any)
	s.Nil(entry["from_sector_id"])
	s.Equal(float64(s.sectorA), entry["to_sector_id"])
	s.Equal("system", entry["recorded_by"])
}

func (s *MemberAPITestSuite) TestPhoneNumberNormalization() {
	response := s.registerMember("Binsar Hutagalung", "HUSBAND", map[string]any{
		"phone_number": "+6281234567890",
	})

	s.Equal(float64(201), response["code"])
	s.Equal("081234567890", response["data"].(map[string]any)["phone_number"])
}

func (s *MemberAPITestSuite) TestInvalidPhoneNumberRejected() {
	response := s.registerMember("Binsar Hutagalung", "HUSBAND", map[string]any{
		"phone_number": "12345",
	})

	s.Equal(float64(400), response["code"])
}

func (s *MemberAPITestSuite) TestBirthOrderConflict() {
	first := s.registerMember("Tigor Hutagalung", "CHILD", map[string]any{"birth_order": 1})
	s.Equal(float64(201), first["code"])

	duplicate := s.registerMember("Poltak Hutagalung", "CHILD", map[string]any{"birth_order": 1})
	s.Equal(float64(409), duplicate["code"])
}

func (s *MemberAPITestSuite) TestBirthOrderRequiresChildRole() {
	response := s.registerMember("Binsar Hutagalung", "HUSBAND", map[string]any{"birth_order": 1})

	s.Equal(float64(400), response["code"])
}

func (s *MemberAPITestSuite) TestTransferSector() {
	created := s.registerMember("Binsar Hutagalung", "HUSBAND", nil)
	id := created["data"].(map[string]any)["id"].(float64)

	transfer := postJSON(&s.Suite, fmt.Sprintf("%s/v1/members/%.0f/transfer", s.baseURL, id), map[string]any{
		"to_sector_id": s.sectorB,
		"reason":       "Moved house",
	})
	s.Equal(float64(200), transfer["code"])

	member := getJSON(&s.Suite, fmt.Sprintf("%s/v1/members/%.0f", s.baseURL, id))
	s.Equal(float64(s.sectorB), member["data"].(map[string]any)["current_sector_id"])

	history := getJSON(&s.Suite, fmt.Sprintf("%s/v1/members/%.0f/history", s.baseURL, id))
	s.Len(history["data"].([]any), 2)
}

func (s *MemberAPITestSuite) TestTransferToSameSectorRejected() {
	created := s.registerMember("Binsar Hutagalung", "HUSBAND", nil)
	id := created["data"].(map[string]any)["id"].(float64)

	transfer := postJSON(&s.Suite, fmt.Sprintf("%s/v1/members/%.0f/transfer", s.baseURL, id), map[string]any{
		"to_sector_id": s.sectorA,
	})

	s.Equal(float64(400), transfer["code"])
}

func (s *MemberAPITestSuite) TestDeactivateMember() {
	created := s.registerMember("Binsar Hutagalung", "HUSBAND", nil)
	id := created["data"].(map[string]any)["id"].(float64)

	response := deleteJSON(&s.Suite, fmt.Sprintf("%s/v1/members/%.0f", s.baseURL, id))
	s.Equal(float64(200), response["code"])

	member := getJSON(&s.Suite, fmt.Sprintf("%s/v1/members/%.0f", s.baseURL, id))
	s.Equal(false, member["data"].(map[string]any)["is_active"])
}

func (s *MemberAPITestSuite) TestSacramentDateOrderingRejected() {
	response := s.registerMember("Binsar Hutagalung", "HUSBAND", map[string]any{
		"baptism_date": "1980-01-01", // before date_of_birth
	})

	s.Equal(float64(400), response["code"])
}

func (s *MemberAPITestSuite) TestListMembersFilters() {
	s.registerMember("Binsar Hutagalung", "HUSBAND", nil)
	s.registerMember("Lamria Hutagalung", "WIFE", map[string]any{"gender": "F"})

	response := getJSON(&s.Suite, s.baseURL+"/v1/members?q=Lamria")
	s.Equal(float64(200), response["code"])

	data := response["data"].(map[string]any)
	s.Equal(float64(1), data["total"])
	items := data["items"].([]any)
	s.Equal("Lamria Hutagalung", items[0].(map[string]any)["full_name"])
}

func (s *MemberAPITestSuite) TestBulkImport() {
	rows := []map[string]any{
		{
			"full_name":     "togar simatupang",
			"gender":        "M",
			"family_role":   "HUSBAND",
			"date_of_birth": "1970-02-02",
			"family_name":   "Simatupang",
			"sector_name":   "Sektor 1",
		},
		{
			"full_name":     "rosma simatupang",
			"gender":        "F",
			"family_role":   "WIFE",
			"date_of_birth": "1972-03-03",
			"family_name":   "Simatupang",
			"sector_name":   "Sektor 1",
		},
	}

	response := postJSON(&s.Suite, s.baseURL+"/v1/members/import", map[string]any{"rows": rows})
	s.Equal(float64(201), response["code"])

	report := response["data"].(map[string]any)
	s.Len(report["created"].([]any), 2)

	// Names are title-cased on the way in.
	list := getJSON(&s.Suite, s.baseURL+"/v1/members?q=Togar")
	items := list["data"].(map[string]any)["items"].([]any)
	s.Require().Len(items, 1)
	s.Equal("Togar Simatupang", items[0].(map[string]any)["full_name"])
}

func (s *MemberAPITestSuite) TestBulkImportAllOrNothing() {
	rows := []map[string]any{
		{
			"full_name":     "Good Row",
			"gender":        "M",
			"family_role":   "HUSBAND",
			"date_of_birth": "1970-02-02",
			"family_name":   "Sihombing",
			"sector_name":   "Sektor 1",
		},
		{
			"full_name":     "Bad Row",
			"gender":        "F",
			"family_role":   "WIFE",
			"birth_order":   2, // only children carry a birth order
			"date_of_birth": "1972-03-03",
			"family_name":   "Sihombing",
			"sector_name":   "Sektor 1",
		},
	}

	response := postJSON(&s.Suite, s.baseURL+"/v1/members/import", map[string]any{"rows": rows})
	s.Equal(float64(400), response["code"])

	// Nothing from the batch may land.
	list := getJSON(&s.Suite, s.baseURL+"/v1/members?q=Good")
	s.Equal(float64(0), list["data"].(map[string]any)["total"])
}

func (s *MemberAPITestSuite) TestImportTemplate() {
	resp, err := http.Get(s.baseURL + "/v1/members/import/template")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func TestMemberAPISuite(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration tests. Set RUN_INTEGRATION_TESTS=true to run them")
	}

	suite.Run(t, new(MemberAPITestSuite))
}
