package integration

import (
	"fmt"
	"net/http/httptest"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type LetterAPITestSuite struct {
	suite.Suite
	db       *gorm.DB
	server   *httptest.Server
	baseURL  string
	memberID float64
}

func (s *LetterAPITestSuite) SetupSuite() {
	s.db, s.server = newTestServer(&s.Suite, "letters_api")
	s.baseURL = s.server.URL

	sector := postJSON(&s.Suite, s.baseURL+"/v1/sectors", map[string]any{"name": "Sektor 1"})
	sectorID := sector["data"].(map[string]any)["id"].(float64)

	family := postJSON(&s.Suite, s.baseURL+"/v1/families", map[string]any{
		"sector_id":   sectorID,
		"family_name": "Pardede",
	})
	familyID := family["data"].(map[string]any)["id"].(float64)

	member := postJSON(&s.Suite, s.baseURL+"/v1/members", map[string]any{
		"family_id":         familyID,
		"current_sector_id": sectorID,
		"full_name":         "Hotman Pardede",
		"gender":            "M",
		"family_role":       "HUSBAND",
		"date_of_birth":     "1975-05-20",
		"place_of_birth":    "Balige",
	})
	s.Require().Equal(float64(201), member["code"])
	s.memberID = member["data"].(map[string]any)["id"].(float64)
}

func (s *LetterAPITestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.db != nil {
		sqlDB, _ := s.db.DB()
		sqlDB.Close()
	}
}

func (s *LetterAPITestSuite) SetupTest() {
	s.db.Exec("DELETE FROM letters")
	s.db.Exec("DELETE FROM letter_templates")
}

func (s *LetterAPITestSuite) createTemplate(name string) float64 {
	response := postJSON(&s.Suite, s.baseURL+"/v1/letters/templates", map[string]any{
		"name":    name,
		"subject": "Certificate for {{.FullName}}",
		"body":    "This certifies that {{.FullName}} ({{.MemberID}}) of sector {{.SectorName}} is a member in good standing as of {{.Today}}.",
	})
	s.Require().Equal(float64(201), response["code"])
	return response["data"].(map[string]any)["id"].(float64)
}

func (s *LetterAPITestSuite) generateLetter(templateID float64) map[string]any {
	return postJSON(&s.Suite, s.baseURL+"/v1/letters", map[string]any{
		"template_id": templateID,
		"member_id":   s.memberID,
	})
}

func (s *LetterAPITestSuite) TestTemplateWithUnknownPlaceholderRejected() {
	response := postJSON(&s.Suite, s.baseURL+"/v1/letters/templates", map[string]any{
		"name":    "broken",
		"subject": "For {{.FullName}}",
		"body":    "Hello {{.Surname}}",
	})

	s.Equal(float64(400), response["code"])
}

func (s *LetterAPITestSuite) TestGenerateLetter() {
	templateID := s.createTemplate("membership-certificate")

	response := s.generateLetter(templateID)

	s.Equal(float64(201), response["code"])
	data := response["data"].(map[string]any)
	s.Regexp(regexp.MustCompile(`^LTR-\d{4}-00001$`), data["letter_no"])
	s.Equal("Certificate for Hotman Pardede", data["subject"])
	s.Contains(data["body"], "Hotman Pardede")
	s.Contains(data["body"], "Sektor 1")
	s.Equal("DRAFT", data["status"])

	second := s.generateLetter(templateID)
	s.Regexp(regexp.MustCompile(`^LTR-\d{4}-00002$`), second["data"].(map[string]any)["letter_no"])
}

func (s *LetterAPITestSuite) TestIssuedLetterIsFrozen() {
	templateID := s.createTemplate("membership-certificate")
	letter := s.generateLetter(templateID)["data"].(map[string]any)
	letterID := letter["id"].(float64)

	issue := postJSON(&s.Suite, fmt.Sprintf("%s/v1/letters/%.0f/issue", s.baseURL, letterID), nil)
	s.Equal(float64(200), issue["code"])

	// Editing the template afterwards must not change the issued letter.
	update := putJSON(&s.Suite, fmt.Sprintf("%s/v1/letters/templates/%.0f", s.baseURL, templateID), map[string]any{
		"subject": "Changed for {{.FullName}}",
	})
	s.Equal(float64(200), update["code"])

	fetched := getJSON(&s.Suite, fmt.Sprintf("%s/v1/letters/%.0f", s.baseURL, letterID))
	data := fetched["data"].(map[string]any)
	s.Equal("ISSUED", data["status"])
	s.Equal("Certificate for Hotman Pardede", data["subject"])
	s.NotEmpty(data["issued_at"])
}

func (s *LetterAPITestSuite) TestDoubleIssueRejected() {
	templateID := s.createTemplate("membership-certificate")
	letterID := s.generateLetter(templateID)["data"].(map[string]any)["id"].(float64)

	first := postJSON(&s.Suite, fmt.Sprintf("%s/v1/letters/%.0f/issue", s.baseURL, letterID), nil)
	s.Equal(float64(200), first["code"])

	second := postJSON(&s.Suite, fmt.Sprintf("%s/v1/letters/%.0f/issue", s.baseURL, letterID), nil)
	s.Equal(float64(409), second["code"])
}

func (s *LetterAPITestSuite) TestListLettersByStatus() {
	templateID := s.createTemplate("membership-certificate")
	first := s.generateLetter(templateID)["data"].(map[string]any)
	s.generateLetter(templateID)

	postJSON(&s.Suite, fmt.Sprintf("%s/v1/letters/%.0f/issue", s.baseURL, first["id"].(float64)), nil)

	issued := getJSON(&s.Suite, s.baseURL+"/v1/letters?status=ISSUED")
	s.Equal(float64(1), issued["data"].(map[string]any)["total"])

	drafts := getJSON(&s.Suite, s.baseURL+"/v1/letters?status=DRAFT")
	s.Equal(float64(1), drafts["data"].(map[string]any)["total"])
}

func TestLetterAPISuite(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration tests. Set RUN_INTEGRATION_TESTS=true to run them")
	}

	suite.Run(t, new(LetterAPITestSuite))
}
