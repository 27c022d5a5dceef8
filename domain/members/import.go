package members

import (
	"fmt"
	"strings"

	"github.com/akeren/church-admin-api/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxImportRows caps one import batch.
const maxImportRows = 1000

// ImportRow is one member row of a bulk registration batch. The column set
// mirrors the spreadsheet the congregation office fills in.
type ImportRow struct {
	SectorName       string `json:"sector_name" binding:"required,min=1,max=255"`
	FamilyName       string `json:"family_name" binding:"required,min=1,max=255"`
	FullName         string `json:"full_name" binding:"required,min=1,max=255"`
	Gender           string `json:"gender" binding:"required,oneof=M F"`
	FamilyRole       string `json:"family_role" binding:"required,oneof=HUSBAND WIFE CHILD PARENT OTHER"`
	BirthOrder       *int   `json:"birth_order" binding:"omitempty,min=1"`
	DateOfBirth      string `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	PhoneNumber      string `json:"phone_number" binding:"omitempty,max=20"`
	Email            string `json:"email" binding:"omitempty,email,max=255"`
	BloodType        string `json:"blood_type" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	BaptismDate      string `json:"baptism_date" binding:"omitempty,datetime=2006-01-02"`
	SidiDate         string `json:"sidi_date" binding:"omitempty,datetime=2006-01-02"`
	MembershipStatus string `json:"membership_status" binding:"omitempty,oneof=FULL PREPARATION TRANSFER_IN TRANSFER_OUT"`
}

type ImportMembersRequest struct {
	Rows []ImportRow `json:"rows" binding:"required,min=1,dive"`
}

// ImportRowError reports why one row of a batch was rejected. Row numbering
// is 1-based to match the source spreadsheet.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportReport is the outcome of one batch. A batch with any errors creates
// nothing.
type ImportReport struct {
	TotalRows int              `json:"total_rows"`
	Created   []string         `json:"created"`
	Errors    []ImportRowError `json:"errors,omitempty"`
}

// StagedMemberRow is a validated import row ready for the repository: names
// normalized, dates parsed, phone rewritten to local form.
type StagedMemberRow struct {
	RowNumber  int
	SectorName string
	FamilyName string
	Member     models.Member
}

// ImportTemplateResponse documents the expected row shape for clients
// building a batch.
type ImportTemplateResponse struct {
	Columns []ImportColumn `json:"columns"`
	Example ImportRow      `json:"example"`
}

type ImportColumn struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Notes    string `json:"notes,omitempty"`
}

var nameCaser = cases.Title(language.Indonesian)

// normalizeName collapses runs of whitespace and title-cases the result, so
// " riko  SIMANJUNTAK " imports as "Riko Simanjuntak".
func normalizeName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return nameCaser.String(strings.ToLower(strings.Join(fields, " ")))
}

// stageImportRow validates one row's cross-field rules and converts it to a
// staged member. Field-level shape (enums, date formats) is already enforced
// by request binding.
func stageImportRow(rowNumber int, row *ImportRow) (*StagedMemberRow, error) {
	fullName := normalizeName(row.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("full name cannot be blank")
	}

	if row.FamilyRole == models.FamilyRoleChild {
		if row.BirthOrder == nil {
			return nil, fmt.Errorf("birth order is required for children")
		}
	} else if row.BirthOrder != nil {
		return nil, fmt.Errorf("birth order is only allowed for children")
	}

	phone, err := NormalizePhoneNumber(row.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("invalid phone number %q", row.PhoneNumber)
	}

	dateOfBirth, err := parseDateOnly(row.DateOfBirth)
	if err != nil || dateOfBirth == nil {
		return nil, fmt.Errorf("invalid date of birth %q", row.DateOfBirth)
	}
	baptismDate, err := parseDateOnly(row.BaptismDate)
	if err != nil {
		return nil, fmt.Errorf("invalid baptism date %q", row.BaptismDate)
	}
	sidiDate, err := parseDateOnly(row.SidiDate)
	if err != nil {
		return nil, fmt.Errorf("invalid sidi date %q", row.SidiDate)
	}

	if baptismDate != nil && baptismDate.Before(*dateOfBirth) {
		return nil, fmt.Errorf("baptism date cannot be before date of birth")
	}
	if sidiDate != nil {
		if baptismDate == nil {
			return nil, fmt.Errorf("sidi date requires a baptism date")
		}
		if sidiDate.Before(*baptismDate) {
			return nil, fmt.Errorf("sidi date cannot be before baptism date")
		}
	}

	membershipStatus := row.MembershipStatus
	if membershipStatus == "" {
		membershipStatus = models.MembershipStatusFull
	}

	member := models.Member{
		FullName:         fullName,
		Gender:           row.Gender,
		FamilyRole:       row.FamilyRole,
		BirthOrder:       row.BirthOrder,
		BloodType:        row.BloodType,
		DateOfBirth:      *dateOfBirth,
		PhoneNumber:      phone,
		BaptismDate:      baptismDate,
		SidiDate:         sidiDate,
		MembershipStatus: membershipStatus,
		IsActive:         true,
	}
	if row.Email != "" {
		email := strings.ToLower(strings.TrimSpace(row.Email))
		member.Email = &email
	}

	return &StagedMemberRow{
		RowNumber:  rowNumber,
		SectorName: strings.TrimSpace(row.SectorName),
		FamilyName: normalizeName(row.FamilyName),
		Member:     member,
	}, nil
}

func importTemplate() *ImportTemplateResponse {
	two := 2
	return &ImportTemplateResponse{
		Columns: []ImportColumn{
			{Name: "sector_name", Required: true, Notes: "created if it does not exist"},
			{Name: "family_name", Required: true, Notes: "created in the sector if it does not exist"},
			{Name: "full_name", Required: true},
			{Name: "gender", Required: true, Notes: "M or F"},
			{Name: "family_role", Required: true, Notes: "HUSBAND, WIFE, CHILD, PARENT or OTHER"},
			{Name: "birth_order", Required: false, Notes: "required for CHILD, forbidden otherwise"},
			{Name: "date_of_birth", Required: true, Notes: "YYYY-MM-DD"},
			{Name: "phone_number", Required: false, Notes: "Indonesian mobile, 08/62/+62 prefix"},
			{Name: "email", Required: false, Notes: "must be unique"},
			{Name: "blood_type", Required: false, Notes: "A+, A-, B+, B-, AB+, AB-, O+ or O-"},
			{Name: "baptism_date", Required: false, Notes: "YYYY-MM-DD, not before date of birth"},
			{Name: "sidi_date", Required: false, Notes: "YYYY-MM-DD, not before baptism date"},
			{Name: "membership_status", Required: false, Notes: "defaults to FULL"},
		},
		Example: ImportRow{
			SectorName:  "Sektor Barat",
			FamilyName:  "Simanjuntak",
			FullName:    "Riko Simanjuntak",
			Gender:      "M",
			FamilyRole:  "CHILD",
			BirthOrder:  &two,
			DateOfBirth: "2010-04-17",
			PhoneNumber: "081234567890",
		},
	}
}
