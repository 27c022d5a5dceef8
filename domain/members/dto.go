package members

import (
	"regexp"
	"strings"
	"time"

	"github.com/akeren/church-admin-api/internal/models"
	"github.com/akeren/church-admin-api/pkg/constants"
)

// indonesianMobilePattern accepts +62, 62 or 0 prefixed mobile numbers.
// Normalization rewrites the country-code prefix to the local 08 form.
var indonesianMobilePattern = regexp.MustCompile(`^(\+?62|0)8\d{8,11}$`)

type CreateMemberRequest struct {
	FamilyID        uint   `json:"family_id" binding:"required"`
	CurrentSectorID uint   `json:"current_sector_id" binding:"required"`
	FullName        string `json:"full_name" binding:"required,min=1,max=255"`
	Gender          string `json:"gender" binding:"required,oneof=M F"`
	FamilyRole      string `json:"family_role" binding:"required,oneof=HUSBAND WIFE CHILD PARENT OTHER"`
	BirthOrder      *int   `json:"birth_order" binding:"omitempty,min=1"`
	BloodType       string `json:"blood_type" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	DateOfBirth     string `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	PlaceOfBirth    string `json:"place_of_birth" binding:"omitempty,max=100"`
	PhoneNumber     string `json:"phone_number" binding:"omitempty,max=20"`
	Email           string `json:"email" binding:"omitempty,email,max=255"`
	Street          string `json:"street" binding:"omitempty,max=255"`
	City            string `json:"city" binding:"omitempty,max=100"`
	BaptismDate     string `json:"baptism_date" binding:"omitempty,datetime=2006-01-02"`
	SidiDate        string `json:"sidi_date" binding:"omitempty,datetime=2006-01-02"`
	MarriageDate    string `json:"marriage_date" binding:"omitempty,datetime=2006-01-02"`

	MembershipStatus string `json:"membership_status" binding:"omitempty,oneof=FULL PREPARATION TRANSFER_IN TRANSFER_OUT"`
}

type UpdateMemberRequest struct {
	FamilyID     uint   `json:"family_id" binding:"omitempty"`
	FullName     string `json:"full_name" binding:"omitempty,min=1,max=255"`
	Gender       string `json:"gender" binding:"omitempty,oneof=M F"`
	FamilyRole   string `json:"family_role" binding:"omitempty,oneof=HUSBAND WIFE CHILD PARENT OTHER"`
	BirthOrder   *int   `json:"birth_order" binding:"omitempty,min=1"`
	BloodType    string `json:"blood_type" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	DateOfBirth  string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	PlaceOfBirth string `json:"place_of_birth" binding:"omitempty,max=100"`
	PhoneNumber  string `json:"phone_number" binding:"omitempty,max=20"`
	Email        string `json:"email" binding:"omitempty,email,max=255"`
	Street       string `json:"street" binding:"omitempty,max=255"`
	City         string `json:"city" binding:"omitempty,max=100"`
	BaptismDate  string `json:"baptism_date" binding:"omitempty,datetime=2006-01-02"`
	SidiDate     string `json:"sidi_date" binding:"omitempty,datetime=2006-01-02"`
	MarriageDate string `json:"marriage_date" binding:"omitempty,datetime=2006-01-02"`

	MembershipStatus string `json:"membership_status" binding:"omitempty,oneof=FULL PREPARATION TRANSFER_IN TRANSFER_OUT"`

	IsDeceased     *bool  `json:"is_deceased" binding:"omitempty"`
	DeceasedDate   string `json:"deceased_date" binding:"omitempty,datetime=2006-01-02"`
	DeceasedReason string `json:"deceased_reason" binding:"omitempty,max=500"`
}

type DeactivateMemberRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type TransferMemberRequest struct {
	ToSectorID uint   `json:"to_sector_id" binding:"required"`
	Reason     string `json:"reason" binding:"omitempty,max=500"`
	Notes      string `json:"notes" binding:"omitempty,max=1000"`
}

type ListMembersQuery struct {
	Q                string `form:"q"`
	SectorID         uint   `form:"sector_id"`
	MembershipStatus string `form:"membership_status" binding:"omitempty,oneof=FULL PREPARATION TRANSFER_IN TRANSFER_OUT"`
	IsActive         *bool  `form:"is_active"`
	Limit            int    `form:"limit"`
	Offset           int    `form:"offset"`
}

type MemberResponse struct {
	ID               uint   `json:"id"`
	MemberID         string `json:"member_id"`
	FamilyID         uint   `json:"family_id"`
	FamilyName       string `json:"family_name,omitempty"`
	CurrentSectorID  uint   `json:"current_sector_id"`
	SectorName       string `json:"sector_name,omitempty"`
	FullName         string `json:"full_name"`
	Gender           string `json:"gender"`
	FamilyRole       string `json:"family_role"`
	BirthOrder       *int   `json:"birth_order,omitempty"`
	BloodType        string `json:"blood_type,omitempty"`
	DateOfBirth      string `json:"date_of_birth"`
	PlaceOfBirth     string `json:"place_of_birth,omitempty"`
	Age              int    `json:"age"`
	PhoneNumber      string `json:"phone_number,omitempty"`
	Email            string `json:"email,omitempty"`
	Street           string `json:"street,omitempty"`
	City             string `json:"city,omitempty"`
	BaptismDate      string `json:"baptism_date,omitempty"`
	SidiDate         string `json:"sidi_date,omitempty"`
	MarriageDate     string `json:"marriage_date,omitempty"`
	MembershipStatus string `json:"membership_status"`
	IsActive         bool   `json:"is_active"`
	InactiveReason   string `json:"inactive_reason,omitempty"`
	IsDeceased       bool   `json:"is_deceased"`
	DeceasedDate     string `json:"deceased_date,omitempty"`
	CreatedAt        string `json:"created_at"`
}

type MemberListResponse struct {
	Items  []MemberResponse `json:"items"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

type SectorHistoryResponse struct {
	ID             uint   `json:"id"`
	FromSectorID   *uint  `json:"from_sector_id"`
	FromSectorName string `json:"from_sector_name,omitempty"`
	ToSectorID     uint   `json:"to_sector_id"`
	ToSectorName   string `json:"to_sector_name,omitempty"`
	TransferDate   string `json:"transfer_date"`
	Reason         string `json:"reason"`
	Notes          string `json:"notes,omitempty"`
	RecordedBy     string `json:"recorded_by"`
}

// ========================================
// Mappers
// ========================================

func ToMemberResponse(member *models.Member, now time.Time) MemberResponse {
	if member == nil {
		return MemberResponse{}
	}

	resp := MemberResponse{
		ID:               member.ID,
		MemberID:         member.MemberID,
		FamilyID:         member.FamilyID,
		CurrentSectorID:  member.CurrentSectorID,
		FullName:         member.FullName,
		Gender:           member.Gender,
		FamilyRole:       member.FamilyRole,
		BirthOrder:       member.BirthOrder,
		BloodType:        member.BloodType,
		DateOfBirth:      member.DateOfBirth.Format(constants.DateOnlyFormat),
		PlaceOfBirth:     member.PlaceOfBirth,
		Age:              member.Age(now),
		PhoneNumber:      member.PhoneNumber,
		Street:           member.Street,
		City:             member.City,
		MembershipStatus: member.MembershipStatus,
		IsActive:         member.IsActive,
		InactiveReason:   member.InactiveReason,
		IsDeceased:       member.IsDeceased,
		CreatedAt:        member.CreatedAt.Format(constants.RFC3339DateTimeFormat),
	}
	if member.Email != nil {
		resp.Email = *member.Email
	}
	if member.Family.FamilyName != "" {
		resp.FamilyName = member.Family.FamilyName
	}
	if member.CurrentSector.Name != "" {
		resp.SectorName = member.CurrentSector.Name
	}
	if member.BaptismDate != nil {
		resp.BaptismDate = member.BaptismDate.Format(constants.DateOnlyFormat)
	}
	if member.SidiDate != nil {
		resp.SidiDate = member.SidiDate.Format(constants.DateOnlyFormat)
	}
	if member.MarriageDate != nil {
		resp.MarriageDate = member.MarriageDate.Format(constants.DateOnlyFormat)
	}
	if member.DeceasedDate != nil {
		resp.DeceasedDate = member.DeceasedDate.Format(constants.DateOnlyFormat)
	}
	return resp
}

func ToSectorHistoryResponse(entry *models.SectorHistory) SectorHistoryResponse {
	resp := SectorHistoryResponse{
		ID:           entry.ID,
		FromSectorID: entry.FromSectorID,
		ToSectorID:   entry.ToSectorID,
		TransferDate: entry.TransferDate.Format(constants.RFC3339DateTimeFormat),
		Reason:       entry.Reason,
		Notes:        entry.Notes,
		RecordedBy:   entry.RecordedBy,
	}
	if entry.FromSector != nil {
		resp.FromSectorName = entry.FromSector.Name
	}
	if entry.ToSector.Name != "" {
		resp.ToSectorName = entry.ToSector.Name
	}
	return resp
}

// NormalizePhoneNumber validates an Indonesian mobile number and rewrites
// +62/62 prefixes to the local 08 form. Empty input passes through.
func NormalizePhoneNumber(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", nil
	}
	if !indonesianMobilePattern.MatchString(phone) {
		return "", ErrInvalidPhoneNumber
	}
	if strings.HasPrefix(phone, "+62") {
		return "0" + phone[3:], nil
	}
	if strings.HasPrefix(phone, "62") {
		return "0" + phone[2:], nil
	}
	return phone, nil
}

func parseDateOnly(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(constants.DateOnlyFormat, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
