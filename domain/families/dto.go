package families

import (
	"time"

	"github.com/akeren/church-admin-api/internal/models"
	"github.com/akeren/church-admin-api/pkg/constants"
)

type CreateFamilyRequest struct {
	SectorID    uint   `json:"sector_id" binding:"required"`
	FamilyName  string `json:"family_name" binding:"required,min=1,max=255"`
	Street      string `json:"street" binding:"omitempty,max=255"`
	City        string `json:"city" binding:"omitempty,max=100"`
	Province    string `json:"province" binding:"omitempty,max=100"`
	PostalCode  string `json:"postal_code" binding:"omitempty,max=10"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=20"`
}

type UpdateFamilyRequest struct {
	SectorID       uint   `json:"sector_id" binding:"omitempty"`
	FamilyName     string `json:"family_name" binding:"omitempty,min=1,max=255"`
	FamilyStatus   string `json:"family_status" binding:"omitempty,oneof=ACTIVE INACTIVE DISSOLVED"`
	HeadOfFamilyID *uint  `json:"head_of_family_id" binding:"omitempty"`
	Street         string `json:"street" binding:"omitempty,max=255"`
	City           string `json:"city" binding:"omitempty,max=100"`
	Province       string `json:"province" binding:"omitempty,max=100"`
	PostalCode     string `json:"postal_code" binding:"omitempty,max=10"`
	PhoneNumber    string `json:"phone_number" binding:"omitempty,max=20"`

	DissolutionReason string `json:"dissolution_reason" binding:"omitempty,max=500"`
	DissolutionDate   string `json:"dissolution_date" binding:"omitempty,datetime=2006-01-02"`
}

type DissolveFamilyRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type ListFamiliesQuery struct {
	Q        string `form:"q"`
	SectorID uint   `form:"sector_id"`
	Status   string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE DISSOLVED"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

type FamilyResponse struct {
	ID                uint   `json:"id"`
	SectorID          uint   `json:"sector_id"`
	SectorName        string `json:"sector_name,omitempty"`
	FamilyName        string `json:"family_name"`
	FamilyStatus      string `json:"family_status"`
	HeadOfFamilyID    *uint  `json:"head_of_family_id"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostalCode        string `json:"postal_code"`
	PhoneNumber       string `json:"phone_number"`
	DissolutionReason string `json:"dissolution_reason,omitempty"`
	DissolutionDate   string `json:"dissolution_date,omitempty"`
	MemberCount       int64  `json:"member_count"`
	CreatedAt         string `json:"created_at"`
}

type FamilyListResponse struct {
	Items  []FamilyResponse `json:"items"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

type FamilyMemberSummary struct {
	ID         uint   `json:"id"`
	MemberID   string `json:"member_id"`
	FullName   string `json:"full_name"`
	FamilyRole string `json:"family_role"`
	BirthOrder *int   `json:"birth_order,omitempty"`
	IsActive   bool   `json:"is_active"`
	IsDeceased bool   `json:"is_deceased"`
}

type FamilyDetailResponse struct {
	FamilyResponse
	Members   []FamilyMemberSummary `json:"members"`
	Structure StructureReport       `json:"structure"`
}

// StructureReport summarizes the living composition of a family and any
// violations of the one-husband/one-wife and birth-order rules.
type StructureReport struct {
	LivingHusbands int      `json:"living_husbands"`
	LivingWives    int      `json:"living_wives"`
	LivingChildren int      `json:"living_children"`
	Issues         []string `json:"issues"`
	IsValid        bool     `json:"is_valid"`
}

// ========================================
// Mappers
// ========================================

func ToFamilyModel(req *CreateFamilyRequest) *models.Family {
	if req == nil {
		return nil
	}
	return &models.Family{
		SectorID:     req.SectorID,
		FamilyName:   req.FamilyName,
		FamilyStatus: models.FamilyStatusActive,
		Street:       req.Street,
		City:         req.City,
		Province:     req.Province,
		PostalCode:   req.PostalCode,
		PhoneNumber:  req.PhoneNumber,
	}
}

func ToFamilyResponse(family *models.Family, memberCount int64) FamilyResponse {
	if family == nil {
		return FamilyResponse{}
	}

	resp := FamilyResponse{
		ID:                family.ID,
		SectorID:          family.SectorID,
		FamilyName:        family.FamilyName,
		FamilyStatus:      family.FamilyStatus,
		HeadOfFamilyID:    family.HeadOfFamilyID,
		Street:            family.Street,
		City:              family.City,
		Province:          family.Province,
		PostalCode:        family.PostalCode,
		PhoneNumber:       family.PhoneNumber,
		DissolutionReason: family.DissolutionReason,
		MemberCount:       memberCount,
		CreatedAt:         family.CreatedAt.Format(constants.RFC3339DateTimeFormat),
	}
	if family.Sector.Name != "" {
		resp.SectorName = family.Sector.Name
	}
	if family.DissolutionDate != nil {
		resp.DissolutionDate = family.DissolutionDate.Format(constants.DateOnlyFormat)
	}
	return resp
}

func ToFamilyMemberSummary(member *models.Member) FamilyMemberSummary {
	return FamilyMemberSummary{
		ID:         member.ID,
		MemberID:   member.MemberID,
		FullName:   member.FullName,
		FamilyRole: member.FamilyRole,
		BirthOrder: member.BirthOrder,
		IsActive:   member.IsActive,
		IsDeceased: member.IsDeceased,
	}
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
