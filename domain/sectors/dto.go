package sectors

import (
	"github.com/akeren/church-admin-api/internal/models"
	"github.com/akeren/church-admin-api/pkg/constants"
)

type CreateSectorRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

type UpdateSectorRequest struct {
	Name        string `json:"name" binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

type SectorResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	FamilyCount int64  `json:"family_count"`
	MemberCount int64  `json:"member_count"`
	CreatedAt   string `json:"created_at"`
}

type SectorDetailResponse struct {
	SectorResponse
	Families []SectorFamilySummary `json:"families"`
	Members  []SectorMemberSummary `json:"members"`
}

type SectorFamilySummary struct {
	ID         uint   `json:"id"`
	FamilyName string `json:"family_name"`
	Status     string `json:"family_status"`
}

type SectorMemberSummary struct {
	ID       uint   `json:"id"`
	MemberID string `json:"member_id"`
	FullName string `json:"full_name"`
}

// ========================================
// Mappers
// ========================================

func ToSectorModel(req *CreateSectorRequest) *models.Sector {
	if req == nil {
		return nil
	}
	return &models.Sector{
		Name:        req.Name,
		Description: req.Description,
	}
}

func ToSectorResponse(sector *models.Sector, familyCount, memberCount int64) SectorResponse {
	if sector == nil {
		return SectorResponse{}
	}
	return SectorResponse{
		ID:          sector.ID,
		Name:        sector.Name,
		Description: sector.Description,
		FamilyCount: familyCount,
		MemberCount: memberCount,
		CreatedAt:   sector.CreatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}
