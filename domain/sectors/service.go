package sectors

import (
	"context"
	"strings"

	"github.com/akeren/church-admin-api/internal/log"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
)

// memberPreviewLimit caps how many members the sector detail view embeds.
const memberPreviewLimit = 10

type SectorService interface {
	// CreateSector creates a new sector with a unique name.
	CreateSector(ctx context.Context, req *CreateSectorRequest) (*SectorResponse, error)

	// FindSectorByID retrieves a sector with its families, a preview of its
	// members, and active counts.
	FindSectorByID(ctx context.Context, id uint) (*SectorDetailResponse, error)

	// GetAllSectors retrieves all sectors with their active counts.
	GetAllSectors(ctx context.Context) ([]SectorResponse, error)

	// UpdateSector updates the name and/or description of a sector.
	UpdateSector(ctx context.Context, id uint, req *UpdateSectorRequest) error
}

type sectorService struct {
	logger     *log.Logger
	repository SectorRepository
}

func NewSectorService(logger *log.Logger, repository SectorRepository) SectorService {
	return &sectorService{logger: logger, repository: repository}
}

func (s *sectorService) CreateSector(ctx context.Context, req *CreateSectorRequest) (*SectorResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("CreateSector received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperrors.NewInvalidRequestError("sector name cannot be blank", nil)
	}

	sector, err := s.repository.CreateSector(ctx, ToSectorModel(req))
	if err != nil {
		logger.Error("Failed to create sector", "name", req.Name, "error", err)
		return nil, err
	}

	response := ToSectorResponse(sector, 0, 0)
	return &response, nil
}

func (s *sectorService) FindSectorByID(ctx context.Context, id uint) (*SectorDetailResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("FindSectorByID received invalid ID")
		return nil, apperrors.NewInvalidRequestError("invalid sector ID", nil)
	}

	sector, err := s.repository.FindSectorDetail(ctx, id, memberPreviewLimit)
	if err != nil {
		logger.Error("Failed to find sector", "id", id, "error", err)
		return nil, err
	}

	counts, err := s.repository.CountsForSector(ctx, id)
	if err != nil {
		logger.Error("Failed to count sector membership", "id", id, "error", err)
		return nil, err
	}

	detail := SectorDetailResponse{
		SectorResponse: ToSectorResponse(sector, counts.FamilyCount, counts.MemberCount),
		Families:       make([]SectorFamilySummary, 0, len(sector.Families)),
		Members:        make([]SectorMemberSummary, 0, len(sector.Members)),
	}
	for _, family := range sector.Families {
		detail.Families = append(detail.Families, SectorFamilySummary{
			ID:         family.ID,
			FamilyName: family.FamilyName,
			Status:     family.FamilyStatus,
		})
	}
	for _, member := range sector.Members {
		detail.Members = append(detail.Members, SectorMemberSummary{
			ID:       member.ID,
			MemberID: member.MemberID,
			FullName: member.FullName,
		})
	}

	return &detail, nil
}

func (s *sectorService) GetAllSectors(ctx context.Context) ([]SectorResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	sectors, err := s.repository.GetAllSectors(ctx)
	if err != nil {
		logger.Error("Failed to get sectors", "error", err)
		return nil, err
	}

	responses := make([]SectorResponse, 0, len(sectors))
	for _, sector := range sectors {
		counts, err := s.repository.CountsForSector(ctx, sector.ID)
		if err != nil {
			logger.Error("Failed to count sector membership", "id", sector.ID, "error", err)
			return nil, err
		}
		responses = append(responses, ToSectorResponse(sector, counts.FamilyCount, counts.MemberCount))
	}

	return responses, nil
}

func (s *sectorService) UpdateSector(ctx context.Context, id uint, req *UpdateSectorRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("UpdateSector received invalid ID")
		return apperrors.NewInvalidRequestError("invalid sector ID", nil)
	}

	if req == nil {
		logger.Error("UpdateSector received empty request")
		return apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	fieldsToUpdate := make(map[string]interface{})
	if strings.TrimSpace(req.Name) != "" {
		fieldsToUpdate["name"] = strings.TrimSpace(req.Name)
	}
	if req.Description != "" {
		fieldsToUpdate["description"] = req.Description
	}

	if len(fieldsToUpdate) == 0 {
		logger.Error("UpdateSector received request with no fields to update")
		return apperrors.NewInvalidRequestError("at least one field must be provided for update", nil)
	}

	if err := s.repository.UpdateSector(ctx, id, fieldsToUpdate); err != nil {
		logger.Error("Failed to update sector", "id", id, "error", err)
		return err
	}

	return nil
}
