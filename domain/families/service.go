package families

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akeren/church-admin-api/internal/log"
	"github.com/akeren/church-admin-api/internal/models"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	defaultDissolutionReason = "Dissolved by admin"
)

// timeNow is swapped in tests that pin dissolution dates.
var timeNow = time.Now

type FamilyService interface {
	// CreateFamily registers a new family in a sector with ACTIVE status.
	CreateFamily(ctx context.Context, req *CreateFamilyRequest) (*FamilyResponse, error)

	// FindFamilyByID retrieves a family with its members and a structure report.
	FindFamilyByID(ctx context.Context, id uint) (*FamilyDetailResponse, error)

	// ListFamilies retrieves a filtered page of families with member counts.
	ListFamilies(ctx context.Context, query *ListFamiliesQuery) (*FamilyListResponse, error)

	// UpdateFamily updates family fields; DISSOLVED requires a reason and date.
	UpdateFamily(ctx context.Context, id uint, req *UpdateFamilyRequest) error

	// DissolveFamily soft-deletes a family by marking it INACTIVE and stamping
	// the dissolution fields.
	DissolveFamily(ctx context.Context, id uint, req *DissolveFamilyRequest) error

	// ValidateStructure reports composition issues for a family.
	ValidateStructure(ctx context.Context, id uint) (*StructureReport, error)
}

type familyService struct {
	logger     *log.Logger
	repository FamilyRepository
}

func NewFamilyService(logger *log.Logger, repository FamilyRepository) FamilyService {
	return &familyService{logger: logger, repository: repository}
}

func (s *familyService) CreateFamily(ctx context.Context, req *CreateFamilyRequest) (*FamilyResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("CreateFamily received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	req.FamilyName = strings.TrimSpace(req.FamilyName)
	if req.FamilyName == "" {
		return nil, apperrors.NewInvalidRequestError("family name cannot be blank", nil)
	}

	family, err := s.repository.CreateFamily(ctx, ToFamilyModel(req))
	if err != nil {
		logger.Error("Failed to create family", "family_name", req.FamilyName, "error", err)
		return nil, err
	}

	response := ToFamilyResponse(family, 0)
	return &response, nil
}

func (s *familyService) FindFamilyByID(ctx context.Context, id uint) (*FamilyDetailResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("FindFamilyByID received invalid ID")
		return nil, apperrors.NewInvalidRequestError("invalid family ID", nil)
	}

	family, err := s.repository.FindFamilyDetail(ctx, id)
	if err != nil {
		logger.Error("Failed to find family", "id", id, "error", err)
		return nil, err
	}

	var activeCount int64
	members := make([]FamilyMemberSummary, 0, len(family.Members))
	for i := range family.Members {
		if family.Members[i].IsActive {
			activeCount++
		}
		members = append(members, ToFamilyMemberSummary(&family.Members[i]))
	}

	return &FamilyDetailResponse{
		FamilyResponse: ToFamilyResponse(family, activeCount),
		Members:        members,
		Structure:      buildStructureReport(family.Members),
	}, nil
}

func (s *familyService) ListFamilies(ctx context.Context, query *ListFamiliesQuery) (*FamilyListResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if query == nil {
		query = &ListFamiliesQuery{}
	}

	limit, offset := normalizePage(query.Limit, query.Offset)

	families, total, err := s.repository.ListFamilies(ctx, FamilyFilter{
		Q:        strings.TrimSpace(query.Q),
		SectorID: query.SectorID,
		Status:   query.Status,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		logger.Error("Failed to list families", "error", err)
		return nil, err
	}

	familyIDs := make([]uint, 0, len(families))
	for _, family := range families {
		familyIDs = append(familyIDs, family.ID)
	}

	counts, err := s.repository.ActiveMemberCounts(ctx, familyIDs)
	if err != nil {
		logger.Error("Failed to count family members", "error", err)
		return nil, err
	}

	items := make([]FamilyResponse, 0, len(families))
	for _, family := range families {
		items = append(items, ToFamilyResponse(family, counts[family.ID]))
	}

	return &FamilyListResponse{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *familyService) UpdateFamily(ctx context.Context, id uint, req *UpdateFamilyRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("UpdateFamily received invalid ID")
		return apperrors.NewInvalidRequestError("invalid family ID", nil)
	}

	if req == nil {
		logger.Error("UpdateFamily received empty request")
		return apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	fieldsToUpdate := make(map[string]interface{})
	if req.SectorID != 0 {
		fieldsToUpdate["sector_id"] = req.SectorID
	}
	if strings.TrimSpace(req.FamilyName) != "" {
		fieldsToUpdate["family_name"] = strings.TrimSpace(req.FamilyName)
	}
	if req.HeadOfFamilyID != nil {
		fieldsToUpdate["head_of_family_id"] = *req.HeadOfFamilyID
	}
	if req.Street != "" {
		fieldsToUpdate["street"] = req.Street
	}
	if req.City != "" {
		fieldsToUpdate["city"] = req.City
	}
	if req.Province != "" {
		fieldsToUpdate["province"] = req.Province
	}
	if req.PostalCode != "" {
		fieldsToUpdate["postal_code"] = req.PostalCode
	}
	if req.PhoneNumber != "" {
		fieldsToUpdate["phone_number"] = req.PhoneNumber
	}

	if req.FamilyStatus != "" {
		if !models.ValidFamilyStatus(req.FamilyStatus) {
			return apperrors.NewInvalidRequestError("invalid family status", nil)
		}
		if req.FamilyStatus == models.FamilyStatusDissolved {
			if strings.TrimSpace(req.DissolutionReason) == "" || req.DissolutionDate == "" {
				return apperrors.NewInvalidRequestError("dissolution reason and date are required for DISSOLVED status", nil)
			}
			dissolutionDate, err := parseDateOnly(req.DissolutionDate)
			if err != nil {
				return apperrors.NewInvalidRequestError("invalid dissolution date", err)
			}
			fieldsToUpdate["dissolution_reason"] = strings.TrimSpace(req.DissolutionReason)
			fieldsToUpdate["dissolution_date"] = dissolutionDate
		}
		fieldsToUpdate["family_status"] = req.FamilyStatus
	}

	if len(fieldsToUpdate) == 0 {
		logger.Error("UpdateFamily received request with no fields to update")
		return apperrors.NewInvalidRequestError("at least one field must be provided for update", nil)
	}

	if err := s.repository.UpdateFamily(ctx, id, fieldsToUpdate); err != nil {
		logger.Error("Failed to update family", "id", id, "error", err)
		return err
	}

	return nil
}

func (s *familyService) DissolveFamily(ctx context.Context, id uint, req *DissolveFamilyRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("DissolveFamily received invalid ID")
		return apperrors.NewInvalidRequestError("invalid family ID", nil)
	}

	family, err := s.repository.FindFamilyByID(ctx, id)
	if err != nil {
		return err
	}
	if family.FamilyStatus != models.FamilyStatusActive {
		return apperrors.NewConflictError("family is not active", nil)
	}

	reason := defaultDissolutionReason
	if req != nil && strings.TrimSpace(req.Reason) != "" {
		reason = strings.TrimSpace(req.Reason)
	}

	now := timeNow()
	err = s.repository.UpdateFamily(ctx, id, map[string]interface{}{
		"family_status":      models.FamilyStatusInactive,
		"dissolution_reason": reason,
		"dissolution_date":   &now,
	})
	if err != nil {
		logger.Error("Failed to dissolve family", "id", id, "error", err)
		return err
	}

	logger.Info("Family dissolved", "id", id, "reason", reason)
	return nil
}

func (s *familyService) ValidateStructure(ctx context.Context, id uint) (*StructureReport, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("ValidateStructure received invalid ID")
		return nil, apperrors.NewInvalidRequestError("invalid family ID", nil)
	}

	family, err := s.repository.FindFamilyDetail(ctx, id)
	if err != nil {
		logger.Error("Failed to find family", "id", id, "error", err)
		return nil, err
	}

	report := buildStructureReport(family.Members)
	return &report, nil
}

// buildStructureReport checks the one-living-husband, one-living-wife and
// unique-birth-order rules over a family's members.
func buildStructureReport(members []models.Member) StructureReport {
	report := StructureReport{Issues: []string{}}
	birthOrders := make(map[int]int)

	for i := range members {
		m := &members[i]
		if m.IsDeceased {
			continue
		}
		switch m.FamilyRole {
		case models.FamilyRoleHusband:
			report.LivingHusbands++
		case models.FamilyRoleWife:
			report.LivingWives++
		case models.FamilyRoleChild:
			report.LivingChildren++
			if m.BirthOrder != nil {
				birthOrders[*m.BirthOrder]++
			}
		}
	}

	if report.LivingHusbands > 1 {
		report.Issues = append(report.Issues, "family has more than one living husband")
	}
	if report.LivingWives > 1 {
		report.Issues = append(report.Issues, "family has more than one living wife")
	}
	for order, count := range birthOrders {
		if count > 1 {
			report.Issues = append(report.Issues, fmt.Sprintf("birth order %d is used by %d children", order, count))
		}
	}

	report.IsValid = len(report.Issues) == 0
	return report
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
