package members

import (
	"context"
	"strings"
	"time"

	"github.com/akeren/church-admin-api/internal/log"
	"github.com/akeren/church-admin-api/internal/models"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
)

const (
	defaultPageSize     = 20
	maxPageSize         = 100
	defaultHistoryLimit = 10

	defaultDeactivationReason = "Deactivated by admin"
	defaultTransferReason     = "Sector transfer"
)

// timeNow is swapped in tests that pin transfer and age calculations.
var timeNow = time.Now

type MemberService interface {
	// CreateMember registers a member: cross-field validation, phone
	// normalization, registration-number allocation and the initial sector
	// history row.
	CreateMember(ctx context.Context, req *CreateMemberRequest, recordedBy string) (*MemberResponse, error)

	// FindMemberByID retrieves one member.
	FindMemberByID(ctx context.Context, id uint) (*MemberResponse, error)

	// ListMembers retrieves a filtered page of members.
	ListMembers(ctx context.Context, query *ListMembersQuery) (*MemberListResponse, error)

	// UpdateMember updates member fields. The registration number is
	// immutable.
	UpdateMember(ctx context.Context, id uint, req *UpdateMemberRequest) error

	// DeactivateMember soft-deletes a member with a reason.
	DeactivateMember(ctx context.Context, id uint, req *DeactivateMemberRequest) error

	// TransferMember moves a member to another sector and records the move.
	TransferMember(ctx context.Context, id uint, req *TransferMemberRequest, recordedBy string) error

	// GetSectorHistory returns a member's sector history, newest first.
	GetSectorHistory(ctx context.Context, id uint, limit int) ([]SectorHistoryResponse, error)

	// ImportMembers registers a batch of members all-or-nothing and reports
	// per-row errors.
	ImportMembers(ctx context.Context, req *ImportMembersRequest, recordedBy string) (*ImportReport, error)

	// ImportTemplate documents the expected import row shape.
	ImportTemplate() *ImportTemplateResponse
}

type memberService struct {
	logger     *log.Logger
	repository MemberRepository
}

func NewMemberService(logger *log.Logger, repository MemberRepository) MemberService {
	return &memberService{logger: logger, repository: repository}
}

func (s *memberService) CreateMember(ctx context.Context, req *CreateMemberRequest, recordedBy string) (*MemberResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("CreateMember received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	if req.FamilyRole == models.FamilyRoleChild {
		if req.BirthOrder == nil {
			return nil, apperrors.NewInvalidRequestError("birth order is required for children", nil)
		}
	} else if req.BirthOrder != nil {
		return nil, apperrors.NewInvalidRequestError("birth order is only allowed for children", nil)
	}

	if req.BirthOrder != nil {
		taken, err := s.repository.BirthOrderTaken(ctx, req.FamilyID, *req.BirthOrder, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, NewBirthOrderTakenError()
		}
	}

	phone, err := NormalizePhoneNumber(req.PhoneNumber)
	if err != nil {
		logger.Error("CreateMember received invalid phone number", "phone", req.PhoneNumber)
		return nil, NewInvalidPhoneNumberError()
	}

	dateOfBirth, err := parseDateOnly(req.DateOfBirth)
	if err != nil || dateOfBirth == nil {
		return nil, apperrors.NewInvalidRequestError("invalid date of birth", err)
	}
	baptismDate, err := parseDateOnly(req.BaptismDate)
	if err != nil {
		return nil, apperrors.NewInvalidRequestError("invalid baptism date", err)
	}
	sidiDate, err := parseDateOnly(req.SidiDate)
	if err != nil {
		return nil, apperrors.NewInvalidRequestError("invalid sidi date", err)
	}
	marriageDate, err := parseDateOnly(req.MarriageDate)
	if err != nil {
		return nil, apperrors.NewInvalidRequestError("invalid marriage date", err)
	}

	if err := validateSacramentDates(*dateOfBirth, baptismDate, sidiDate); err != nil {
		return nil, err
	}

	membershipStatus := req.MembershipStatus
	if membershipStatus == "" {
		membershipStatus = models.MembershipStatusFull
	}

	member := &models.Member{
		FamilyID:         req.FamilyID,
		CurrentSectorID:  req.CurrentSectorID,
		FullName:         strings.TrimSpace(req.FullName),
		Gender:           req.Gender,
		FamilyRole:       req.FamilyRole,
		BirthOrder:       req.BirthOrder,
		BloodType:        req.BloodType,
		DateOfBirth:      *dateOfBirth,
		PlaceOfBirth:     req.PlaceOfBirth,
		PhoneNumber:      phone,
		Street:           req.Street,
		City:             req.City,
		BaptismDate:      baptismDate,
		SidiDate:         sidiDate,
		MarriageDate:     marriageDate,
		MembershipStatus: membershipStatus,
		IsActive:         true,
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		member.Email = &email
	}

	created, err := s.repository.CreateMember(ctx, member, recordedBy)
	if err != nil {
		logger.Error("Failed to create member", "full_name", member.FullName, "error", err)
		return nil, err
	}

	logger.Info("Member registered", "member_id", created.MemberID, "full_name", created.FullName)

	response := ToMemberResponse(created, timeNow())
	return &response, nil
}

func (s *memberService) FindMemberByID(ctx context.Context, id uint) (*MemberResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("FindMemberByID received invalid ID")
		return nil, apperrors.NewInvalidRequestError("invalid member ID", nil)
	}

	member, err := s.repository.FindMemberByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find member", "id", id, "error", err)
		return nil, err
	}

	response := ToMemberResponse(member, timeNow())
	return &response, nil
}

func (s *memberService) ListMembers(ctx context.Context, query *ListMembersQuery) (*MemberListResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if query == nil {
		query = &ListMembersQuery{}
	}

	limit, offset := normalizePage(query.Limit, query.Offset)

	membersList, total, err := s.repository.ListMembers(ctx, MemberFilter{
		Q:                strings.TrimSpace(query.Q),
		SectorID:         query.SectorID,
		MembershipStatus: query.MembershipStatus,
		IsActive:         query.IsActive,
		Limit:            limit,
		Offset:           offset,
	})
	if err != nil {
		logger.Error("Failed to list members", "error", err)
		return nil, err
	}

	now := timeNow()
	items := make([]MemberResponse, 0, len(membersList))
	for _, member := range membersList {
		items = append(items, ToMemberResponse(member, now))
	}

	return &MemberListResponse{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *memberService) UpdateMember(ctx context.Context, id uint, req *UpdateMemberRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("UpdateMember received invalid ID")
		return apperrors.NewInvalidRequestError("invalid member ID", nil)
	}

	if req == nil {
		logger.Error("UpdateMember received empty request")
		return apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	current, err := s.repository.FindMemberByID(ctx, id)
	if err != nil {
		return err
	}

	fieldsToUpdate := make(map[string]interface{})

	familyID := current.FamilyID
	if req.FamilyID != 0 && req.FamilyID != current.FamilyID {
		familyID = req.FamilyID
		fieldsToUpdate["family_id"] = req.FamilyID
	}
	if strings.TrimSpace(req.FullName) != "" {
		fieldsToUpdate["full_name"] = strings.TrimSpace(req.FullName)
	}
	if req.Gender != "" {
		fieldsToUpdate["gender"] = req.Gender
	}

	familyRole := current.FamilyRole
	if req.FamilyRole != "" {
		familyRole = req.FamilyRole
		fieldsToUpdate["family_role"] = req.FamilyRole
	}

	birthOrder := current.BirthOrder
	if req.BirthOrder != nil {
		birthOrder = req.BirthOrder
		fieldsToUpdate["birth_order"] = *req.BirthOrder
	}

	if familyRole == models.FamilyRoleChild {
		if birthOrder == nil {
			return apperrors.NewInvalidRequestError("birth order is required for children", nil)
		}
		taken, err := s.repository.BirthOrderTaken(ctx, familyID, *birthOrder, id)
		if err != nil {
			return err
		}
		if taken {
			return NewBirthOrderTakenError()
		}
	} else if birthOrder != nil {
		if req.BirthOrder != nil {
			return apperrors.NewInvalidRequestError("birth order is only allowed for children", nil)
		}
		// Role moved away from CHILD; clear the stale order.
		fieldsToUpdate["birth_order"] = nil
	}

	if req.BloodType != "" {
		fieldsToUpdate["blood_type"] = req.BloodType
	}
	if req.PlaceOfBirth != "" {
		fieldsToUpdate["place_of_birth"] = req.PlaceOfBirth
	}
	if req.Street != "" {
		fieldsToUpdate["street"] = req.Street
	}
	if req.City != "" {
		fieldsToUpdate["city"] = req.City
	}
	if req.MembershipStatus != "" {
		fieldsToUpdate["membership_status"] = req.MembershipStatus
	}

	if req.PhoneNumber != "" {
		phone, err := NormalizePhoneNumber(req.PhoneNumber)
		if err != nil {
			return NewInvalidPhoneNumberError()
		}
		fieldsToUpdate["phone_number"] = phone
	}
	if req.Email != "" {
		fieldsToUpdate["email"] = strings.ToLower(strings.TrimSpace(req.Email))
	}

	dateOfBirth := current.DateOfBirth
	if req.DateOfBirth != "" {
		parsed, err := parseDateOnly(req.DateOfBirth)
		if err != nil || parsed == nil {
			return apperrors.NewInvalidRequestError("invalid date of birth", err)
		}
		dateOfBirth = *parsed
		fieldsToUpdate["date_of_birth"] = *parsed
	}

	baptismDate := current.BaptismDate
	if req.BaptismDate != "" {
		parsed, err := parseDateOnly(req.BaptismDate)
		if err != nil {
			return apperrors.NewInvalidRequestError("invalid baptism date", err)
		}
		baptismDate = parsed
		fieldsToUpdate["baptism_date"] = parsed
	}

	sidiDate := current.SidiDate
	if req.SidiDate != "" {
		parsed, err := parseDateOnly(req.SidiDate)
		if err != nil {
			return apperrors.NewInvalidRequestError("invalid sidi date", err)
		}
		sidiDate = parsed
		fieldsToUpdate["sidi_date"] = parsed
	}

	if req.MarriageDate != "" {
		parsed, err := parseDateOnly(req.MarriageDate)
		if err != nil {
			return apperrors.NewInvalidRequestError("invalid marriage date", err)
		}
		fieldsToUpdate["marriage_date"] = parsed
	}

	if err := validateSacramentDates(dateOfBirth, baptismDate, sidiDate); err != nil {
		return err
	}

	if req.IsDeceased != nil && *req.IsDeceased {
		deceasedDate, err := parseDateOnly(req.DeceasedDate)
		if err != nil || deceasedDate == nil {
			return apperrors.NewInvalidRequestError("deceased date is required when marking a member deceased", err)
		}
		if deceasedDate.Before(dateOfBirth) {
			return apperrors.NewInvalidRequestError("deceased date cannot be before date of birth", nil)
		}
		fieldsToUpdate["is_deceased"] = true
		fieldsToUpdate["deceased_date"] = deceasedDate
		if req.DeceasedReason != "" {
			fieldsToUpdate["deceased_reason"] = req.DeceasedReason
		}
	}

	if len(fieldsToUpdate) == 0 {
		logger.Error("UpdateMember received request with no fields to update")
		return apperrors.NewInvalidRequestError("at least one field must be provided for update", nil)
	}

	if err := s.repository.UpdateMember(ctx, id, fieldsToUpdate); err != nil {
		logger.Error("Failed to update member", "id", id, "error", err)
		return err
	}

	return nil
}

func (s *memberService) DeactivateMember(ctx context.Context, id uint, req *DeactivateMemberRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("DeactivateMember received invalid ID")
		return apperrors.NewInvalidRequestError("invalid member ID", nil)
	}

	current, err := s.repository.FindMemberByID(ctx, id)
	if err != nil {
		return err
	}
	if !current.IsActive {
		return apperrors.NewConflictError("member is already inactive", nil)
	}

	reason := defaultDeactivationReason
	if req != nil && strings.TrimSpace(req.Reason) != "" {
		reason = strings.TrimSpace(req.Reason)
	}

	err = s.repository.UpdateMember(ctx, id, map[string]interface{}{
		"is_active":       false,
		"inactive_reason": reason,
	})
	if err != nil {
		logger.Error("Failed to deactivate member", "id", id, "error", err)
		return err
	}

	logger.Info("Member deactivated", "id", id, "reason", reason)
	return nil
}

func (s *memberService) TransferMember(ctx context.Context, id uint, req *TransferMemberRequest, recordedBy string) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("TransferMember received invalid ID")
		return apperrors.NewInvalidRequestError("invalid member ID", nil)
	}
	if req == nil || req.ToSectorID == 0 {
		logger.Error("TransferMember received invalid target sector")
		return apperrors.NewInvalidRequestError("target sector is required", nil)
	}

	reason := defaultTransferReason
	if strings.TrimSpace(req.Reason) != "" {
		reason = strings.TrimSpace(req.Reason)
	}

	err := s.repository.TransferSector(ctx, TransferCommand{
		MemberID:     id,
		ToSectorID:   req.ToSectorID,
		Reason:       reason,
		Notes:        req.Notes,
		RecordedBy:   recordedBy,
		TransferDate: timeNow(),
	})
	if err != nil {
		logger.Error("Failed to transfer member", "id", id, "to_sector_id", req.ToSectorID, "error", err)
		return err
	}

	logger.Info("Member transferred", "id", id, "to_sector_id", req.ToSectorID, "recorded_by", recordedBy)
	return nil
}

func (s *memberService) GetSectorHistory(ctx context.Context, id uint, limit int) ([]SectorHistoryResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("GetSectorHistory received invalid ID")
		return nil, apperrors.NewInvalidRequestError("invalid member ID", nil)
	}

	if limit <= 0 || limit > maxPageSize {
		limit = defaultHistoryLimit
	}

	if _, err := s.repository.FindMemberByID(ctx, id); err != nil {
		return nil, err
	}

	history, err := s.repository.GetSectorHistory(ctx, id, limit)
	if err != nil {
		logger.Error("Failed to fetch sector history", "id", id, "error", err)
		return nil, err
	}

	responses := make([]SectorHistoryResponse, 0, len(history))
	for _, entry := range history {
		responses = append(responses, ToSectorHistoryResponse(entry))
	}

	return responses, nil
}

func (s *memberService) ImportMembers(ctx context.Context, req *ImportMembersRequest, recordedBy string) (*ImportReport, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil || len(req.Rows) == 0 {
		logger.Error("ImportMembers received empty batch")
		return nil, apperrors.NewInvalidRequestError("import batch cannot be empty", nil)
	}
	if len(req.Rows) > maxImportRows {
		return nil, apperrors.NewInvalidRequestError("import batch exceeds the row limit", nil)
	}

	report := &ImportReport{TotalRows: len(req.Rows)}

	staged := make([]StagedMemberRow, 0, len(req.Rows))
	for i := range req.Rows {
		rowNumber := i + 1
		stagedRow, err := stageImportRow(rowNumber, &req.Rows[i])
		if err != nil {
			report.Errors = append(report.Errors, ImportRowError{Row: rowNumber, Message: err.Error()})
			continue
		}
		staged = append(staged, *stagedRow)
	}

	// Any invalid row fails the whole batch before the database is touched.
	if len(report.Errors) > 0 {
		logger.Info("Import rejected during validation", "rows", report.TotalRows, "errors", len(report.Errors))
		return report, nil
	}

	created, rowErrors, err := s.repository.ImportMembers(ctx, staged, recordedBy)
	if err != nil {
		logger.Error("Import failed", "error", err)
		return nil, err
	}
	if len(rowErrors) > 0 {
		report.Errors = rowErrors
		logger.Info("Import rolled back", "rows", report.TotalRows, "errors", len(rowErrors))
		return report, nil
	}

	report.Created = created
	logger.Info("Import committed", "rows", report.TotalRows, "created", len(created))
	return report, nil
}

func (s *memberService) ImportTemplate() *ImportTemplateResponse {
	return importTemplate()
}

func validateSacramentDates(dateOfBirth time.Time, baptismDate, sidiDate *time.Time) error {
	if baptismDate != nil && baptismDate.Before(dateOfBirth) {
		return apperrors.NewInvalidRequestError("baptism date cannot be before date of birth", nil)
	}
	if sidiDate != nil {
		if baptismDate == nil {
			return apperrors.NewInvalidRequestError("sidi date requires a baptism date", nil)
		}
		if sidiDate.Before(*baptismDate) {
			return apperrors.NewInvalidRequestError("sidi date cannot be before baptism date", nil)
		}
	}
	return nil
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
