package letters

import (
	"context"
	"strings"
	"time"

	"github.com/akeren/church-admin-api/internal/log"
	"github.com/akeren/church-admin-api/internal/models"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// timeNow is swapped in tests that pin rendering and issue timestamps.
var timeNow = time.Now

type LetterService interface {
	// CreateTemplate registers a reusable form-letter template.
	CreateTemplate(ctx context.Context, req *CreateTemplateRequest) (*TemplateResponse, error)

	// FindTemplateByID retrieves one template.
	FindTemplateByID(ctx context.Context, id uint) (*TemplateResponse, error)

	// GetAllTemplates retrieves all templates.
	GetAllTemplates(ctx context.Context) ([]TemplateResponse, error)

	// UpdateTemplate updates template fields. Issued letters keep their
	// frozen rendering.
	UpdateTemplate(ctx context.Context, id uint, req *UpdateTemplateRequest) error

	// GenerateLetter renders a template against a member and stores the
	// result as a DRAFT with a fresh letter number.
	GenerateLetter(ctx context.Context, req *GenerateLetterRequest) (*LetterResponse, error)

	// FindLetterByID retrieves one letter.
	FindLetterByID(ctx context.Context, id uint) (*LetterResponse, error)

	// ListLetters retrieves a filtered page of letters, newest first.
	ListLetters(ctx context.Context, query *ListLettersQuery) (*LetterListResponse, error)

	// IssueLetter marks a DRAFT letter ISSUED.
	IssueLetter(ctx context.Context, id uint) error
}

type letterService struct {
	logger     *log.Logger
	repository LetterRepository
}

func NewLetterService(logger *log.Logger, repository LetterRepository) LetterService {
	return &letterService{logger: logger, repository: repository}
}

func (s *letterService) CreateTemplate(ctx context.Context, req *CreateTemplateRequest) (*TemplateResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("CreateTemplate received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	// Reject templates that cannot render before they are stored.
	probe := renderContext(&models.Member{}, timeNow())
	if _, err := renderTemplate("subject", req.Subject, probe); err != nil {
		return nil, err
	}
	if _, err := renderTemplate("body", req.Body, probe); err != nil {
		return nil, err
	}

	template, err := s.repository.CreateTemplate(ctx, ToTemplateModel(req))
	if err != nil {
		logger.Error("Failed to create template", "name", req.Name, "error", err)
		return nil, err
	}

	response := ToTemplateResponse(template)
	return &response, nil
}

func (s *letterService) FindTemplateByID(ctx context.Context, id uint) (*TemplateResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("FindTemplateByID received invalid ID")
		return nil, apperrors.NewInvalidRequestError("invalid template ID", nil)
	}

	template, err := s.repository.FindTemplateByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find template", "id", id, "error", err)
		return nil, err
	}

	response := ToTemplateResponse(template)
	return &response, nil
}

func (s *letterService) GetAllTemplates(ctx context.Context) ([]TemplateResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	templates, err := s.repository.GetAllTemplates(ctx)
	if err != nil {
		logger.Error("Failed to get templates", "error", err)
		return nil, err
	}

	responses := make([]TemplateResponse, 0, len(templates))
	for _, template := range templates {
		responses = append(responses, ToTemplateResponse(template))
	}

	return responses, nil
}

func (s *letterService) UpdateTemplate(ctx context.Context, id uint, req *UpdateTemplateRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("UpdateTemplate received invalid ID")
		return apperrors.NewInvalidRequestError("invalid template ID", nil)
	}

	if req == nil {
		logger.Error("UpdateTemplate received empty request")
		return apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	probe := renderContext(&models.Member{}, timeNow())

	fieldsToUpdate := make(map[string]interface{})
	if strings.TrimSpace(req.Name) != "" {
		fieldsToUpdate["name"] = strings.TrimSpace(req.Name)
	}
	if req.Subject != "" {
		if _, err := renderTemplate("subject", req.Subject, probe); err != nil {
			return err
		}
		fieldsToUpdate["subject"] = req.Subject
	}
	if req.Body != "" {
		if _, err := renderTemplate("body", req.Body, probe); err != nil {
			return err
		}
		fieldsToUpdate["body"] = req.Body
	}
	if req.Description != "" {
		fieldsToUpdate["description"] = req.Description
	}

	if len(fieldsToUpdate) == 0 {
		logger.Error("UpdateTemplate received request with no fields to update")
		return apperrors.NewInvalidRequestError("at least one field must be provided for update", nil)
	}

	if err := s.repository.UpdateTemplate(ctx, id, fieldsToUpdate); err != nil {
		logger.Error("Failed to update template", "id", id, "error", err)
		return err
	}

	return nil
}

func (s *letterService) GenerateLetter(ctx context.Context, req *GenerateLetterRequest) (*LetterResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil || req.TemplateID == 0 || req.MemberID == 0 {
		logger.Error("GenerateLetter received invalid request")
		return nil, apperrors.NewInvalidRequestError("template and member are required", nil)
	}

	template, err := s.repository.FindTemplateByID(ctx, req.TemplateID)
	if err != nil {
		return nil, err
	}

	member, err := s.repository.FindMemberContext(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}

	data := renderContext(member, timeNow())
	subject, err := renderTemplate("subject", template.Subject, data)
	if err != nil {
		logger.Error("Failed to render subject", "template_id", template.ID, "error", err)
		return nil, err
	}
	body, err := renderTemplate("body", template.Body, data)
	if err != nil {
		logger.Error("Failed to render body", "template_id", template.ID, "error", err)
		return nil, err
	}

	letter, err := s.repository.CreateLetter(ctx, &models.Letter{
		TemplateID: template.ID,
		MemberID:   member.ID,
		Subject:    subject,
		Body:       body,
		Status:     models.LetterStatusDraft,
	})
	if err != nil {
		logger.Error("Failed to create letter", "template_id", template.ID, "member_id", member.ID, "error", err)
		return nil, err
	}

	logger.Info("Letter generated", "letter_no", letter.LetterNo, "member_id", member.ID)

	response := ToLetterResponse(letter)
	response.MemberName = member.FullName
	return &response, nil
}

func (s *letterService) FindLetterByID(ctx context.Context, id uint) (*LetterResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("FindLetterByID received invalid ID")
		return nil, apperrors.NewInvalidRequestError("invalid letter ID", nil)
	}

	letter, err := s.repository.FindLetterByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find letter", "id", id, "error", err)
		return nil, err
	}

	response := ToLetterResponse(letter)
	return &response, nil
}

func (s *letterService) ListLetters(ctx context.Context, query *ListLettersQuery) (*LetterListResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if query == nil {
		query = &ListLettersQuery{}
	}

	limit, offset := normalizePage(query.Limit, query.Offset)

	letters, total, err := s.repository.ListLetters(ctx, LetterFilter{
		MemberID: query.MemberID,
		Status:   query.Status,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		logger.Error("Failed to list letters", "error", err)
		return nil, err
	}

	items := make([]LetterResponse, 0, len(letters))
	for _, letter := range letters {
		items = append(items, ToLetterResponse(letter))
	}

	return &LetterListResponse{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *letterService) IssueLetter(ctx context.Context, id uint) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if id == 0 {
		logger.Error("IssueLetter received invalid ID")
		return apperrors.NewInvalidRequestError("invalid letter ID", nil)
	}

	if err := s.repository.IssueLetter(ctx, id, timeNow()); err != nil {
		logger.Error("Failed to issue letter", "id", id, "error", err)
		return err
	}

	logger.Info("Letter issued", "id", id)
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
