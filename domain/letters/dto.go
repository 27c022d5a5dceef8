package letters

import (
	"github.com/akeren/church-admin-api/internal/models"
	"github.com/akeren/church-admin-api/pkg/constants"
)

type CreateTemplateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Subject     string `json:"subject" binding:"required,min=1,max=255"`
	Body        string `json:"body" binding:"required,min=1"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

type UpdateTemplateRequest struct {
	Name        string `json:"name" binding:"omitempty,min=1,max=255"`
	Subject     string `json:"subject" binding:"omitempty,min=1,max=255"`
	Body        string `json:"body" binding:"omitempty,min=1"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

type GenerateLetterRequest struct {
	TemplateID uint `json:"template_id" binding:"required"`
	MemberID   uint `json:"member_id" binding:"required"`
}

type ListLettersQuery struct {
	MemberID uint   `form:"member_id"`
	Status   string `form:"status" binding:"omitempty,oneof=DRAFT ISSUED"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

type TemplateResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type LetterResponse struct {
	ID         uint   `json:"id"`
	LetterNo   string `json:"letter_no"`
	TemplateID uint   `json:"template_id"`
	MemberID   uint   `json:"member_id"`
	MemberName string `json:"member_name,omitempty"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	Status     string `json:"status"`
	IssuedAt   string `json:"issued_at,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type LetterListResponse struct {
	Items  []LetterResponse `json:"items"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// ========================================
// Mappers
// ========================================

func ToTemplateModel(req *CreateTemplateRequest) *models.LetterTemplate {
	if req == nil {
		return nil
	}
	return &models.LetterTemplate{
		Name:        req.Name,
		Subject:     req.Subject,
		Body:        req.Body,
		Description: req.Description,
	}
}

func ToTemplateResponse(template *models.LetterTemplate) TemplateResponse {
	if template == nil {
		return TemplateResponse{}
	}
	return TemplateResponse{
		ID:          template.ID,
		Name:        template.Name,
		Subject:     template.Subject,
		Body:        template.Body,
		Description: template.Description,
		CreatedAt:   template.CreatedAt.Format(constants.RFC3339DateTimeFormat),
		UpdatedAt:   template.UpdatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}

func ToLetterResponse(letter *models.Letter) LetterResponse {
	if letter == nil {
		return LetterResponse{}
	}
	resp := LetterResponse{
		ID:         letter.ID,
		LetterNo:   letter.LetterNo,
		TemplateID: letter.TemplateID,
		MemberID:   letter.MemberID,
		Subject:    letter.Subject,
		Body:       letter.Body,
		Status:     letter.Status,
		CreatedAt:  letter.CreatedAt.Format(constants.RFC3339DateTimeFormat),
	}
	if letter.Member.FullName != "" {
		resp.MemberName = letter.Member.FullName
	}
	if letter.IssuedAt != nil {
		resp.IssuedAt = letter.IssuedAt.Format(constants.RFC3339DateTimeFormat)
	}
	return resp
}
