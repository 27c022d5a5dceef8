package members

import (
	"strconv"
	"time"

	"github.com/akeren/church-admin-api/config/router"
	"github.com/akeren/church-admin-api/internal/log"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
	"github.com/akeren/church-admin-api/pkg/factory"
	"github.com/akeren/church-admin-api/pkg/ratelimit"
	"gorm.io/gorm"
)

// operatorHeader carries the identity recorded on sector history rows.
const operatorHeader = "X-Operator"

func NewMemberController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"MemberController",
		"v1",
		"/members",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewMemberRepository(db)
			service := NewMemberService(logger, repository)

			importLimiter := createImportRateLimiter()

			rs.AddPostHandler(c, nil, "", createMemberHandler(service))
			rs.AddGetHandler(c, nil, "", listMembersHandler(service))
			rs.AddGetHandler(c, nil, "/import/template", importTemplateHandler(service))
			rs.AddPostHandler(c, importLimiter, "/import", importMembersHandler(service))
			rs.AddGetHandler(c, nil, "/:id", getMemberHandler(service))
			rs.AddPutHandler(c, nil, "/:id", updateMemberHandler(service))
			rs.AddDeleteHandler(c, nil, "/:id", deactivateMemberHandler(service))
			rs.AddPostHandler(c, nil, "/:id/transfer", transferMemberHandler(service))
			rs.AddGetHandler(c, nil, "/:id/history", sectorHistoryHandler(service))
		},
	)
}

func createImportRateLimiter() ratelimit.RateLimiter {
	const importRequestsPerMinute = 5 // Batches are heavy; keep this tight.

	limiterFactory := factory.NewDefaultRateLimiterFactory(importRequestsPerMinute, time.Minute, nil, nil)
	return limiterFactory.CreateRateLimiter()
}

func operatorFrom(ctx *router.RequestContext) string {
	if operator := ctx.GetHeader(operatorHeader); operator != "" {
		return operator
	}
	return "system"
}

func createMemberHandler(service MemberService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateMemberRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.CreateMember(ctx.Request.Context(), &req, operatorFrom(ctx))
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(response, "Member")
	}
}

func listMembersHandler(service MemberService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var query ListMembersQuery
		if err := ctx.ShouldBindQuery(&query); err != nil {
			logger.Error("Failed to bind query", "error", err)
			return router.BadRequestResult("Invalid query parameters", nil)
		}

		response, err := service.ListMembers(ctx.Request.Context(), &query)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Members retrieved successfully")
	}
}

func getMemberHandler(service MemberService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		response, err := service.FindMemberByID(ctx.Request.Context(), id)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Member retrieved successfully")
	}
}

func updateMemberHandler(service MemberService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		var req UpdateMemberRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		if err := service.UpdateMember(ctx.Request.Context(), id, &req); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Member updated successfully")
	}
}

func deactivateMemberHandler(service MemberService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		// Body is optional; a missing body means default reason.
		var req DeactivateMemberRequest
		_ = ctx.ShouldBindJSON(&req)

		if err := service.DeactivateMember(ctx.Request.Context(), id, &req); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Member deactivated successfully")
	}
}

func transferMemberHandler(service MemberService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		var req TransferMemberRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		if err := service.TransferMember(ctx.Request.Context(), id, &req, operatorFrom(ctx)); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Member transferred successfully")
	}
}

func sectorHistoryHandler(service MemberService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		limit := 0
		if raw := ctx.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return router.BadRequestResult("Invalid limit parameter", nil)
			}
			limit = parsed
		}

		response, err := service.GetSectorHistory(ctx.Request.Context(), id, limit)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Sector history retrieved successfully")
	}
}

func importMembersHandler(service MemberService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req ImportMembersRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		report, err := service.ImportMembers(ctx.Request.Context(), &req, operatorFrom(ctx))
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		if len(report.Errors) > 0 {
			return router.BadRequestResult("Import rejected; no rows were created", report)
		}

		return router.CreatedResult(report, "Member batch")
	}
}

func importTemplateHandler(service MemberService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		return router.OKResult(service.ImportTemplate(), "Import template retrieved successfully")
	}
}
