package families

import (
	"github.com/akeren/church-admin-api/config/router"
	"github.com/akeren/church-admin-api/internal/log"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
	"gorm.io/gorm"
)

func NewFamilyController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"FamilyController",
		"v1",
		"/families",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewFamilyRepository(db)
			service := NewFamilyService(logger, repository)

			rs.AddPostHandler(c, nil, "", createFamilyHandler(service))
			rs.AddGetHandler(c, nil, "", listFamiliesHandler(service))
			rs.AddGetHandler(c, nil, "/:id", getFamilyHandler(service))
			rs.AddPutHandler(c, nil, "/:id", updateFamilyHandler(service))
			rs.AddDeleteHandler(c, nil, "/:id", dissolveFamilyHandler(service))
			rs.AddGetHandler(c, nil, "/:id/structure", validateStructureHandler(service))
		},
	)
}

func createFamilyHandler(service FamilyService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateFamilyRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.CreateFamily(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(response, "Family")
	}
}

func listFamiliesHandler(service FamilyService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var query ListFamiliesQuery
		if err := ctx.ShouldBindQuery(&query); err != nil {
			logger.Error("Failed to bind query", "error", err)
			return router.BadRequestResult("Invalid query parameters", nil)
		}

		response, err := service.ListFamilies(ctx.Request.Context(), &query)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Families retrieved successfully")
	}
}

func getFamilyHandler(service FamilyService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		response, err := service.FindFamilyByID(ctx.Request.Context(), id)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Family retrieved successfully")
	}
}

func updateFamilyHandler(service FamilyService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		var req UpdateFamilyRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		if err := service.UpdateFamily(ctx.Request.Context(), id, &req); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Family updated successfully")
	}
}

func dissolveFamilyHandler(service FamilyService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		// Body is optional on dissolution; a missing body means default reason.
		var req DissolveFamilyRequest
		_ = ctx.ShouldBindJSON(&req)

		if err := service.DissolveFamily(ctx.Request.Context(), id, &req); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(nil, "Family dissolved successfully")
	}
}

func validateStructureHandler(service FamilyService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		response, err := service.ValidateStructure(ctx.Request.Context(), id)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Family structure validated successfully")
	}
}
