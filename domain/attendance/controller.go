package attendance

import (
	"github.com/akeren/church-admin-api/config/router"
	"github.com/akeren/church-admin-api/internal/log"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
	"gorm.io/gorm"
)

// operatorHeader carries the identity recorded on attendance rows.
const operatorHeader = "X-Operator"

func NewAttendanceController(
	db *gorm.DB,
	logger *log.Logger,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"AttendanceController",
		"v1",
		"/attendance",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewAttendanceRepository(db)
			service := NewAttendanceService(logger, repository)

			rs.AddPostHandler(c, nil, "/events", createEventHandler(service))
			rs.AddGetHandler(c, nil, "/events", listEventsHandler(service))
			rs.AddGetHandler(c, nil, "/events/:id", getEventHandler(service))
			rs.AddPostHandler(c, nil, "/events/:id/checkin", checkInHandler(service))
			rs.AddPostHandler(c, nil, "/events/:id/records", recordBatchHandler(service))
			rs.AddGetHandler(c, nil, "/events/:id/summary", summarizeEventHandler(service))
			rs.AddGetHandler(c, nil, "/members/:id", memberHistoryHandler(service))
		},
	)
}

func operatorFrom(ctx *router.RequestContext) string {
	if operator := ctx.GetHeader(operatorHeader); operator != "" {
		return operator
	}
	return "system"
}

func createEventHandler(service AttendanceService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateEventRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.CreateEvent(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(response, "Event")
	}
}

func listEventsHandler(service AttendanceService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var query ListEventsQuery
		if err := ctx.ShouldBindQuery(&query); err != nil {
			logger.Error("Failed to bind query", "error", err)
			return router.BadRequestResult("Invalid query parameters", nil)
		}

		response, err := service.ListEvents(ctx.Request.Context(), &query)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Events retrieved successfully")
	}
}

func getEventHandler(service AttendanceService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		response, err := service.FindEventByID(ctx.Request.Context(), id)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Event retrieved successfully")
	}
}

func checkInHandler(service AttendanceService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		var req CheckInRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.CheckIn(ctx.Request.Context(), id, &req, operatorFrom(ctx))
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(response, "Attendance record")
	}
}

func recordBatchHandler(service AttendanceService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		var req BulkRecordRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		if err := service.RecordBatch(ctx.Request.Context(), id, &req, operatorFrom(ctx)); err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.CreatedResult(nil, "Attendance batch")
	}
}

func summarizeEventHandler(service AttendanceService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		response, err := service.SummarizeEvent(ctx.Request.Context(), id)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Event summary retrieved successfully")
	}
}

func memberHistoryHandler(service AttendanceService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		id, errResult := router.ParseIDParam(ctx, "id")
		if errResult != nil {
			return errResult
		}

		response, err := service.MemberHistory(ctx.Request.Context(), id)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Member attendance retrieved successfully")
	}
}
