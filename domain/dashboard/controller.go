package dashboard

import (
	"github.com/akeren/church-admin-api/config"
	"github.com/akeren/church-admin-api/config/router"
	"github.com/akeren/church-admin-api/internal/log"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
	"gorm.io/gorm"
)

func NewDashboardController(
	db *gorm.DB,
	logger *log.Logger,
	cache config.Cache,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"DashboardController",
		"v1",
		"/dashboard",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewDashboardRepository(db)
			service := NewDashboardService(logger, repository, cache)

			rs.AddGetHandler(c, nil, "/stats", dashboardHandler(service))
		},
	)
}

func dashboardHandler(service DashboardService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.GetDashboard(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		return router.OKResult(response, "Dashboard retrieved successfully")
	}
}
