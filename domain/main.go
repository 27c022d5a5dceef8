package domain

import (
	"github.com/akeren/church-admin-api/config"
	"github.com/akeren/church-admin-api/domain/attendance"
	"github.com/akeren/church-admin-api/domain/dashboard"
	"github.com/akeren/church-admin-api/domain/families"
	"github.com/akeren/church-admin-api/domain/letters"
	"github.com/akeren/church-admin-api/domain/members"
	"github.com/akeren/church-admin-api/domain/monitoring"
	"github.com/akeren/church-admin-api/domain/sectors"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache))
	appConfig.RouterService.MountController(sectors.NewSectorController(appConfig.DB, appConfig.Logger))
	appConfig.RouterService.MountController(families.NewFamilyController(appConfig.DB, appConfig.Logger))
	appConfig.RouterService.MountController(members.NewMemberController(appConfig.DB, appConfig.Logger))
	appConfig.RouterService.MountController(attendance.NewAttendanceController(appConfig.DB, appConfig.Logger))
	appConfig.RouterService.MountController(letters.NewLetterController(appConfig.DB, appConfig.Logger))
	appConfig.RouterService.MountController(dashboard.NewDashboardController(appConfig.DB, appConfig.Logger, appConfig.Cache))
}
