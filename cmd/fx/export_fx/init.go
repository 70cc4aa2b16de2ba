package export_fx

import (
	"go.uber.org/fx"

	"voyago/internal/api/controllers"
	"voyago/internal/services"
	"voyago/pkg/memcache"
)

var Module = fx.Provide(
	ProvideExportService,
	ProvideExportController)

func ProvideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}

func ProvideExportController(
	exportService services.ExportServiceInterface,
	sessionService services.SessionServiceInterface,
	planStore *memcache.PlanStore,
) *controllers.ExportController {
	return controllers.NewExportController(exportService, sessionService, planStore)
}
