package session_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/memcache"
)

var Module = fx.Provide(
	ProvideSessionRepository,
	ProvideSessionService,
	ProvideSessionController)

func ProvideSessionRepository(db *gorm.DB) repositories.SessionRepositoryInterface {
	return repositories.NewSessionRepository(db)
}

func ProvideSessionService(
	sessionRepo repositories.SessionRepositoryInterface,
	planCache repositories.PlanCacheRepositoryInterface,
	planStore *memcache.PlanStore,
) services.SessionServiceInterface {
	return services.NewSessionService(sessionRepo, planCache, planStore)
}

func ProvideSessionController(
	sessionService services.SessionServiceInterface,
) *controllers.SessionController {
	return controllers.NewSessionController(sessionService)
}
