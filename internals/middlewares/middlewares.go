package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"egoejo_backend/internals/middlewares/logger"
)

// SetupMiddlewares branche la pile commune (ordre: recover → logger → limiter).
// Le CORS n'est pas global: sur /api/public c'est l'OriginGuard qui répond
// au pré-vol (200 corps vide), le middleware cors ne s'applique qu'à /api/a.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
