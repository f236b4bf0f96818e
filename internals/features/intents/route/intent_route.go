package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egoejo_backend/internals/features/intents/controller"
	"egoejo_backend/internals/features/intents/service"
	"egoejo_backend/internals/middlewares"
)

// AllIntentRoutes: endpoint public du formulaire d'intention.
// Enregistré en All: le contrôleur gère lui-même le 405, l'OPTIONS
// s'arrête dans l'OriginGuard du groupe public.
func AllIntentRoutes(api fiber.Router, db *gorm.DB) {
	intentCtrl := controller.NewIntentController(
		service.NewGormIntentStore(db),
		service.NewNotifier(),
	)

	g := api.Group("/intents", middlewares.SubmitRateLimiter())
	g.All("/", intentCtrl.Submit)
}
