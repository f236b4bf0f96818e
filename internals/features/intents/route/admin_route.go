package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egoejo_backend/internals/features/intents/controller"
)

func IntentAdminRoutes(api fiber.Router, db *gorm.DB) {
	adminCtrl := controller.NewIntentAdminController(db)

	admin := api.Group("/intents")
	admin.Get("/", adminCtrl.List)
	admin.Get("/export", adminCtrl.ExportCSV)
	admin.Delete("/:id", adminCtrl.Delete)
}
