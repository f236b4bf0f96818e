package route

import (
	"github.com/gofiber/fiber/v2"

	"egoejo_backend/internals/features/uploads/controller"
	"egoejo_backend/internals/middlewares"
)

func AllUploadRoutes(api fiber.Router) {
	uploadCtrl := controller.NewUploadController()

	g := api.Group("/uploads", middlewares.UploadRateLimiter())
	g.Post("/document", uploadCtrl.UploadDocument)
}
