package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egoejo_backend/internals/features/checkout/controller"
	"egoejo_backend/internals/features/checkout/service"
)

func AllCheckoutRoutes(api fiber.Router, db *gorm.DB) {
	checkoutCtrl := controller.NewCheckoutController(db, service.NewSnapTokenizer())

	g := api.Group("/checkout")
	g.Post("/", checkoutCtrl.Create)
	// le provider n'envoie pas d'Origin, l'OriginGuard le laisse passer
	g.Post("/notification", checkoutCtrl.Webhook)
}
