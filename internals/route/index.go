// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkoutRoute "egoejo_backend/internals/features/checkout/route"
	intentRoute "egoejo_backend/internals/features/intents/route"
	uploadRoute "egoejo_backend/internals/features/uploads/route"
	"egoejo_backend/internals/middlewares"
	adminAuth "egoejo_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	// Tout le groupe passe par l'OriginGuard (liste blanche + pré-vol)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public", middlewares.OriginGuard())

	log.Println("[INFO] Setting up IntentRoutes...")
	intentRoute.AllIntentRoutes(public, db)

	log.Println("[INFO] Setting up UploadRoutes...")
	uploadRoute.AllUploadRoutes(public)

	log.Println("[INFO] Setting up CheckoutRoutes...")
	checkoutRoute.AllCheckoutRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT)...")
	admin := app.Group("/api/a", middlewares.CorsMiddleware(), adminAuth.AdminAuth())
	intentRoute.IntentAdminRoutes(admin, db)
}
