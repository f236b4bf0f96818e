package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"egoejo_backend/internals/configs"
	helper "egoejo_backend/internals/helpers"
)

// OriginGuard protège les endpoints publics de formulaire:
// - Origin hors liste blanche → 403, rien d'autre ne s'exécute
// - pré-vol OPTIONS → 200 corps vide
// - pas d'Origin (même origine, curl, sondes) → on laisse passer
func OriginGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)

		if origin != "" && !configs.OriginAllowed(origin) {
			log.Printf("[WARN] origine refusée: %s %s origin=%s", c.Method(), c.Path(), origin)
			return helper.JsonError(c, fiber.StatusForbidden, "Forbidden origin")
		}

		if origin != "" {
			c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
			c.Set(fiber.HeaderVary, fiber.HeaderOrigin)
		}

		if c.Method() == fiber.MethodOptions {
			c.Set(fiber.HeaderAccessControlAllowMethods, "POST, OPTIONS")
			c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
			// pas de SendStatus: il remplirait le corps avec "OK"
			return c.Status(fiber.StatusOK).SendString("")
		}

		return c.Next()
	}
}
