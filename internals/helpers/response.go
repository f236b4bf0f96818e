package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Réponses JSON (contrat {ok: ...})
   Le front ne lit que `ok`, `error` et le payload.
=================================*/

// JsonOK: succès générique, payload fusionné dans {ok:true}
func JsonOK(c *fiber.Ctx, payload fiber.Map) error {
	body := fiber.Map{"ok": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonError: erreur générique {ok:false, error:...}
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = "Erreur serveur"
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"ok":    false,
		"error": message,
	})
}

// JsonList: liste paginée (écrans admin)
func JsonList(c *fiber.Ctx, data any, pagination any) error {
	body := fiber.Map{
		"ok":   true,
		"data": data,
	}
	if pagination != nil {
		body["pagination"] = pagination
	}
	return c.Status(fiber.StatusOK).JSON(body)
}
