// internals/middlewares/auth/admin_auth.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"egoejo_backend/internals/configs"
	helper "egoejo_backend/internals/helpers"
)

// AdminAuth protège les routes /api/a.
// Pas de comptes utilisateurs sur ce site: le token admin (HS256,
// claim role=admin) est émis hors-bande et vérifié ici.
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vide, accès admin refusé")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur")
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Non autorisé")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] token admin invalide:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Non autorisé")
		}

		// exp obligatoire et non dépassé
		exp, ok := claims["exp"].(float64)
		if !ok || time.Now().After(time.Unix(int64(exp), 0)) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token expiré")
		}

		if role, _ := claims["role"].(string); role != "admin" {
			return helper.JsonError(c, fiber.StatusForbidden, "Accès refusé")
		}

		c.Locals("admin_sub", claims["sub"])
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return "", fiber.ErrUnauthorized
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if token == "" {
		return "", fiber.ErrUnauthorized
	}
	return token, nil
}
