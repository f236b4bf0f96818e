package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"egoejo_backend/internals/features/intents/dto"
	"egoejo_backend/internals/features/intents/service"
	helper "egoejo_backend/internals/helpers"
)

var validateIntent = validator.New()

// Temps laissé au mail de notification avant d'abandonner; la réponse
// HTTP, elle, part sans attendre.
const notifyTimeout = 5 * time.Second

type IntentController struct {
	Store    service.IntentStore
	Notifier service.Notifier
}

func NewIntentController(store service.IntentStore, notifier service.Notifier) *IntentController {
	return &IntentController{Store: store, Notifier: notifier}
}

// =======================
// ➕ Submit Intent (public)
// =======================
// Enchaînement fixe: méthode → honeypot → validation → insert → notif.
// L'OriginGuard (et le pré-vol OPTIONS) est passé avant d'arriver ici.
func (ctrl *IntentController) Submit(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return helper.JsonError(c, fiber.StatusMethodNotAllowed, "Use POST")
	}

	// JSON illisible = champs manquants, même réponse
	var body dto.SubmitIntentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Champs manquants")
	}

	// 🪤 Honeypot rempli: on répond comme un succès (id null) pour ne
	// pas signaler la détection au bot, et on ne touche à rien.
	if body.Website != "" {
		log.Printf("[WARN] honeypot déclenché ip=%s", c.IP())
		return helper.JsonOK(c, fiber.Map{"id": nil})
	}

	if err := validateIntent.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Champs manquants")
	}

	in := service.NewIntent{
		Name:        body.Name,
		Email:       body.Email,
		Profile:     body.Profile,
		Message:     body.Message,
		IP:          nonEmpty(c.IP()),
		UserAgent:   nonEmpty(c.Get(fiber.HeaderUserAgent)),
		DocumentURL: body.DocumentURL,
	}

	intent, err := ctrl.Store.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateIntent) {
			log.Printf("[WARN] doublon intention email=%s", body.Email)
		} else {
			log.Printf("[ERROR] insert intention: %v", err)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur")
	}

	// 📧 Notification opérateur, jamais bloquante pour la réponse
	summary := service.IntentSummary{
		ID:        intent.IntentID,
		Name:      intent.IntentName,
		Email:     intent.IntentEmail,
		Profile:   intent.IntentProfile,
		Message:   intent.IntentMessage,
		CreatedAt: intent.IntentCreatedAt,
	}
	notifier := ctrl.Notifier
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := notifier.NotifyNewIntent(ctx, summary); err != nil {
			log.Printf("[ERROR] notification intention %d: %v", summary.ID, err)
		}
	}()

	return helper.JsonOK(c, fiber.Map{
		"id":        intent.IntentID,
		"createdAt": intent.IntentCreatedAt.Format(time.RFC3339),
	})
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
