package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"egoejo_backend/internals/features/checkout/dto"
	"egoejo_backend/internals/features/checkout/model"
	checkoutService "egoejo_backend/internals/features/checkout/service"
	helper "egoejo_backend/internals/helpers"
)

var validateCheckout = validator.New()

type CheckoutController struct {
	DB        *gorm.DB
	Tokenizer checkoutService.SnapTokenizer
}

func NewCheckoutController(db *gorm.DB, tokenizer checkoutService.SnapTokenizer) *CheckoutController {
	return &CheckoutController{DB: db, Tokenizer: tokenizer}
}

// =======================
// 🟢 Create Checkout (public)
// Crée la ligne pending puis délègue au checkout hébergé; on relaie
// token + URL de redirection, le paiement ne passe jamais par nous.
// =======================
func (ctrl *CheckoutController) Create(c *fiber.Ctx) error {
	var body dto.CreateCheckoutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	if err := validateCheckout.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Champs manquants")
	}

	orderID := fmt.Sprintf("EGOEJO-%d", time.Now().UnixNano())

	checkout := model.CheckoutModel{
		CheckoutOrderID: orderID,
		CheckoutName:    body.Name,
		CheckoutEmail:   body.Email,
		CheckoutAmount:  body.Amount,
		CheckoutMessage: body.Message,
		CheckoutStatus:  "pending",
	}

	if err := ctrl.DB.Create(&checkout).Error; err != nil {
		log.Printf("[ERROR] insert checkout: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur")
	}

	token, redirectURL, err := ctrl.Tokenizer.CreateTransaction(orderID, body.Amount, body.Name, body.Email)
	if err != nil {
		log.Printf("[ERROR] snap token order_id=%s: %v", orderID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur")
	}

	// trace du token pour le support (best-effort, non bloquant)
	if err := ctrl.DB.Model(&checkout).Update("checkout_snap_token", token).Error; err != nil {
		log.Printf("[WARN] save snap token order_id=%s: %v", orderID, err)
	}

	return helper.JsonOK(c, fiber.Map{
		"orderId":     orderID,
		"token":       token,
		"redirectUrl": redirectURL,
	})
}

// =======================
// 🔔 Webhook provider
// =======================
func (ctrl *CheckoutController) Webhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}

	if err := checkoutService.HandleCheckoutWebhook(ctrl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erreur serveur")
	}

	return helper.JsonOK(c, fiber.Map{})
}
