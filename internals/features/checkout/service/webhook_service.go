package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"egoejo_backend/internals/features/checkout/model"
)

// HandleCheckoutWebhook est appelé sur notification du provider.
// On relaie: retrouver la ligne par order_id, traduire le statut,
// archiver le payload brut.
func HandleCheckoutWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Printf("[ERROR] payload webhook incomplet: %v", body)
		return fmt.Errorf("invalid payload")
	}

	var checkout model.CheckoutModel
	if err := db.Where("checkout_order_id = ?", orderID).First(&checkout).Error; err != nil {
		log.Printf("[ERROR] checkout introuvable order_id=%s: %v", orderID, err)
		return fmt.Errorf("checkout with order_id %s not found", orderID)
	}

	newStatus, paid, known := MapTransactionStatus(status)
	if !known {
		log.Printf("[WARN] statut provider ignoré order_id=%s status=%s", orderID, status)
		return nil
	}

	updates := map[string]interface{}{
		"checkout_status": newStatus,
	}
	if paid && checkout.CheckoutPaidAt == nil {
		now := time.Now()
		updates["checkout_paid_at"] = &now
	}
	if raw, err := json.Marshal(body); err == nil {
		updates["checkout_payload"] = datatypes.JSON(raw)
	}

	if err := db.Model(&checkout).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update checkout order_id=%s: %v", orderID, err)
		return err
	}

	log.Printf("[INFO] checkout %s → %s", orderID, newStatus)
	return nil
}
