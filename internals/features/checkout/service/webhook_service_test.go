package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleCheckoutWebhook_InvalidPayload(t *testing.T) {
	// rejeté avant tout accès DB
	err := HandleCheckoutWebhook(nil, map[string]interface{}{})
	assert.Error(t, err)

	err = HandleCheckoutWebhook(nil, map[string]interface{}{
		"order_id": "EGOEJO-1",
	})
	assert.Error(t, err)

	err = HandleCheckoutWebhook(nil, map[string]interface{}{
		"order_id":           12345, // mauvais type
		"transaction_status": "settlement",
	})
	assert.Error(t, err)
}
