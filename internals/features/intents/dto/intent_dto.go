package dto

import (
	"time"

	"egoejo_backend/internals/features/intents/model"
)

// ============================
// Create Request DTO
// ============================

// SubmitIntentRequest: corps du POST public.
// `website` est le champ honeypot, invisible sur le vrai formulaire:
// s'il arrive rempli, c'est un bot.
type SubmitIntentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required"`
	Profile     string  `json:"profile" validate:"required"`
	Message     *string `json:"message"`
	Website     string  `json:"website"`
	DocumentURL *string `json:"documentUrl"`
}

// ============================
// Response DTO (admin)
// ============================

type IntentDTO struct {
	IntentID          int64     `json:"intent_id"`
	IntentName        string    `json:"intent_name"`
	IntentEmail       string    `json:"intent_email"`
	IntentProfile     string    `json:"intent_profile"`
	IntentMessage     *string   `json:"intent_message"`
	IntentIP          *string   `json:"intent_ip"`
	IntentUserAgent   *string   `json:"intent_user_agent"`
	IntentDocumentURL *string   `json:"intent_document_url"`
	IntentCreatedAt   time.Time `json:"intent_created_at"`
}

// ============================
// Converter
// ============================

func ToIntentDTO(m model.IntentModel) IntentDTO {
	return IntentDTO{
		IntentID:          m.IntentID,
		IntentName:        m.IntentName,
		IntentEmail:       m.IntentEmail,
		IntentProfile:     m.IntentProfile,
		IntentMessage:     m.IntentMessage,
		IntentIP:          m.IntentIP,
		IntentUserAgent:   m.IntentUserAgent,
		IntentDocumentURL: m.IntentDocumentURL,
		IntentCreatedAt:   m.IntentCreatedAt,
	}
}
