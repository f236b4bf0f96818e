package dto

// ============================
// Create Request DTO
// ============================

type CreateCheckoutRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Amount  int64   `json:"amount" validate:"required,min=1"`
	Message *string `json:"message"`
}
