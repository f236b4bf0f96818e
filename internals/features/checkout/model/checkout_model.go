package model

import (
	"time"

	"gorm.io/datatypes"
)

// CheckoutModel: un passage en caisse délégué au provider hébergé.
// La ligne est créée `pending`, le webhook la fait évoluer.
type CheckoutModel struct {
	CheckoutID        string         `gorm:"column:checkout_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"checkout_id"`
	CheckoutOrderID   string         `gorm:"column:checkout_order_id;type:varchar(64);not null;uniqueIndex" json:"checkout_order_id"`
	CheckoutName      string         `gorm:"column:checkout_name;type:varchar(255);not null" json:"checkout_name"`
	CheckoutEmail     string         `gorm:"column:checkout_email;type:varchar(255);not null" json:"checkout_email"`
	CheckoutAmount    int64          `gorm:"column:checkout_amount;not null" json:"checkout_amount"`
	CheckoutMessage   *string        `gorm:"column:checkout_message;type:text" json:"checkout_message"`
	CheckoutStatus    string         `gorm:"column:checkout_status;type:varchar(16);not null;default:'pending'" json:"checkout_status"`
	CheckoutSnapToken *string        `gorm:"column:checkout_snap_token;type:text" json:"checkout_snap_token"`
	CheckoutPaidAt    *time.Time     `gorm:"column:checkout_paid_at" json:"checkout_paid_at"`
	CheckoutPayload   datatypes.JSON `gorm:"column:checkout_payload;type:jsonb" json:"checkout_payload"` // dernier webhook brut
	CheckoutCreatedAt time.Time      `gorm:"column:checkout_created_at;autoCreateTime" json:"checkout_created_at"`
}

// TableName sets the name of the table
func (CheckoutModel) TableName() string {
	return "checkouts"
}
