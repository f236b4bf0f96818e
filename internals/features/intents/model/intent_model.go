package model

import (
	"time"

	"gorm.io/gorm"
)

// IntentModel: une soumission du formulaire "rejoindre le vivant".
// L'index unique (email, jour) est la vraie garde anti-doublon:
// deux POST simultanés pour le même email le même jour ne peuvent
// produire qu'une seule ligne, le check applicatif ne suffit pas.
type IntentModel struct {
	IntentID          int64      `gorm:"column:intent_id;primaryKey;autoIncrement" json:"intent_id"`
	IntentName        string     `gorm:"column:intent_name;type:varchar(255);not null" json:"intent_name"`
	IntentEmail       string     `gorm:"column:intent_email;type:varchar(255);not null;uniqueIndex:uq_intents_email_day" json:"intent_email"`
	IntentProfile     string     `gorm:"column:intent_profile;type:varchar(64);not null" json:"intent_profile"`
	IntentMessage     *string    `gorm:"column:intent_message;type:text" json:"intent_message"`
	IntentIP          *string    `gorm:"column:intent_ip;type:varchar(64)" json:"intent_ip"`
	IntentUserAgent   *string    `gorm:"column:intent_user_agent;type:text" json:"intent_user_agent"`
	IntentDocumentURL *string    `gorm:"column:intent_document_url;type:text" json:"intent_document_url"`
	IntentCreatedAt   time.Time  `gorm:"column:intent_created_at;not null" json:"intent_created_at"`
	IntentCreatedDay  time.Time  `gorm:"column:intent_created_day;type:date;not null;uniqueIndex:uq_intents_email_day" json:"intent_created_day"`
}

// TableName sets the name of the table
func (IntentModel) TableName() string {
	return "intents"
}

// BeforeCreate fige created_at et en dérive le jour calendaire UTC.
func (m *IntentModel) BeforeCreate(tx *gorm.DB) error {
	if m.IntentCreatedAt.IsZero() {
		m.IntentCreatedAt = time.Now().UTC()
	}
	y, mo, d := m.IntentCreatedAt.UTC().Date()
	m.IntentCreatedDay = time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	return nil
}
