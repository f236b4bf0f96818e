package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"egoejo_backend/internals/features/intents/model"
	helper "egoejo_backend/internals/helpers"
)

// ErrDuplicateIntent: même email, même jour UTC. Remonté à part pour
// que le contrôleur puisse logger le doublon distinctement.
// La réponse HTTP reste un 500 générique.
var ErrDuplicateIntent = errors.New("intent déjà soumise aujourd'hui pour cet email")

// NewIntent: données validées prêtes à persister.
type NewIntent struct {
	Name        string
	Email       string
	Profile     string
	Message     *string
	IP          *string
	UserAgent   *string
	DocumentURL *string
}

// IntentStore est injecté dans le contrôleur (fake en test).
type IntentStore interface {
	Create(ctx context.Context, in NewIntent) (*model.IntentModel, error)
}

type GormIntentStore struct {
	DB *gorm.DB
}

func NewGormIntentStore(db *gorm.DB) *GormIntentStore {
	return &GormIntentStore{DB: db}
}

func (s *GormIntentStore) Create(ctx context.Context, in NewIntent) (*model.IntentModel, error) {
	intent := model.IntentModel{
		IntentName:        in.Name,
		IntentEmail:       in.Email,
		IntentProfile:     in.Profile,
		IntentMessage:     in.Message,
		IntentIP:          in.IP,
		IntentUserAgent:   in.UserAgent,
		IntentDocumentURL: in.DocumentURL,
	}

	if err := s.DB.WithContext(ctx).Create(&intent).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, ErrDuplicateIntent
		}
		return nil, err
	}
	return &intent, nil
}
