package service

import (
	"context"
	"fmt"
	"html"
	"log"
	"time"

	"github.com/resend/resend-go/v2"

	"egoejo_backend/internals/configs"
)

// IntentSummary: ce qu'on met dans le mail opérateur.
type IntentSummary struct {
	ID        int64
	Name      string
	Email     string
	Profile   string
	Message   *string
	CreatedAt time.Time
}

// Notifier prévient l'opérateur qu'une intention est arrivée.
// Best-effort: un échec est loggé, jamais remonté au client.
type Notifier interface {
	NotifyNewIntent(ctx context.Context, s IntentSummary) error
}

// NewNotifier choisit l'implémentation selon la config:
// pas de RESEND_API_KEY → notifications silencieusement désactivées.
func NewNotifier() Notifier {
	if configs.ResendAPIKey == "" || configs.NotifyEmailTo == "" {
		return noopNotifier{}
	}
	return &ResendNotifier{
		Client: resend.NewClient(configs.ResendAPIKey),
		From:   configs.NotifyEmailFrom,
		To:     configs.NotifyEmailTo,
	}
}

type noopNotifier struct{}

func (noopNotifier) NotifyNewIntent(context.Context, IntentSummary) error { return nil }

type ResendNotifier struct {
	Client *resend.Client
	From   string
	To     string
}

func (n *ResendNotifier) NotifyNewIntent(ctx context.Context, s IntentSummary) error {
	message := "—"
	if s.Message != nil && *s.Message != "" {
		message = html.EscapeString(*s.Message)
	}

	body := fmt.Sprintf(
		`<h2>Nouvelle intention #%d</h2>
<p><b>Nom:</b> %s<br>
<b>Email:</b> %s<br>
<b>Profil:</b> %s<br>
<b>Message:</b> %s<br>
<b>Reçue le:</b> %s</p>`,
		s.ID,
		html.EscapeString(s.Name),
		html.EscapeString(s.Email),
		html.EscapeString(s.Profile),
		message,
		s.CreatedAt.Format(time.RFC3339),
	)

	params := &resend.SendEmailRequest{
		From:    n.From,
		To:      []string{n.To},
		Subject: fmt.Sprintf("EGOEJO — nouvelle intention #%d", s.ID),
		Html:    body,
	}

	sent, err := n.Client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return err
	}
	log.Printf("[INFO] notification envoyée (intent=%d resend_id=%s)", s.ID, sent.Id)
	return nil
}
