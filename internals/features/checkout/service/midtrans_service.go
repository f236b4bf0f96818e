package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"egoejo_backend/internals/configs"
)

var SnapClient snap.Client

// InitMidtrans initialise le client Snap avec la server key.
func InitMidtrans(serverKey string) {
	env := midtrans.Sandbox
	if configs.GetEnv("MIDTRANS_ENV") == "production" {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// SnapTokenizer isole l'appel provider pour les tests du contrôleur.
type SnapTokenizer interface {
	CreateTransaction(orderID string, amount int64, name, email string) (token, redirectURL string, err error)
}

type midtransTokenizer struct{}

func NewSnapTokenizer() SnapTokenizer {
	return midtransTokenizer{}
}

func (midtransTokenizer) CreateTransaction(orderID string, amount int64, name, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

// MapTransactionStatus traduit le statut provider vers le nôtre.
// Inconnu → ok=false, on ne touche pas à la ligne.
func MapTransactionStatus(status string) (newStatus string, paid bool, ok bool) {
	switch status {
	case "capture", "settlement":
		return "paid", true, true
	case "pending":
		return "pending", false, true
	case "deny", "cancel", "expire", "failure":
		return "failed", false, true
	default:
		return "", false, false
	}
}
