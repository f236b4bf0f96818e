package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"egoejo_backend/internals/configs"
)

func TestNewNotifier_WithoutKeyIsSilentNoop(t *testing.T) {
	configs.ResendAPIKey = ""
	configs.NotifyEmailTo = "ops@egoejo.org"

	n := NewNotifier()
	require.IsType(t, noopNotifier{}, n)

	err := n.NotifyNewIntent(context.Background(), IntentSummary{
		ID:        1,
		Name:      "Alice",
		Email:     "a@x.com",
		Profile:   "je-decouvre",
		CreatedAt: time.Now(),
	})
	assert.NoError(t, err)
}

func TestNewNotifier_WithoutRecipientIsSilentNoop(t *testing.T) {
	configs.ResendAPIKey = "re_test_key"
	configs.NotifyEmailTo = ""

	n := NewNotifier()
	assert.IsType(t, noopNotifier{}, n)
}

func TestNewNotifier_Configured(t *testing.T) {
	configs.ResendAPIKey = "re_test_key"
	configs.NotifyEmailTo = "ops@egoejo.org"
	configs.NotifyEmailFrom = "EGOEJO <notifications@egoejo.org>"

	n := NewNotifier()
	rn, ok := n.(*ResendNotifier)
	require.True(t, ok)
	assert.Equal(t, "ops@egoejo.org", rn.To)
	assert.Equal(t, "EGOEJO <notifications@egoejo.org>", rn.From)
}
