package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeCreate_DerivesUTCDay(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	// 00h30 à Paris le 15 mars = encore le 14 mars en UTC
	m := IntentModel{
		IntentCreatedAt: time.Date(2026, 3, 15, 0, 30, 0, 0, paris),
	}
	require.NoError(t, m.BeforeCreate(nil))

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), m.IntentCreatedDay)
}

func TestBeforeCreate_SetsCreatedAtWhenZero(t *testing.T) {
	m := IntentModel{}
	require.NoError(t, m.BeforeCreate(nil))

	assert.False(t, m.IntentCreatedAt.IsZero())
	assert.Equal(t, time.UTC, m.IntentCreatedAt.Location())

	y, mo, d := m.IntentCreatedAt.Date()
	assert.Equal(t, time.Date(y, mo, d, 0, 0, 0, 0, time.UTC), m.IntentCreatedDay)
}

func TestBeforeCreate_KeepsExistingCreatedAt(t *testing.T) {
	at := time.Date(2026, 7, 1, 23, 59, 59, 0, time.UTC)
	m := IntentModel{IntentCreatedAt: at}
	require.NoError(t, m.BeforeCreate(nil))

	assert.Equal(t, at, m.IntentCreatedAt)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), m.IntentCreatedDay)
}
