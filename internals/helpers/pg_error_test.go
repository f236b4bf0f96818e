package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePGErr struct {
	state string
}

func (e *fakePGErr) SQLState() string { return e.state }
func (e *fakePGErr) Error() string    { return "pg error " + e.state }

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.True(t, IsDuplicateKey(&fakePGErr{state: "23505"}))
	assert.False(t, IsDuplicateKey(&fakePGErr{state: "23503"}))

	// erreur pgx enveloppée par GORM
	wrapped := fmt.Errorf("create intent: %w", &fakePGErr{state: "23505"})
	assert.True(t, IsDuplicateKey(wrapped))

	// fallback sur le message quand le driver ne typait pas l'erreur
	assert.True(t, IsDuplicateKey(errors.New(`duplicate key value violates unique constraint "uq_intents_email_day"`)))
	assert.True(t, IsDuplicateKey(errors.New("ERROR: ... (SQLSTATE 23505)")))
	assert.False(t, IsDuplicateKey(errors.New("connection refused")))
}
