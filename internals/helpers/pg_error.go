package helper

import (
	"errors"
	"strings"
)

// Interface minimale des erreurs pgx, sans importer pgconn (portable).
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// IsDuplicateKey: violation d'unicité Postgres (SQLSTATE 23505).
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	// fallback: certains drivers ne remontent que le message
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "sqlstate 23505") ||
		strings.Contains(msg, "unique constraint")
}
