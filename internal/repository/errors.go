package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"starblog/internal/domain"
)

// pgUniqueViolation is the PostgreSQL class 23 code for a violated
// unique constraint.
const pgUniqueViolation = "23505"

// translate maps driver-level errors onto the domain taxonomy. The
// original driver error stays wrapped so handlers can surface the
// diagnostic string.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if isUniqueViolation(err) {
		return errors.Join(domain.ErrDuplicateKey, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	// modernc sqlite reports constraint failures by message only.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
