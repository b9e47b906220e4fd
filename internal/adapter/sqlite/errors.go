package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/heartmarshall/codeclub-backend/internal/domain"
)

// mapError converts database/sql and sqlite3 errors to domain errors,
// mirroring the PostgreSQL adapter: unique violations become conflict,
// context errors pass through, everything else is domain.ErrStorage.
func mapError(err error, entity, key string, conflict error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			if conflict != nil {
				return fmt.Errorf("%s %s: %w", entity, key, conflict)
			}
		case sqlite3.ErrConstraintCheck:
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w: %w", entity, key, domain.ErrStorage, err)
}

func pairKey(userID, eventID string) string {
	return userID + "/" + eventID
}
