package stubapi

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
)

// accountError maps an error of an accounts statement to the package
// sentinels:
//   - unique_violation (23505) on the email index → ErrEmailAlreadyExists.
//   - no_data_found (P0002) or no rows → ErrNotFound.
//   - anything else → wrapped as "unexpected DB error".
func accountError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrEmailAlreadyExists
	case pgerrcode.NoDataFound:
		return ErrNotFound
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
