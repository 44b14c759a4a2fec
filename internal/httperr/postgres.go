package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error code for exclusion constraint violations.
const exclusionViolation = "23P01"

// IsExclusionConflict reports whether err is the appointments exclusion
// constraint rejecting an overlapping insert. Two requests can both pass
// the transactional conflict check on different connections; the
// constraint is the last line of defence and its violation maps to the
// same slot_unavailable outcome.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == exclusionViolation
	}
	return false
}
