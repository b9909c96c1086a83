package postgres

import (
	"context"
	"fmt"
	"regexp"
)

// identPattern rejects anything that is not a plain lowercase identifier.
// Table names reach here from an allowlist, but the adapter refuses to
// interpolate anything else regardless.
var identPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ClearTable deletes every row from the named table and returns the number
// of rows removed. DELETE rather than TRUNCATE so the affected count is
// reported and row locks stay ordinary.
func (db *DB) ClearTable(ctx context.Context, table string) (int64, error) {
	if !identPattern.MatchString(table) {
		return 0, fmt.Errorf("invalid table name %q", table)
	}
	tag, err := db.Pool.Exec(ctx, `DELETE FROM `+table)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
