package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearTableRejectsBadIdentifiers(t *testing.T) {
	db := &DB{}

	for _, table := range []string{
		"api_requests; DROP TABLE customers",
		`"quoted"`,
		"Mixed_Case",
		"1starts_with_digit",
		"",
		"spaces here",
	} {
		_, err := db.ClearTable(context.Background(), table)
		assert.Error(t, err, "table %q must be rejected before any SQL runs", table)
	}
}
