package database

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSQLStateClassification(t *testing.T) {
	exclusion := fmt.Errorf("insert reservation: %w", &pgconn.PgError{Code: SQLStateExclusionViolation})
	unique := fmt.Errorf("insert ledger entry: %w", &pgconn.PgError{Code: SQLStateUniqueViolation})

	assert.True(t, IsExclusionViolation(exclusion))
	assert.False(t, IsUniqueViolation(exclusion))
	assert.True(t, IsUniqueViolation(unique))
	assert.Equal(t, "", SQLState(fmt.Errorf("plain")))
}

func TestSchemaEmbedded(t *testing.T) {
	assert.Contains(t, schema, "reservations_no_overlap")
	assert.Contains(t, schema, "wallet_transactions_reference_key")
	assert.Contains(t, schema, "daterange(start_date, end_date, '[)')")
}
