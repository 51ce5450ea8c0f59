package postgres_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/quire/internal/platform/postgres"
	"github.com/phrazzld/quire/internal/store"
	"github.com/stretchr/testify/assert"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		TableName:      "posts",
		ColumnName:     "name",
		ConstraintName: "posts_name_check",
	}
}

type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) { return 0, m.err }
func (m mockResult) RowsAffected() (int64, error) { return m.rowsAffected, m.err }

func TestViolationHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsUniqueViolation(newPgError("23505")))
	assert.False(t, postgres.IsUniqueViolation(newPgError("23503")))
	assert.False(t, postgres.IsUniqueViolation(errors.New("plain")))
	assert.True(t, postgres.IsForeignKeyViolation(newPgError("23503")))
	assert.False(t, postgres.IsForeignKeyViolation(nil))
}

func TestMapError(t *testing.T) {
	t.Parallel()

	generic := errors.New("generic error")
	tests := []struct {
		name     string
		err      error
		notFound error
		errIs    error
		same     bool
	}{
		{name: "nil error", err: nil},
		{name: "no rows default", err: sql.ErrNoRows, errIs: store.ErrNotFound},
		{name: "no rows entity", err: sql.ErrNoRows, notFound: store.ErrFormNotFound, errIs: store.ErrFormNotFound},
		{name: "unique violation", err: newPgError("23505"), errIs: store.ErrDuplicate},
		{name: "foreign key violation", err: newPgError("23503"), errIs: store.ErrInvalidEntity},
		{name: "check violation", err: newPgError("23514"), errIs: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError("23502"), errIs: store.ErrInvalidEntity},
		{name: "other postgres error", err: newPgError("42P01"), same: true},
		{name: "generic error", err: generic, same: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := postgres.MapError(tt.err, tt.notFound)
			switch {
			case tt.err == nil:
				assert.NoError(t, got)
			case tt.same:
				assert.Equal(t, tt.err, got)
			default:
				assert.ErrorIs(t, got, tt.errIs)
			}
		})
	}
}

func TestMapError_DoesNotLeakDetails(t *testing.T) {
	t.Parallel()

	pgErr := newPgError("23505")
	pgErr.Detail = "Key (email)=(secret@example.com) already exists."
	got := postgres.MapError(pgErr, nil)
	assert.NotContains(t, got.Error(), "secret@example.com")
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		result  sql.Result
		wantErr bool
		errIs   error
	}{
		{name: "nil result", result: nil, wantErr: true},
		{name: "zero rows", result: mockResult{rowsAffected: 0}, wantErr: true, errIs: store.ErrPostNotFound},
		{name: "one row", result: mockResult{rowsAffected: 1}},
		{name: "rows affected error", result: mockResult{err: errors.New("boom")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := postgres.CheckRowsAffected(tt.result, store.ErrPostNotFound)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}
