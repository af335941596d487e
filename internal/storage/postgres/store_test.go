package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/hongminglow/movies-be/internal/storage"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "no rows", err: pgx.ErrNoRows, want: storage.ErrNotFound},
		{
			name: "username unique violation",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"},
			want: storage.ErrDuplicateUsername,
		},
		{
			name: "unknown director",
			err:  &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "movies_director_id_fkey"},
			want: storage.ErrDirectorNotFound,
		},
		{
			name: "other unique violation",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_pkey"},
			want: storage.ErrStorage,
		},
		{name: "connection failure", err: errors.New("dial tcp: connection refused"), want: storage.ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestClassify_KeepsDriverError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := classify(cause)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, storage.ErrDuplicateUsername)
}
