package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTransactor_CommitsOnSuccess(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock, zap.NewNop())
	venue := sampleVenue()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO venues").
		WithArgs(anyArgs(14)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := repo.Tx.WithTx(context.Background(), func(tx *Repository) error {
		return tx.Venue.Create(context.Background(), venue)
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock, zap.NewNop())
	venue := sampleVenue()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM venues WHERE id").
		WithArgs(venue.ID).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Tx.WithTx(context.Background(), func(tx *Repository) error {
		_, err := tx.Venue.FindByID(context.Background(), venue.ID)
		return err
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_NestedUnitsShareTransaction(t *testing.T) {
	mock := newMockPool(t)
	repo := NewRepository(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectCommit()

	var inner *Repository
	err := repo.Tx.WithTx(context.Background(), func(tx *Repository) error {
		return tx.Tx.WithTx(context.Background(), func(nested *Repository) error {
			inner = nested
			assert.Same(t, tx, nested)
			return nil
		})
	})

	assert.NoError(t, err)
	assert.NotNil(t, inner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, ErrNotFound},
		{"foreign key", &pgconn.PgError{Code: "23503"}, ErrReferenceNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, ErrConstraintViolation},
		{"check", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23514"}), ErrConstraintViolation},
		{"too long", &pgconn.PgError{Code: "22001"}, ErrConstraintViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassify_PassesThroughUnknownErrors(t *testing.T) {
	other := errors.New("connection reset")
	assert.Equal(t, other, classify(other))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%bar%", containsPattern("bar"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
}
