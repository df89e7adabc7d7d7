package repository

import (
	"context"

	"venue-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	Venue  VenueRepository
	Artist ArtistRepository
	Show   ShowRepository

	// Tx runs a unit of work against a transaction-bound copy of the
	// repository.
	Tx Transactor
}

// TxFunc receives a Repository whose members all share one transaction.
type TxFunc func(repo *Repository) error

type Transactor interface {
	WithTx(ctx context.Context, fn TxFunc) error
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepository(db, log)
	repo.Tx = &pgxTransactor{db: db, log: log.With(zap.String("repository", "tx"))}
	return repo
}

func newRepository(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		Venue:  NewVenueRepository(q, log),
		Artist: NewArtistRepository(q, log),
		Show:   NewShowRepository(q, log),
	}
}

type pgxTransactor struct {
	db  database.PgxIface
	log *zap.Logger
}

func (t *pgxTransactor) WithTx(ctx context.Context, fn TxFunc) error {
	return database.WithTx(ctx, t.db, func(tx pgx.Tx) error {
		repo := newRepository(tx, t.log)
		repo.Tx = boundTransactor{repo: repo}

		if err := fn(repo); err != nil {
			t.log.Debug("Transaction rolled back", zap.Error(err))
			return err
		}
		return nil
	})
}

// boundTransactor reuses the enclosing transaction for nested units.
type boundTransactor struct {
	repo *Repository
}

func (b boundTransactor) WithTx(_ context.Context, fn TxFunc) error {
	return fn(b.repo)
}
