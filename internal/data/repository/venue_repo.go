package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *entity.Venue) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	FindAll(ctx context.Context) ([]*entity.Venue, error)
	SearchByName(ctx context.Context, term string) ([]*entity.Venue, error)
	Update(ctx context.Context, venue *entity.Venue) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type venueRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewVenueRepository(db database.Querier, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link,
		website_link, genres, looking_for_talent, seeking_description, created_at, updated_at`

func scanVenue(row pgx.Row) (*entity.Venue, error) {
	var venue entity.Venue
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.State,
		&venue.Address,
		&venue.Phone,
		&venue.ImageLink,
		&venue.FacebookLink,
		&venue.WebsiteLink,
		&venue.Genres,
		&venue.LookingForTalent,
		&venue.SeekingDescription,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	query := `
		INSERT INTO venues (` + venueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		venue.ImageLink,
		venue.FacebookLink,
		venue.WebsiteLink,
		venue.Genres,
		venue.LookingForTalent,
		venue.SeekingDescription,
		venue.CreatedAt,
		venue.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("name", venue.Name),
			zap.String("city", venue.City),
		)
		return fmt.Errorf("create venue %s: %w", venue.Name, classify(err))
	}

	return nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	venue, err := scanVenue(r.db.QueryRow(ctx, query, id))
	if err != nil {
		err = classify(err)
		if !isNotFound(err) {
			r.log.Error("Failed to find venue by ID",
				zap.Error(err),
				zap.String("venue_id", id.String()),
			)
		}
		return nil, fmt.Errorf("find venue %s: %w", id.String(), err)
	}

	return venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context) ([]*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY created_at, id`
	return r.list(ctx, "find all venues", query)
}

func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE name ILIKE $1 ORDER BY created_at, id`
	return r.list(ctx, "search venues", query, containsPattern(term))
}

func (r *venueRepository) list(ctx context.Context, operation, query string, args ...any) ([]*entity.Venue, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+operation, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	venues := []*entity.Venue{}
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			r.log.Error("Failed to scan venue row", zap.Error(err))
			return nil, fmt.Errorf("scan venue row: %w", err)
		}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate venue rows: %w", err)
	}

	return venues, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	query := `
		UPDATE venues
		SET name = $2, city = $3, state = $4, address = $5, phone = $6, image_link = $7,
			facebook_link = $8, website_link = $9, genres = $10, looking_for_talent = $11,
			seeking_description = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		venue.ImageLink,
		venue.FacebookLink,
		venue.WebsiteLink,
		venue.Genres,
		venue.LookingForTalent,
		venue.SeekingDescription,
		venue.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update venue",
			zap.Error(err),
			zap.String("venue_id", venue.ID.String()),
		)
		return fmt.Errorf("update venue %s: %w", venue.ID.String(), classify(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update venue %s: %w", venue.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete venue",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return fmt.Errorf("delete venue %s: %w", id.String(), classify(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete venue %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Venue deleted", zap.String("venue_id", id.String()))
	return nil
}
