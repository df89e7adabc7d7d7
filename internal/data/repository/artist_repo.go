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

type ArtistRepository interface {
	Create(ctx context.Context, artist *entity.Artist) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error)
	FindAll(ctx context.Context) ([]*entity.Artist, error)
	SearchByName(ctx context.Context, term string) ([]*entity.Artist, error)
	Update(ctx context.Context, artist *entity.Artist) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type artistRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewArtistRepository(db database.Querier, log *zap.Logger) ArtistRepository {
	return &artistRepository{
		db:  db,
		log: log.With(zap.String("repository", "artist")),
	}
}

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link,
		website_link, looking_for_venues, seeking_description, created_at, updated_at`

func scanArtist(row pgx.Row) (*entity.Artist, error) {
	var artist entity.Artist
	err := row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		&artist.Genres,
		&artist.ImageLink,
		&artist.FacebookLink,
		&artist.WebsiteLink,
		&artist.LookingForVenues,
		&artist.SeekingDescription,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	query := `
		INSERT INTO artists (` + artistColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		artist.ID,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		artist.Genres,
		artist.ImageLink,
		artist.FacebookLink,
		artist.WebsiteLink,
		artist.LookingForVenues,
		artist.SeekingDescription,
		artist.CreatedAt,
		artist.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create artist",
			zap.Error(err),
			zap.String("name", artist.Name),
			zap.String("city", artist.City),
		)
		return fmt.Errorf("create artist %s: %w", artist.Name, classify(err))
	}

	return nil
}

func (r *artistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	artist, err := scanArtist(r.db.QueryRow(ctx, query, id))
	if err != nil {
		err = classify(err)
		if !isNotFound(err) {
			r.log.Error("Failed to find artist by ID",
				zap.Error(err),
				zap.String("artist_id", id.String()),
			)
		}
		return nil, fmt.Errorf("find artist %s: %w", id.String(), err)
	}

	return artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]*entity.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY created_at, id`
	return r.list(ctx, "find all artists", query)
}

func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]*entity.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE name ILIKE $1 ORDER BY created_at, id`
	return r.list(ctx, "search artists", query, containsPattern(term))
}

func (r *artistRepository) list(ctx context.Context, operation, query string, args ...any) ([]*entity.Artist, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+operation, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	artists := []*entity.Artist{}
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			r.log.Error("Failed to scan artist row", zap.Error(err))
			return nil, fmt.Errorf("scan artist row: %w", err)
		}
		artists = append(artists, artist)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate artist rows: %w", err)
	}

	return artists, nil
}

func (r *artistRepository) Update(ctx context.Context, artist *entity.Artist) error {
	query := `
		UPDATE artists
		SET name = $2, city = $3, state = $4, phone = $5, genres = $6, image_link = $7,
			facebook_link = $8, website_link = $9, looking_for_venues = $10,
			seeking_description = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		artist.ID,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		artist.Genres,
		artist.ImageLink,
		artist.FacebookLink,
		artist.WebsiteLink,
		artist.LookingForVenues,
		artist.SeekingDescription,
		artist.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update artist",
			zap.Error(err),
			zap.String("artist_id", artist.ID.String()),
		)
		return fmt.Errorf("update artist %s: %w", artist.ID.String(), classify(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update artist %s: %w", artist.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *artistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete artist",
			zap.Error(err),
			zap.String("artist_id", id.String()),
		)
		return fmt.Errorf("delete artist %s: %w", id.String(), classify(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete artist %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Artist deleted", zap.String("artist_id", id.String()))
	return nil
}
