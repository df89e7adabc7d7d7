package repository

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowRepository interface {
	Create(ctx context.Context, show *entity.Show) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error)
	FindAllDetailed(ctx context.Context) ([]*entity.ShowListing, error)
	FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.ShowListing, error)
	FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.ShowListing, error)
	CountUpcomingByVenue(ctx context.Context, now time.Time) (map[uuid.UUID]int, error)
	CountUpcomingByArtist(ctx context.Context, now time.Time) (map[uuid.UUID]int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type showRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewShowRepository(db database.Querier, log *zap.Logger) ShowRepository {
	return &showRepository{
		db:  db,
		log: log.With(zap.String("repository", "show")),
	}
}

const showListingSelect = `
	SELECT s.id, s.start_time, s.artist_id, s.venue_id, s.created_at,
		a.name, a.image_link, v.name, v.image_link
	FROM shows s
	JOIN artists a ON a.id = s.artist_id
	JOIN venues v  ON v.id = s.venue_id
`

func (r *showRepository) Create(ctx context.Context, show *entity.Show) error {
	query := `
		INSERT INTO shows (id, start_time, artist_id, venue_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		show.ID,
		show.StartTime,
		show.ArtistID,
		show.VenueID,
		show.CreatedAt,
	)
	if err != nil {
		err = classify(err)
		r.log.Error("Failed to create show",
			zap.Error(err),
			zap.String("artist_id", show.ArtistID.String()),
			zap.String("venue_id", show.VenueID.String()),
		)
		return fmt.Errorf("create show: %w", err)
	}

	return nil
}

func (r *showRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
	query := `
		SELECT id, start_time, artist_id, venue_id, created_at
		FROM shows
		WHERE id = $1
	`

	var show entity.Show
	err := r.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.StartTime,
		&show.ArtistID,
		&show.VenueID,
		&show.CreatedAt,
	)
	if err != nil {
		err = classify(err)
		if !isNotFound(err) {
			r.log.Error("Failed to find show by ID",
				zap.Error(err),
				zap.String("show_id", id.String()),
			)
		}
		return nil, fmt.Errorf("find show %s: %w", id.String(), err)
	}

	return &show, nil
}

func (r *showRepository) FindAllDetailed(ctx context.Context) ([]*entity.ShowListing, error) {
	return r.listings(ctx, "find all shows", showListingSelect+` ORDER BY s.start_time, s.id`)
}

func (r *showRepository) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.ShowListing, error) {
	return r.listings(ctx, "find shows by venue",
		showListingSelect+` WHERE s.venue_id = $1 ORDER BY s.start_time, s.id`, venueID)
}

func (r *showRepository) FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.ShowListing, error) {
	return r.listings(ctx, "find shows by artist",
		showListingSelect+` WHERE s.artist_id = $1 ORDER BY s.start_time, s.id`, artistID)
}

func (r *showRepository) listings(ctx context.Context, operation, query string, args ...any) ([]*entity.ShowListing, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+operation, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	shows := []*entity.ShowListing{}
	for rows.Next() {
		var show entity.ShowListing
		err := rows.Scan(
			&show.ID,
			&show.StartTime,
			&show.ArtistID,
			&show.VenueID,
			&show.CreatedAt,
			&show.ArtistName,
			&show.ArtistImageLink,
			&show.VenueName,
			&show.VenueImageLink,
		)
		if err != nil {
			r.log.Error("Failed to scan show row", zap.Error(err))
			return nil, fmt.Errorf("scan show row: %w", err)
		}
		shows = append(shows, &show)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate show rows: %w", err)
	}

	return shows, nil
}

func (r *showRepository) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[uuid.UUID]int, error) {
	query := `SELECT venue_id, COUNT(*) FROM shows WHERE start_time > $1 GROUP BY venue_id`
	return r.countUpcoming(ctx, "count upcoming shows by venue", query, now)
}

func (r *showRepository) CountUpcomingByArtist(ctx context.Context, now time.Time) (map[uuid.UUID]int, error) {
	query := `SELECT artist_id, COUNT(*) FROM shows WHERE start_time > $1 GROUP BY artist_id`
	return r.countUpcoming(ctx, "count upcoming shows by artist", query, now)
}

func (r *showRepository) countUpcoming(ctx context.Context, operation, query string, now time.Time) (map[uuid.UUID]int, error) {
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		r.log.Error("Failed to "+operation, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	counts := make(map[uuid.UUID]int)
	var (
		id    uuid.UUID
		count int
	)
	_, err = pgx.ForEachRow(rows, []any{&id, &count}, func() error {
		counts[id] = count
		return nil
	})
	if err != nil {
		r.log.Error("Failed to read upcoming show counts", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return counts, nil
}

func (r *showRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM shows WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete show",
			zap.Error(err),
			zap.String("show_id", id.String()),
		)
		return fmt.Errorf("delete show %s: %w", id.String(), classify(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete show %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
