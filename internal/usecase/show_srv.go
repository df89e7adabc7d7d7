package usecase

import (
	"context"
	"errors"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShowService interface {
	ListShows(ctx context.Context) ([]response.ShowResponse, error)
	GetShowFormOptions(ctx context.Context) (*response.ShowFormOptions, error)
	CreateShow(ctx context.Context, req *request.ShowRequest) (*response.ShowResponse, error)
}

type showService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  Clock
}

func NewShowService(repo *repository.Repository, log *zap.Logger, now Clock) ShowService {
	return &showService{
		repo: repo,
		log:  log.With(zap.String("service", "show")),
		now:  now,
	}
}

func (s *showService) ListShows(ctx context.Context) ([]response.ShowResponse, error) {
	shows, err := s.repo.Show.FindAllDetailed(ctx)
	if err != nil {
		s.log.Error("Failed to get shows from repository", zap.Error(err))
		return nil, fmt.Errorf("get shows: %w", err)
	}

	data := make([]response.ShowResponse, len(shows))
	for i, show := range shows {
		data[i] = response.ShowToResponse(show)
	}

	return data, nil
}

func (s *showService) GetShowFormOptions(ctx context.Context) (*response.ShowFormOptions, error) {
	artists, err := s.repo.Artist.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get artists: %w", err)
	}
	venues, err := s.repo.Venue.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get venues: %w", err)
	}

	opts := &response.ShowFormOptions{
		Artists: make([]response.Option, len(artists)),
		Venues:  make([]response.Option, len(venues)),
	}
	for i, artist := range artists {
		opts.Artists[i] = response.Option{ID: artist.ID.String(), Name: artist.Name}
	}
	for i, venue := range venues {
		opts.Venues[i] = response.Option{ID: venue.ID.String(), Name: venue.Name}
	}

	return opts, nil
}

// CreateShow inserts a show after confirming, inside the same transaction,
// that both its artist and venue exist.
func (s *showService) CreateShow(ctx context.Context, req *request.ShowRequest) (*response.ShowResponse, error) {
	req.Normalize()
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create show validation failed", zap.Error(err))
		return nil, err
	}

	artistID, err := uuid.Parse(req.ArtistID)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"artist_id": "Must be a valid ID"}}
	}
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"venue_id": "Must be a valid ID"}}
	}
	startTime, err := utils.ParseDateTime(req.StartTime)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"start_time": "Not a valid datetime value"}}
	}

	show := &entity.ShowListing{
		Show: entity.Show{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: s.now(),
			},
			StartTime: startTime,
			ArtistID:  artistID,
			VenueID:   venueID,
		},
	}

	err = s.repo.Tx.WithTx(ctx, func(tx *repository.Repository) error {
		artist, err := tx.Artist.FindByID(ctx, artistID)
		if err != nil {
			return missingReference("artist", req.ArtistID, err)
		}
		venue, err := tx.Venue.FindByID(ctx, venueID)
		if err != nil {
			return missingReference("venue", req.VenueID, err)
		}

		if err := tx.Show.Create(ctx, &show.Show); err != nil {
			return err
		}

		show.ArtistName = artist.Name
		show.ArtistImageLink = artist.ImageLink
		show.VenueName = venue.Name
		show.VenueImageLink = venue.ImageLink
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReferenceNotFound) {
			s.log.Warn("Create show rejected", zap.Error(err))
		} else {
			s.log.Error("Failed to create show",
				zap.Error(err),
				zap.String("artist_id", req.ArtistID),
				zap.String("venue_id", req.VenueID),
			)
		}
		return nil, fmt.Errorf("create show: %w", err)
	}

	s.log.Info("Show created",
		zap.String("show_id", show.ID.String()),
		zap.String("artist_id", req.ArtistID),
		zap.String("venue_id", req.VenueID),
		zap.Time("start_time", startTime),
	)

	resp := response.ShowToResponse(show)
	return &resp, nil
}

func missingReference(kind, id string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%s ID %s does not exist: %w", kind, id, ErrReferenceNotFound)
	}
	return err
}
