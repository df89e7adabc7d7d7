package usecase

import (
	"context"
	"errors"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VenueService interface {
	ListVenues(ctx context.Context) ([]response.VenueArea, error)
	SearchVenues(ctx context.Context, term string) (*response.SearchResponse[response.VenueSummary], error)
	GetVenue(ctx context.Context, venueID string) (*response.VenueDetailResponse, error)
	GetVenueForEdit(ctx context.Context, venueID string) (*response.VenueResponse, error)

	CreateVenue(ctx context.Context, req *request.VenueRequest) (*response.VenueResponse, error)
	UpdateVenue(ctx context.Context, venueID string, req *request.VenueRequest) (*response.VenueResponse, error)
	DeleteVenue(ctx context.Context, venueID string) (*response.VenueResponse, error)
}

type venueService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  Clock
}

func NewVenueService(repo *repository.Repository, log *zap.Logger, now Clock) VenueService {
	return &venueService{
		repo: repo,
		log:  log.With(zap.String("service", "venue")),
		now:  now,
	}
}

func (s *venueService) ListVenues(ctx context.Context) ([]response.VenueArea, error) {
	venues, err := s.repo.Venue.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get venues from repository", zap.Error(err))
		return nil, fmt.Errorf("get venues: %w", err)
	}

	upcoming, err := s.repo.Show.CountUpcomingByVenue(ctx, s.now())
	if err != nil {
		s.log.Error("Failed to count upcoming shows", zap.Error(err))
		return nil, fmt.Errorf("count upcoming shows: %w", err)
	}

	areas := GroupVenuesByLocation(venues, upcoming)

	s.log.Debug("Venues retrieved",
		zap.Int("count", len(venues)),
		zap.Int("areas", len(areas)),
	)

	return areas, nil
}

func (s *venueService) SearchVenues(ctx context.Context, term string) (*response.SearchResponse[response.VenueSummary], error) {
	venues, err := s.repo.Venue.SearchByName(ctx, term)
	if err != nil {
		s.log.Error("Failed to search venues",
			zap.Error(err),
			zap.String("search_term", term),
		)
		return nil, fmt.Errorf("search venues: %w", err)
	}

	upcoming, err := s.repo.Show.CountUpcomingByVenue(ctx, s.now())
	if err != nil {
		s.log.Error("Failed to count upcoming shows", zap.Error(err))
		return nil, fmt.Errorf("count upcoming shows: %w", err)
	}

	data := make([]response.VenueSummary, len(venues))
	for i, venue := range venues {
		data[i] = response.VenueSummary{
			ID:               venue.ID.String(),
			Name:             venue.Name,
			NumUpcomingShows: upcoming[venue.ID],
		}
	}

	s.log.Debug("Venues searched",
		zap.String("search_term", term),
		zap.Int("count", len(data)),
	)

	return response.NewSearchResponse(data), nil
}

func (s *venueService) GetVenue(ctx context.Context, venueID string) (*response.VenueDetailResponse, error) {
	id, err := parseID("venue", venueID)
	if err != nil {
		return nil, err
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	shows, err := s.repo.Show.FindByVenueID(ctx, venue.ID)
	if err != nil {
		s.log.Error("Failed to get shows for venue",
			zap.Error(err),
			zap.String("venue_id", venueID),
		)
		return nil, fmt.Errorf("get shows for venue %s: %w", venueID, err)
	}

	return buildVenueDetail(venue, shows, s.now()), nil
}

func (s *venueService) GetVenueForEdit(ctx context.Context, venueID string) (*response.VenueResponse, error) {
	id, err := parseID("venue", venueID)
	if err != nil {
		return nil, err
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

func (s *venueService) CreateVenue(ctx context.Context, req *request.VenueRequest) (*response.VenueResponse, error) {
	req.Normalize()
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create venue validation failed", zap.Error(err))
		return nil, err
	}

	now := s.now()
	venue := &entity.Venue{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyVenueRequest(venue, req)

	err := s.repo.Tx.WithTx(ctx, func(tx *repository.Repository) error {
		return tx.Venue.Create(ctx, venue)
	})
	if err != nil {
		s.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create venue: %w", err)
	}

	s.log.Info("Venue created",
		zap.String("venue_id", venue.ID.String()),
		zap.String("name", venue.Name),
		zap.String("city", venue.City),
		zap.String("state", venue.State),
	)

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, venueID string, req *request.VenueRequest) (*response.VenueResponse, error) {
	id, err := parseID("venue", venueID)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if err := validateRequest(req); err != nil {
		s.log.Warn("Update venue validation failed",
			zap.Error(err),
			zap.String("venue_id", venueID),
		)
		return nil, err
	}

	var venue *entity.Venue
	err = s.repo.Tx.WithTx(ctx, func(tx *repository.Repository) error {
		existing, err := tx.Venue.FindByID(ctx, id)
		if err != nil {
			return err
		}

		applyVenueRequest(existing, req)
		existing.UpdatedAt = s.now()
		if err := tx.Venue.Update(ctx, existing); err != nil {
			return err
		}

		venue = existing
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("Failed to update venue",
				zap.Error(err),
				zap.String("venue_id", venueID),
			)
		}
		return nil, fmt.Errorf("update venue %s: %w", venueID, err)
	}

	s.log.Info("Venue updated",
		zap.String("venue_id", venueID),
		zap.String("name", venue.Name),
	)

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

func (s *venueService) DeleteVenue(ctx context.Context, venueID string) (*response.VenueResponse, error) {
	id, err := parseID("venue", venueID)
	if err != nil {
		return nil, err
	}

	var venue *entity.Venue
	err = s.repo.Tx.WithTx(ctx, func(tx *repository.Repository) error {
		existing, err := tx.Venue.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Venue.Delete(ctx, id); err != nil {
			return err
		}

		venue = existing
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("Failed to delete venue",
				zap.Error(err),
				zap.String("venue_id", venueID),
			)
		}
		return nil, fmt.Errorf("delete venue %s: %w", venueID, err)
	}

	s.log.Info("Venue deleted",
		zap.String("venue_id", venueID),
		zap.String("name", venue.Name),
	)

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

func applyVenueRequest(venue *entity.Venue, req *request.VenueRequest) {
	venue.Name = req.Name
	venue.City = req.City
	venue.State = req.State
	venue.Address = req.Address
	venue.Phone = req.Phone
	venue.ImageLink = req.ImageLink
	venue.FacebookLink = req.FacebookLink
	venue.WebsiteLink = req.WebsiteLink
	venue.Genres = append([]string{}, req.Genres...)
	venue.LookingForTalent = req.SeekingTalent
	venue.SeekingDescription = req.SeekingDescription
}
