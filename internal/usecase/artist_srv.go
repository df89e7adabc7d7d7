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

type ArtistService interface {
	ListArtists(ctx context.Context) ([]response.ArtistListItem, error)
	SearchArtists(ctx context.Context, term string) (*response.SearchResponse[response.ArtistSummary], error)
	GetArtist(ctx context.Context, artistID string) (*response.ArtistDetailResponse, error)
	GetArtistForEdit(ctx context.Context, artistID string) (*response.ArtistResponse, error)

	CreateArtist(ctx context.Context, req *request.ArtistRequest) (*response.ArtistResponse, error)
	UpdateArtist(ctx context.Context, artistID string, req *request.ArtistRequest) (*response.ArtistResponse, error)
}

type artistService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  Clock
}

func NewArtistService(repo *repository.Repository, log *zap.Logger, now Clock) ArtistService {
	return &artistService{
		repo: repo,
		log:  log.With(zap.String("service", "artist")),
		now:  now,
	}
}

func (s *artistService) ListArtists(ctx context.Context) ([]response.ArtistListItem, error) {
	artists, err := s.repo.Artist.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get artists from repository", zap.Error(err))
		return nil, fmt.Errorf("get artists: %w", err)
	}

	items := make([]response.ArtistListItem, len(artists))
	for i, artist := range artists {
		items[i] = response.ArtistListItem{
			ID:   artist.ID.String(),
			Name: artist.Name,
		}
	}

	return items, nil
}

func (s *artistService) SearchArtists(ctx context.Context, term string) (*response.SearchResponse[response.ArtistSummary], error) {
	artists, err := s.repo.Artist.SearchByName(ctx, term)
	if err != nil {
		s.log.Error("Failed to search artists",
			zap.Error(err),
			zap.String("search_term", term),
		)
		return nil, fmt.Errorf("search artists: %w", err)
	}

	upcoming, err := s.repo.Show.CountUpcomingByArtist(ctx, s.now())
	if err != nil {
		s.log.Error("Failed to count upcoming shows", zap.Error(err))
		return nil, fmt.Errorf("count upcoming shows: %w", err)
	}

	data := make([]response.ArtistSummary, len(artists))
	for i, artist := range artists {
		data[i] = response.ArtistSummary{
			ID:               artist.ID.String(),
			Name:             artist.Name,
			NumUpcomingShows: upcoming[artist.ID],
		}
	}

	s.log.Debug("Artists searched",
		zap.String("search_term", term),
		zap.Int("count", len(data)),
	)

	return response.NewSearchResponse(data), nil
}

func (s *artistService) GetArtist(ctx context.Context, artistID string) (*response.ArtistDetailResponse, error) {
	id, err := parseID("artist", artistID)
	if err != nil {
		return nil, err
	}

	artist, err := s.repo.Artist.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}

	shows, err := s.repo.Show.FindByArtistID(ctx, artist.ID)
	if err != nil {
		s.log.Error("Failed to get shows for artist",
			zap.Error(err),
			zap.String("artist_id", artistID),
		)
		return nil, fmt.Errorf("get shows for artist %s: %w", artistID, err)
	}

	return buildArtistDetail(artist, shows, s.now()), nil
}

func (s *artistService) GetArtistForEdit(ctx context.Context, artistID string) (*response.ArtistResponse, error) {
	id, err := parseID("artist", artistID)
	if err != nil {
		return nil, err
	}

	artist, err := s.repo.Artist.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}

	resp := response.ArtistToResponse(artist)
	return &resp, nil
}

func (s *artistService) CreateArtist(ctx context.Context, req *request.ArtistRequest) (*response.ArtistResponse, error) {
	req.Normalize()
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create artist validation failed", zap.Error(err))
		return nil, err
	}

	now := s.now()
	artist := &entity.Artist{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyArtistRequest(artist, req)

	err := s.repo.Tx.WithTx(ctx, func(tx *repository.Repository) error {
		return tx.Artist.Create(ctx, artist)
	})
	if err != nil {
		s.log.Error("Failed to create artist",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create artist: %w", err)
	}

	s.log.Info("Artist created",
		zap.String("artist_id", artist.ID.String()),
		zap.String("name", artist.Name),
		zap.String("city", artist.City),
		zap.String("state", artist.State),
	)

	resp := response.ArtistToResponse(artist)
	return &resp, nil
}

func (s *artistService) UpdateArtist(ctx context.Context, artistID string, req *request.ArtistRequest) (*response.ArtistResponse, error) {
	id, err := parseID("artist", artistID)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if err := validateRequest(req); err != nil {
		s.log.Warn("Update artist validation failed",
			zap.Error(err),
			zap.String("artist_id", artistID),
		)
		return nil, err
	}

	var artist *entity.Artist
	err = s.repo.Tx.WithTx(ctx, func(tx *repository.Repository) error {
		existing, err := tx.Artist.FindByID(ctx, id)
		if err != nil {
			return err
		}

		applyArtistRequest(existing, req)
		existing.UpdatedAt = s.now()
		if err := tx.Artist.Update(ctx, existing); err != nil {
			return err
		}

		artist = existing
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("Failed to update artist",
				zap.Error(err),
				zap.String("artist_id", artistID),
			)
		}
		return nil, fmt.Errorf("update artist %s: %w", artistID, err)
	}

	s.log.Info("Artist updated",
		zap.String("artist_id", artistID),
		zap.String("name", artist.Name),
	)

	resp := response.ArtistToResponse(artist)
	return &resp, nil
}

func applyArtistRequest(artist *entity.Artist, req *request.ArtistRequest) {
	artist.Name = req.Name
	artist.City = req.City
	artist.State = req.State
	artist.Phone = req.Phone
	artist.ImageLink = req.ImageLink
	artist.FacebookLink = req.FacebookLink
	artist.WebsiteLink = req.WebsiteLink
	artist.Genres = append([]string{}, req.Genres...)
	artist.LookingForVenues = req.SeekingVenue
	artist.SeekingDescription = req.SeekingDescription
}
