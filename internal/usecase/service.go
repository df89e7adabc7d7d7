package usecase

import (
	"fmt"
	"time"

	"venue-booking/internal/data/repository"

	"go.uber.org/zap"
)

// Clock returns the current time; services read it once per request.
type Clock func() time.Time

type Service struct {
	Venue  VenueService
	Artist ArtistService
	Show   ShowService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Venue:  NewVenueService(repo, log, time.Now),
		Artist: NewArtistService(repo, log, time.Now),
		Show:   NewShowService(repo, log, time.Now),
	}
}

func fmtNotFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}
