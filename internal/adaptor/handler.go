package adaptor

import (
	"venue-booking/internal/usecase"
	"venue-booking/pkg/render"

	"go.uber.org/zap"
)

type Handler struct {
	Page   *PageHandler
	Venue  *VenueHandler
	Artist *ArtistHandler
	Show   *ShowHandler
}

func NewHandler(service *usecase.Service, renderer render.Renderer, log *zap.Logger) *Handler {
	return &Handler{
		Page:   NewPageHandler(renderer, log),
		Venue:  NewVenueHandler(service.Venue, renderer, log),
		Artist: NewArtistHandler(service.Artist, renderer, log),
		Show:   NewShowHandler(service.Show, renderer, log),
	}
}
