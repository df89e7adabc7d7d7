package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVenue(r chi.Router, venueHandler *adaptor.VenueHandler) {
	r.Route("/venues", func(r chi.Router) {
		r.Get("/", venueHandler.ListVenues)
		r.Post("/search", venueHandler.SearchVenues)

		r.Get("/create", venueHandler.NewVenueForm)
		r.Post("/create", venueHandler.CreateVenue)

		r.Get("/{id}", venueHandler.GetVenue)
		r.Delete("/{id}", venueHandler.DeleteVenue)
		r.Get("/{id}/edit", venueHandler.EditVenueForm)
		r.Post("/{id}/edit", venueHandler.UpdateVenue)
	})
}
