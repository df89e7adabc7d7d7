package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireArtist(r chi.Router, artistHandler *adaptor.ArtistHandler) {
	r.Route("/artists", func(r chi.Router) {
		r.Get("/", artistHandler.ListArtists)
		r.Post("/search", artistHandler.SearchArtists)

		r.Get("/create", artistHandler.NewArtistForm)
		r.Post("/create", artistHandler.CreateArtist)

		r.Get("/{id}", artistHandler.GetArtist)
		r.Get("/{id}/edit", artistHandler.EditArtistForm)
		r.Post("/{id}/edit", artistHandler.UpdateArtist)
	})
}
