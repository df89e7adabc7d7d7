package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShow(r chi.Router, showHandler *adaptor.ShowHandler) {
	r.Route("/shows", func(r chi.Router) {
		r.Get("/", showHandler.ListShows)
		r.Get("/create", showHandler.NewShowForm)
		r.Post("/create", showHandler.CreateShow)
	})
}
