package adaptor

import (
	"net/http"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/render"

	"go.uber.org/zap"
)

type ShowHandler struct {
	responder
	service usecase.ShowService
}

func NewShowHandler(service usecase.ShowService, renderer render.Renderer, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		responder: responder{
			renderer: renderer,
			log:      log.With(zap.String("handler", "show")),
		},
		service: service,
	}
}

// ListShows handles GET /shows
func (h *ShowHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.service.ListShows(r.Context())
	if err != nil {
		h.serverError(w, r, err, "list shows")
		return
	}

	h.render(w, r, http.StatusOK, render.PageShows, shows)
}

// NewShowForm handles GET /shows/create
func (h *ShowHandler) NewShowForm(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.GetShowFormOptions(r.Context())
	if err != nil {
		h.serverError(w, r, err, "get show form options")
		return
	}

	h.render(w, r, http.StatusOK, render.FormNewShow, newShowForm(request.ShowRequest{}, options))
}

// CreateShow handles POST /shows/create
func (h *ShowHandler) CreateShow(w http.ResponseWriter, r *http.Request) {
	var req request.ShowRequest
	decodeErr := decodeForm(r, &req)

	var err error
	if decodeErr != nil {
		h.log.Warn("Invalid show form", zap.Error(decodeErr))
		err = malformedForm()
	} else {
		_, err = h.service.CreateShow(r.Context(), &req)
	}

	if verr, ok := validationError(err); ok {
		options, oerr := h.service.GetShowFormOptions(r.Context())
		if oerr != nil {
			h.serverError(w, r, oerr, "get show form options")
			return
		}
		h.invalidForm(w, r, render.FormNewShow, newShowForm(req, options), verr)
		return
	}
	if err != nil {
		h.log.Error("Failed to create show",
			zap.Error(err),
			zap.String("artist_id", req.ArtistID),
			zap.String("venue_id", req.VenueID),
		)
		h.redirect(w, r, "/", "An error occurred. Show could not be listed.")
		return
	}

	h.redirect(w, r, "/", "Show was successfully listed!")
}

func newShowForm(values request.ShowRequest, options *response.ShowFormOptions) render.Form {
	return render.Form{
		Action:  "/shows/create",
		Values:  values,
		Errors:  map[string]string{},
		Options: options,
	}
}
