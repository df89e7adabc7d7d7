package adaptor

import (
	"errors"
	"fmt"
	"net/http"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/render"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ArtistHandler struct {
	responder
	service usecase.ArtistService
}

func NewArtistHandler(service usecase.ArtistService, renderer render.Renderer, log *zap.Logger) *ArtistHandler {
	return &ArtistHandler{
		responder: responder{
			renderer: renderer,
			log:      log.With(zap.String("handler", "artist")),
		},
		service: service,
	}
}

// ListArtists handles GET /artists
func (h *ArtistHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.service.ListArtists(r.Context())
	if err != nil {
		h.serverError(w, r, err, "list artists")
		return
	}

	h.render(w, r, http.StatusOK, render.PageArtists, artists)
}

// SearchArtists handles POST /artists/search
func (h *ArtistHandler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	var req request.SearchRequest
	if err := decodeForm(r, &req); err != nil {
		h.log.Warn("Invalid search form", zap.Error(err))
	}

	results, err := h.service.SearchArtists(r.Context(), req.SearchTerm)
	if err != nil {
		h.serverError(w, r, err, "search artists")
		return
	}

	h.render(w, r, http.StatusOK, render.PageSearchArtists, render.Search{
		Term:    req.SearchTerm,
		Results: results,
	})
}

// GetArtist handles GET /artists/{id}
func (h *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	artist, err := h.service.GetArtist(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.lookupError(w, r, err, "get artist")
		return
	}

	h.render(w, r, http.StatusOK, render.PageShowArtist, artist)
}

// NewArtistForm handles GET /artists/create
func (h *ArtistHandler) NewArtistForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, render.FormNewArtist, newArtistForm(request.ArtistRequest{}))
}

// CreateArtist handles POST /artists/create
func (h *ArtistHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var req request.ArtistRequest
	if err := decodeForm(r, &req); err != nil {
		h.log.Warn("Invalid artist form", zap.Error(err))
		h.invalidForm(w, r, render.FormNewArtist, newArtistForm(req), malformedForm())
		return
	}

	artist, err := h.service.CreateArtist(r.Context(), &req)
	if verr, ok := validationError(err); ok {
		h.invalidForm(w, r, render.FormNewArtist, newArtistForm(req), verr)
		return
	}
	if err != nil {
		h.log.Error("Failed to create artist", zap.Error(err), zap.String("name", req.Name))
		h.redirect(w, r, "/", fmt.Sprintf("An error occurred. Artist %s could not be listed.", req.Name))
		return
	}

	h.redirect(w, r, "/", fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
}

// EditArtistForm handles GET /artists/{id}/edit
func (h *ArtistHandler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	artistID := chi.URLParam(r, "id")

	artist, err := h.service.GetArtistForEdit(r.Context(), artistID)
	if err != nil {
		h.lookupError(w, r, err, "get artist for edit")
		return
	}

	h.render(w, r, http.StatusOK, render.FormEditArtist, editArtistForm(artistID, artistRequestFrom(artist)))
}

// UpdateArtist handles POST /artists/{id}/edit
func (h *ArtistHandler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	artistID := chi.URLParam(r, "id")

	var req request.ArtistRequest
	if err := decodeForm(r, &req); err != nil {
		h.log.Warn("Invalid artist form", zap.Error(err), zap.String("artist_id", artistID))
		h.invalidForm(w, r, render.FormEditArtist, editArtistForm(artistID, req), malformedForm())
		return
	}

	artist, err := h.service.UpdateArtist(r.Context(), artistID, &req)
	if verr, ok := validationError(err); ok {
		h.invalidForm(w, r, render.FormEditArtist, editArtistForm(artistID, req), verr)
		return
	}
	if errors.Is(err, usecase.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("Failed to update artist", zap.Error(err), zap.String("artist_id", artistID))
		h.redirect(w, r, "/artists/"+artistID, fmt.Sprintf("An error has occurred. Artist %s was not updated.", req.Name))
		return
	}

	h.redirect(w, r, "/artists/"+artistID, fmt.Sprintf("%s was successfully updated!", artist.Name))
}

func newArtistForm(values request.ArtistRequest) render.Form {
	return render.Form{
		Action: "/artists/create",
		Values: values,
		Errors: map[string]string{},
	}
}

func editArtistForm(artistID string, values request.ArtistRequest) render.Form {
	return render.Form{
		Action: "/artists/" + artistID + "/edit",
		ID:     artistID,
		Values: values,
		Errors: map[string]string{},
	}
}

func artistRequestFrom(artist *response.ArtistResponse) request.ArtistRequest {
	return request.ArtistRequest{
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		ImageLink:          artist.ImageLink,
		Genres:             artist.Genres,
		FacebookLink:       artist.FacebookLink,
		WebsiteLink:        artist.Website,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
	}
}
