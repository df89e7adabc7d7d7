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

type VenueHandler struct {
	responder
	service usecase.VenueService
}

func NewVenueHandler(service usecase.VenueService, renderer render.Renderer, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		responder: responder{
			renderer: renderer,
			log:      log.With(zap.String("handler", "venue")),
		},
		service: service,
	}
}

// ListVenues handles GET /venues
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := h.service.ListVenues(r.Context())
	if err != nil {
		h.serverError(w, r, err, "list venues")
		return
	}

	h.render(w, r, http.StatusOK, render.PageVenues, areas)
}

// SearchVenues handles POST /venues/search
func (h *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	var req request.SearchRequest
	if err := decodeForm(r, &req); err != nil {
		h.log.Warn("Invalid search form", zap.Error(err))
	}

	results, err := h.service.SearchVenues(r.Context(), req.SearchTerm)
	if err != nil {
		h.serverError(w, r, err, "search venues")
		return
	}

	h.render(w, r, http.StatusOK, render.PageSearchVenues, render.Search{
		Term:    req.SearchTerm,
		Results: results,
	})
}

// GetVenue handles GET /venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venue, err := h.service.GetVenue(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.lookupError(w, r, err, "get venue")
		return
	}

	h.render(w, r, http.StatusOK, render.PageShowVenue, venue)
}

// NewVenueForm handles GET /venues/create
func (h *VenueHandler) NewVenueForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, render.FormNewVenue, newVenueForm(request.VenueRequest{}))
}

// CreateVenue handles POST /venues/create
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req request.VenueRequest
	if err := decodeForm(r, &req); err != nil {
		h.log.Warn("Invalid venue form", zap.Error(err))
		h.invalidForm(w, r, render.FormNewVenue, newVenueForm(req), malformedForm())
		return
	}

	venue, err := h.service.CreateVenue(r.Context(), &req)
	if verr, ok := validationError(err); ok {
		h.invalidForm(w, r, render.FormNewVenue, newVenueForm(req), verr)
		return
	}
	if err != nil {
		h.log.Error("Failed to create venue", zap.Error(err), zap.String("name", req.Name))
		h.redirect(w, r, "/", fmt.Sprintf("An error occurred. Venue %s could not be listed.", req.Name))
		return
	}

	h.redirect(w, r, "/", fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
}

// EditVenueForm handles GET /venues/{id}/edit
func (h *VenueHandler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")

	venue, err := h.service.GetVenueForEdit(r.Context(), venueID)
	if err != nil {
		h.lookupError(w, r, err, "get venue for edit")
		return
	}

	h.render(w, r, http.StatusOK, render.FormEditVenue, editVenueForm(venueID, venueRequestFrom(venue)))
}

// UpdateVenue handles POST /venues/{id}/edit
func (h *VenueHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")

	var req request.VenueRequest
	if err := decodeForm(r, &req); err != nil {
		h.log.Warn("Invalid venue form", zap.Error(err), zap.String("venue_id", venueID))
		h.invalidForm(w, r, render.FormEditVenue, editVenueForm(venueID, req), malformedForm())
		return
	}

	venue, err := h.service.UpdateVenue(r.Context(), venueID, &req)
	if verr, ok := validationError(err); ok {
		h.invalidForm(w, r, render.FormEditVenue, editVenueForm(venueID, req), verr)
		return
	}
	if errors.Is(err, usecase.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("Failed to update venue", zap.Error(err), zap.String("venue_id", venueID))
		h.redirect(w, r, "/venues/"+venueID, fmt.Sprintf("An error has occurred. Venue %s was not updated.", req.Name))
		return
	}

	h.redirect(w, r, "/venues/"+venueID, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
}

// DeleteVenue handles DELETE /venues/{id}
func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")

	venue, err := h.service.DeleteVenue(r.Context(), venueID)
	if errors.Is(err, usecase.ErrNotFound) {
		h.log.Warn("Delete venue failed - not found", zap.String("venue_id", venueID))
		h.redirect(w, r, "/", fmt.Sprintf("Venue ID %s does not exist.", venueID))
		return
	}
	if err != nil {
		h.log.Error("Failed to delete venue", zap.Error(err), zap.String("venue_id", venueID))
		h.redirect(w, r, "/", "An error occurred. Venue could not be deleted.")
		return
	}

	h.redirect(w, r, "/", fmt.Sprintf("Venue %s was successfully deleted!", venue.Name))
}

func newVenueForm(values request.VenueRequest) render.Form {
	return render.Form{
		Action: "/venues/create",
		Values: values,
		Errors: map[string]string{},
	}
}

func editVenueForm(venueID string, values request.VenueRequest) render.Form {
	return render.Form{
		Action: "/venues/" + venueID + "/edit",
		ID:     venueID,
		Values: values,
		Errors: map[string]string{},
	}
}

// venueRequestFrom prefills the edit form with the stored record.
func venueRequestFrom(venue *response.VenueResponse) request.VenueRequest {
	return request.VenueRequest{
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		ImageLink:          venue.ImageLink,
		Genres:             venue.Genres,
		FacebookLink:       venue.FacebookLink,
		WebsiteLink:        venue.Website,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
	}
}

func malformedForm() *usecase.ValidationError {
	return &usecase.ValidationError{Fields: map[string]string{"_": "Malformed form submission"}}
}
