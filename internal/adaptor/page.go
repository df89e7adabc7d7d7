package adaptor

import (
	"errors"
	"net/http"

	"venue-booking/internal/usecase"
	"venue-booking/pkg/flash"
	"venue-booking/pkg/render"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

// responder holds what every handler needs to answer a request: rendering,
// redirects with flash notices and the error pages.
type responder struct {
	renderer render.Renderer
	log      *zap.Logger
}

// render shows a page together with any pending flash notices. Extra
// notices are appended after the pending ones.
func (p responder) render(w http.ResponseWriter, r *http.Request, status int, page string, data any, notices ...string) {
	flashes := append(flash.Pop(w, r), notices...)

	view := render.View{Page: page, Flashes: flashes, Data: data}
	if err := p.renderer.Render(w, status, view); err != nil {
		p.log.Error("Failed to render page",
			zap.Error(err),
			zap.String("page", page),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (p responder) redirect(w http.ResponseWriter, r *http.Request, target string, notices ...string) {
	flash.Set(w, notices...)
	http.Redirect(w, r, target, http.StatusFound)
}

func (p responder) notFound(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusNotFound, render.ErrorNotFound, nil)
}

func (p responder) serverError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	p.log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation),
	)
	p.render(w, r, http.StatusInternalServerError, render.ErrorServer, nil)
}

// lookupError answers a failed detail or edit-form lookup: unknown ids get
// the 404 page, everything else the 500 page.
func (p responder) lookupError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	if errors.Is(err, usecase.ErrNotFound) {
		p.log.Debug(operation+" failed - not found", zap.Error(err))
		p.notFound(w, r)
		return
	}
	p.serverError(w, r, err, operation)
}

// invalidForm redisplays a rejected form with HTTP 400 and every field
// error listed in one notice.
func (p responder) invalidForm(w http.ResponseWriter, r *http.Request, page string, form render.Form, verr *usecase.ValidationError) {
	form.Errors = verr.Fields
	p.render(w, r, http.StatusBadRequest, page, form,
		"Please fix the following errors: "+utils.FormatValidationErrors(verr.Fields))
}

func validationError(err error) (*usecase.ValidationError, bool) {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

type PageHandler struct {
	responder
}

func NewPageHandler(renderer render.Renderer, log *zap.Logger) *PageHandler {
	return &PageHandler{
		responder: responder{
			renderer: renderer,
			log:      log.With(zap.String("handler", "page")),
		},
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, render.PageHome, nil)
}

// NotFound renders the 404 page for unmatched routes.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r)
}

func (h *PageHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
