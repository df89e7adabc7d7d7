// Package render turns page payloads into HTTP responses.
package render

import (
	"net/http"
)

// View is everything a page needs: which page, the one-shot notices to
// show, and the payload.
type View struct {
	Page    string
	Flashes []string
	Data    any
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, view View) error
}

const (
	PageHome          = "pages/home"
	PageVenues        = "pages/venues"
	PageSearchVenues  = "pages/search_venues"
	PageShowVenue     = "pages/show_venue"
	PageArtists       = "pages/artists"
	PageSearchArtists = "pages/search_artists"
	PageShowArtist    = "pages/show_artist"
	PageShows         = "pages/shows"
	FormNewVenue      = "forms/new_venue"
	FormEditVenue     = "forms/edit_venue"
	FormNewArtist     = "forms/new_artist"
	FormEditArtist    = "forms/edit_artist"
	FormNewShow       = "forms/new_show"
	ErrorNotFound     = "errors/404"
	ErrorServer       = "errors/500"
)

// Pages lists every page a renderer must support.
var Pages = []string{
	PageHome, PageVenues, PageSearchVenues, PageShowVenue,
	PageArtists, PageSearchArtists, PageShowArtist, PageShows,
	FormNewVenue, FormEditVenue, FormNewArtist, FormEditArtist, FormNewShow,
	ErrorNotFound, ErrorServer,
}

// New picks a renderer by mode: "json" or "html" (default).
func New(mode string) (Renderer, error) {
	if mode == "json" {
		return JSON{}, nil
	}
	return NewHTML()
}
