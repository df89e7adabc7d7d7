package response

import (
	"venue-booking/internal/data/entity"
)

// ArtistListItem is an artist on the artists index page.
type ArtistListItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ArtistSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type ArtistResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}

type ArtistDetailResponse struct {
	ArtistResponse
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// ArtistShow is a show on an artist page, carrying the venue's display fields.
type ArtistShow struct {
	VenueID        string `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

func ArtistToResponse(artist *entity.Artist) ArtistResponse {
	return ArtistResponse{
		ID:                 artist.ID.String(),
		Name:               artist.Name,
		Genres:             append([]string{}, artist.Genres...),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.WebsiteLink,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.LookingForVenues,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
	}
}
