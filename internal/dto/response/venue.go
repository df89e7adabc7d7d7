package response

import (
	"venue-booking/internal/data/entity"
)

// VenueSummary is a venue as it appears in listings and search results.
type VenueSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueArea groups the venues that share a city and state.
type VenueArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

type VenueResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}

type VenueDetailResponse struct {
	VenueResponse
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// VenueShow is a show on a venue page, carrying the artist's display fields.
type VenueShow struct {
	ArtistID        string `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

func VenueToResponse(venue *entity.Venue) VenueResponse {
	return VenueResponse{
		ID:                 venue.ID.String(),
		Name:               venue.Name,
		Genres:             append([]string{}, venue.Genres...),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.WebsiteLink,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.LookingForTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
	}
}
