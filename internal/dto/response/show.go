package response

import (
	"venue-booking/internal/data/entity"
	"venue-booking/pkg/utils"
)

type ShowResponse struct {
	ID              string `json:"id"`
	VenueID         string `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        string `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

func ShowToResponse(show *entity.ShowListing) ShowResponse {
	return ShowResponse{
		ID:              show.ID.String(),
		VenueID:         show.VenueID.String(),
		VenueName:       show.VenueName,
		ArtistID:        show.ArtistID.String(),
		ArtistName:      show.ArtistName,
		ArtistImageLink: show.ArtistImageLink,
		StartTime:       utils.FormatTimestamp(show.StartTime),
	}
}

// Option is an id/label pair for form select inputs.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ShowFormOptions struct {
	Artists []Option `json:"artists"`
	Venues  []Option `json:"venues"`
}
