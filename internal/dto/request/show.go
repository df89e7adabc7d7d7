package request

type ShowRequest struct {
	ArtistID  string `json:"artist_id" form:"artist_id" validate:"required,uuid"`
	VenueID   string `json:"venue_id" form:"venue_id" validate:"required,uuid"`
	StartTime string `json:"start_time" form:"start_time" validate:"required,showtime"`
}
