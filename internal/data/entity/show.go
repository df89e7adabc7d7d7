package entity

import (
	"time"

	"github.com/google/uuid"
)

type Show struct {
	BaseSimple
	StartTime time.Time `db:"start_time"`
	ArtistID  uuid.UUID `db:"artist_id"`
	VenueID   uuid.UUID `db:"venue_id"`
}

// IsUpcoming reports whether the show starts strictly after now.
func (s *Show) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}

// ShowListing is a show joined with the display fields of its artist and
// venue.
type ShowListing struct {
	Show
	ArtistName      string `db:"artist_name"`
	ArtistImageLink string `db:"artist_image_link"`
	VenueName       string `db:"venue_name"`
	VenueImageLink  string `db:"venue_image_link"`
}
