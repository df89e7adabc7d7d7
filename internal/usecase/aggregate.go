package usecase

import (
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
)

type location struct {
	city  string
	state string
}

// GroupVenuesByLocation buckets venues by (city, state). Groups appear in
// the order their first venue appears; venues keep their input order.
func GroupVenuesByLocation(venues []*entity.Venue, upcoming map[uuid.UUID]int) []response.VenueArea {
	areas := []response.VenueArea{}
	index := make(map[location]int)

	for _, venue := range venues {
		key := location{city: venue.City, state: venue.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, response.VenueArea{
				City:   venue.City,
				State:  venue.State,
				Venues: []response.VenueSummary{},
			})
		}
		areas[i].Venues = append(areas[i].Venues, response.VenueSummary{
			ID:               venue.ID.String(),
			Name:             venue.Name,
			NumUpcomingShows: upcoming[venue.ID],
		})
	}

	return areas
}

// PartitionShows splits shows into past and upcoming relative to now. A
// show is upcoming only when it starts strictly after now.
func PartitionShows[T any](shows []*entity.ShowListing, now time.Time, convert func(*entity.ShowListing) T) (past, upcoming []T) {
	past, upcoming = []T{}, []T{}
	for _, show := range shows {
		if show.IsUpcoming(now) {
			upcoming = append(upcoming, convert(show))
		} else {
			past = append(past, convert(show))
		}
	}
	return past, upcoming
}

func venueShow(show *entity.ShowListing) response.VenueShow {
	return response.VenueShow{
		ArtistID:        show.ArtistID.String(),
		ArtistName:      show.ArtistName,
		ArtistImageLink: show.ArtistImageLink,
		StartTime:       utils.FormatTimestamp(show.StartTime),
	}
}

func artistShow(show *entity.ShowListing) response.ArtistShow {
	return response.ArtistShow{
		VenueID:        show.VenueID.String(),
		VenueName:      show.VenueName,
		VenueImageLink: show.VenueImageLink,
		StartTime:      utils.FormatTimestamp(show.StartTime),
	}
}

func buildVenueDetail(venue *entity.Venue, shows []*entity.ShowListing, now time.Time) *response.VenueDetailResponse {
	past, upcoming := PartitionShows(shows, now, venueShow)
	return &response.VenueDetailResponse{
		VenueResponse:      response.VenueToResponse(venue),
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func buildArtistDetail(artist *entity.Artist, shows []*entity.ShowListing, now time.Time) *response.ArtistDetailResponse {
	past, upcoming := PartitionShows(shows, now, artistShow)
	return &response.ArtistDetailResponse{
		ArtistResponse:     response.ArtistToResponse(artist),
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func parseID(kind, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmtNotFound(kind, raw)
	}
	return id, nil
}
