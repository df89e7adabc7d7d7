package request

import "strings"

func (r *VenueRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.ToUpper(strings.TrimSpace(r.State))
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)
	r.ImageLink = strings.TrimSpace(r.ImageLink)
	r.FacebookLink = strings.TrimSpace(r.FacebookLink)
	r.WebsiteLink = strings.TrimSpace(r.WebsiteLink)
	r.SeekingDescription = strings.TrimSpace(r.SeekingDescription)
	r.Genres = uniqueGenres(r.Genres)
}

func (r *ArtistRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.ToUpper(strings.TrimSpace(r.State))
	r.Phone = strings.TrimSpace(r.Phone)
	r.ImageLink = strings.TrimSpace(r.ImageLink)
	r.FacebookLink = strings.TrimSpace(r.FacebookLink)
	r.WebsiteLink = strings.TrimSpace(r.WebsiteLink)
	r.SeekingDescription = strings.TrimSpace(r.SeekingDescription)
	r.Genres = uniqueGenres(r.Genres)
}

func (r *ShowRequest) Normalize() {
	r.ArtistID = strings.TrimSpace(r.ArtistID)
	r.VenueID = strings.TrimSpace(r.VenueID)
	r.StartTime = strings.TrimSpace(r.StartTime)
}

// uniqueGenres trims each genre and keeps the first occurrence of each,
// preserving submission order. Blank entries are kept so validation can
// report them.
func uniqueGenres(genres []string) []string {
	if genres == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(genres))
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g != "" {
			if _, dup := seen[g]; dup {
				continue
			}
			seen[g] = struct{}{}
		}
		out = append(out, g)
	}
	return out
}
