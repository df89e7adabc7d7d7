package request

type ArtistRequest struct {
	Name               string   `json:"name" form:"name" validate:"required,max=120"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,state"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,phone,max=120"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,required,max=120"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=200"`
	WebsiteLink        string   `json:"website_link" form:"website_link" validate:"omitempty,url,max=200"`
	SeekingVenue       bool     `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"max=500"`
}
