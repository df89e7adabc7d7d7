package entity

type Artist struct {
	Base
	Name               string   `db:"name"`
	City               string   `db:"city"`
	State              string   `db:"state"`
	Phone              string   `db:"phone"`
	Genres             []string `db:"genres"`
	ImageLink          string   `db:"image_link"`
	FacebookLink       string   `db:"facebook_link"`
	WebsiteLink        string   `db:"website_link"`
	LookingForVenues   bool     `db:"looking_for_venues"`
	SeekingDescription string   `db:"seeking_description"`
}
