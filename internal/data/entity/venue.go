package entity

type Venue struct {
	Base
	Name               string   `db:"name"`
	City               string   `db:"city"`
	State              string   `db:"state"`
	Address            string   `db:"address"`
	Phone              string   `db:"phone"`
	ImageLink          string   `db:"image_link"`
	FacebookLink       string   `db:"facebook_link"`
	WebsiteLink        string   `db:"website_link"`
	Genres             []string `db:"genres"`
	LookingForTalent   bool     `db:"looking_for_talent"`
	SeekingDescription string   `db:"seeking_description"`
}
