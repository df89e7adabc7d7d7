package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type listing struct {
	Name   string   `form:"name" validate:"required,max=10"`
	State  string   `form:"state" validate:"required,state"`
	Phone  string   `form:"phone" validate:"omitempty,phone"`
	Genres []string `form:"genres" validate:"required,min=1,dive,required"`
	When   string   `form:"start_time" validate:"omitempty,showtime"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(listing{
		Name:   "Fillmore",
		State:  "CA",
		Phone:  "(415) 346-6000",
		Genres: []string{"Rock"},
		When:   "2035-04-01 20:00:00",
	})

	assert.Nil(t, errs)
}

func TestValidateStruct_CollectsEveryField(t *testing.T) {
	errs := ValidateStruct(listing{
		Name:  "A name that is too long",
		State: "XX",
		Phone: "call me",
		When:  "tomorrow",
	})

	assert.Equal(t, map[string]string{
		"name":       "Maximum length is 10",
		"state":      "Not a valid state code",
		"phone":      "Invalid phone number",
		"genres":     "This field is required",
		"start_time": "Not a valid datetime value",
	}, errs)
}

func TestValidateStruct_GenreEntriesReportOnGenres(t *testing.T) {
	errs := ValidateStruct(listing{
		Name:   "Fillmore",
		State:  "CA",
		Genres: []string{"Rock", ""},
	})

	assert.Equal(t, map[string]string{"genres": "This field is required"}, errs)
}

func TestValidateStruct_EmptyGenreList(t *testing.T) {
	errs := ValidateStruct(listing{
		Name:   "Fillmore",
		State:  "CA",
		Genres: []string{},
	})

	assert.Equal(t, "Select at least 1", errs["genres"])
}

func TestFormatValidationErrors_SortedByField(t *testing.T) {
	out := FormatValidationErrors(map[string]string{
		"state": "Not a valid state code",
		"city":  "This field is required",
	})

	assert.Equal(t, "city: This field is required, state: Not a valid state code", out)
}
