// Package apiv1 holds the wire types of the public catalog API and the admin
// service.
package apiv1

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

// NoAgeStatement is how an age is rendered when the bottle carries none.
const NoAgeStatement = "NAS"

var ErrInvalidAge = errors.New("age must be a number or \"NAS\"")

// Age is a whisky's declared age in years. A nil Years renders as "NAS".
type Age struct {
	Years *int
}

func (a Age) IsNAS() bool {
	return a.Years == nil
}

func (a Age) String() string {
	if a.Years == nil {
		return NoAgeStatement
	}

	return strconv.Itoa(*a.Years)
}

func (a Age) MarshalJSON() ([]byte, error) {
	if a.Years == nil {
		return json.Marshal(NoAgeStatement)
	}

	return json.Marshal(*a.Years)
}

func (a *Age) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`"`+NoAgeStatement+`"`)) {
		a.Years = nil

		return nil
	}

	var years int
	if err := json.Unmarshal(data, &years); err != nil {
		return ErrInvalidAge
	}

	a.Years = &years

	return nil
}

type AromaticProfile struct {
	Body      int `json:"body"`
	Richness  int `json:"richness"`
	Sweetness int `json:"sweetness"`
	Smokiness int `json:"smokiness"`
	Finish    int `json:"finish"`
}

type Origin struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Region struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	OriginID uint   `json:"origin_id"`
}

type Type struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type FlavorTag struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type Whisky struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Distillery      *string         `json:"distillery,omitempty"`
	OriginID        uint            `json:"origin_id"`
	Origin          *Origin         `json:"origin,omitempty"`
	RegionID        *uint           `json:"region_id,omitempty"`
	Region          *Region         `json:"region,omitempty"`
	TypeID          uint            `json:"type_id"`
	Type            *Type           `json:"type,omitempty"`
	ABV             float64         `json:"abv"`
	Age             Age             `json:"age"`
	PriceRange      string          `json:"price_range"`
	PurchaseDate    *string         `json:"purchase_date,omitempty"`
	ImageURL        *string         `json:"image_url,omitempty"`
	OverallRating   int             `json:"overall_rating"`
	RatingLabel     string          `json:"rating_label"`
	AromaticProfile AromaticProfile `json:"aromatic_profile"`
	FlavorTags      []FlavorTag     `json:"flavor_tags"`
	Notes           string          `json:"notes"`
	TastingDate     string          `json:"tasting_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	IsWhiskyOfWeek  bool            `json:"is_whisky_of_week"`
	IsTop5          bool            `json:"is_top_5"`
}

// WhiskyInput is the admin form. Dates use the 2006-01-02 layout and an empty
// ID creates a new review.
type WhiskyInput struct {
	ID              string          `json:"id,omitempty"`
	Name            string          `json:"name"`
	Distillery      string          `json:"distillery,omitempty"`
	OriginID        uint            `json:"origin_id"`
	RegionID        *uint           `json:"region_id,omitempty"`
	TypeID          uint            `json:"type_id"`
	ABV             float64         `json:"abv"`
	AgeStatement    bool            `json:"age_statement"`
	Age             *int            `json:"age,omitempty"`
	PriceRange      string          `json:"price_range"`
	PurchaseDate    string          `json:"purchase_date,omitempty"`
	ImageURL        string          `json:"image_url,omitempty"`
	OverallRating   int             `json:"overall_rating"`
	AromaticProfile AromaticProfile `json:"aromatic_profile"`
	FlavorTagIDs    []uint          `json:"flavor_tag_ids"`
	Notes           string          `json:"notes"`
	TastingDate     string          `json:"tasting_date"`
	IsWhiskyOfWeek  bool            `json:"is_whisky_of_week"`
	IsTop5          bool            `json:"is_top_5"`
}

const DateLayout = time.DateOnly
