// Package view turns stored rows into the shapes the API serves. Nothing here
// validates or fails: values outside their expected range pass through.
package view

import (
	"time"

	"github.com/google/uuid"

	apiv1 "droscher.com/WhiskyReview/pkg/api/v1"
	"droscher.com/WhiskyReview/pkg/model"
)

type ratingBand struct {
	minimum int
	label   string
}

var ratingBands = []ratingBand{
	{minimum: 90, label: "Exceptional"},
	{minimum: 80, label: "Excellent"},
	{minimum: 70, label: "Very good"},
	{minimum: 60, label: "Good"},
	{minimum: 50, label: "Average"},
	{minimum: 40, label: "Mediocre"},
}

func RatingLabel(rating int) string {
	for _, band := range ratingBands {
		if rating >= band.minimum {
			return band.label
		}
	}

	return "Poor"
}

// Age renders the stored age. Without an age statement the result is NAS even
// when a number is on file.
func Age(whisky model.Whisky) apiv1.Age {
	if !whisky.AgeStatement || whisky.Age == nil {
		return apiv1.Age{}
	}

	years := *whisky.Age

	return apiv1.Age{Years: &years}
}

func Whisky(whisky model.Whisky, flavorTags []model.FlavorTag) apiv1.Whisky {
	result := apiv1.Whisky{
		ID:            whisky.ID.String(),
		Name:          whisky.Name,
		Distillery:    whisky.Distillery,
		OriginID:      whisky.OriginID,
		RegionID:      whisky.RegionID,
		TypeID:        whisky.TypeID,
		ABV:           whisky.ABV,
		Age:           Age(whisky),
		PriceRange:    string(whisky.PriceRange),
		PurchaseDate:  formatDate(whisky.PurchaseDate),
		ImageURL:      whisky.ImageURL,
		OverallRating: whisky.OverallRating,
		RatingLabel:   RatingLabel(whisky.OverallRating),
		AromaticProfile: apiv1.AromaticProfile{
			Body:      whisky.BodyRating,
			Richness:  whisky.RichnessRating,
			Sweetness: whisky.SweetnessRating,
			Smokiness: whisky.SmokinessRating,
			Finish:    whisky.FinishRating,
		},
		FlavorTags:     FlavorTags(flavorTags),
		Notes:          whisky.Notes,
		TastingDate:    whisky.TastingDate.Format(apiv1.DateLayout),
		CreatedAt:      whisky.CreatedAt,
		UpdatedAt:      whisky.UpdatedAt,
		IsWhiskyOfWeek: whisky.IsWhiskyOfWeek,
		IsTop5:         whisky.IsTop5,
	}

	if whisky.Origin.ID != 0 {
		result.Origin = &apiv1.Origin{ID: whisky.Origin.ID, Name: whisky.Origin.Name}
	}

	if whisky.Region != nil && whisky.Region.ID != 0 {
		result.Region = &apiv1.Region{ID: whisky.Region.ID, Name: whisky.Region.Name, OriginID: whisky.Region.OriginID}
	}

	if whisky.Type.ID != 0 {
		result.Type = &apiv1.Type{ID: whisky.Type.ID, Name: whisky.Type.Name}
	}

	return result
}

// Whiskies assembles a page. Rows missing from tagsByWhisky get an empty tag
// list.
func Whiskies(whiskies []*model.Whisky, tagsByWhisky map[uuid.UUID][]model.FlavorTag) []apiv1.Whisky {
	result := make([]apiv1.Whisky, 0, len(whiskies))

	for _, whisky := range whiskies {
		result = append(result, Whisky(*whisky, tagsByWhisky[whisky.ID]))
	}

	return result
}

func formatDate(date *time.Time) *string {
	if date == nil {
		return nil
	}

	formatted := date.Format(apiv1.DateLayout)

	return &formatted
}
