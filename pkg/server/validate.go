package server

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apiv1 "droscher.com/WhiskyReview/pkg/api/v1"
	"droscher.com/WhiskyReview/pkg/model"
)

var ErrInvalidInput = errors.New("bad request")

const (
	minimumABV     = 40
	maximumABV     = 70
	minimumAge     = 1
	maximumAge     = 100
	maximumRating  = 100
	minimumProfile = 1
	maximumProfile = 5
)

type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every rejected field of a whisky form, in form order.
type ValidationError struct {
	Fields []FieldError
}

func (v *ValidationError) Add(field string, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
}

func (v *ValidationError) Message(field string) string {
	for _, fieldError := range v.Fields {
		if fieldError.Field == field {
			return fieldError.Message
		}
	}

	return ""
}

func (v *ValidationError) Error() string {
	messages := make([]string, 0, len(v.Fields))
	for _, fieldError := range v.Fields {
		messages = append(messages, fieldError.Field+": "+fieldError.Message)
	}

	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(messages, "; "))
}

func (v *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func (v *ValidationError) orNil() error {
	if len(v.Fields) == 0 {
		return nil
	}

	return v
}

// ValidateWhiskyInput checks a submitted form without touching the store.
//
//nolint:cyclop // one branch per form field
func ValidateWhiskyInput(input apiv1.WhiskyInput) error {
	validation := &ValidationError{}

	if input.ID != "" {
		if _, err := uuid.Parse(input.ID); err != nil {
			validation.Add("id", "Invalid whisky id")
		}
	}

	if strings.TrimSpace(input.Name) == "" {
		validation.Add("name", "Name is required")
	}

	if input.OriginID == 0 {
		validation.Add("origin_id", "Origin is required")
	}

	if input.TypeID == 0 {
		validation.Add("type_id", "Type is required")
	}

	if input.AgeStatement && (input.Age == nil || *input.Age < minimumAge || *input.Age > maximumAge) {
		validation.Add("age", fmt.Sprintf("Age must be between %d and %d", minimumAge, maximumAge))
	}

	if input.ABV < minimumABV || input.ABV > maximumABV {
		validation.Add("abv", fmt.Sprintf("ABV must be between %d and %d", minimumABV, maximumABV))
	}

	if !model.PriceRange(input.PriceRange).Valid() {
		validation.Add("price_range", "Unknown price range")
	}

	if input.PurchaseDate != "" {
		if _, err := time.Parse(apiv1.DateLayout, input.PurchaseDate); err != nil {
			validation.Add("purchase_date", "Purchase date must be YYYY-MM-DD")
		}
	}

	if input.OverallRating < 0 || input.OverallRating > maximumRating {
		validation.Add("overall_rating", fmt.Sprintf("Overall rating must be between 0 and %d", maximumRating))
	}

	validateProfile(validation, input.AromaticProfile)

	if strings.TrimSpace(input.TastingDate) == "" {
		validation.Add("tasting_date", "Tasting date is required")
	} else if _, err := time.Parse(apiv1.DateLayout, input.TastingDate); err != nil {
		validation.Add("tasting_date", "Tasting date must be YYYY-MM-DD")
	}

	if strings.TrimSpace(input.Notes) == "" {
		validation.Add("notes", "Notes are required")
	}

	return validation.orNil()
}

func validateProfile(validation *ValidationError, profile apiv1.AromaticProfile) {
	ratings := []struct {
		field string
		value int
	}{
		{"aromatic_profile.body", profile.Body},
		{"aromatic_profile.richness", profile.Richness},
		{"aromatic_profile.sweetness", profile.Sweetness},
		{"aromatic_profile.smokiness", profile.Smokiness},
		{"aromatic_profile.finish", profile.Finish},
	}

	for _, rating := range ratings {
		if rating.value < minimumProfile || rating.value > maximumProfile {
			validation.Add(rating.field, fmt.Sprintf("Must be between %d and %d", minimumProfile, maximumProfile))
		}
	}
}

// whiskyFromInput converts a validated form. Without an age statement no age
// is stored.
func whiskyFromInput(input apiv1.WhiskyInput) model.Whisky {
	whisky := model.Whisky{
		Name:            strings.TrimSpace(input.Name),
		OriginID:        input.OriginID,
		RegionID:        input.RegionID,
		TypeID:          input.TypeID,
		ABV:             input.ABV,
		AgeStatement:    input.AgeStatement,
		PriceRange:      model.PriceRange(input.PriceRange),
		OverallRating:   input.OverallRating,
		BodyRating:      input.AromaticProfile.Body,
		RichnessRating:  input.AromaticProfile.Richness,
		SweetnessRating: input.AromaticProfile.Sweetness,
		SmokinessRating: input.AromaticProfile.Smokiness,
		FinishRating:    input.AromaticProfile.Finish,
		Notes:           input.Notes,
		IsWhiskyOfWeek:  input.IsWhiskyOfWeek,
		IsTop5:          input.IsTop5,
	}

	if input.ID != "" {
		whisky.ID = uuid.MustParse(input.ID)
	}

	if distillery := strings.TrimSpace(input.Distillery); distillery != "" {
		whisky.Distillery = &distillery
	}

	if input.AgeStatement && input.Age != nil {
		age := *input.Age
		whisky.Age = &age
	}

	if input.RegionID != nil && *input.RegionID == 0 {
		whisky.RegionID = nil
	}

	if input.ImageURL != "" {
		imageURL := input.ImageURL
		whisky.ImageURL = &imageURL
	}

	if input.PurchaseDate != "" {
		purchaseDate, _ := time.Parse(apiv1.DateLayout, input.PurchaseDate)
		whisky.PurchaseDate = &purchaseDate
	}

	whisky.TastingDate, _ = time.Parse(apiv1.DateLayout, input.TastingDate)

	return whisky
}
