package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/WhiskyReview/pkg/model"
)

// ReferenceData is the lookup content the admin form and the catalog filters
// are built from. Regions are keyed by origin name.
type ReferenceData struct {
	Origins    []string
	Regions    map[string][]string
	Types      []string
	FlavorTags []model.FlavorTag
}

var DefaultReferenceData = ReferenceData{
	Origins: []string{"Scotland", "Ireland", "USA", "Japan", "Canada", "Taiwan", "India"},
	Regions: map[string][]string{
		"Scotland": {"Speyside", "Highland", "Lowland", "Islay", "Campbeltown", "Islands"},
		"USA":      {"Kentucky", "Tennessee"},
	},
	Types: []string{"Single Malt", "Blended Malt", "Blended", "Single Grain", "Bourbon", "Rye", "Tennessee Whiskey"},
	FlavorTags: []model.FlavorTag{
		{Name: "Apple", Category: model.FlavorCategoryFruit},
		{Name: "Citrus", Category: model.FlavorCategoryFruit},
		{Name: "Dried Fruit", Category: model.FlavorCategoryFruit},
		{Name: "Cinnamon", Category: model.FlavorCategorySpice},
		{Name: "Pepper", Category: model.FlavorCategorySpice},
		{Name: "Vanilla", Category: model.FlavorCategorySweet},
		{Name: "Honey", Category: model.FlavorCategorySweet},
		{Name: "Toffee", Category: model.FlavorCategorySweet},
		{Name: "Oak", Category: model.FlavorCategoryWood},
		{Name: "Sherry Cask", Category: model.FlavorCategoryWood},
		{Name: "Peat", Category: model.FlavorCategorySmoke},
		{Name: "Bonfire", Category: model.FlavorCategorySmoke},
		{Name: "Heather", Category: model.FlavorCategoryFloral},
		{Name: "Malt", Category: model.FlavorCategoryCereal},
		{Name: "Almond", Category: model.FlavorCategoryNut},
		{Name: "Mint", Category: model.FlavorCategoryHerbal},
		{Name: "Sea Salt", Category: model.FlavorCategoryOther},
	},
}

// SeedReferenceData inserts any reference rows that are missing. Existing rows
// are left alone, so running it again is harmless.
func (r *Repository) SeedReferenceData(ctx context.Context, data ReferenceData) error {
	db := r.DB.WithContext(ctx)

	var err error

	for _, name := range data.Origins {
		origin := model.Origin{Name: name}
		if result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&origin); result.Error != nil {
			err = multierr.Append(err, fmt.Errorf("origin %q: %w", name, result.Error))
		}
	}

	for _, originName := range slices.Sorted(maps.Keys(data.Regions)) {
		var origin model.Origin
		if result := db.Where("name = ?", originName).First(&origin); result.Error != nil {
			err = multierr.Append(err, fmt.Errorf("origin %q: %w", originName, result.Error))

			continue
		}

		for _, name := range data.Regions[originName] {
			region := model.Region{Name: name, OriginID: origin.ID}
			if result := db.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&region); result.Error != nil {
				err = multierr.Append(err, fmt.Errorf("region %q: %w", name, result.Error))
			}
		}
	}

	for _, name := range data.Types {
		whiskyType := model.WhiskyType{Name: name}
		if result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&whiskyType); result.Error != nil {
			err = multierr.Append(err, fmt.Errorf("type %q: %w", name, result.Error))
		}
	}

	if len(data.FlavorTags) > 0 {
		err = multierr.Append(err, seedFlavorTags(db, data.FlavorTags))
	}

	if err != nil {
		r.Logger.Error("error seeding reference data", zap.Errors("errors", multierr.Errors(err)))

		return err
	}

	r.Logger.Info("reference data seeded",
		zap.Int("origins", len(data.Origins)),
		zap.Int("types", len(data.Types)),
		zap.Int("flavor_tags", len(data.FlavorTags)))

	return nil
}

func seedFlavorTags(db *gorm.DB, flavorTags []model.FlavorTag) error {
	rows := make([]model.FlavorTag, 0, len(flavorTags))
	for _, flavorTag := range flavorTags {
		rows = append(rows, model.FlavorTag{Name: flavorTag.Name, Category: flavorTag.Category})
	}

	if result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows); result.Error != nil {
		return fmt.Errorf("flavor tags: %w", result.Error)
	}

	return nil
}
