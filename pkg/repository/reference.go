package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"droscher.com/WhiskyReview/pkg/model"
)

var ErrRegionNotFound = errors.New("region not found")

type ReferenceRepository interface {
	GetFlavorTags(ctx context.Context) ([]*model.FlavorTag, error)
	GetFlavorTagsForWhiskies(ctx context.Context, whiskyIDs []uuid.UUID) (map[uuid.UUID][]model.FlavorTag, error)
	GetOrigins(ctx context.Context) ([]*model.Origin, error)
	GetRegionByID(ctx context.Context, regionID uint) (*model.Region, error)
	GetRegions(ctx context.Context) ([]*model.Region, error)
	GetTypes(ctx context.Context) ([]*model.WhiskyType, error)
}

func (r *Repository) GetOrigins(ctx context.Context) ([]*model.Origin, error) {
	var origins []*model.Origin

	if result := r.DB.WithContext(ctx).Order("name").Find(&origins); result.Error != nil {
		return nil, result.Error
	}

	return origins, nil
}

func (r *Repository) GetRegions(ctx context.Context) ([]*model.Region, error) {
	var regions []*model.Region

	if result := r.DB.WithContext(ctx).Order("name").Find(&regions); result.Error != nil {
		return nil, result.Error
	}

	return regions, nil
}

func (r *Repository) GetRegionByID(ctx context.Context, regionID uint) (*model.Region, error) {
	var region model.Region

	result := r.DB.WithContext(ctx).First(&region, regionID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRegionNotFound
		}

		return nil, result.Error
	}

	return &region, nil
}

func (r *Repository) GetTypes(ctx context.Context) ([]*model.WhiskyType, error) {
	var types []*model.WhiskyType

	if result := r.DB.WithContext(ctx).Order("name").Find(&types); result.Error != nil {
		return nil, result.Error
	}

	return types, nil
}

func (r *Repository) GetFlavorTags(ctx context.Context) ([]*model.FlavorTag, error) {
	var flavorTags []*model.FlavorTag

	if result := r.DB.WithContext(ctx).Order("category, name").Find(&flavorTags); result.Error != nil {
		return nil, result.Error
	}

	return flavorTags, nil
}

type flavorTagLink struct {
	WhiskyID uuid.UUID
	ID       uint
	Name     string
	Category model.FlavorCategory
}

// GetFlavorTagsForWhiskies resolves the tags of a page of whiskies in a single
// query. Whiskies without tags are absent from the map.
func (r *Repository) GetFlavorTagsForWhiskies(ctx context.Context, whiskyIDs []uuid.UUID) (map[uuid.UUID][]model.FlavorTag, error) {
	tagsByWhisky := make(map[uuid.UUID][]model.FlavorTag)

	if len(whiskyIDs) == 0 {
		return tagsByWhisky, nil
	}

	var links []flavorTagLink

	result := r.DB.WithContext(ctx).Table("whisky_flavor_tags").
		Select("whisky_flavor_tags.whisky_id, flavor_tags.id, flavor_tags.name, flavor_tags.category").
		Joins("INNER JOIN flavor_tags ON flavor_tags.id = whisky_flavor_tags.flavor_tag_id").
		Where("whisky_flavor_tags.whisky_id IN ?", whiskyIDs).
		Order("flavor_tags.category, flavor_tags.name").
		Scan(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, link := range links {
		tagsByWhisky[link.WhiskyID] = append(tagsByWhisky[link.WhiskyID], model.FlavorTag{
			ID:       link.ID,
			Name:     link.Name,
			Category: link.Category,
		})
	}

	return tagsByWhisky, nil
}
