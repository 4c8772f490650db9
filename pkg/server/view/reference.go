package view

import (
	apiv1 "droscher.com/WhiskyReview/pkg/api/v1"
	"droscher.com/WhiskyReview/pkg/model"
)

func FlavorTags(flavorTags []model.FlavorTag) []apiv1.FlavorTag {
	result := make([]apiv1.FlavorTag, 0, len(flavorTags))

	for _, flavorTag := range flavorTags {
		result = append(result, apiv1.FlavorTag{ID: flavorTag.ID, Name: flavorTag.Name, Category: string(flavorTag.Category)})
	}

	return result
}

func Origins(origins []*model.Origin) []apiv1.Origin {
	result := make([]apiv1.Origin, 0, len(origins))

	for _, origin := range origins {
		result = append(result, apiv1.Origin{ID: origin.ID, Name: origin.Name})
	}

	return result
}

func Regions(regions []*model.Region) []apiv1.Region {
	result := make([]apiv1.Region, 0, len(regions))

	for _, region := range regions {
		result = append(result, apiv1.Region{ID: region.ID, Name: region.Name, OriginID: region.OriginID})
	}

	return result
}

func Types(types []*model.WhiskyType) []apiv1.Type {
	result := make([]apiv1.Type, 0, len(types))

	for _, whiskyType := range types {
		result = append(result, apiv1.Type{ID: whiskyType.ID, Name: whiskyType.Name})
	}

	return result
}

func PriceRanges() []string {
	result := make([]string, 0, len(model.PriceRanges))

	for _, priceRange := range model.PriceRanges {
		result = append(result, string(priceRange))
	}

	return result
}

func FlavorTagOptions(flavorTags []*model.FlavorTag) []apiv1.FlavorTag {
	result := make([]apiv1.FlavorTag, 0, len(flavorTags))

	for _, flavorTag := range flavorTags {
		result = append(result, apiv1.FlavorTag{ID: flavorTag.ID, Name: flavorTag.Name, Category: string(flavorTag.Category)})
	}

	return result
}
