package catalog

import (
	"slices"

	"droscher.com/WhiskyReview/pkg/model"
)

// Filter is the set of criteria the catalog list can be narrowed by. Nil or
// empty fields do not restrict the result.
type Filter struct {
	Search      string
	Origins     []uint
	Regions     []uint
	Types       []uint
	PriceRanges []model.PriceRange
	MinRating   *int
	MaxRating   *int
	AbvMin      *float64
	AbvMax      *float64
	FlavorTags  []uint
}

func (f Filter) IsEmpty() bool {
	return f.Search == "" &&
		len(f.Origins) == 0 && len(f.Regions) == 0 && len(f.Types) == 0 &&
		len(f.PriceRanges) == 0 && len(f.FlavorTags) == 0 &&
		f.MinRating == nil && f.MaxRating == nil &&
		f.AbvMin == nil && f.AbvMax == nil
}

// RestrictRegions drops selected regions that do not belong to any selected
// origin. With no origin selected every known region stays selectable.
func (f Filter) RestrictRegions(regions []*model.Region) Filter {
	if len(f.Origins) == 0 || len(f.Regions) == 0 {
		return f
	}

	originOf := make(map[uint]uint, len(regions))
	for _, region := range regions {
		originOf[region.ID] = region.OriginID
	}

	var kept []uint

	for _, regionID := range f.Regions {
		originID, found := originOf[regionID]
		if found && slices.Contains(f.Origins, originID) {
			kept = append(kept, regionID)
		}
	}

	f.Regions = kept

	return f
}

// RegionsForOrigins returns the regions that may be offered for the given
// origin selection.
func RegionsForOrigins(regions []*model.Region, origins []uint) []*model.Region {
	if len(origins) == 0 {
		return regions
	}

	selectable := make([]*model.Region, 0, len(regions))

	for _, region := range regions {
		if slices.Contains(origins, region.OriginID) {
			selectable = append(selectable, region)
		}
	}

	return selectable
}
