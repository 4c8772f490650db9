package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"droscher.com/WhiskyReview/pkg/model"
)

const (
	ParamSearch      = "search"
	ParamOrigins     = "origins"
	ParamRegions     = "regions"
	ParamTypes       = "types"
	ParamPriceRanges = "priceRanges"
	ParamMinRating   = "minRating"
	ParamMaxRating   = "maxRating"
	ParamAbvMin      = "abvMin"
	ParamAbvMax      = "abvMax"
	ParamFlavorTags  = "flavorTags"
	ParamSort        = "sort"
	ParamPage        = "page"
)

const listSeparator = ","

// State is everything the catalog list view mirrors into its URL.
// Page is 1-based, zero means the first page.
type State struct {
	Filter Filter
	Sort   Sort
	Page   int
}

func (s State) PageOrDefault() int {
	if s.Page < 1 {
		return 1
	}

	return s.Page
}

// Encode flattens the state into query parameters. Absent and empty fields
// are left out entirely.
func (s State) Encode() url.Values {
	values := url.Values{}
	filter := s.Filter

	if filter.Search != "" {
		values.Set(ParamSearch, filter.Search)
	}

	setIDs(values, ParamOrigins, filter.Origins)
	setIDs(values, ParamRegions, filter.Regions)
	setIDs(values, ParamTypes, filter.Types)

	if len(filter.PriceRanges) > 0 {
		labels := make([]string, 0, len(filter.PriceRanges))
		for _, priceRange := range filter.PriceRanges {
			labels = append(labels, string(priceRange))
		}

		values.Set(ParamPriceRanges, strings.Join(labels, listSeparator))
	}

	setInt(values, ParamMinRating, filter.MinRating)
	setInt(values, ParamMaxRating, filter.MaxRating)
	setFloat(values, ParamAbvMin, filter.AbvMin)
	setFloat(values, ParamAbvMax, filter.AbvMax)
	setIDs(values, ParamFlavorTags, filter.FlavorTags)

	if !s.Sort.IsZero() {
		values.Set(ParamSort, s.Sort.String())
	}

	if s.Page > 0 {
		values.Set(ParamPage, strconv.Itoa(s.Page))
	}

	return values
}

// DecodeState is the inverse of Encode. It never fails: malformed tokens,
// unknown price ranges, bad sort strings and non-positive pages are dropped.
func DecodeState(values url.Values) State {
	var state State

	state.Filter.Search = values.Get(ParamSearch)
	state.Filter.Origins = parseIDs(values.Get(ParamOrigins))
	state.Filter.Regions = parseIDs(values.Get(ParamRegions))
	state.Filter.Types = parseIDs(values.Get(ParamTypes))
	state.Filter.PriceRanges = parsePriceRanges(values.Get(ParamPriceRanges))
	state.Filter.MinRating = parseInt(values.Get(ParamMinRating))
	state.Filter.MaxRating = parseInt(values.Get(ParamMaxRating))
	state.Filter.AbvMin = parseFloat(values.Get(ParamAbvMin))
	state.Filter.AbvMax = parseFloat(values.Get(ParamAbvMax))
	state.Filter.FlavorTags = parseIDs(values.Get(ParamFlavorTags))

	if sort, ok := ParseSort(values.Get(ParamSort)); ok {
		state.Sort = sort
	}

	if page := parseInt(values.Get(ParamPage)); page != nil && *page > 0 {
		state.Page = *page
	}

	return state
}

func setIDs(values url.Values, key string, ids []uint) {
	if len(ids) == 0 {
		return
	}

	tokens := make([]string, 0, len(ids))
	for _, id := range ids {
		tokens = append(tokens, strconv.FormatUint(uint64(id), 10))
	}

	values.Set(key, strings.Join(tokens, listSeparator))
}

func setInt(values url.Values, key string, value *int) {
	if value != nil {
		values.Set(key, strconv.Itoa(*value))
	}
}

func setFloat(values url.Values, key string, value *float64) {
	if value != nil {
		values.Set(key, strconv.FormatFloat(*value, 'f', -1, 64))
	}
}

func parseIDs(value string) []uint {
	var ids []uint

	for _, token := range strings.Split(value, listSeparator) {
		id, err := strconv.ParseUint(strings.TrimSpace(token), 10, 0)
		if err != nil {
			continue
		}

		ids = append(ids, uint(id))
	}

	return ids
}

func parsePriceRanges(value string) []model.PriceRange {
	var priceRanges []model.PriceRange

	for _, token := range strings.Split(value, listSeparator) {
		if priceRange := model.PriceRange(token); priceRange.Valid() {
			priceRanges = append(priceRanges, priceRange)
		}
	}

	return priceRanges
}

func parseInt(value string) *int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}

	return &parsed
}

func parseFloat(value string) *float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil
	}

	return &parsed
}
