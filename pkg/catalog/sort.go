package catalog

import (
	"strings"
)

type SortField string

const (
	SortCreatedAt     SortField = "created_at"
	SortOverallRating SortField = "overall_rating"
	SortName          SortField = "name"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Sort orders the catalog. The zero value stands for the default order,
// newest first.
type Sort struct {
	Field     SortField
	Direction SortDirection
}

var DefaultSort = Sort{Field: SortCreatedAt, Direction: Descending}

func (s Sort) IsZero() bool {
	return s == Sort{}
}

func (s Sort) OrDefault() Sort {
	if s.IsZero() {
		return DefaultSort
	}

	return s
}

func (s Sort) Descending() bool {
	return s.Direction == Descending
}

func (s Sort) String() string {
	if s.IsZero() {
		return ""
	}

	return string(s.Field) + ":" + string(s.Direction)
}

// ParseSort reads the "field:direction" form. Unknown fields or directions
// yield false.
func ParseSort(value string) (Sort, bool) {
	field, direction, found := strings.Cut(value, ":")
	if !found {
		return Sort{}, false
	}

	sort := Sort{Field: SortField(field), Direction: SortDirection(direction)}

	switch sort.Field {
	case SortCreatedAt, SortOverallRating, SortName:
	default:
		return Sort{}, false
	}

	if sort.Direction != Ascending && sort.Direction != Descending {
		return Sort{}, false
	}

	return sort, true
}
