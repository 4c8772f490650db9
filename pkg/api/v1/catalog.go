package apiv1

type WhiskyPage struct {
	Whiskies   []Whisky `json:"whiskies"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
	Query      string   `json:"query"`
}

type Home struct {
	WeeklyPick *Whisky  `json:"weekly_pick"`
	Top5       []Whisky `json:"top_5"`
	Latest     []Whisky `json:"latest"`
}

type Reference struct {
	Origins     []Origin    `json:"origins"`
	Regions     []Region    `json:"regions"`
	Types       []Type      `json:"types"`
	FlavorTags  []FlavorTag `json:"flavor_tags"`
	PriceRanges []string    `json:"price_ranges"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
