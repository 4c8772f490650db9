package apiv1

type Show string

const (
	ShowAll          Show = "all"
	ShowWhiskyOfWeek Show = "whisky-of-week"
	ShowTop5         Show = "top-5"
)

type ListWhiskiesRequest struct {
	Search string `json:"search,omitempty"`
	Show   Show   `json:"show,omitempty"`
}

type ListWhiskiesResponse struct {
	Whiskies []Whisky `json:"whiskies"`
}

type GetWhiskyRequest struct {
	ID string `json:"id"`
}

type GetWhiskyResponse struct {
	Whisky       Whisky `json:"whisky"`
	FlavorTagIDs []uint `json:"flavor_tag_ids"`
}

type SaveWhiskyRequest struct {
	Whisky WhiskyInput `json:"whisky"`
}

type SaveWhiskyResponse struct {
	ID       string   `json:"id"`
	Warnings []string `json:"warnings,omitempty"`
}

type DeleteWhiskyRequest struct {
	ID string `json:"id"`
}

type DeleteWhiskyResponse struct{}

type SetWeeklyPickRequest struct {
	ID string `json:"id"`
}

type SetWeeklyPickResponse struct{}

type ToggleTop5Request struct {
	ID      string `json:"id"`
	Confirm bool   `json:"confirm,omitempty"`
}

type ToggleTop5Response struct {
	IsTop5            bool     `json:"is_top_5"`
	NeedsConfirmation bool     `json:"needs_confirmation,omitempty"`
	Warnings          []string `json:"warnings,omitempty"`
}
