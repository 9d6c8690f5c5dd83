package domain

import "time"

type Account struct {
	SonolusID   string    `json:"sonolus_id"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	ProfileHash *string   `json:"profile_hash,omitempty"`
	BannerHash  *string   `json:"banner_hash,omitempty"`
	TotalCharts int       `json:"total_charts"`
	TotalLikes  int       `json:"total_likes"`
	CreatedAt   time.Time `json:"created_at"`
}

type AccountStats struct {
	SonolusID   string `json:"sonolus_id"`
	TotalCharts int    `json:"total_charts"`
	TotalLikes  int    `json:"total_likes"`
	TotalPlays  int    `json:"total_plays"`
	Rank        int    `json:"rank"`
}

// Profile is the public account page: the account itself, its top charts
// and the base URL clients prepend to stored asset keys.
type Profile struct {
	Account      *Account `json:"account"`
	Charts       []Chart  `json:"charts"`
	AssetBaseURL string   `json:"asset_base_url"`
}
