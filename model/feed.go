package model

// Statistics summarizes a post collection.
type Statistics struct {
	Total             int     `json:"total"`
	Hateful           int     `json:"hateful"`
	HatefulPercentage float64 `json:"hateful_percentage"` // 0-100
}

// CategoryCount is the number of posts carrying a category.
type CategoryCount struct {
	Category   Category `json:"category"`
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"`
}

// PieSlice describes one wedge of the category pie chart.
// Angles are in degrees, measured counter-clockwise from the positive x axis.
type PieSlice struct {
	Category   Category `json:"category"`
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"`
	StartAngle float64  `json:"start_angle"`
	EndAngle   float64  `json:"end_angle"`
	Path       string   `json:"path"`  // SVG path data
	Color      string   `json:"color"` // hex colour
	LabelX     float64  `json:"label_x"`
	LabelY     float64  `json:"label_y"`
}

// CategoryRank is an entry of the priority table.
type CategoryRank struct {
	Category Category `json:"category"`
	Rank     int      `json:"rank"`
	Hateful  bool     `json:"hateful"`
}

// FeedResult is the outcome of one interaction.
type FeedResult struct {
	InteractionID      string          `json:"interaction_id"`
	Original           []Post          `json:"original"`
	Reranked           []Post          `json:"reranked,omitempty"`
	OriginalStatistics *Statistics     `json:"original_statistics,omitempty"`
	Statistics         *Statistics     `json:"statistics,omitempty"` // over the reranked posts
	Frequencies        []CategoryCount `json:"frequencies,omitempty"`
	Chart              []PieSlice      `json:"chart,omitempty"`
}
