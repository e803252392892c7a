package dto

import "linkbio_backend/internal/repositories"

type TrackClickRequest struct {
	LinkID   string `json:"link_id" validate:"required"`
	Device   string `json:"device" validate:"omitempty,max=50"`
	Browser  string `json:"browser" validate:"omitempty,max=50"`
	Referrer string `json:"referrer" validate:"omitempty,max=500"`
}

// AnalyticsSummary short-circuits for non-entitled users: only
// TotalClicks is populated and RequiresUpgrade is true, the breakdowns
// stay empty.
type AnalyticsSummary struct {
	TotalClicks     int64                      `json:"total_clicks"`
	RequiresUpgrade bool                       `json:"requires_upgrade"`
	ClicksPerLink   []repositories.LinkClicks `json:"clicks_per_link"`
	ClicksOverTime  []repositories.DateClicks `json:"clicks_over_time"`
}
