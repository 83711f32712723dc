package dashboard

import "context"

// RecentEntry is one of the latest punch-ins shown on the kiosk sidebar.
type RecentEntry struct {
	Name   string `json:"name"`
	Time   string `json:"time"`
	Status string `json:"status"`
}

type LandingStatsResponse struct {
	TotalEmployees int           `json:"total_employees"`
	PresentToday   int           `json:"present_today"`
	LateToday      int           `json:"late_today"`
	OnLeave        int           `json:"on_leave"`
	RecentEntries  []RecentEntry `json:"recent_entries"`
}

type Service interface {
	LandingStats(ctx context.Context) (LandingStatsResponse, error)
}
