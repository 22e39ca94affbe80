package httpadapter

import "net/http"

// summaryResponse is the wire shape of the aggregate statistics.
type summaryResponse struct {
	TotalCampaigns     int                `json:"total_campaigns"`
	TotalSpend         float64            `json:"total_spend"`
	AvgCTR             float64            `json:"avg_ctr"`
	PlatformEngagement map[string]float64 `json:"platform_engagement"`
}

// handleStatsSummary recomputes summary statistics over the full
// campaign history on every call. Nothing is cached; a concurrent
// append may or may not be included in the snapshot.
func (h *Handler) handleStatsSummary(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Summary(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, summaryResponse{
		TotalCampaigns:     stats.TotalCampaigns,
		TotalSpend:         stats.TotalSpend,
		AvgCTR:             stats.AvgCTR,
		PlatformEngagement: stats.PlatformEngagement,
	})
}
