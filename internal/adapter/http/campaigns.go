package httpadapter

import (
	"errors"
	"net/http"

	"advision/internal/core/domain"
)

// campaignResponse is the wire shape of a stored campaign: the full
// input field set plus the store-assigned id and the prediction.
type campaignResponse struct {
	ID                      int64   `json:"id"`
	Platform                string  `json:"platform"`
	Country                 string  `json:"country"`
	ProductCategory         string  `json:"product_category"`
	Spend                   float64 `json:"spend"`
	Impressions             int64   `json:"impressions"`
	Clicks                  int64   `json:"clicks"`
	Conversions             int64   `json:"conversions"`
	Reach                   int64   `json:"reach"`
	PredictedEngagementRate float64 `json:"predicted_engagement_rate"`
}

func toCampaignResponse(rec domain.CampaignRecord) campaignResponse {
	return campaignResponse{
		ID:                      rec.ID,
		Platform:                rec.Platform,
		Country:                 rec.Country,
		ProductCategory:         rec.ProductCategory,
		Spend:                   rec.Spend,
		Impressions:             rec.Impressions,
		Clicks:                  rec.Clicks,
		Conversions:             rec.Conversions,
		Reach:                   rec.Reach,
		PredictedEngagementRate: rec.PredictedEngagementRate,
	}
}

// handleCreateCampaign scores the campaign, persists it with the
// prediction and echoes the stored record back.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		var schemaErr *domain.SchemaError
		if errors.As(err, &schemaErr) {
			h.writeError(w, r, err)
			return
		}
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	rec, err := h.svc.CreateWithPrediction(r.Context(), payload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, toCampaignResponse(rec))
}

// handleListCampaigns returns the most recently created campaigns,
// newest first, capped at 100 entries.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toCampaignResponse(rec))
	}
	h.writeJSON(w, out)
}
