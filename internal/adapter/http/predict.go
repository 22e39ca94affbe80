package httpadapter

import (
	"errors"
	"net/http"

	"advision/internal/core/domain"
)

// engagementResponse is the wire shape of a standalone prediction. The
// model_version_str key is part of the public contract and must not be
// renamed.
type engagementResponse struct {
	EngagementRate float64 `json:"engagement_rate"`
	ModelVersion   string  `json:"model_version_str"`
}

// handlePredict scores a campaign description without persisting it.
// Schema violations produce HTTP 400 naming the field; a model scoring
// failure is HTTP 500 and is not retried.
func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
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
	result, err := h.svc.PredictEngagement(r.Context(), payload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, engagementResponse{
		EngagementRate: result.EngagementRate,
		ModelVersion:   result.ModelVersion,
	})
}
