package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"advision/internal/core/domain"
	"advision/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter
// for HTTP. It holds a CampaignUseCase to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router
// for convenient method handling.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The allowed
// CORS origins come from configuration; the service is consumed by a
// browser dashboard on a different origin.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, corsOrigins []string) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", h.handleHealth)
	r.Post("/predict-engagement", h.handlePredict)
	r.Route("/campaigns", func(r chi.Router) {
		r.Get("/", h.handleListCampaigns)
		r.Post("/create-with-prediction", h.handleCreateCampaign)
	})
	r.Get("/stats/summary", h.handleStatsSummary)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// requestID tags each response with a unique id for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", uuid.NewString())
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{
		"status":  "ok",
		"message": "advision backend is running",
	})
}

// decodePayload reads a campaign payload from the request body. A type
// mismatch is reported with the offending field name; any other decode
// failure is a generic bad-JSON error.
func decodePayload(r *http.Request) (domain.FeaturePayload, error) {
	var payload domain.FeaturePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return payload, &domain.SchemaError{Field: typeErr.Field, Reason: "wrong type"}
		}
		return payload, err
	}
	return payload, nil
}

// writeError maps the error taxonomy onto HTTP statuses: schema errors
// are client faults naming the field, everything else is an internal
// error with the detail kept out of the response body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var schemaErr *domain.SchemaError
	if errors.As(err, &schemaErr) {
		http.Error(w, schemaErr.Error(), http.StatusBadRequest)
		return
	}
	h.logger.Error("request failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
