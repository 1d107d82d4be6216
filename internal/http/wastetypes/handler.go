package wastetypes

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
)

type Handler struct {
	svc *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the waste type endpoints. The append route mutates the
// dataset, so it sits behind the auth middleware.
func (h *Handler) Routes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Get("/", h.list)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/", h.add)
	})
}

type wasteTypeResponse struct {
	Name        string   `json:"name"`
	BestUse     string   `json:"best_use"`
	CompostTime string   `json:"compost_time"`
	Nutrient    string   `json:"nutrient"`
	Tips        string   `json:"tips"`
	YieldPct    *float64 `json:"yield_pct,omitempty"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	records := h.svc.Records()

	resp := make([]wasteTypeResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toResponse(rec))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type addRequest struct {
	Name        string   `json:"name"`
	BestUse     string   `json:"best_use"`
	CompostTime string   `json:"compost_time"`
	Nutrient    string   `json:"nutrient"`
	Tips        string   `json:"tips"`
	YieldPct    *float64 `json:"yield_pct,omitempty"`
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Add(r.Context(), catalog.AddParams{
		Name:        req.Name,
		BestUse:     req.BestUse,
		CompostTime: req.CompostTime,
		Nutrient:    req.Nutrient,
		Tips:        req.Tips,
		YieldPct:    req.YieldPct,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEmptyName):
			http.Error(w, "waste type name is required", http.StatusBadRequest)
		case errors.Is(err, catalog.ErrDuplicateName):
			http.Error(w, "waste type already exists", http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(*rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResponse(rec catalog.Record) wasteTypeResponse {
	return wasteTypeResponse{
		Name:        rec.Name,
		BestUse:     rec.BestUse,
		CompostTime: rec.CompostTime,
		Nutrient:    rec.Nutrient,
		Tips:        rec.Tips,
		YieldPct:    rec.YieldPct,
	}
}
