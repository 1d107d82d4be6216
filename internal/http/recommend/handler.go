package recommend

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/advisor"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
)

type Handler struct {
	svc *advisor.Service
}

func NewHandler(svc *advisor.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.recommend)
}

type recommendRequest struct {
	SelectedName string  `json:"selected_name"`
	FreeText     string  `json:"free_text"`
	QuantityKg   float64 `json:"quantity_kg"`
}

type recordResponse struct {
	Name        string   `json:"name"`
	BestUse     string   `json:"best_use"`
	CompostTime string   `json:"compost_time"`
	Nutrient    string   `json:"nutrient"`
	Tips        string   `json:"tips"`
	YieldPct    *float64 `json:"yield_pct,omitempty"`
}

type estimateResponse struct {
	QuantityKg float64 `json:"quantity_kg"`
	YieldPct   float64 `json:"yield_pct"`
	OutputKg   float64 `json:"output_kg"`
	Note       string  `json:"note"`
}

type suggestionResponse struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type recommendResponse struct {
	Outcome      string               `json:"outcome"`
	Record       *recordResponse      `json:"record,omitempty"`
	Score        float64              `json:"score,omitempty"`
	ClosestScore float64              `json:"closest_score,omitempty"`
	Suggestions  []suggestionResponse `json:"suggestions,omitempty"`
	Estimate     *estimateResponse    `json:"estimate,omitempty"`
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Recommend(r.Context(), advisor.RecommendParams{
		SelectedName: req.SelectedName,
		FreeText:     req.FreeText,
		QuantityKg:   req.QuantityKg,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "selected waste type not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResponse(rec *advisor.Recommendation) recommendResponse {
	resp := recommendResponse{
		Outcome:      string(rec.Kind),
		Score:        rec.Score,
		ClosestScore: rec.ClosestScore,
	}

	if rec.Record != nil {
		resp.Record = &recordResponse{
			Name:        rec.Record.Name,
			BestUse:     rec.Record.BestUse,
			CompostTime: rec.Record.CompostTime,
			Nutrient:    rec.Record.Nutrient,
			Tips:        rec.Record.Tips,
			YieldPct:    rec.Record.YieldPct,
		}
	}

	for _, s := range rec.Suggestions {
		resp.Suggestions = append(resp.Suggestions, suggestionResponse{Name: s.Name, Score: s.Score})
	}

	if rec.Estimate != nil {
		resp.Estimate = &estimateResponse{
			QuantityKg: rec.Estimate.QuantityKg,
			YieldPct:   rec.Estimate.YieldPct,
			OutputKg:   rec.Estimate.OutputKg,
			Note:       rec.Estimate.Note,
		}
	}

	return resp
}
