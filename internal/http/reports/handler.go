package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/advisor"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/report"
)

type Handler struct {
	svc *advisor.Service
	now func() time.Time
}

func NewHandler(svc *advisor.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.generate)
}

type generateRequest struct {
	SelectedName string  `json:"selected_name"`
	FreeText     string  `json:"free_text"`
	QuantityKg   float64 `json:"quantity_kg"`
}

// generate resolves the input like a recommendation request and streams the
// advice report as a downloadable text attachment. Inputs that do not resolve
// to a record cannot produce a report.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
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

	if rec.Kind != advisor.OutcomeMatched {
		http.Error(w, "no confident match; nothing to report", http.StatusUnprocessableEntity)
		return
	}

	text := report.Format(rec.Record, rec.Estimate, h.now())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.Filename(rec.Record.Name)+`"`)
	w.Header().Set("X-Report-ID", uuid.NewString())

	_, _ = w.Write([]byte(text))
}
