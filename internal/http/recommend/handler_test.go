package recommend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/advisor"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/http/recommend"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/matching"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := catalog.NewMockRepository(ctrl)
	repo.EXPECT().LoadAll(gomock.Any()).Return([]catalog.Record{
		{Name: "Cow Manure", BestUse: "Compost pit", CompostTime: "4-6 weeks", Nutrient: "Nitrogen-rich", Tips: "Mix with dry matter"},
		{Name: "Banana Peels", BestUse: "Direct mulch", CompostTime: "2-3 weeks", Nutrient: "Potassium-rich"},
		{Name: "Rice Husk", BestUse: "Mulching", CompostTime: "8-10 weeks", Nutrient: "Carbon-rich"},
	}, nil)

	cat := catalog.NewService(repo)
	require.NoError(t, cat.Load(context.Background()))

	svc := advisor.NewService(cat, matching.DefaultScoreCutoff)

	r := chi.NewRouter()
	r.Route("/recommend", recommend.NewHandler(svc).Routes)

	return r
}

func TestRecommend_FuzzyMatch(t *testing.T) {
	router := newTestRouter(t)

	body := `{"free_text": "cow dung", "quantity_kg": 100}`
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Outcome string  `json:"outcome"`
		Score   float64 `json:"score"`
		Record  *struct {
			Name    string `json:"name"`
			BestUse string `json:"best_use"`
		} `json:"record"`
		Estimate *struct {
			OutputKg float64 `json:"output_kg"`
		} `json:"estimate"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, "matched", resp.Outcome)
	require.NotNil(t, resp.Record)
	assert.Equal(t, "Cow Manure", resp.Record.Name)
	assert.GreaterOrEqual(t, resp.Score, matching.DefaultScoreCutoff)
	require.NotNil(t, resp.Estimate)
	assert.InDelta(t, 40.0, resp.Estimate.OutputKg, 1e-9)
}

func TestRecommend_Unmatched(t *testing.T) {
	router := newTestRouter(t)

	body := `{"free_text": "xyzxyz"}`
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Outcome     string `json:"outcome"`
		Suggestions []struct {
			Name  string  `json:"name"`
			Score float64 `json:"score"`
		} `json:"suggestions"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, "unmatched", resp.Outcome)
	assert.Len(t, resp.Suggestions, 3)
}

func TestRecommend_SelectionNotFound(t *testing.T) {
	router := newTestRouter(t)

	body := `{"selected_name": "Moon Dust"}`
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecommend_MalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
