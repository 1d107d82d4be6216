package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/http/auth"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/http/recommend"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/http/reports"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/http/wastetypes"
)

func New(
	recommendV1 *recommend.Handler,
	wasteTypesV1 *wastetypes.Handler,
	reportsV1 *reports.Handler,
	tokenSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/recommend", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			recommendV1.Routes(r)
		})

		r.Route("/waste-types", func(r chi.Router) {
			wasteTypesV1.Routes(r, auth.RequireToken(tokenSecret))
		})

		r.Route("/reports", reportsV1.Routes)
	})

	return router
}
