package routes

import (
	"amora/amora/config"
	"amora/amora/controllers"
	"amora/amora/middlewares"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func UsageRoutes(ctrl *controllers.UsageController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		// GET /usage : today's counters and ceilings
		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			userID, err := userIDFrom(r)
			if err != nil {
				return nil, 0, err
			}
			usage, err := ctrl.GetUsage(r.Context(), userID)
			if err != nil {
				return nil, 0, err
			}
			return usage, http.StatusOK, nil
		}))
	})
	return r
}
