package routes

import (
	"amora/amora/config"
	"amora/amora/controllers"
	"amora/amora/middlewares"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func PersonaRoutes(ctrl *controllers.PersonaController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		// GET /personas : discover feed for the caller
		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			userID, err := userIDFrom(r)
			if err != nil {
				return nil, 0, err
			}
			personas, err := ctrl.ListDiscover(r.Context(), userID)
			if err != nil {
				return nil, 0, err
			}
			return personas, http.StatusOK, nil
		}))

		// PUT /personas/{persona_id}/photo : store a profile photo
		gr.Put("/{persona_id}/photo", handleJSON(func(r *http.Request) (any, int, error) {
			if _, err := userIDFrom(r); err != nil {
				return nil, 0, err
			}
			personaID, err := uuid.Parse(chi.URLParam(r, "persona_id"))
			if err != nil {
				return nil, 0, controllers.ErrInvalidRequest
			}
			contentType := r.Header.Get("Content-Type")
			filename := r.URL.Query().Get("filename")
			if filename == "" {
				filename = "profile.jpg"
			}
			err = ctrl.UploadPhoto(r.Context(), personaID, filename, contentType, r.Body, r.ContentLength)
			if err != nil {
				return nil, 0, err
			}
			return map[string]string{"status": "uploaded"}, http.StatusOK, nil
		}))
	})
	return r
}
