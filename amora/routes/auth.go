package routes

import (
	"amora/amora/controllers"
	"amora/amora/types"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, 0, controllers.ErrInvalidRequest
		}
		token, err := ctrl.Login(r.Context(), req.Handle)
		if err != nil {
			return nil, 0, err
		}
		return types.LoginResponse{Token: token}, http.StatusOK, nil
	}))

	return r
}
