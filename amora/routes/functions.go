package routes

import (
	"amora/amora/config"
	"amora/amora/controllers"
	"amora/amora/middlewares"
	"amora/amora/types"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// FunctionRoutes exposes the two decision endpoints the client invokes:
// swipe/match and persona chat reply.
func FunctionRoutes(swipeCtrl *controllers.SwipeController, chatCtrl *controllers.ChatController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Post("/swipe", handleJSON(func(r *http.Request) (any, int, error) {
			userID, err := userIDFrom(r)
			if err != nil {
				return nil, 0, err
			}
			var req types.SwipeRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, 0, controllers.ErrInvalidRequest
			}
			resp, err := swipeCtrl.DecideSwipe(r.Context(), userID, req)
			if err != nil {
				return nil, 0, err
			}
			return resp, http.StatusOK, nil
		}))

		gr.Post("/chat-reply", handleJSON(func(r *http.Request) (any, int, error) {
			userID, err := userIDFrom(r)
			if err != nil {
				return nil, 0, err
			}
			var req types.ChatReplyRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, 0, controllers.ErrInvalidRequest
			}
			resp, err := chatCtrl.GenerateReply(r.Context(), userID, req)
			if err != nil {
				return nil, 0, err
			}
			return resp, http.StatusOK, nil
		}))
	})
	return r
}
