package routes

import (
	"amora/amora/config"
	"amora/amora/controllers"
	"amora/amora/middlewares"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func ChatRoutes(chatCtrl *controllers.ChatController, personaCtrl *controllers.PersonaController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		// GET /chats : the caller's match list
		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			userID, err := userIDFrom(r)
			if err != nil {
				return nil, 0, err
			}
			chats, err := chatCtrl.ListChats(r.Context(), userID, personaCtrl)
			if err != nil {
				return nil, 0, err
			}
			return chats, http.StatusOK, nil
		}))

		// GET /chats/{chat_id}/messages : chronological history
		gr.Get("/{chat_id}/messages", handleJSON(func(r *http.Request) (any, int, error) {
			userID, err := userIDFrom(r)
			if err != nil {
				return nil, 0, err
			}
			chatID, err := uuid.Parse(chi.URLParam(r, "chat_id"))
			if err != nil {
				return nil, 0, controllers.ErrInvalidRequest
			}
			msgs, err := chatCtrl.GetMessages(r.Context(), userID, chatID)
			if err != nil {
				return nil, 0, err
			}
			return msgs, http.StatusOK, nil
		}))
	})
	return r
}
