package routes

import (
	"amora/amora/controllers"
	"amora/amora/middlewares"
	"encoding/json"
	"errors"
	"net/http"
)

type errorBody struct {
	Error        string `json:"error"`
	LimitReached bool   `json:"limitReached,omitempty"`
}

// generic wrapper to reduce boilerplate
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

// writeError maps the controller error taxonomy onto HTTP statuses.
// Unknown errors surface as a generic 500; details stay in the error log.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := errorBody{Error: "internal error"}
	switch {
	case errors.Is(err, controllers.ErrLimitReached):
		status = http.StatusForbidden
		body = errorBody{Error: err.Error(), LimitReached: true}
	case errors.Is(err, controllers.ErrUnauthorized):
		status = http.StatusUnauthorized
		body.Error = err.Error()
	case errors.Is(err, controllers.ErrInvalidRequest):
		status = http.StatusBadRequest
		body.Error = err.Error()
	case errors.Is(err, controllers.ErrNotFound):
		status = http.StatusNotFound
		body.Error = err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func userIDFrom(r *http.Request) (int, error) {
	id, ok := r.Context().Value(middlewares.UserIDKey).(int)
	if !ok {
		return 0, controllers.ErrUnauthorized
	}
	return id, nil
}
