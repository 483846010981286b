package handlers

import (
	"net/http"
	"yatube/internal/database"
)

type HealthResponse struct {
	Status string `json:"status"`
}

func HealthHandler(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			WriteError(w, "БД недоступна: "+err.Error(), http.StatusServiceUnavailable)
			return
		}

		WriteSuccess(w, HealthResponse{Status: "ok"}, http.StatusOK)
	}
}
