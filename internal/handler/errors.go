package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeRepoError переводит текст ошибки хранилища в статус ответа.
func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case strings.Contains(err.Error(), "не найден"):
		WriteError(w, err.Error(), http.StatusNotFound)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
