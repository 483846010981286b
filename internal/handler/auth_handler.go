package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"yatube/internal/models"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserResponse struct {
	UserId   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := models.CreateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	// registering a user in the service
	_, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		if strings.Contains(err.Error(), "уже существует") || strings.Contains(err.Error(), "уже занято") {
			WriteError(w, err.Error(), http.StatusConflict)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	// сразу логиним нового пользователя
	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			UserId:   user.UserID,
			Username: user.Username,
			Email:    user.Email,
		},
	}

	WriteSuccess(w, response, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, "Неверный email или пароль", http.StatusUnauthorized)
		return
	}

	response := AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			UserId:   user.UserID,
			Username: user.Username,
			Email:    user.Email,
		},
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.RefreshToken == "" {
		WriteError(w, "Отсутствует refresh token", http.StatusBadRequest)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		WriteError(w, "Недействительный refresh token", http.StatusUnauthorized)
		return
	}

	response := AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			UserId:   user.UserID,
			Username: user.Username,
			Email:    user.Email,
		},
	}

	WriteSuccess(w, response, http.StatusOK)
}

// LoginPrompt - сюда уводятся неавторизованные запросы к закрытым страницам.
func (h *Handlers) LoginPrompt(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get("next")
	WriteError(w, "Требуется авторизация. Выполните вход и повторите запрос: "+next, http.StatusUnauthorized)
}
