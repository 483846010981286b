package service

import (
	"context"
	"fmt"
	"time"
	"yatube/internal/config"
	"yatube/internal/models"
	"yatube/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthService interface {
	Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, fmt.Errorf("пользователь с email %s уже существует", req.Email)
	}

	existingUser, err = s.userRepo.GetUserByUsername(ctx, req.Username)
	if err == nil && existingUser != nil {
		return nil, fmt.Errorf("имя %s уже занято", req.Username)
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	user := &models.User{
		Username:               req.Username,
		Email:                  req.Email,
		RefreshToken:           refreshToken,
		RefreshTokenExpiryTime: refreshTokenExpiry,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	err = s.userRepo.UpdateRefreshToken(ctx, user.UserID, refreshToken, refreshTokenExpiry)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка сохранения refresh token: %w", err)
	}

	return user, accessToken, refreshToken, nil
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, "", "", fmt.Errorf("недействительный refresh token: %w", err)
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	newRefreshToken, refreshTokenExpiry := s.generateRefreshToken()

	err = s.userRepo.UpdateRefreshToken(ctx, user.UserID, newRefreshToken, refreshTokenExpiry)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка обновления refresh token: %w", err)
	}

	return user, accessToken, newRefreshToken, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.UserID,
		"username": user.Username,
		"email":    user.Email,
		"exp":      time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) generateRefreshToken() (string, time.Time) {
	return uuid.New().String(), time.Now().Add(s.cfg.RefreshTokenDuration)
}
