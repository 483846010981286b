package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"yatube/internal/config"
	handlers "yatube/internal/handler"

	"github.com/golang-jwt/jwt/v5"
)

type Middleware func(http.Handler) http.Handler

// protectedPath определяет страницы, требующие входа.
// Все ленты, группы, профили и просмотр постов открыты для чтения.
func protectedPath(path string) bool {
	switch {
	case path == "/create" || path == "/follow" || path == "/internal/cache/clear":
		return true
	case strings.HasSuffix(path, "/edit") || strings.HasSuffix(path, "/comment"):
		return true
	case strings.HasSuffix(path, "/follow") || strings.HasSuffix(path, "/unfollow"):
		return true
	}
	return false
}

// AuthMiddleware разбирает JWT из заголовка и кладет данные пользователя
// в контекст. Аноним на закрытой странице уводится на форму входа
// с адресом возврата в next.
func AuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			if authHeader == "" {
				if protectedPath(r.URL.Path) {
					redirectToLogin(w, r)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			// Checking the "Bearer <token>" format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				handlers.WriteError(w, "Неверный формат токена", http.StatusUnauthorized)
				return
			}

			tokenString := parts[1]

			// Parse token
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				// Checking the signature algorithm
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecretKey), nil
			})

			if err != nil || !token.Valid {
				handlers.WriteError(w, "Недействительный токен", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				handlers.WriteError(w, "Неверные claims токена", http.StatusUnauthorized)
				return
			}

			userID, ok1 := claims["userId"].(string)
			username, ok2 := claims["username"].(string)
			email, ok3 := claims["email"].(string)

			if !ok1 || !ok2 || !ok3 {
				handlers.WriteError(w, "Неверные данные в токене", http.StatusUnauthorized)
				return
			}

			// Adding user data to the context
			ctx := r.Context()
			ctx = context.WithValue(ctx, "userID", userID)
			ctx = context.WithValue(ctx, "username", username)
			ctx = context.WithValue(ctx, "email", email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	loginURL := "/auth/login?next=" + url.QueryEscape(r.URL.RequestURI())
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
