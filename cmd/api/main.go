package main

import (
	"fmt"
	"log"
	"net/http"
	"yatube/cmd/app"
	"yatube/internal/config"
	handlers "yatube/internal/handler"
	"yatube/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services, pageCache := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, pageCache, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.Index).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler(db)).Methods(http.MethodGet)

	router.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", handler.LoginPrompt).Methods(http.MethodGet)
	router.HandleFunc("/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	router.HandleFunc("/groups", handler.ListGroups).Methods(http.MethodGet)
	router.HandleFunc("/group/{slug}", handler.GroupFeed).Methods(http.MethodGet)

	router.HandleFunc("/profile/{username}", handler.Profile).Methods(http.MethodGet)
	router.HandleFunc("/profile/{username}/follow", handler.Follow).Methods(http.MethodPost)
	router.HandleFunc("/profile/{username}/unfollow", handler.Unfollow).Methods(http.MethodPost)
	router.HandleFunc("/follow", handler.FollowFeed).Methods(http.MethodGet)

	router.HandleFunc("/create", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/posts/{post_id:[0-9]+}", handler.PostDetail).Methods(http.MethodGet)
	router.HandleFunc("/posts/{post_id:[0-9]+}/edit", handler.EditPost).Methods(http.MethodPost)
	router.HandleFunc("/posts/{post_id:[0-9]+}/comment", handler.AddComment).Methods(http.MethodPost)

	router.HandleFunc("/internal/cache/clear", handler.ClearCache).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
