package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/testvar-app/testvar-api/config"
	"github.com/testvar-app/testvar-api/handlers"
	"github.com/testvar-app/testvar-api/middleware"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: %v", err)
	}

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	defer sqlDB.Close()

	secret := []byte(cfg.JWTSecret)
	DBHandler := &handlers.DBHandler{DB: db, Secret: secret}
	requireAuth := middleware.RequireAuth(secret)

	mux := http.NewServeMux()

	// Users
	mux.HandleFunc("POST /users/signup", DBHandler.Signup)
	mux.HandleFunc("POST /users/login", DBHandler.Login)
	mux.HandleFunc("GET /users/me", requireAuth(DBHandler.Me))

	// Sets
	mux.HandleFunc("GET /sets", DBHandler.ListSets)
	mux.HandleFunc("POST /sets", DBHandler.CreateSet)
	mux.HandleFunc("DELETE /sets/{id}", DBHandler.DeleteSet)

	// Flashcards
	mux.HandleFunc("GET /flashcards", DBHandler.ListFlashcards)
	mux.HandleFunc("POST /flashcards", DBHandler.CreateFlashcard)
	mux.HandleFunc("DELETE /flashcards/{id}", DBHandler.DeleteFlashcard)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(middleware.RequestLogger(mux))

	serverAddr := "0.0.0.0:" + cfg.Port
	log.Printf("main: listening on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatalf("main: %v", err)
	}
}
