package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/insuredesk/insure-backend/internal/admin"
	"github.com/insuredesk/insure-backend/internal/config"
	"github.com/insuredesk/insure-backend/internal/db"
	"github.com/insuredesk/insure-backend/internal/intake"
	"github.com/insuredesk/insure-backend/internal/session"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db.Connect(cfg.Database)

	intake.Init()
	admin.Init(cfg.Admin)

	applications := intake.NewStore()
	sessions := session.NewMemoryStore()

	adminHandler := &admin.Handler{
		Credentials:  admin.NewCredentialStore(),
		Verifier:     admin.VerifierFor(cfg.Admin),
		Sessions:     sessions,
		Applications: applications,
		Cookie: admin.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL(),
			Secure: cfg.Session.Secure,
		},
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", RootHandler)
	r.Post("/apply", intake.NewHandler(applications).Apply)
	r.Mount("/admin", admin.SetupRoutes(adminHandler))

	log.Printf("Server listening on port :%d...", cfg.Server.Port)
	if err := http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", cfg.Server.Port), r); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
