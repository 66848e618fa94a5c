package main

import (
	"log"

	"go-repairshop/internal/config"
	"go-repairshop/internal/database"
	"go-repairshop/internal/handlers"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.AllowRegistration {
		log.Println("WARNING: Registration route is OPEN. Disable this in production!")
	}

	r := handlers.NewRouter(cfg, db)

	log.Println("Server starting on " + cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
